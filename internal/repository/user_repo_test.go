package repository

import (
	"context"
	"testing"
	"time"

	"hospital-booking-api/internal/models"
	"hospital-booking-api/internal/testutil"
	"hospital-booking-api/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepo_CreateAndFind(t *testing.T) {
	repo := NewUserRepo(testutil.NewDB(t))
	ctx := context.Background()

	u := &models.User{Username: "alice", PasswordHash: "hash", Role: models.RoleUser}
	require.NoError(t, repo.CreateUser(ctx, u))
	require.NotEmpty(t, u.ID)

	byName, err := repo.FindUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byName.ID)

	byID, err := repo.FindUserByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", byID.Username)

	_, err = repo.FindUserByUsername(ctx, "bob")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestUserRepo_DuplicateUsername(t *testing.T) {
	repo := NewUserRepo(testutil.NewDB(t))
	ctx := context.Background()

	require.NoError(t, repo.CreateUser(ctx, &models.User{Username: "alice", PasswordHash: "h", Role: models.RoleUser}))
	err := repo.CreateUser(ctx, &models.User{Username: "alice", PasswordHash: "h", Role: models.RoleUser})

	assert.ErrorIs(t, err, apperrors.ErrUsernameTaken)
}

func TestUserRepo_RejectsUnknownRole(t *testing.T) {
	repo := NewUserRepo(testutil.NewDB(t))

	err := repo.CreateUser(context.Background(), &models.User{Username: "mallory", PasswordHash: "h", Role: "root"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestUserRepo_RefreshTokens(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewUserRepo(db)
	ctx := context.Background()

	u := &models.User{Username: "alice", PasswordHash: "h", Role: models.RoleUser}
	require.NoError(t, repo.CreateUser(ctx, u))

	now := time.Now().UTC()
	live := &models.RefreshToken{UserID: u.ID, TokenHash: "live", ExpiresAt: now.Add(time.Hour)}
	expired := &models.RefreshToken{UserID: u.ID, TokenHash: "expired", ExpiresAt: now.Add(-time.Hour)}
	revoked := &models.RefreshToken{UserID: u.ID, TokenHash: "revoked", ExpiresAt: now.Add(time.Hour)}
	for _, tok := range []*models.RefreshToken{live, expired, revoked} {
		require.NoError(t, repo.CreateRefreshToken(ctx, tok))
	}
	require.NoError(t, repo.RevokeRefreshTokenByHash(ctx, "revoked"))

	found, err := repo.FindRefreshTokenByHash(ctx, "live")
	require.NoError(t, err)
	assert.Equal(t, "alice", found.User.Username)

	_, err = repo.FindRefreshTokenByHash(ctx, "revoked")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)

	n, err := repo.DeleteStaleRefreshTokens(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	var remaining int64
	db.Model(&models.RefreshToken{}).Count(&remaining)
	assert.Equal(t, int64(1), remaining)
}

func TestAuditRepo(t *testing.T) {
	repo := NewAuditRepo(testutil.NewDB(t))
	ctx := context.Background()
	uid := "admin-1"

	require.NoError(t, repo.CreateAuditLog(ctx, &uid, "hospital_create", "first"))
	require.NoError(t, repo.CreateAuditLog(ctx, &uid, "hospital_create", "second"))
	require.NoError(t, repo.CreateAuditLog(ctx, nil, "user_login", "other"))

	logs, err := repo.ListByAction(ctx, "hospital_create")
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, "second", logs[0].Details)
	assert.Equal(t, "admin-1", *logs[0].UserID)
}
