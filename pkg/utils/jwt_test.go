package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	InitJWT("test-access-secret-0123456789", 15*time.Minute, time.Hour)

	token, err := GenerateAccessToken("user-1", "admin")
	require.NoError(t, err)

	claims, err := ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "admin", claims.Role)
	assert.NotEmpty(t, claims.ID)
}

func TestValidateAccessToken_Expired(t *testing.T) {
	InitJWT("test-access-secret-0123456789", -time.Minute, time.Hour)

	token, err := GenerateAccessToken("user-1", "user")
	require.NoError(t, err)

	_, err = ValidateAccessToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestValidateAccessToken_WrongSecret(t *testing.T) {
	InitJWT("first-secret-0123456789", 15*time.Minute, time.Hour)
	token, err := GenerateAccessToken("user-1", "user")
	require.NoError(t, err)

	InitJWT("second-secret-0123456789", 15*time.Minute, time.Hour)
	_, err = ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestValidateAccessToken_RejectsNoneAlg(t *testing.T) {
	InitJWT("test-access-secret-0123456789", 15*time.Minute, time.Hour)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: "user-1", Role: "admin"})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestHashRefreshToken(t *testing.T) {
	a := HashRefreshToken("token")
	assert.Len(t, a, 64)
	assert.Equal(t, a, HashRefreshToken("token"))
	assert.NotEqual(t, a, HashRefreshToken("other"))
}

func TestValidateAccessToken_RejectsOtherHMAC(t *testing.T) {
	InitJWT("test-access-secret-0123456789", 15*time.Minute, time.Hour)

	other := jwt.NewWithClaims(jwt.SigningMethodHS384, Claims{UserID: "user-1", Role: "admin"})
	token, err := other.SignedString([]byte("test-access-secret-0123456789"))
	require.NoError(t, err)

	_, err = ValidateAccessToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestRefreshTokenSettings(t *testing.T) {
	InitJWT("test-access-secret-0123456789", 15*time.Minute, 48*time.Hour)

	assert.Equal(t, 48*time.Hour, GetRefreshTokenExpiry())
	assert.NotEqual(t, GenerateRefreshToken(), GenerateRefreshToken())
}
