package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hospital-booking-api/internal/models"
	"hospital-booking-api/pkg/apperrors"
	"hospital-booking-api/pkg/utils"

	"go.uber.org/zap"
)

type AuthService struct {
	userRepo  UserRepository
	auditRepo AuditRepository
	logger    *zap.Logger
}

func NewAuthService(userRepo UserRepository, auditRepo AuditRepository, logger *zap.Logger) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		auditRepo: auditRepo,
		logger:    logger,
	}
}

// LoginResponse represents the response structure for login
type LoginResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"-"`
	User         UserResponse `json:"user"`
}

type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

func toUserResponse(u *models.User) UserResponse {
	return UserResponse{ID: u.ID, Username: u.Username, Role: u.Role}
}

// Login authenticates a user and returns tokens
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResponse, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.ComparePassword(user.PasswordHash, password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	resp, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	s.audit(ctx, user.ID, models.ActionUserLogin, fmt.Sprintf("User %s logged in", username))
	return resp, nil
}

// Register creates a regular user account and logs it in
func (s *AuthService) Register(ctx context.Context, username, password string) (*LoginResponse, error) {
	user, err := s.createUser(ctx, username, password, models.RoleUser)
	if err != nil {
		return nil, err
	}

	resp, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	s.audit(ctx, user.ID, models.ActionUserRegistration, fmt.Sprintf("User %s registered", username))
	return resp, nil
}

// CreateAdmin creates an admin account; it is only reachable from the CLI
func (s *AuthService) CreateAdmin(ctx context.Context, username, password string) (*UserResponse, error) {
	user, err := s.createUser(ctx, username, password, models.RoleAdmin)
	if err != nil {
		return nil, err
	}

	s.audit(ctx, "", models.ActionAdminCreate, fmt.Sprintf("Admin %s created from CLI", username))
	resp := toUserResponse(user)
	return &resp, nil
}

// RefreshAccessToken generates a new access token from a refresh token
func (s *AuthService) RefreshAccessToken(ctx context.Context, refreshToken string) (string, error) {
	token, err := s.userRepo.FindRefreshTokenByHash(ctx, utils.HashRefreshToken(refreshToken))
	if err != nil {
		return "", err
	}

	if time.Now().After(token.ExpiresAt) {
		return "", apperrors.ErrInvalidToken
	}

	accessToken, err := utils.GenerateAccessToken(token.User.ID, token.User.Role)
	if err != nil {
		return "", fmt.Errorf("failed to generate access token: %w", err)
	}

	return accessToken, nil
}

// Logout revokes a refresh token
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	if err := s.userRepo.RevokeRefreshTokenByHash(ctx, utils.HashRefreshToken(refreshToken)); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return nil
}

// GetCurrentUser returns the account behind an access token
func (s *AuthService) GetCurrentUser(ctx context.Context, userID string) (*UserResponse, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := toUserResponse(user)
	return &resp, nil
}

func (s *AuthService) createUser(ctx context.Context, username, password, role string) (*models.User, error) {
	if _, err := s.userRepo.FindUserByUsername(ctx, username); err == nil {
		return nil, apperrors.ErrUsernameTaken
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	passwordHash, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		PasswordHash: passwordHash,
		Role:         role,
	}
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

func (s *AuthService) issueTokens(ctx context.Context, user *models.User) (*LoginResponse, error) {
	accessToken, err := utils.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken := utils.GenerateRefreshToken()
	if err := s.userRepo.CreateRefreshToken(ctx, &models.RefreshToken{
		UserID:    user.ID,
		TokenHash: utils.HashRefreshToken(refreshToken),
		ExpiresAt: time.Now().Add(utils.GetRefreshTokenExpiry()),
	}); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         toUserResponse(user),
	}, nil
}

func (s *AuthService) audit(ctx context.Context, actorID, action, details string) {
	var userID *string
	if actorID != "" {
		userID = &actorID
	}
	if err := s.auditRepo.CreateAuditLog(ctx, userID, action, details); err != nil {
		s.logger.Warn("Failed to write audit log", zap.String("action", action), zap.Error(err))
	}
}
