package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var errTokenClaims = errors.New("token carries no usable claims")

// tokenSettings is set once at startup by InitJWT
var tokenSettings struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// InitJWT sets the HMAC key for access tokens and the lifetimes of both
// token kinds
func InitJWT(secret string, accessTTL, refreshTTL time.Duration) {
	tokenSettings.secret = []byte(secret)
	tokenSettings.accessTTL = accessTTL
	tokenSettings.refreshTTL = refreshTTL
}

// Claims is the access token payload. Subject repeats UserID.
type Claims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateAccessToken signs an HS256 token for the user
func GenerateAccessToken(userID, role string) (string, error) {
	issued := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(issued),
			ExpiresAt: jwt.NewNumericDate(issued.Add(tokenSettings.accessTTL)),
		},
	})
	return token.SignedString(tokenSettings.secret)
}

// GenerateRefreshToken returns an opaque token; only its hash is stored
func GenerateRefreshToken() string {
	return uuid.NewString()
}

// ValidateAccessToken checks signature and expiry and returns the claims
func ValidateAccessToken(raw string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		return tokenSettings.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("parse access token: %w", err)
	}
	if !token.Valid {
		return nil, errTokenClaims
	}
	return claims, nil
}

// HashRefreshToken is the lookup key under which a refresh token is stored
func HashRefreshToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func GetRefreshTokenExpiry() time.Duration {
	return tokenSettings.refreshTTL
}
