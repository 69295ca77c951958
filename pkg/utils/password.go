package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// lowered in tests
var bcryptCost = 12

// HashPassword generates a bcrypt hash from a plain text password.
// bcrypt rejects passwords longer than 72 bytes.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// ComparePassword reports whether password matches hashedPassword
func ComparePassword(hashedPassword, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}
