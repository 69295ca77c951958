package middleware

import (
	"net/http"
	"strings"

	"hospital-booking-api/internal/models"
	"hospital-booking-api/pkg/apperrors"
	"hospital-booking-api/pkg/utils"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserID = "userID"
	ContextRole   = "role"
)

// AuthMiddleware validates JWT access token from Authorization header
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "Authorization header required")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			abortUnauthorized(c, "Invalid authorization format. Use: Bearer <token>")
			return
		}

		claims, err := utils.ValidateAccessToken(parts[1])
		if err != nil {
			abortUnauthorized(c, "Invalid or expired token")
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextRole, claims.Role)

		c.Next()
	}
}

// HasRole reports whether role is one of allowed
func HasRole(role string, allowed ...string) bool {
	for _, a := range allowed {
		if role == a {
			return true
		}
	}
	return false
}

// RequireRole admits only authenticated callers holding one of roles.
// It must run after AuthMiddleware.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(ContextRole)
		if role == "" {
			abortUnauthorized(c, "Authentication required")
			return
		}

		if !HasRole(role, roles...) {
			utils.KindErrorResponse(c, http.StatusForbidden, string(apperrors.KindForbidden),
				"User role "+role+" is not authorized to access this route", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireAdmin checks if the authenticated user has admin role
func RequireAdmin() gin.HandlerFunc {
	return RequireRole(models.RoleAdmin)
}

func abortUnauthorized(c *gin.Context, message string) {
	utils.KindErrorResponse(c, http.StatusUnauthorized, string(apperrors.KindUnauthorized), message, nil)
	c.Abort()
}
