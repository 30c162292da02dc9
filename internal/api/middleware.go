package api

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/arkline/marketdesk/internal/auth"
	"github.com/arkline/marketdesk/internal/errors"
	"github.com/arkline/marketdesk/internal/models"
)

// AuthMiddleware validates the Bearer token and stores the session
// identity on the request context.
func AuthMiddleware(jwtService *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			respondError(c, "", errors.NewUnauthorizedError(""))
			c.Abort()
			return
		}

		claims, err := jwtService.ValidateToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			respondError(c, "", errors.NewUnauthorizedError("invalid or expired token"))
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("username", claims.Username)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// RequireSuperadmin rejects sessions whose role is not superadmin. Runs
// after AuthMiddleware; the denied request never reaches a store.
func RequireSuperadmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		if role != models.RoleSuperadmin {
			respondError(c, "", errors.NewPermissionDeniedError(role))
			c.Abort()
			return
		}
		c.Next()
	}
}
