package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wishzy/wishzy-backend/internal/core/domain"
)

// RequireRoles creates a Gin middleware that allows only the listed roles.
// It must run after AuthMiddleware.
func RequireRoles(roles ...domain.UserRole) gin.HandlerFunc {
	allowed := make(map[domain.UserRole]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(c *gin.Context) {
		role, ok := GetUserRoleFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Authentication required"})
			return
		}

		if !allowed[domain.UserRole(role)] {
			GetLoggerFromCtx(c.Request.Context()).Warn("Role not permitted", "role", role)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "message": "You do not have permission to perform this action"})
			return
		}

		c.Next()
	}
}
