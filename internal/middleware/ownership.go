package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wishzy/wishzy-backend/internal/apperrors"
	"github.com/wishzy/wishzy-backend/internal/core/domain"
)

// ResourceLoader fetches an ownable resource by ID so ownership can be checked.
type ResourceLoader func(ctx context.Context, resourceID string) (domain.Ownable, error)

// RequireOwnership creates a Gin middleware that lets a request proceed only
// when the authenticated user created the resource named by the :id route
// parameter, or holds the admin role. The loaded resource is attached to the
// context so the handler doesn't have to fetch it again.
// It must run after AuthMiddleware.
func RequireOwnership(resourceName string, load ResourceLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		userID, ok := GetUserIDFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Authentication required"})
			return
		}

		resourceID := c.Param("id")
		if resourceID == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"success": false, "message": fmt.Sprintf("Missing %s id", resourceName)})
			return
		}

		resource, err := load(c.Request.Context(), resourceID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"success": false, "message": fmt.Sprintf("%s not found", resourceName)})
				return
			}
			logger.Error("Failed to load resource for ownership check", "resource", resourceName, "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
			return
		}
		if resource == nil {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"success": false, "message": fmt.Sprintf("%s not found", resourceName)})
			return
		}

		role, _ := GetUserRoleFromContext(c)
		if domain.UserRole(role) != domain.RoleAdmin && resource.GetCreatedBy() != userID {
			logger.Warn("Ownership check failed", "resource", resourceName, "resource_id", resourceID)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "message": "You do not own this resource"})
			return
		}

		c.Set(string(resourceKey), resource)
		c.Next()
	}
}
