package middleware

import "github.com/gin-gonic/gin"

const (
	// userIDKey is the key used to store the authenticated user's ID in the context.
	userIDKey = contextKey("userID")

	// userEmailKey and userRoleKey carry the remaining access token claims.
	userEmailKey = contextKey("userEmail")
	userRoleKey  = contextKey("userRole")

	// resourceKey holds the resource loaded by the ownership middleware so
	// handlers don't have to fetch it again.
	resourceKey = contextKey("resource")
)

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userIDVal, exists := c.Get(string(userIDKey))
	if !exists {
		// check in the request context as well
		if v := c.Request.Context().Value(userIDKey); v != nil {
			return v.(string), true
		}
		return "", false
	}

	userID, ok := userIDVal.(string)
	if !ok {
		return "", false
	}

	return userID, true
}

// GetUserRoleFromContext retrieves the authenticated user's role from the Gin context.
func GetUserRoleFromContext(c *gin.Context) (string, bool) {
	roleVal, exists := c.Get(string(userRoleKey))
	if !exists {
		return "", false
	}
	role, ok := roleVal.(string)
	return role, ok
}

// GetUserEmailFromContext retrieves the authenticated user's email from the Gin context.
func GetUserEmailFromContext(c *gin.Context) (string, bool) {
	emailVal, exists := c.Get(string(userEmailKey))
	if !exists {
		return "", false
	}
	email, ok := emailVal.(string)
	return email, ok
}

// GetResourceFromContext retrieves the resource attached by the ownership middleware.
func GetResourceFromContext(c *gin.Context) (any, bool) {
	return c.Get(string(resourceKey))
}
