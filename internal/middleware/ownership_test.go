package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wishzy/wishzy-backend/internal/apperrors"
	"github.com/wishzy/wishzy-backend/internal/core/domain"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newOwnershipContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPut, "/courses/course-1", nil)
	c.Params = gin.Params{{Key: "id", Value: "course-1"}}
	return c, w
}

func courseLoader(course *domain.Course, err error) ResourceLoader {
	return func(_ context.Context, _ string) (domain.Ownable, error) {
		if course == nil {
			return nil, err
		}
		return course, err
	}
}

func TestRequireOwnership(t *testing.T) {
	t.Run("unauthenticated request", func(t *testing.T) {
		c, w := newOwnershipContext(t)

		RequireOwnership("course", courseLoader(&domain.Course{ID: "course-1"}, nil))(c)

		assert.True(t, c.IsAborted())
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("missing id parameter", func(t *testing.T) {
		c, w := newOwnershipContext(t)
		c.Params = gin.Params{}
		c.Set(string(userIDKey), "user-1")

		RequireOwnership("course", courseLoader(&domain.Course{ID: "course-1"}, nil))(c)

		assert.True(t, c.IsAborted())
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("resource not found", func(t *testing.T) {
		c, w := newOwnershipContext(t)
		c.Set(string(userIDKey), "user-1")

		RequireOwnership("course", courseLoader(nil, fmt.Errorf("%w: course", apperrors.ErrNotFound)))(c)

		assert.True(t, c.IsAborted())
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("loader failure", func(t *testing.T) {
		c, w := newOwnershipContext(t)
		c.Set(string(userIDKey), "user-1")

		RequireOwnership("course", courseLoader(nil, errors.New("connection refused")))(c)

		assert.True(t, c.IsAborted())
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("non-owner is forbidden", func(t *testing.T) {
		c, w := newOwnershipContext(t)
		c.Set(string(userIDKey), "user-1")
		c.Set(string(userRoleKey), string(domain.RoleInstructor))

		RequireOwnership("course", courseLoader(&domain.Course{ID: "course-1", CreatedBy: "someone-else"}, nil))(c)

		assert.True(t, c.IsAborted())
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("owner passes and resource is attached", func(t *testing.T) {
		c, w := newOwnershipContext(t)
		c.Set(string(userIDKey), "user-1")
		c.Set(string(userRoleKey), string(domain.RoleInstructor))
		course := &domain.Course{ID: "course-1", CreatedBy: "user-1"}

		RequireOwnership("course", courseLoader(course, nil))(c)

		assert.False(t, c.IsAborted())
		assert.Equal(t, http.StatusOK, w.Code)

		attached, ok := GetResourceFromContext(c)
		require.True(t, ok)
		assert.Same(t, course, attached)
	})

	t.Run("admin bypasses ownership", func(t *testing.T) {
		c, w := newOwnershipContext(t)
		c.Set(string(userIDKey), "admin-1")
		c.Set(string(userRoleKey), string(domain.RoleAdmin))

		RequireOwnership("course", courseLoader(&domain.Course{ID: "course-1", CreatedBy: "someone-else"}, nil))(c)

		assert.False(t, c.IsAborted())
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
