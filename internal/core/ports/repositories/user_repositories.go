package repositories

import (
	"context"
	"time"

	"github.com/wishzy/wishzy-backend/internal/core/domain"
)

// UserReader defines read operations for user data.
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a user by email, including secret columns.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindUserByVerificationToken retrieves a user by exact verification token match.
	FindUserByVerificationToken(ctx context.Context, token string) (*domain.User, error)

	// FindUserByResetToken retrieves a user by exact reset-password token match.
	FindUserByResetToken(ctx context.Context, token string) (*domain.User, error)

	// FindUsers retrieves a page of users and the total count.
	FindUsers(ctx context.Context, limit, offset int) ([]domain.User, int, error)
}

// UserWriter defines write operations for user data.
type UserWriter interface {
	// SaveUser persists a new user.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateUser updates an existing user's details, including token columns.
	UpdateUser(ctx context.Context, user domain.User) error
}

// UserLifecycleManager defines operations for managing user lifecycle.
type UserLifecycleManager interface {
	// MarkUserDeleted marks a user as deleted (soft delete).
	MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time) error
}

// UserRepositoryFacade combines all user-related repository interfaces.
type UserRepositoryFacade interface {
	UserReader
	UserWriter
	UserLifecycleManager
}
