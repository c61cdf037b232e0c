package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/wishzy/wishzy-backend/internal/apperrors"
	"github.com/wishzy/wishzy-backend/internal/core/domain"
	portsrepo "github.com/wishzy/wishzy-backend/internal/core/ports/repositories"
	portssvc "github.com/wishzy/wishzy-backend/internal/core/ports/services"
	"github.com/wishzy/wishzy-backend/internal/dto"
	"github.com/wishzy/wishzy-backend/internal/middleware"
)

// userService handles user profile management.
type userService struct {
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new userService.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

// GetUserByID retrieves a user by ID.
func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %s", apperrors.ErrNotFound, userID)
	}
	return user, nil
}

// GetUserByEmail retrieves a user by email.
func (s *userService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: no user for this email", apperrors.ErrNotFound)
	}
	return user, nil
}

// ListUsers retrieves a paginated list of users and the total count.
func (s *userService) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, int, error) {
	users, total, err := s.userRepo.FindUsers(ctx, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}
	if users == nil {
		users = []domain.User{}
	}
	return users, total, nil
}

// UpdateUser updates a user's profile fields.
func (s *userService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Avatar != nil {
		user.Avatar = req.Avatar
	}
	if req.Phone != nil {
		user.Phone = req.Phone
	}
	if req.DOB != nil {
		user.DOB = req.DOB
	}
	if req.Gender != nil {
		user.Gender = req.Gender
	}
	if req.Address != nil {
		user.Address = req.Address
	}
	if req.Age != nil {
		user.Age = req.Age
	}
	user.UpdatedAt = time.Now()

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		logger.Error("Failed to update user", slog.String("error", err.Error()), slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}

// UpdateUserRole changes a user's role.
func (s *userService) UpdateUserRole(ctx context.Context, userID string, role domain.UserRole) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Role = role
	user.UpdatedAt = time.Now()

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		logger.Error("Failed to update user role", slog.String("error", err.Error()), slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to update user role: %w", err)
	}

	logger.Info("User role updated", slog.String("user_id", userID), slog.String("role", string(role)))
	return user, nil
}

// DeleteUser marks a user as deleted.
func (s *userService) DeleteUser(ctx context.Context, userID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.GetUserByID(ctx, userID); err != nil {
		return err
	}

	if err := s.userRepo.MarkUserDeleted(ctx, userID, time.Now()); err != nil {
		logger.Error("Failed to delete user", slog.String("error", err.Error()), slog.String("user_id", userID))
		return fmt.Errorf("failed to delete user: %w", err)
	}

	logger.Info("User deleted", slog.String("user_id", userID))
	return nil
}
