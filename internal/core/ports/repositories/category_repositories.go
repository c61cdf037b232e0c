package repositories

import (
	"context"
	"time"

	"github.com/wishzy/wishzy-backend/internal/core/domain"
)

// CategoryFilter narrows category listings.
type CategoryFilter struct {
	Name          string
	ParentID      string
	IsSubCategory *bool
	Limit         int
	Offset        int
}

// CategoryRepositoryFacade combines all category repository operations.
type CategoryRepositoryFacade interface {
	// SaveCategory persists a new category.
	SaveCategory(ctx context.Context, category domain.Category) error

	// FindCategoryByID retrieves a category with its live course count.
	FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)

	// FindCategoryByIDIncludingDeleted retrieves a category regardless of soft deletion.
	FindCategoryByIDIncludingDeleted(ctx context.Context, categoryID string) (*domain.Category, error)

	// FindCategories retrieves a filtered page of categories and the total count.
	FindCategories(ctx context.Context, filter CategoryFilter) ([]domain.Category, int, error)

	// FindChildCategories retrieves direct children of a parent category.
	FindChildCategories(ctx context.Context, parentID string, includeDeleted bool) ([]domain.Category, error)

	// UpdateCategory updates an existing category.
	UpdateCategory(ctx context.Context, category domain.Category) error

	// MarkCategoriesDeleted soft deletes the given categories.
	MarkCategoriesDeleted(ctx context.Context, categoryIDs []string, deletedAt time.Time) error

	// RestoreCategories clears the soft-delete marker on the given categories.
	RestoreCategories(ctx context.Context, categoryIDs []string) error

	// HardDeleteCategories permanently removes the given categories.
	HardDeleteCategories(ctx context.Context, categoryIDs []string) error
}
