package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/wishzy/wishzy-backend/internal/apperrors"
	"github.com/wishzy/wishzy-backend/internal/core/domain"
	portsrepo "github.com/wishzy/wishzy-backend/internal/core/ports/repositories"
	portssvc "github.com/wishzy/wishzy-backend/internal/core/ports/services"
	"github.com/wishzy/wishzy-backend/internal/dto"
	"github.com/wishzy/wishzy-backend/internal/middleware"
)

// categoryService handles the category tree, including cascading soft delete,
// restore and hard delete.
type categoryService struct {
	categoryRepo portsrepo.CategoryRepositoryFacade
}

// NewCategoryService creates a new categoryService.
func NewCategoryService(categoryRepo portsrepo.CategoryRepositoryFacade) portssvc.CategorySvcFacade {
	return &categoryService{categoryRepo: categoryRepo}
}

var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

// CreateCategory creates a category, deriving its slug from the name.
func (s *categoryService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.ParentID != nil {
		parent, err := s.categoryRepo.FindCategoryByID(ctx, *req.ParentID)
		if err != nil {
			return nil, fmt.Errorf("failed to validate parent category: %w", err)
		}
		if parent == nil {
			return nil, fmt.Errorf("%w: parent category not found", apperrors.ErrValidation)
		}
	}

	now := time.Now()
	category := domain.Category{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Slug:      slug.Make(req.Name),
		Notes:     req.Notes,
		ParentID:  req.ParentID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		logger.Error("Failed to save category", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	logger.Info("Category created", slog.String("category_id", category.ID))
	return &category, nil
}

// GetCategoryByID retrieves a live category by ID.
func (s *categoryService) GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	if category == nil {
		return nil, fmt.Errorf("%w: category %s", apperrors.ErrNotFound, categoryID)
	}
	return category, nil
}

// ListCategories retrieves a filtered page of categories and the total count.
func (s *categoryService) ListCategories(ctx context.Context, params dto.ListCategoriesParams) ([]domain.Category, int, error) {
	params.Normalize()
	filter := portsrepo.CategoryFilter{
		Name:          params.Name,
		ParentID:      params.ParentID,
		IsSubCategory: params.IsSubCategory,
		Limit:         params.Limit,
		Offset:        params.Offset(),
	}
	categories, total, err := s.categoryRepo.FindCategories(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list categories: %w", err)
	}
	if categories == nil {
		categories = []domain.Category{}
	}
	return categories, total, nil
}

// UpdateCategory updates name, notes or parent of a category. A name change
// re-derives the slug.
func (s *categoryService) UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	category, err := s.GetCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		category.Name = *req.Name
		category.Slug = slug.Make(*req.Name)
	}
	if req.Notes != nil {
		category.Notes = req.Notes
	}
	if req.ParentID != nil {
		if *req.ParentID == categoryID {
			return nil, fmt.Errorf("%w: a category cannot be its own parent", apperrors.ErrValidation)
		}
		parent, err := s.categoryRepo.FindCategoryByID(ctx, *req.ParentID)
		if err != nil {
			return nil, fmt.Errorf("failed to validate parent category: %w", err)
		}
		if parent == nil {
			return nil, fmt.Errorf("%w: parent category not found", apperrors.ErrValidation)
		}
		category.ParentID = req.ParentID
	}
	category.UpdatedAt = time.Now()

	if err := s.categoryRepo.UpdateCategory(ctx, *category); err != nil {
		logger.Error("Failed to update category", slog.String("error", err.Error()), slog.String("category_id", categoryID))
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return category, nil
}

// DeleteCategory soft deletes a category and all of its descendants.
func (s *categoryService) DeleteCategory(ctx context.Context, categoryID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.GetCategoryByID(ctx, categoryID); err != nil {
		return err
	}

	ids, err := s.collectSubtreeIDs(ctx, categoryID, false)
	if err != nil {
		return err
	}

	if err := s.categoryRepo.MarkCategoriesDeleted(ctx, ids, time.Now()); err != nil {
		logger.Error("Failed to soft delete category subtree", slog.String("error", err.Error()), slog.String("category_id", categoryID))
		return fmt.Errorf("failed to delete category: %w", err)
	}

	logger.Info("Category subtree deleted", slog.String("category_id", categoryID), slog.Int("count", len(ids)))
	return nil
}

// RestoreCategory restores a soft-deleted category and its descendants.
func (s *categoryService) RestoreCategory(ctx context.Context, categoryID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	category, err := s.categoryRepo.FindCategoryByIDIncludingDeleted(ctx, categoryID)
	if err != nil {
		return fmt.Errorf("failed to get category: %w", err)
	}
	if category == nil {
		return fmt.Errorf("%w: category %s", apperrors.ErrNotFound, categoryID)
	}
	if category.DeletedAt == nil {
		return fmt.Errorf("%w: category is not deleted", apperrors.ErrValidation)
	}

	ids, err := s.collectSubtreeIDs(ctx, categoryID, true)
	if err != nil {
		return err
	}

	if err := s.categoryRepo.RestoreCategories(ctx, ids); err != nil {
		logger.Error("Failed to restore category subtree", slog.String("error", err.Error()), slog.String("category_id", categoryID))
		return fmt.Errorf("failed to restore category: %w", err)
	}

	logger.Info("Category subtree restored", slog.String("category_id", categoryID), slog.Int("count", len(ids)))
	return nil
}

// HardDeleteCategory permanently removes a category and its descendants.
func (s *categoryService) HardDeleteCategory(ctx context.Context, categoryID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	category, err := s.categoryRepo.FindCategoryByIDIncludingDeleted(ctx, categoryID)
	if err != nil {
		return fmt.Errorf("failed to get category: %w", err)
	}
	if category == nil {
		return fmt.Errorf("%w: category %s", apperrors.ErrNotFound, categoryID)
	}

	ids, err := s.collectSubtreeIDs(ctx, categoryID, true)
	if err != nil {
		return err
	}

	if err := s.categoryRepo.HardDeleteCategories(ctx, ids); err != nil {
		logger.Error("Failed to hard delete category subtree", slog.String("error", err.Error()), slog.String("category_id", categoryID))
		return fmt.Errorf("failed to hard delete category: %w", err)
	}

	logger.Info("Category subtree hard deleted", slog.String("category_id", categoryID), slog.Int("count", len(ids)))
	return nil
}

// collectSubtreeIDs walks the category tree breadth-first starting at rootID
// and returns the root plus every descendant ID.
func (s *categoryService) collectSubtreeIDs(ctx context.Context, rootID string, includeDeleted bool) ([]string, error) {
	ids := []string{rootID}
	queue := []string{rootID}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		children, err := s.categoryRepo.FindChildCategories(ctx, current, includeDeleted)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				continue
			}
			return nil, fmt.Errorf("failed to collect child categories: %w", err)
		}
		for _, child := range children {
			ids = append(ids, child.ID)
			queue = append(queue, child.ID)
		}
	}

	return ids, nil
}
