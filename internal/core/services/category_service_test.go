package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wishzy/wishzy-backend/internal/apperrors"
	"github.com/wishzy/wishzy-backend/internal/core/domain"
	portsrepo "github.com/wishzy/wishzy-backend/internal/core/ports/repositories"
	"github.com/wishzy/wishzy-backend/internal/core/services"
	"github.com/wishzy/wishzy-backend/internal/dto"
)

// MockCategoryRepository is a function-field mock of CategoryRepositoryFacade.
type MockCategoryRepository struct {
	SaveCategoryFn                     func(ctx context.Context, category domain.Category) error
	FindCategoryByIDFn                 func(ctx context.Context, categoryID string) (*domain.Category, error)
	FindCategoryByIDIncludingDeletedFn func(ctx context.Context, categoryID string) (*domain.Category, error)
	FindCategoriesFn                   func(ctx context.Context, filter portsrepo.CategoryFilter) ([]domain.Category, int, error)
	FindChildCategoriesFn              func(ctx context.Context, parentID string, includeDeleted bool) ([]domain.Category, error)
	UpdateCategoryFn                   func(ctx context.Context, category domain.Category) error
	MarkCategoriesDeletedFn            func(ctx context.Context, categoryIDs []string, deletedAt time.Time) error
	RestoreCategoriesFn                func(ctx context.Context, categoryIDs []string) error
	HardDeleteCategoriesFn             func(ctx context.Context, categoryIDs []string) error
}

func (m *MockCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	return m.SaveCategoryFn(ctx, category)
}

func (m *MockCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	return m.FindCategoryByIDFn(ctx, categoryID)
}

func (m *MockCategoryRepository) FindCategoryByIDIncludingDeleted(ctx context.Context, categoryID string) (*domain.Category, error) {
	return m.FindCategoryByIDIncludingDeletedFn(ctx, categoryID)
}

func (m *MockCategoryRepository) FindCategories(ctx context.Context, filter portsrepo.CategoryFilter) ([]domain.Category, int, error) {
	return m.FindCategoriesFn(ctx, filter)
}

func (m *MockCategoryRepository) FindChildCategories(ctx context.Context, parentID string, includeDeleted bool) ([]domain.Category, error) {
	return m.FindChildCategoriesFn(ctx, parentID, includeDeleted)
}

func (m *MockCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	return m.UpdateCategoryFn(ctx, category)
}

func (m *MockCategoryRepository) MarkCategoriesDeleted(ctx context.Context, categoryIDs []string, deletedAt time.Time) error {
	return m.MarkCategoriesDeletedFn(ctx, categoryIDs, deletedAt)
}

func (m *MockCategoryRepository) RestoreCategories(ctx context.Context, categoryIDs []string) error {
	return m.RestoreCategoriesFn(ctx, categoryIDs)
}

func (m *MockCategoryRepository) HardDeleteCategories(ctx context.Context, categoryIDs []string) error {
	return m.HardDeleteCategoriesFn(ctx, categoryIDs)
}

// categoryTree wires FindChildCategories over a static parent -> children map.
func categoryTree(children map[string][]string) func(ctx context.Context, parentID string, includeDeleted bool) ([]domain.Category, error) {
	return func(_ context.Context, parentID string, _ bool) ([]domain.Category, error) {
		var out []domain.Category
		for _, id := range children[parentID] {
			out = append(out, domain.Category{ID: id})
		}
		return out, nil
	}
}

func TestCreateCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("derives slug from name", func(t *testing.T) {
		var saved domain.Category
		repo := &MockCategoryRepository{
			SaveCategoryFn: func(_ context.Context, category domain.Category) error {
				saved = category
				return nil
			},
		}
		svc := services.NewCategoryService(repo)

		category, err := svc.CreateCategory(ctx, dto.CreateCategoryRequest{Name: "Web Development"})
		require.NoError(t, err)
		assert.Equal(t, "web-development", category.Slug)
		assert.Equal(t, category.ID, saved.ID)
		assert.NotEmpty(t, saved.ID)
	})

	t.Run("unknown parent rejected", func(t *testing.T) {
		parentID := "missing-parent"
		repo := &MockCategoryRepository{
			FindCategoryByIDFn: func(_ context.Context, _ string) (*domain.Category, error) {
				return nil, nil
			},
		}
		svc := services.NewCategoryService(repo)

		_, err := svc.CreateCategory(ctx, dto.CreateCategoryRequest{Name: "Go", ParentID: &parentID})
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})
}

func TestUpdateCategory_SelfParentRejected(t *testing.T) {
	repo := &MockCategoryRepository{
		FindCategoryByIDFn: func(_ context.Context, categoryID string) (*domain.Category, error) {
			return &domain.Category{ID: categoryID, Name: "Go"}, nil
		},
	}
	svc := services.NewCategoryService(repo)

	self := "cat-1"
	_, err := svc.UpdateCategory(context.Background(), "cat-1", dto.UpdateCategoryRequest{ParentID: &self})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestDeleteCategory_CascadesToDescendants(t *testing.T) {
	var deleted []string
	repo := &MockCategoryRepository{
		FindCategoryByIDFn: func(_ context.Context, categoryID string) (*domain.Category, error) {
			return &domain.Category{ID: categoryID}, nil
		},
		FindChildCategoriesFn: categoryTree(map[string][]string{
			"root":    {"child-a", "child-b"},
			"child-a": {"grandchild"},
		}),
		MarkCategoriesDeletedFn: func(_ context.Context, categoryIDs []string, _ time.Time) error {
			deleted = categoryIDs
			return nil
		},
	}
	svc := services.NewCategoryService(repo)

	require.NoError(t, svc.DeleteCategory(context.Background(), "root"))
	assert.ElementsMatch(t, []string{"root", "child-a", "child-b", "grandchild"}, deleted)
}

func TestDeleteCategory_NotFound(t *testing.T) {
	repo := &MockCategoryRepository{
		FindCategoryByIDFn: func(_ context.Context, _ string) (*domain.Category, error) {
			return nil, nil
		},
	}
	svc := services.NewCategoryService(repo)

	err := svc.DeleteCategory(context.Background(), "missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestRestoreCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("restores the whole subtree", func(t *testing.T) {
		deletedAt := time.Now().Add(-time.Hour)
		var restored []string
		repo := &MockCategoryRepository{
			FindCategoryByIDIncludingDeletedFn: func(_ context.Context, categoryID string) (*domain.Category, error) {
				return &domain.Category{ID: categoryID, DeletedAt: &deletedAt}, nil
			},
			FindChildCategoriesFn: categoryTree(map[string][]string{
				"root": {"child-a"},
			}),
			RestoreCategoriesFn: func(_ context.Context, categoryIDs []string) error {
				restored = categoryIDs
				return nil
			},
		}
		svc := services.NewCategoryService(repo)

		require.NoError(t, svc.RestoreCategory(ctx, "root"))
		assert.ElementsMatch(t, []string{"root", "child-a"}, restored)
	})

	t.Run("live category cannot be restored", func(t *testing.T) {
		repo := &MockCategoryRepository{
			FindCategoryByIDIncludingDeletedFn: func(_ context.Context, categoryID string) (*domain.Category, error) {
				return &domain.Category{ID: categoryID}, nil
			},
		}
		svc := services.NewCategoryService(repo)

		err := svc.RestoreCategory(ctx, "root")
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})
}

func TestHardDeleteCategory(t *testing.T) {
	deletedAt := time.Now().Add(-time.Hour)
	var removed []string
	repo := &MockCategoryRepository{
		FindCategoryByIDIncludingDeletedFn: func(_ context.Context, categoryID string) (*domain.Category, error) {
			return &domain.Category{ID: categoryID, DeletedAt: &deletedAt}, nil
		},
		FindChildCategoriesFn: categoryTree(map[string][]string{
			"root": {"child-a", "child-b"},
		}),
		HardDeleteCategoriesFn: func(_ context.Context, categoryIDs []string) error {
			removed = categoryIDs
			return nil
		},
	}
	svc := services.NewCategoryService(repo)

	require.NoError(t, svc.HardDeleteCategory(context.Background(), "root"))
	assert.ElementsMatch(t, []string{"root", "child-a", "child-b"}, removed)
}
