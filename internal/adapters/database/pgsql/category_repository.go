package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/wishzy/wishzy-backend/internal/core/domain"
	portsrepo "github.com/wishzy/wishzy-backend/internal/core/ports/repositories"
)

// categorySelect pulls each category with its live course count.
const categorySelect = `
    SELECT c.id, c.name, c.slug, c.notes, c.parent_id, c.created_at, c.updated_at, c.deleted_at,
           (SELECT COUNT(*) FROM courses co WHERE co.category_id = c.id AND co.deleted_at IS NULL) AS total_courses
    FROM categories c`

type CategoryRepository struct {
	db *pgxpool.Pool
}

func NewCategoryRepository(db *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{db: db}
}

var _ portsrepo.CategoryRepositoryFacade = (*CategoryRepository)(nil)

func scanCategory(row pgx.Row) (*domain.Category, error) {
	var category domain.Category
	err := row.Scan(
		&category.ID,
		&category.Name,
		&category.Slug,
		&category.Notes,
		&category.ParentID,
		&category.CreatedAt,
		&category.UpdatedAt,
		&category.DeletedAt,
		&category.TotalCourses,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan category row: %w", err)
	}
	return &category, nil
}

func (r *CategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	query := `
        INSERT INTO categories (id, name, slug, notes, parent_id, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7);
    `
	_, err := r.db.Exec(ctx, query,
		category.ID,
		category.Name,
		category.Slug,
		category.Notes,
		category.ParentID,
		category.CreatedAt,
		category.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save category: %w", err)
	}
	return nil
}

func (r *CategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	query := categorySelect + ` WHERE c.id = $1 AND c.deleted_at IS NULL;`
	return scanCategory(r.db.QueryRow(ctx, query, categoryID))
}

func (r *CategoryRepository) FindCategoryByIDIncludingDeleted(ctx context.Context, categoryID string) (*domain.Category, error) {
	query := categorySelect + ` WHERE c.id = $1;`
	return scanCategory(r.db.QueryRow(ctx, query, categoryID))
}

func (r *CategoryRepository) FindCategories(ctx context.Context, filter portsrepo.CategoryFilter) ([]domain.Category, int, error) {
	where := ` WHERE c.deleted_at IS NULL`
	args := []any{}
	argPos := 1

	if filter.Name != "" {
		where += fmt.Sprintf(" AND c.name ILIKE $%d", argPos)
		args = append(args, "%"+filter.Name+"%")
		argPos++
	}
	if filter.ParentID != "" {
		where += fmt.Sprintf(" AND c.parent_id = $%d", argPos)
		args = append(args, filter.ParentID)
		argPos++
	}
	if filter.IsSubCategory != nil {
		if *filter.IsSubCategory {
			where += " AND c.parent_id IS NOT NULL"
		} else {
			where += " AND c.parent_id IS NULL"
		}
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM categories c` + where + `;`
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count categories: %w", err)
	}

	query := categorySelect + where + fmt.Sprintf(" ORDER BY c.created_at DESC LIMIT $%d OFFSET $%d;", argPos, argPos+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, 0, err
		}
		categories = append(categories, *category)
	}
	if rows.Err() != nil {
		return nil, 0, fmt.Errorf("error iterating category rows: %w", rows.Err())
	}

	return categories, total, nil
}

func (r *CategoryRepository) FindChildCategories(ctx context.Context, parentID string, includeDeleted bool) ([]domain.Category, error) {
	query := categorySelect + ` WHERE c.parent_id = $1`
	if !includeDeleted {
		query += ` AND c.deleted_at IS NULL`
	}
	query += `;`

	rows, err := r.db.Query(ctx, query, parentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query child categories: %w", err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, *category)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating category rows: %w", rows.Err())
	}

	return categories, nil
}

func (r *CategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	query := `
        UPDATE categories
        SET name = $1, slug = $2, notes = $3, parent_id = $4, updated_at = $5
        WHERE id = $6 AND deleted_at IS NULL;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		category.Name,
		category.Slug,
		category.Notes,
		category.ParentID,
		category.UpdatedAt,
		category.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("category not found or already deleted: %w", pgx.ErrNoRows)
	}
	return nil
}

func (r *CategoryRepository) MarkCategoriesDeleted(ctx context.Context, categoryIDs []string, deletedAt time.Time) error {
	query := `
        UPDATE categories
        SET deleted_at = $1, updated_at = $1
        WHERE id = ANY($2) AND deleted_at IS NULL;
    `
	if _, err := r.db.Exec(ctx, query, deletedAt, categoryIDs); err != nil {
		return fmt.Errorf("failed to mark categories as deleted: %w", err)
	}
	return nil
}

func (r *CategoryRepository) RestoreCategories(ctx context.Context, categoryIDs []string) error {
	query := `
        UPDATE categories
        SET deleted_at = NULL, updated_at = NOW()
        WHERE id = ANY($1) AND deleted_at IS NOT NULL;
    `
	if _, err := r.db.Exec(ctx, query, categoryIDs); err != nil {
		return fmt.Errorf("failed to restore categories: %w", err)
	}
	return nil
}

func (r *CategoryRepository) HardDeleteCategories(ctx context.Context, categoryIDs []string) error {
	query := `DELETE FROM categories WHERE id = ANY($1);`
	if _, err := r.db.Exec(ctx, query, categoryIDs); err != nil {
		return fmt.Errorf("failed to hard delete categories: %w", err)
	}
	return nil
}
