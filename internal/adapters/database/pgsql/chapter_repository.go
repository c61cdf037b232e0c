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

const chapterColumns = `id, name, description, order_index, course_id, created_by, created_at, updated_at, deleted_at`

type ChapterRepository struct {
	db *pgxpool.Pool
}

func NewChapterRepository(db *pgxpool.Pool) *ChapterRepository {
	return &ChapterRepository{db: db}
}

var _ portsrepo.ChapterRepositoryFacade = (*ChapterRepository)(nil)

func scanChapter(row pgx.Row) (*domain.Chapter, error) {
	var chapter domain.Chapter
	err := row.Scan(
		&chapter.ID,
		&chapter.Name,
		&chapter.Description,
		&chapter.OrderIndex,
		&chapter.CourseID,
		&chapter.CreatedBy,
		&chapter.CreatedAt,
		&chapter.UpdatedAt,
		&chapter.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan chapter row: %w", err)
	}
	return &chapter, nil
}

func (r *ChapterRepository) SaveChapter(ctx context.Context, chapter domain.Chapter) error {
	query := `
        INSERT INTO chapters (id, name, description, order_index, course_id, created_by, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
    `
	_, err := r.db.Exec(ctx, query,
		chapter.ID,
		chapter.Name,
		chapter.Description,
		chapter.OrderIndex,
		chapter.CourseID,
		chapter.CreatedBy,
		chapter.CreatedAt,
		chapter.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save chapter: %w", err)
	}
	return nil
}

func (r *ChapterRepository) FindChapterByID(ctx context.Context, chapterID string) (*domain.Chapter, error) {
	query := `SELECT ` + chapterColumns + ` FROM chapters WHERE id = $1 AND deleted_at IS NULL;`
	return scanChapter(r.db.QueryRow(ctx, query, chapterID))
}

func (r *ChapterRepository) FindChapters(ctx context.Context, filter portsrepo.ChapterFilter) ([]domain.Chapter, int, error) {
	where := ` WHERE deleted_at IS NULL`
	args := []any{}
	argPos := 1

	if filter.CourseID != "" {
		where += fmt.Sprintf(" AND course_id = $%d", argPos)
		args = append(args, filter.CourseID)
		argPos++
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM chapters` + where + `;`
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count chapters: %w", err)
	}

	query := `SELECT ` + chapterColumns + ` FROM chapters` + where +
		fmt.Sprintf(" ORDER BY order_index ASC, created_at ASC LIMIT $%d OFFSET $%d;", argPos, argPos+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query chapters: %w", err)
	}
	defer rows.Close()

	chapters := []domain.Chapter{}
	for rows.Next() {
		chapter, err := scanChapter(rows)
		if err != nil {
			return nil, 0, err
		}
		chapters = append(chapters, *chapter)
	}
	if rows.Err() != nil {
		return nil, 0, fmt.Errorf("error iterating chapter rows: %w", rows.Err())
	}

	return chapters, total, nil
}

func (r *ChapterRepository) UpdateChapter(ctx context.Context, chapter domain.Chapter) error {
	query := `
        UPDATE chapters
        SET name = $1, description = $2, order_index = $3, updated_at = $4
        WHERE id = $5 AND deleted_at IS NULL;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		chapter.Name,
		chapter.Description,
		chapter.OrderIndex,
		chapter.UpdatedAt,
		chapter.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update chapter: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("chapter not found or already deleted: %w", pgx.ErrNoRows)
	}
	return nil
}

func (r *ChapterRepository) MarkChapterDeleted(ctx context.Context, chapterID string, deletedAt time.Time) error {
	query := `
        UPDATE chapters
        SET deleted_at = $1, updated_at = $1
        WHERE id = $2 AND deleted_at IS NULL;
    `
	cmdTag, err := r.db.Exec(ctx, query, deletedAt, chapterID)
	if err != nil {
		return fmt.Errorf("failed to mark chapter as deleted: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("chapter not found or already deleted: %w", pgx.ErrNoRows)
	}
	return nil
}
