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

const lectureColumns = `id, name, description, file_url, duration, is_preview, order_index, chapter_id, created_by, created_at, updated_at, deleted_at`

type LectureRepository struct {
	db *pgxpool.Pool
}

func NewLectureRepository(db *pgxpool.Pool) *LectureRepository {
	return &LectureRepository{db: db}
}

var _ portsrepo.LectureRepositoryFacade = (*LectureRepository)(nil)

func scanLecture(row pgx.Row) (*domain.Lecture, error) {
	var lecture domain.Lecture
	err := row.Scan(
		&lecture.ID,
		&lecture.Name,
		&lecture.Description,
		&lecture.FileURL,
		&lecture.Duration,
		&lecture.IsPreview,
		&lecture.OrderIndex,
		&lecture.ChapterID,
		&lecture.CreatedBy,
		&lecture.CreatedAt,
		&lecture.UpdatedAt,
		&lecture.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan lecture row: %w", err)
	}
	return &lecture, nil
}

func (r *LectureRepository) SaveLecture(ctx context.Context, lecture domain.Lecture) error {
	query := `
        INSERT INTO lectures (id, name, description, file_url, duration, is_preview, order_index, chapter_id, created_by, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
    `
	_, err := r.db.Exec(ctx, query,
		lecture.ID,
		lecture.Name,
		lecture.Description,
		lecture.FileURL,
		lecture.Duration,
		lecture.IsPreview,
		lecture.OrderIndex,
		lecture.ChapterID,
		lecture.CreatedBy,
		lecture.CreatedAt,
		lecture.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save lecture: %w", err)
	}
	return nil
}

func (r *LectureRepository) FindLectureByID(ctx context.Context, lectureID string) (*domain.Lecture, error) {
	query := `SELECT ` + lectureColumns + ` FROM lectures WHERE id = $1 AND deleted_at IS NULL;`
	return scanLecture(r.db.QueryRow(ctx, query, lectureID))
}

func (r *LectureRepository) FindLectures(ctx context.Context, filter portsrepo.LectureFilter) ([]domain.Lecture, int, error) {
	where := ` WHERE deleted_at IS NULL`
	args := []any{}
	argPos := 1

	if filter.ChapterID != "" {
		where += fmt.Sprintf(" AND chapter_id = $%d", argPos)
		args = append(args, filter.ChapterID)
		argPos++
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM lectures` + where + `;`
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count lectures: %w", err)
	}

	query := `SELECT ` + lectureColumns + ` FROM lectures` + where +
		fmt.Sprintf(" ORDER BY order_index ASC, created_at ASC LIMIT $%d OFFSET $%d;", argPos, argPos+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query lectures: %w", err)
	}
	defer rows.Close()

	lectures := []domain.Lecture{}
	for rows.Next() {
		lecture, err := scanLecture(rows)
		if err != nil {
			return nil, 0, err
		}
		lectures = append(lectures, *lecture)
	}
	if rows.Err() != nil {
		return nil, 0, fmt.Errorf("error iterating lecture rows: %w", rows.Err())
	}

	return lectures, total, nil
}

func (r *LectureRepository) UpdateLecture(ctx context.Context, lecture domain.Lecture) error {
	query := `
        UPDATE lectures
        SET name = $1, description = $2, file_url = $3, duration = $4, is_preview = $5, order_index = $6, updated_at = $7
        WHERE id = $8 AND deleted_at IS NULL;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		lecture.Name,
		lecture.Description,
		lecture.FileURL,
		lecture.Duration,
		lecture.IsPreview,
		lecture.OrderIndex,
		lecture.UpdatedAt,
		lecture.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update lecture: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("lecture not found or already deleted: %w", pgx.ErrNoRows)
	}
	return nil
}

func (r *LectureRepository) MarkLectureDeleted(ctx context.Context, lectureID string, deletedAt time.Time) error {
	query := `
        UPDATE lectures
        SET deleted_at = $1, updated_at = $1
        WHERE id = $2 AND deleted_at IS NULL;
    `
	cmdTag, err := r.db.Exec(ctx, query, deletedAt, lectureID)
	if err != nil {
		return fmt.Errorf("failed to mark lecture as deleted: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("lecture not found or already deleted: %w", pgx.ErrNoRows)
	}
	return nil
}
