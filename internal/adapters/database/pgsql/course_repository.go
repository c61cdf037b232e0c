package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/wishzy/wishzy-backend/internal/core/domain"
	portsrepo "github.com/wishzy/wishzy-backend/internal/core/ports/repositories"
)

const courseColumns = `id, name, slug, description, notes, thumbnail, price, sale_info,
		rating, status, average_rating, number_of_students, level, total_duration,
		category_id, created_by, created_at, updated_at, deleted_at`

type CourseRepository struct {
	db *pgxpool.Pool
}

func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{db: db}
}

var _ portsrepo.CourseRepositoryFacade = (*CourseRepository)(nil)

func scanCourse(row pgx.Row) (*domain.Course, error) {
	var course domain.Course
	var saleInfoJSON []byte
	err := row.Scan(
		&course.ID,
		&course.Name,
		&course.Slug,
		&course.Description,
		&course.Notes,
		&course.Thumbnail,
		&course.Price,
		&saleInfoJSON,
		&course.Rating,
		&course.Status,
		&course.AverageRating,
		&course.NumberOfStudents,
		&course.Level,
		&course.TotalDuration,
		&course.CategoryID,
		&course.CreatedBy,
		&course.CreatedAt,
		&course.UpdatedAt,
		&course.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan course row: %w", err)
	}
	if len(saleInfoJSON) > 0 {
		var saleInfo domain.SaleInfo
		if err := json.Unmarshal(saleInfoJSON, &saleInfo); err != nil {
			return nil, fmt.Errorf("failed to decode sale info: %w", err)
		}
		course.SaleInfo = &saleInfo
	}
	return &course, nil
}

func encodeSaleInfo(saleInfo *domain.SaleInfo) ([]byte, error) {
	if saleInfo == nil {
		return nil, nil
	}
	data, err := json.Marshal(saleInfo)
	if err != nil {
		return nil, fmt.Errorf("failed to encode sale info: %w", err)
	}
	return data, nil
}

func (r *CourseRepository) SaveCourse(ctx context.Context, course domain.Course) error {
	saleInfoJSON, err := encodeSaleInfo(course.SaleInfo)
	if err != nil {
		return err
	}

	query := `
        INSERT INTO courses (id, name, slug, description, notes, thumbnail, price, sale_info,
            rating, status, average_rating, number_of_students, level, total_duration,
            category_id, created_by, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);
    `
	_, err = r.db.Exec(ctx, query,
		course.ID,
		course.Name,
		course.Slug,
		course.Description,
		course.Notes,
		course.Thumbnail,
		course.Price,
		saleInfoJSON,
		course.Rating,
		course.Status,
		course.AverageRating,
		course.NumberOfStudents,
		course.Level,
		course.TotalDuration,
		course.CategoryID,
		course.CreatedBy,
		course.CreatedAt,
		course.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save course: %w", err)
	}
	return nil
}

func (r *CourseRepository) FindCourseByID(ctx context.Context, courseID string) (*domain.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE id = $1 AND deleted_at IS NULL;`
	return scanCourse(r.db.QueryRow(ctx, query, courseID))
}

func (r *CourseRepository) FindCourses(ctx context.Context, filter portsrepo.CourseFilter) ([]domain.Course, int, error) {
	where := ` WHERE deleted_at IS NULL`
	args := []any{}
	argPos := 1

	if filter.Name != "" {
		where += fmt.Sprintf(" AND name ILIKE $%d", argPos)
		args = append(args, "%"+filter.Name+"%")
		argPos++
	}
	if filter.CategoryID != "" {
		where += fmt.Sprintf(" AND category_id = $%d", argPos)
		args = append(args, filter.CategoryID)
		argPos++
	}
	if filter.CreatedBy != "" {
		where += fmt.Sprintf(" AND created_by = $%d", argPos)
		args = append(args, filter.CreatedBy)
		argPos++
	}
	if filter.Rating != nil {
		where += fmt.Sprintf(" AND average_rating >= $%d", argPos)
		args = append(args, *filter.Rating)
		argPos++
	}
	if filter.Level != "" {
		where += fmt.Sprintf(" AND level = $%d", argPos)
		args = append(args, filter.Level)
		argPos++
	}
	if filter.MinPrice != nil {
		where += fmt.Sprintf(" AND price >= $%d", argPos)
		args = append(args, *filter.MinPrice)
		argPos++
	}
	if filter.MaxPrice != nil {
		where += fmt.Sprintf(" AND price <= $%d", argPos)
		args = append(args, *filter.MaxPrice)
		argPos++
	}
	if filter.Status != nil {
		where += fmt.Sprintf(" AND status = $%d", argPos)
		args = append(args, *filter.Status)
		argPos++
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM courses` + where + `;`
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count courses: %w", err)
	}

	query := `SELECT ` + courseColumns + ` FROM courses` + where +
		fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d;", argPos, argPos+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query courses: %w", err)
	}
	defer rows.Close()

	courses := []domain.Course{}
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, 0, err
		}
		courses = append(courses, *course)
	}
	if rows.Err() != nil {
		return nil, 0, fmt.Errorf("error iterating course rows: %w", rows.Err())
	}

	return courses, total, nil
}

func (r *CourseRepository) FindHotCourses(ctx context.Context, limit, offset int) ([]domain.Course, int, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM courses WHERE deleted_at IS NULL AND status = TRUE;`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count hot courses: %w", err)
	}

	query := `SELECT ` + courseColumns + `
        FROM courses
        WHERE deleted_at IS NULL AND status = TRUE
        ORDER BY average_rating DESC, number_of_students DESC
        LIMIT $1 OFFSET $2;`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query hot courses: %w", err)
	}
	defer rows.Close()

	courses := []domain.Course{}
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, 0, err
		}
		courses = append(courses, *course)
	}
	if rows.Err() != nil {
		return nil, 0, fmt.Errorf("error iterating course rows: %w", rows.Err())
	}

	return courses, total, nil
}

func (r *CourseRepository) FindCoursesByIDs(ctx context.Context, courseIDs []string) ([]domain.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE id = ANY($1) AND deleted_at IS NULL;`
	rows, err := r.db.Query(ctx, query, courseIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query courses by ids: %w", err)
	}
	defer rows.Close()

	courses := []domain.Course{}
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		courses = append(courses, *course)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating course rows: %w", rows.Err())
	}

	return courses, nil
}

func (r *CourseRepository) UpdateCourse(ctx context.Context, course domain.Course) error {
	saleInfoJSON, err := encodeSaleInfo(course.SaleInfo)
	if err != nil {
		return err
	}

	query := `
        UPDATE courses
        SET name = $1, slug = $2, description = $3, notes = $4, thumbnail = $5, price = $6,
            sale_info = $7, rating = $8, status = $9, average_rating = $10,
            number_of_students = $11, level = $12, total_duration = $13, category_id = $14,
            updated_at = $15
        WHERE id = $16 AND deleted_at IS NULL;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		course.Name,
		course.Slug,
		course.Description,
		course.Notes,
		course.Thumbnail,
		course.Price,
		saleInfoJSON,
		course.Rating,
		course.Status,
		course.AverageRating,
		course.NumberOfStudents,
		course.Level,
		course.TotalDuration,
		course.CategoryID,
		course.UpdatedAt,
		course.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update course: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("course not found or already deleted: %w", pgx.ErrNoRows)
	}
	return nil
}

func (r *CourseRepository) MarkCourseDeleted(ctx context.Context, courseID string, deletedAt time.Time) error {
	query := `
        UPDATE courses
        SET deleted_at = $1, updated_at = $1
        WHERE id = $2 AND deleted_at IS NULL;
    `
	cmdTag, err := r.db.Exec(ctx, query, deletedAt, courseID)
	if err != nil {
		return fmt.Errorf("failed to mark course as deleted: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("course not found or already deleted: %w", pgx.ErrNoRows)
	}
	return nil
}
