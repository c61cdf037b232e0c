package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/wishzy/wishzy-backend/internal/core/domain"
	portsrepo "github.com/wishzy/wishzy-backend/internal/core/ports/repositories"
)

const enrollmentColumns = `id, user_id, course_id, order_id, progress, created_at, updated_at`

type EnrollmentRepository struct {
	db *pgxpool.Pool
}

func NewEnrollmentRepository(db *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

var _ portsrepo.EnrollmentRepositoryFacade = (*EnrollmentRepository)(nil)

func scanEnrollment(row pgx.Row) (*domain.Enrollment, error) {
	var enrollment domain.Enrollment
	var orderID *string
	err := row.Scan(
		&enrollment.ID,
		&enrollment.UserID,
		&enrollment.CourseID,
		&orderID,
		&enrollment.Progress,
		&enrollment.CreatedAt,
		&enrollment.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan enrollment row: %w", err)
	}
	if orderID != nil {
		enrollment.OrderID = *orderID
	}
	return &enrollment, nil
}

func (r *EnrollmentRepository) SaveEnrollment(ctx context.Context, enrollment domain.Enrollment) error {
	// Free enrollments carry no order id; store NULL instead of "".
	var orderID *string
	if enrollment.OrderID != "" {
		orderID = &enrollment.OrderID
	}

	query := `
        INSERT INTO enrollments (id, user_id, course_id, order_id, progress, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7);
    `
	_, err := r.db.Exec(ctx, query,
		enrollment.ID,
		enrollment.UserID,
		enrollment.CourseID,
		orderID,
		enrollment.Progress,
		enrollment.CreatedAt,
		enrollment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save enrollment: %w", err)
	}
	return nil
}

func (r *EnrollmentRepository) FindEnrollmentByID(ctx context.Context, enrollmentID string) (*domain.Enrollment, error) {
	query := `SELECT ` + enrollmentColumns + ` FROM enrollments WHERE id = $1;`
	return scanEnrollment(r.db.QueryRow(ctx, query, enrollmentID))
}

func (r *EnrollmentRepository) FindEnrollmentsByUser(ctx context.Context, userID string) ([]domain.Enrollment, error) {
	query := `SELECT ` + enrollmentColumns + ` FROM enrollments WHERE user_id = $1 ORDER BY created_at DESC;`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query enrollments: %w", err)
	}
	defer rows.Close()

	enrollments := []domain.Enrollment{}
	for rows.Next() {
		enrollment, err := scanEnrollment(rows)
		if err != nil {
			return nil, err
		}
		enrollments = append(enrollments, *enrollment)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating enrollment rows: %w", rows.Err())
	}

	return enrollments, nil
}

func (r *EnrollmentRepository) UpdateEnrollment(ctx context.Context, enrollment domain.Enrollment) error {
	query := `
        UPDATE enrollments
        SET progress = $1, updated_at = $2
        WHERE id = $3;
    `
	cmdTag, err := r.db.Exec(ctx, query, enrollment.Progress, enrollment.UpdatedAt, enrollment.ID)
	if err != nil {
		return fmt.Errorf("failed to update enrollment: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("enrollment not found: %w", pgx.ErrNoRows)
	}
	return nil
}
