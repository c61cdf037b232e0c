package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/wishzy/wishzy-backend/internal/core/ports/repositories"
	"github.com/wishzy/wishzy-backend/internal/core/domain"
)

const userColumns = `id, email, full_name, password_hash, verified,
		verification_token, verification_token_exp, reset_password_token, reset_password_exp,
		role, login_type, avatar, phone, dob, gender, address, age, is_instructor_active,
		created_at, updated_at, deleted_at`

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

var _ portsrepo.UserRepositoryFacade = (*UserRepository)(nil)

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.FullName,
		&user.PasswordHash,
		&user.Verified,
		&user.VerificationToken,
		&user.VerificationTokenExp,
		&user.ResetPasswordToken,
		&user.ResetPasswordExp,
		&user.Role,
		&user.LoginType,
		&user.Avatar,
		&user.Phone,
		&user.DOB,
		&user.Gender,
		&user.Address,
		&user.Age,
		&user.IsInstructorActive,
		&user.CreatedAt,
		&user.UpdatedAt,
		&user.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan user row: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) SaveUser(ctx context.Context, user domain.User) error {
	query := `
        INSERT INTO users (id, email, full_name, password_hash, verified,
            verification_token, verification_token_exp, reset_password_token, reset_password_exp,
            role, login_type, avatar, phone, dob, gender, address, age, is_instructor_active,
            created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20);
    `
	_, err := r.db.Exec(ctx, query,
		user.ID,
		user.Email,
		user.FullName,
		user.PasswordHash,
		user.Verified,
		user.VerificationToken,
		user.VerificationTokenExp,
		user.ResetPasswordToken,
		user.ResetPasswordExp,
		user.Role,
		user.LoginType,
		user.Avatar,
		user.Phone,
		user.DOB,
		user.Gender,
		user.Address,
		user.Age,
		user.IsInstructorActive,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (r *UserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1 AND deleted_at IS NULL;`
	return scanUser(r.db.QueryRow(ctx, query, userID))
}

func (r *UserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 AND deleted_at IS NULL;`
	return scanUser(r.db.QueryRow(ctx, query, email))
}

func (r *UserRepository) FindUserByVerificationToken(ctx context.Context, token string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE verification_token = $1 AND deleted_at IS NULL;`
	return scanUser(r.db.QueryRow(ctx, query, token))
}

func (r *UserRepository) FindUserByResetToken(ctx context.Context, token string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE reset_password_token = $1 AND deleted_at IS NULL;`
	return scanUser(r.db.QueryRow(ctx, query, token))
}

func (r *UserRepository) FindUsers(ctx context.Context, limit int, offset int) ([]domain.User, int, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE deleted_at IS NULL;`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	query := `SELECT ` + userColumns + `
        FROM users
        WHERE deleted_at IS NULL
        ORDER BY created_at DESC
        LIMIT $1 OFFSET $2;`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, 0, err
		}
		users = append(users, *user)
	}
	if rows.Err() != nil {
		return nil, 0, fmt.Errorf("error iterating user rows: %w", rows.Err())
	}

	return users, total, nil
}

func (r *UserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	query := `
        UPDATE users
        SET email = $1, full_name = $2, password_hash = $3, verified = $4,
            verification_token = $5, verification_token_exp = $6,
            reset_password_token = $7, reset_password_exp = $8,
            role = $9, login_type = $10, avatar = $11, phone = $12, dob = $13,
            gender = $14, address = $15, age = $16, is_instructor_active = $17,
            updated_at = $18
        WHERE id = $19 AND deleted_at IS NULL;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		user.Email,
		user.FullName,
		user.PasswordHash,
		user.Verified,
		user.VerificationToken,
		user.VerificationTokenExp,
		user.ResetPasswordToken,
		user.ResetPasswordExp,
		user.Role,
		user.LoginType,
		user.Avatar,
		user.Phone,
		user.DOB,
		user.Gender,
		user.Address,
		user.Age,
		user.IsInstructorActive,
		user.UpdatedAt,
		user.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update user query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user not found or already deleted: %w", pgx.ErrNoRows)
	}
	return nil
}

func (r *UserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time) error {
	query := `
        UPDATE users
        SET deleted_at = $1, updated_at = $1
        WHERE id = $2 AND deleted_at IS NULL;
    `
	cmdTag, err := r.db.Exec(ctx, query, deletedAt, userID)
	if err != nil {
		return fmt.Errorf("failed to mark user as deleted: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user not found or already deleted: %w", pgx.ErrNoRows)
	}
	return nil
}
