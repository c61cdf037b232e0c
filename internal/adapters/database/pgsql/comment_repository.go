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

const commentColumns = `id, content, user_id, course_id, lecture_id, parent_id, likes, dislikes, created_at, updated_at, deleted_at`

type CommentRepository struct {
	db *pgxpool.Pool
}

func NewCommentRepository(db *pgxpool.Pool) *CommentRepository {
	return &CommentRepository{db: db}
}

var _ portsrepo.CommentRepositoryFacade = (*CommentRepository)(nil)

func scanComment(row pgx.Row) (*domain.Comment, error) {
	var comment domain.Comment
	err := row.Scan(
		&comment.ID,
		&comment.Content,
		&comment.UserID,
		&comment.CourseID,
		&comment.LectureID,
		&comment.ParentID,
		&comment.Likes,
		&comment.Dislikes,
		&comment.CreatedAt,
		&comment.UpdatedAt,
		&comment.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan comment row: %w", err)
	}
	return &comment, nil
}

func (r *CommentRepository) SaveComment(ctx context.Context, comment domain.Comment) error {
	query := `
        INSERT INTO comments (id, content, user_id, course_id, lecture_id, parent_id, likes, dislikes, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
    `
	_, err := r.db.Exec(ctx, query,
		comment.ID,
		comment.Content,
		comment.UserID,
		comment.CourseID,
		comment.LectureID,
		comment.ParentID,
		comment.Likes,
		comment.Dislikes,
		comment.CreatedAt,
		comment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save comment: %w", err)
	}
	return nil
}

func (r *CommentRepository) FindCommentByID(ctx context.Context, commentID string) (*domain.Comment, error) {
	query := `SELECT ` + commentColumns + ` FROM comments WHERE id = $1 AND deleted_at IS NULL;`
	return scanComment(r.db.QueryRow(ctx, query, commentID))
}

func (r *CommentRepository) FindComments(ctx context.Context, filter portsrepo.CommentFilter) ([]domain.Comment, int, error) {
	where := ` WHERE deleted_at IS NULL`
	args := []any{}
	argPos := 1

	if filter.CourseID != "" {
		where += fmt.Sprintf(" AND course_id = $%d", argPos)
		args = append(args, filter.CourseID)
		argPos++
	}
	if filter.LectureID != "" {
		where += fmt.Sprintf(" AND lecture_id = $%d", argPos)
		args = append(args, filter.LectureID)
		argPos++
	}
	if filter.ParentID != "" {
		where += fmt.Sprintf(" AND parent_id = $%d", argPos)
		args = append(args, filter.ParentID)
		argPos++
	} else {
		// Top-level listings exclude replies; those load via FindReplies.
		where += " AND parent_id IS NULL"
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM comments` + where + `;`
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count comments: %w", err)
	}

	query := `SELECT ` + commentColumns + ` FROM comments` + where +
		fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d;", argPos, argPos+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query comments: %w", err)
	}
	defer rows.Close()

	comments := []domain.Comment{}
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			return nil, 0, err
		}
		comments = append(comments, *comment)
	}
	if rows.Err() != nil {
		return nil, 0, fmt.Errorf("error iterating comment rows: %w", rows.Err())
	}

	return comments, total, nil
}

func (r *CommentRepository) FindReplies(ctx context.Context, parentID string) ([]domain.Comment, error) {
	query := `SELECT ` + commentColumns + ` FROM comments WHERE parent_id = $1 AND deleted_at IS NULL ORDER BY created_at ASC;`
	rows, err := r.db.Query(ctx, query, parentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query replies: %w", err)
	}
	defer rows.Close()

	replies := []domain.Comment{}
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		replies = append(replies, *comment)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating reply rows: %w", rows.Err())
	}

	return replies, nil
}

func (r *CommentRepository) UpdateComment(ctx context.Context, comment domain.Comment) error {
	query := `
        UPDATE comments
        SET content = $1, updated_at = $2
        WHERE id = $3 AND deleted_at IS NULL;
    `
	cmdTag, err := r.db.Exec(ctx, query, comment.Content, comment.UpdatedAt, comment.ID)
	if err != nil {
		return fmt.Errorf("failed to update comment: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("comment not found or already deleted: %w", pgx.ErrNoRows)
	}
	return nil
}

func (r *CommentRepository) IncrementLikes(ctx context.Context, commentID string) error {
	query := `UPDATE comments SET likes = likes + 1, updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL;`
	cmdTag, err := r.db.Exec(ctx, query, commentID)
	if err != nil {
		return fmt.Errorf("failed to increment likes: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("comment not found or already deleted: %w", pgx.ErrNoRows)
	}
	return nil
}

func (r *CommentRepository) IncrementDislikes(ctx context.Context, commentID string) error {
	query := `UPDATE comments SET dislikes = dislikes + 1, updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL;`
	cmdTag, err := r.db.Exec(ctx, query, commentID)
	if err != nil {
		return fmt.Errorf("failed to increment dislikes: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("comment not found or already deleted: %w", pgx.ErrNoRows)
	}
	return nil
}

func (r *CommentRepository) MarkCommentDeleted(ctx context.Context, commentID string, deletedAt time.Time) error {
	query := `
        UPDATE comments
        SET deleted_at = $1, updated_at = $1
        WHERE id = $2 AND deleted_at IS NULL;
    `
	cmdTag, err := r.db.Exec(ctx, query, deletedAt, commentID)
	if err != nil {
		return fmt.Errorf("failed to mark comment as deleted: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("comment not found or already deleted: %w", pgx.ErrNoRows)
	}
	return nil
}
