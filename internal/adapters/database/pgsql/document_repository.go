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

const documentColumns = `id, name, description, notes, file_url, entity_id, entity_type, created_by, created_at, updated_at, deleted_at`

type DocumentRepository struct {
	db *pgxpool.Pool
}

func NewDocumentRepository(db *pgxpool.Pool) *DocumentRepository {
	return &DocumentRepository{db: db}
}

var _ portsrepo.DocumentRepositoryFacade = (*DocumentRepository)(nil)

func scanDocument(row pgx.Row) (*domain.Document, error) {
	var document domain.Document
	err := row.Scan(
		&document.ID,
		&document.Name,
		&document.Description,
		&document.Notes,
		&document.FileURL,
		&document.EntityID,
		&document.EntityType,
		&document.CreatedBy,
		&document.CreatedAt,
		&document.UpdatedAt,
		&document.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan document row: %w", err)
	}
	return &document, nil
}

func (r *DocumentRepository) SaveDocument(ctx context.Context, document domain.Document) error {
	query := `
        INSERT INTO documents (id, name, description, notes, file_url, entity_id, entity_type, created_by, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
    `
	_, err := r.db.Exec(ctx, query,
		document.ID,
		document.Name,
		document.Description,
		document.Notes,
		document.FileURL,
		document.EntityID,
		document.EntityType,
		document.CreatedBy,
		document.CreatedAt,
		document.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}
	return nil
}

func (r *DocumentRepository) FindDocumentByID(ctx context.Context, documentID string) (*domain.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE id = $1 AND deleted_at IS NULL;`
	return scanDocument(r.db.QueryRow(ctx, query, documentID))
}

func (r *DocumentRepository) FindDocuments(ctx context.Context, filter portsrepo.DocumentFilter) ([]domain.Document, int, error) {
	where := ` WHERE deleted_at IS NULL`
	args := []any{}
	argPos := 1

	if filter.EntityID != "" {
		where += fmt.Sprintf(" AND entity_id = $%d", argPos)
		args = append(args, filter.EntityID)
		argPos++
	}
	if filter.EntityType != "" {
		where += fmt.Sprintf(" AND entity_type = $%d", argPos)
		args = append(args, filter.EntityType)
		argPos++
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM documents` + where + `;`
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count documents: %w", err)
	}

	query := `SELECT ` + documentColumns + ` FROM documents` + where +
		fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d;", argPos, argPos+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query documents: %w", err)
	}
	defer rows.Close()

	documents := []domain.Document{}
	for rows.Next() {
		document, err := scanDocument(rows)
		if err != nil {
			return nil, 0, err
		}
		documents = append(documents, *document)
	}
	if rows.Err() != nil {
		return nil, 0, fmt.Errorf("error iterating document rows: %w", rows.Err())
	}

	return documents, total, nil
}

func (r *DocumentRepository) UpdateDocument(ctx context.Context, document domain.Document) error {
	query := `
        UPDATE documents
        SET name = $1, description = $2, notes = $3, file_url = $4, updated_at = $5
        WHERE id = $6 AND deleted_at IS NULL;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		document.Name,
		document.Description,
		document.Notes,
		document.FileURL,
		document.UpdatedAt,
		document.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update document: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("document not found or already deleted: %w", pgx.ErrNoRows)
	}
	return nil
}

func (r *DocumentRepository) MarkDocumentDeleted(ctx context.Context, documentID string, deletedAt time.Time) error {
	query := `
        UPDATE documents
        SET deleted_at = $1, updated_at = $1
        WHERE id = $2 AND deleted_at IS NULL;
    `
	cmdTag, err := r.db.Exec(ctx, query, deletedAt, documentID)
	if err != nil {
		return fmt.Errorf("failed to mark document as deleted: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("document not found or already deleted: %w", pgx.ErrNoRows)
	}
	return nil
}
