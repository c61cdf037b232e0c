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

// WishlistRepository stores one row per user; the saved course ids live in a
// JSONB column.
type WishlistRepository struct {
	db *pgxpool.Pool
}

func NewWishlistRepository(db *pgxpool.Pool) *WishlistRepository {
	return &WishlistRepository{db: db}
}

var _ portsrepo.WishlistRepositoryFacade = (*WishlistRepository)(nil)

func (r *WishlistRepository) FindWishlistByUserID(ctx context.Context, userID string) (*domain.Wishlist, error) {
	query := `
        SELECT id, user_id, courses, created_at, updated_at
        FROM wishlists
        WHERE user_id = $1;
    `
	var wishlist domain.Wishlist
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&wishlist.ID,
		&wishlist.UserID,
		&wishlist.Courses,
		&wishlist.CreatedAt,
		&wishlist.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find wishlist: %w", err)
	}
	return &wishlist, nil
}

func (r *WishlistRepository) SaveWishlist(ctx context.Context, wishlist domain.Wishlist) error {
	query := `
        INSERT INTO wishlists (id, user_id, courses, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5);
    `
	_, err := r.db.Exec(ctx, query,
		wishlist.ID,
		wishlist.UserID,
		wishlist.Courses,
		wishlist.CreatedAt,
		wishlist.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save wishlist: %w", err)
	}
	return nil
}

func (r *WishlistRepository) UpdateWishlist(ctx context.Context, wishlist domain.Wishlist) error {
	query := `
        UPDATE wishlists
        SET courses = $1, updated_at = $2
        WHERE id = $3;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		wishlist.Courses,
		wishlist.UpdatedAt,
		wishlist.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update wishlist: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("wishlist not found: %w", pgx.ErrNoRows)
	}
	return nil
}
