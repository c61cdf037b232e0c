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

const orderColumns = `id, user_id, course_id, voucher_id, total_price, status, payment_method, created_at, updated_at`

type OrderRepository struct {
	db *pgxpool.Pool
}

func NewOrderRepository(db *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{db: db}
}

var _ portsrepo.OrderRepositoryFacade = (*OrderRepository)(nil)

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var order domain.Order
	err := row.Scan(
		&order.ID,
		&order.UserID,
		&order.CourseID,
		&order.VoucherID,
		&order.TotalPrice,
		&order.Status,
		&order.PaymentMethod,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan order row: %w", err)
	}
	return &order, nil
}

func (r *OrderRepository) SaveOrder(ctx context.Context, order domain.Order) error {
	query := `
        INSERT INTO orders (id, user_id, course_id, voucher_id, total_price, status, payment_method, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
    `
	_, err := r.db.Exec(ctx, query,
		order.ID,
		order.UserID,
		order.CourseID,
		order.VoucherID,
		order.TotalPrice,
		order.Status,
		order.PaymentMethod,
		order.CreatedAt,
		order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}
	return nil
}

func (r *OrderRepository) FindOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1;`
	return scanOrder(r.db.QueryRow(ctx, query, orderID))
}

func (r *OrderRepository) FindOrders(ctx context.Context, filter portsrepo.OrderFilter) ([]domain.Order, int, error) {
	where := ` WHERE TRUE`
	args := []any{}
	argPos := 1

	if filter.UserID != "" {
		where += fmt.Sprintf(" AND user_id = $%d", argPos)
		args = append(args, filter.UserID)
		argPos++
	}
	if filter.CourseID != "" {
		where += fmt.Sprintf(" AND course_id = $%d", argPos)
		args = append(args, filter.CourseID)
		argPos++
	}
	if filter.Status != "" {
		where += fmt.Sprintf(" AND status = $%d", argPos)
		args = append(args, filter.Status)
		argPos++
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM orders` + where + `;`
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	query := `SELECT ` + orderColumns + ` FROM orders` + where +
		fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d;", argPos, argPos+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, 0, err
		}
		orders = append(orders, *order)
	}
	if rows.Err() != nil {
		return nil, 0, fmt.Errorf("error iterating order rows: %w", rows.Err())
	}

	return orders, total, nil
}

func (r *OrderRepository) UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus) error {
	query := `
        UPDATE orders
        SET status = $1, updated_at = NOW()
        WHERE id = $2;
    `
	cmdTag, err := r.db.Exec(ctx, query, status, orderID)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("order not found: %w", pgx.ErrNoRows)
	}
	return nil
}
