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

const voucherColumns = `id, code, name, discount_value, discount_type, max_discount_amount, min_order_amount,
		per_user_limit, total_limit, apply_scope, category_id, course_id, is_active,
		start_date, end_date, created_by, created_at, updated_at`

type VoucherRepository struct {
	db *pgxpool.Pool
}

func NewVoucherRepository(db *pgxpool.Pool) *VoucherRepository {
	return &VoucherRepository{db: db}
}

var _ portsrepo.VoucherRepositoryFacade = (*VoucherRepository)(nil)

func scanVoucher(row pgx.Row) (*domain.Voucher, error) {
	var voucher domain.Voucher
	err := row.Scan(
		&voucher.ID,
		&voucher.Code,
		&voucher.Name,
		&voucher.DiscountValue,
		&voucher.DiscountType,
		&voucher.MaxDiscountAmount,
		&voucher.MinOrderAmount,
		&voucher.PerUserLimit,
		&voucher.TotalLimit,
		&voucher.ApplyScope,
		&voucher.CategoryID,
		&voucher.CourseID,
		&voucher.IsActive,
		&voucher.StartDate,
		&voucher.EndDate,
		&voucher.CreatedBy,
		&voucher.CreatedAt,
		&voucher.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan voucher row: %w", err)
	}
	return &voucher, nil
}

func (r *VoucherRepository) SaveVoucher(ctx context.Context, voucher domain.Voucher) error {
	query := `
        INSERT INTO vouchers (id, code, name, discount_value, discount_type, max_discount_amount, min_order_amount,
            per_user_limit, total_limit, apply_scope, category_id, course_id, is_active,
            start_date, end_date, created_by, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);
    `
	_, err := r.db.Exec(ctx, query,
		voucher.ID,
		voucher.Code,
		voucher.Name,
		voucher.DiscountValue,
		voucher.DiscountType,
		voucher.MaxDiscountAmount,
		voucher.MinOrderAmount,
		voucher.PerUserLimit,
		voucher.TotalLimit,
		voucher.ApplyScope,
		voucher.CategoryID,
		voucher.CourseID,
		voucher.IsActive,
		voucher.StartDate,
		voucher.EndDate,
		voucher.CreatedBy,
		voucher.CreatedAt,
		voucher.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save voucher: %w", err)
	}
	return nil
}

func (r *VoucherRepository) FindVoucherByID(ctx context.Context, voucherID string) (*domain.Voucher, error) {
	query := `SELECT ` + voucherColumns + ` FROM vouchers WHERE id = $1;`
	return scanVoucher(r.db.QueryRow(ctx, query, voucherID))
}

func (r *VoucherRepository) FindVoucherByCode(ctx context.Context, code string) (*domain.Voucher, error) {
	query := `SELECT ` + voucherColumns + ` FROM vouchers WHERE code = $1;`
	return scanVoucher(r.db.QueryRow(ctx, query, code))
}

func (r *VoucherRepository) FindVouchers(ctx context.Context, filter portsrepo.VoucherFilter) ([]domain.Voucher, int, error) {
	where := ` WHERE TRUE`
	args := []any{}
	argPos := 1

	if filter.Name != "" {
		where += fmt.Sprintf(" AND name ILIKE $%d", argPos)
		args = append(args, "%"+filter.Name+"%")
		argPos++
	}
	if filter.Code != "" {
		where += fmt.Sprintf(" AND code = $%d", argPos)
		args = append(args, filter.Code)
		argPos++
	}
	if filter.DiscountType != "" {
		where += fmt.Sprintf(" AND discount_type = $%d", argPos)
		args = append(args, filter.DiscountType)
		argPos++
	}
	if filter.ApplyScope != "" {
		where += fmt.Sprintf(" AND apply_scope = $%d", argPos)
		args = append(args, filter.ApplyScope)
		argPos++
	}
	if filter.CategoryID != "" {
		where += fmt.Sprintf(" AND category_id = $%d", argPos)
		args = append(args, filter.CategoryID)
		argPos++
	}
	if filter.CourseID != "" {
		where += fmt.Sprintf(" AND course_id = $%d", argPos)
		args = append(args, filter.CourseID)
		argPos++
	}
	if filter.IsActive != nil {
		where += fmt.Sprintf(" AND is_active = $%d", argPos)
		args = append(args, *filter.IsActive)
		argPos++
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM vouchers` + where + `;`
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count vouchers: %w", err)
	}

	query := `SELECT ` + voucherColumns + ` FROM vouchers` + where +
		fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d;", argPos, argPos+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query vouchers: %w", err)
	}
	defer rows.Close()

	vouchers := []domain.Voucher{}
	for rows.Next() {
		voucher, err := scanVoucher(rows)
		if err != nil {
			return nil, 0, err
		}
		vouchers = append(vouchers, *voucher)
	}
	if rows.Err() != nil {
		return nil, 0, fmt.Errorf("error iterating voucher rows: %w", rows.Err())
	}

	return vouchers, total, nil
}

func (r *VoucherRepository) UpdateVoucher(ctx context.Context, voucher domain.Voucher) error {
	query := `
        UPDATE vouchers
        SET name = $1, discount_value = $2, discount_type = $3, max_discount_amount = $4,
            min_order_amount = $5, per_user_limit = $6, total_limit = $7, is_active = $8,
            start_date = $9, end_date = $10, updated_at = $11
        WHERE id = $12;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		voucher.Name,
		voucher.DiscountValue,
		voucher.DiscountType,
		voucher.MaxDiscountAmount,
		voucher.MinOrderAmount,
		voucher.PerUserLimit,
		voucher.TotalLimit,
		voucher.IsActive,
		voucher.StartDate,
		voucher.EndDate,
		voucher.UpdatedAt,
		voucher.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update voucher: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("voucher not found: %w", pgx.ErrNoRows)
	}
	return nil
}

func (r *VoucherRepository) DeleteVoucher(ctx context.Context, voucherID string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM vouchers WHERE id = $1;`, voucherID)
	if err != nil {
		return fmt.Errorf("failed to delete voucher: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("voucher not found: %w", pgx.ErrNoRows)
	}
	return nil
}
