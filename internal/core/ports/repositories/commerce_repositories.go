package repositories

import (
	"context"

	"github.com/wishzy/wishzy-backend/internal/core/domain"
)

// VoucherFilter narrows voucher listings.
type VoucherFilter struct {
	Name         string
	Code         string
	DiscountType string
	ApplyScope   string
	CategoryID   string
	CourseID     string
	IsActive     *bool
	Limit        int
	Offset       int
}

// VoucherRepositoryFacade combines all voucher repository operations.
type VoucherRepositoryFacade interface {
	SaveVoucher(ctx context.Context, voucher domain.Voucher) error
	FindVoucherByID(ctx context.Context, voucherID string) (*domain.Voucher, error)
	FindVoucherByCode(ctx context.Context, code string) (*domain.Voucher, error)
	FindVouchers(ctx context.Context, filter VoucherFilter) ([]domain.Voucher, int, error)
	UpdateVoucher(ctx context.Context, voucher domain.Voucher) error
	DeleteVoucher(ctx context.Context, voucherID string) error
}

// OrderFilter narrows order listings.
type OrderFilter struct {
	UserID   string
	CourseID string
	Status   string
	Limit    int
	Offset   int
}

// OrderRepositoryFacade combines all order repository operations.
type OrderRepositoryFacade interface {
	SaveOrder(ctx context.Context, order domain.Order) error
	FindOrderByID(ctx context.Context, orderID string) (*domain.Order, error)
	FindOrders(ctx context.Context, filter OrderFilter) ([]domain.Order, int, error)
	UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus) error
}

// WishlistRepositoryFacade combines all wishlist repository operations.
type WishlistRepositoryFacade interface {
	// FindWishlistByUserID retrieves the single wishlist row of a user.
	FindWishlistByUserID(ctx context.Context, userID string) (*domain.Wishlist, error)

	// SaveWishlist persists a new wishlist row.
	SaveWishlist(ctx context.Context, wishlist domain.Wishlist) error

	// UpdateWishlist replaces the stored course list of a wishlist row.
	UpdateWishlist(ctx context.Context, wishlist domain.Wishlist) error
}

// EnrollmentRepositoryFacade combines all enrollment repository operations.
type EnrollmentRepositoryFacade interface {
	SaveEnrollment(ctx context.Context, enrollment domain.Enrollment) error
	FindEnrollmentByID(ctx context.Context, enrollmentID string) (*domain.Enrollment, error)
	FindEnrollmentsByUser(ctx context.Context, userID string) ([]domain.Enrollment, error)
	UpdateEnrollment(ctx context.Context, enrollment domain.Enrollment) error
}
