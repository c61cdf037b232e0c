package services

import (
	"context"
	"net/url"

	"github.com/shopspring/decimal"
	"github.com/wishzy/wishzy-backend/internal/core/domain"
	"github.com/wishzy/wishzy-backend/internal/dto"
)

// VoucherSvcFacade defines voucher management operations.
type VoucherSvcFacade interface {
	CreateVoucher(ctx context.Context, creatorID string, req dto.CreateVoucherRequest) (*domain.Voucher, error)
	GetVoucherByID(ctx context.Context, voucherID string) (*domain.Voucher, error)
	ListVouchers(ctx context.Context, params dto.ListVouchersParams) ([]domain.Voucher, int, error)
	UpdateVoucher(ctx context.Context, voucherID string, req dto.UpdateVoucherRequest) (*domain.Voucher, error)
	DeleteVoucher(ctx context.Context, voucherID string) error
}

// OrderSvcFacade defines order and payment operations.
type OrderSvcFacade interface {
	// CreateOrder prices the requested course, applies an optional voucher and
	// returns the pending order together with a VNPay payment URL.
	CreateOrder(ctx context.Context, userID, clientIP string, req dto.CreateOrderRequest) (*domain.Order, string, error)

	// HandlePaymentReturn verifies the VNPay callback, completes or cancels the
	// order and enrolls the buyer into the purchased course on success.
	HandlePaymentReturn(ctx context.Context, params url.Values) (*domain.Order, error)

	// GetOrderByID retrieves an order.
	GetOrderByID(ctx context.Context, orderID string) (*domain.Order, error)

	// ListOrders retrieves a filtered page of orders and the total count.
	ListOrders(ctx context.Context, params dto.ListOrdersParams) ([]domain.Order, int, error)

	// ListUserOrders retrieves the orders of a single buyer.
	ListUserOrders(ctx context.Context, userID string, limit, offset int) ([]domain.Order, int, error)
}

// PaymentGatewaySvc builds and verifies payment provider exchanges.
type PaymentGatewaySvc interface {
	// BuildPaymentURL creates a signed redirect URL for the given order.
	BuildPaymentURL(orderID string, amount decimal.Decimal, orderInfo, clientIP string) (string, error)

	// VerifyReturn checks the signature of the provider callback and reports
	// the referenced order ID and whether the payment succeeded.
	VerifyReturn(params url.Values) (orderID string, success bool, err error)
}

// EnrollmentSvcFacade defines enrollment operations.
type EnrollmentSvcFacade interface {
	// EnrollUser enrolls a user into a course, once.
	EnrollUser(ctx context.Context, userID, courseID string) (*domain.Enrollment, error)

	// GetEnrollmentByID retrieves a single enrollment.
	GetEnrollmentByID(ctx context.Context, enrollmentID string) (*domain.Enrollment, error)

	// ListUserEnrollments retrieves all enrollments of a user.
	ListUserEnrollments(ctx context.Context, userID string) ([]domain.Enrollment, error)

	// UpdateProgress records completion progress for an enrollment.
	UpdateProgress(ctx context.Context, enrollmentID string, progress int) (*domain.Enrollment, error)
}
