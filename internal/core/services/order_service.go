package services

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/wishzy/wishzy-backend/internal/apperrors"
	"github.com/wishzy/wishzy-backend/internal/core/domain"
	portsrepo "github.com/wishzy/wishzy-backend/internal/core/ports/repositories"
	portssvc "github.com/wishzy/wishzy-backend/internal/core/ports/services"
	"github.com/wishzy/wishzy-backend/internal/dto"
	"github.com/wishzy/wishzy-backend/internal/middleware"
)

// orderService handles course purchases and the payment gateway round trip.
type orderService struct {
	orderRepo      portsrepo.OrderRepositoryFacade
	courseRepo     portsrepo.CourseRepositoryFacade
	voucherRepo    portsrepo.VoucherRepositoryFacade
	enrollmentRepo portsrepo.EnrollmentRepositoryFacade
	gateway        portssvc.PaymentGatewaySvc
}

// NewOrderService creates a new orderService.
func NewOrderService(orderRepo portsrepo.OrderRepositoryFacade, courseRepo portsrepo.CourseRepositoryFacade, voucherRepo portsrepo.VoucherRepositoryFacade, enrollmentRepo portsrepo.EnrollmentRepositoryFacade, gateway portssvc.PaymentGatewaySvc) portssvc.OrderSvcFacade {
	return &orderService{
		orderRepo:      orderRepo,
		courseRepo:     courseRepo,
		voucherRepo:    voucherRepo,
		enrollmentRepo: enrollmentRepo,
		gateway:        gateway,
	}
}

var _ portssvc.OrderSvcFacade = (*orderService)(nil)

// CreateOrder prices the course, applies an optional voucher and returns the
// pending order together with the gateway payment URL.
func (s *orderService) CreateOrder(ctx context.Context, userID, clientIP string, req dto.CreateOrderRequest) (*domain.Order, string, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	course, err := s.courseRepo.FindCourseByID(ctx, req.CourseID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to get course: %w", err)
	}
	if course == nil {
		return nil, "", fmt.Errorf("%w: course %s", apperrors.ErrNotFound, req.CourseID)
	}
	if !course.Status {
		return nil, "", fmt.Errorf("%w: course is not published", apperrors.ErrValidation)
	}

	enrollments, err := s.enrollmentRepo.FindEnrollmentsByUser(ctx, userID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to check existing enrollments: %w", err)
	}
	for _, e := range enrollments {
		if e.CourseID == course.ID {
			return nil, "", fmt.Errorf("%w: already enrolled in this course", apperrors.ErrDuplicate)
		}
	}

	total := effectiveCoursePrice(course, time.Now())

	var voucherID *string
	if req.VoucherCode != nil && *req.VoucherCode != "" {
		voucher, err := s.voucherRepo.FindVoucherByCode(ctx, *req.VoucherCode)
		if err != nil {
			return nil, "", fmt.Errorf("failed to look up voucher: %w", err)
		}
		if voucher == nil {
			return nil, "", fmt.Errorf("%w: voucher code not found", apperrors.ErrNotFound)
		}
		discount, err := voucherDiscount(voucher, course, total, time.Now())
		if err != nil {
			return nil, "", err
		}
		total = total.Sub(discount)
		if total.IsNegative() {
			total = decimal.Zero
		}
		voucherID = &voucher.ID
	}

	paymentMethod := domain.PaymentMethod(req.PaymentMethod)
	if req.PaymentMethod == "" {
		paymentMethod = domain.PaymentVNPay
	}

	now := time.Now()
	order := domain.Order{
		ID:            uuid.NewString(),
		UserID:        userID,
		CourseID:      course.ID,
		VoucherID:     voucherID,
		TotalPrice:    total,
		Status:        domain.OrderPending,
		PaymentMethod: paymentMethod,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.orderRepo.SaveOrder(ctx, order); err != nil {
		logger.Error("Failed to save order", slog.String("error", err.Error()))
		return nil, "", fmt.Errorf("failed to create order: %w", err)
	}

	orderInfo := fmt.Sprintf("Thanh toan khoa hoc %s", course.Name)
	paymentURL, err := s.gateway.BuildPaymentURL(order.ID, order.TotalPrice, orderInfo, clientIP)
	if err != nil {
		logger.Error("Failed to build payment URL", slog.String("error", err.Error()), slog.String("order_id", order.ID))
		return nil, "", fmt.Errorf("failed to build payment URL: %w", err)
	}

	logger.Info("Order created", slog.String("order_id", order.ID), slog.String("course_id", course.ID))
	return &order, paymentURL, nil
}

// HandlePaymentReturn verifies the gateway callback, finalizes the order and
// enrolls the buyer on success.
func (s *orderService) HandlePaymentReturn(ctx context.Context, params url.Values) (*domain.Order, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	orderID, success, err := s.gateway.VerifyReturn(params)
	if err != nil {
		logger.Warn("Payment callback signature verification failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: invalid payment callback", apperrors.ErrUnauthorized)
	}

	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	if order == nil {
		return nil, fmt.Errorf("%w: order %s", apperrors.ErrNotFound, orderID)
	}
	if order.Status != domain.OrderPending {
		// The gateway may redeliver; the first outcome stands.
		logger.Info("Payment callback for already finalized order", slog.String("order_id", orderID), slog.String("status", string(order.Status)))
		return order, nil
	}

	if !success {
		if err := s.orderRepo.UpdateOrderStatus(ctx, orderID, domain.OrderCancelled); err != nil {
			return nil, fmt.Errorf("failed to cancel order: %w", err)
		}
		order.Status = domain.OrderCancelled
		logger.Info("Order cancelled by payment gateway", slog.String("order_id", orderID))
		return order, nil
	}

	if err := s.orderRepo.UpdateOrderStatus(ctx, orderID, domain.OrderCompleted); err != nil {
		return nil, fmt.Errorf("failed to complete order: %w", err)
	}
	order.Status = domain.OrderCompleted

	now := time.Now()
	enrollment := domain.Enrollment{
		ID:        uuid.NewString(),
		UserID:    order.UserID,
		CourseID:  order.CourseID,
		OrderID:   order.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.enrollmentRepo.SaveEnrollment(ctx, enrollment); err != nil {
		// The payment already went through. Log loudly and keep the order completed.
		logger.Error("Failed to create enrollment for completed order", slog.String("error", err.Error()), slog.String("order_id", order.ID))
	}

	logger.Info("Order completed", slog.String("order_id", order.ID), slog.String("user_id", order.UserID))
	return order, nil
}

// GetOrderByID retrieves an order.
func (s *orderService) GetOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	if order == nil {
		return nil, fmt.Errorf("%w: order %s", apperrors.ErrNotFound, orderID)
	}
	return order, nil
}

// ListOrders retrieves a filtered page of orders and the total count.
func (s *orderService) ListOrders(ctx context.Context, params dto.ListOrdersParams) ([]domain.Order, int, error) {
	params.Normalize()
	filter := portsrepo.OrderFilter{
		UserID:   params.UserID,
		CourseID: params.CourseID,
		Status:   params.Status,
		Limit:    params.Limit,
		Offset:   params.Offset(),
	}
	orders, total, err := s.orderRepo.FindOrders(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list orders: %w", err)
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	return orders, total, nil
}

// ListUserOrders retrieves the orders of a single buyer.
func (s *orderService) ListUserOrders(ctx context.Context, userID string, limit, offset int) ([]domain.Order, int, error) {
	filter := portsrepo.OrderFilter{
		UserID: userID,
		Limit:  limit,
		Offset: offset,
	}
	orders, total, err := s.orderRepo.FindOrders(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list user orders: %w", err)
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	return orders, total, nil
}

// effectiveCoursePrice returns the course price after any currently running
// sale.
func effectiveCoursePrice(course *domain.Course, now time.Time) decimal.Decimal {
	price := course.Price
	sale := course.SaleInfo
	if sale == nil {
		return price
	}
	if sale.SaleStartDate != nil && now.Before(*sale.SaleStartDate) {
		return price
	}
	if sale.SaleEndDate != nil && now.After(*sale.SaleEndDate) {
		return price
	}

	switch sale.SaleType {
	case domain.SalePercent:
		price = price.Sub(price.Mul(sale.Value).Div(decimal.NewFromInt(100)))
	case domain.SaleFixed:
		price = price.Sub(sale.Value)
	}
	if price.IsNegative() {
		return decimal.Zero
	}
	return price
}

// voucherDiscount computes the discount a voucher grants on a course at the
// given order amount, or an error when the voucher does not apply.
func voucherDiscount(voucher *domain.Voucher, course *domain.Course, orderAmount decimal.Decimal, now time.Time) (decimal.Decimal, error) {
	if !voucher.IsActive {
		return decimal.Zero, fmt.Errorf("%w: voucher is not active", apperrors.ErrValidation)
	}
	if now.Before(voucher.StartDate) || now.After(voucher.EndDate) {
		return decimal.Zero, fmt.Errorf("%w: voucher is not valid at this time", apperrors.ErrValidation)
	}

	switch voucher.ApplyScope {
	case domain.ScopeCategory:
		if voucher.CategoryID == nil || *voucher.CategoryID != course.CategoryID {
			return decimal.Zero, fmt.Errorf("%w: voucher does not apply to this course's category", apperrors.ErrValidation)
		}
	case domain.ScopeCourse:
		if voucher.CourseID == nil || *voucher.CourseID != course.ID {
			return decimal.Zero, fmt.Errorf("%w: voucher does not apply to this course", apperrors.ErrValidation)
		}
	}

	if voucher.MinOrderAmount != nil && orderAmount.LessThan(*voucher.MinOrderAmount) {
		return decimal.Zero, fmt.Errorf("%w: order amount is below the voucher minimum", apperrors.ErrValidation)
	}

	var discount decimal.Decimal
	switch voucher.DiscountType {
	case domain.DiscountPercent:
		discount = orderAmount.Mul(voucher.DiscountValue).Div(decimal.NewFromInt(100))
	case domain.DiscountFixed:
		discount = voucher.DiscountValue
	}

	if voucher.MaxDiscountAmount != nil && discount.GreaterThan(*voucher.MaxDiscountAmount) {
		discount = *voucher.MaxDiscountAmount
	}
	if discount.GreaterThan(orderAmount) {
		discount = orderAmount
	}
	return discount, nil
}
