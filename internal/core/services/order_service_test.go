package services_test

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wishzy/wishzy-backend/internal/apperrors"
	"github.com/wishzy/wishzy-backend/internal/core/domain"
	portsrepo "github.com/wishzy/wishzy-backend/internal/core/ports/repositories"
	portssvc "github.com/wishzy/wishzy-backend/internal/core/ports/services"
	"github.com/wishzy/wishzy-backend/internal/core/services"
	"github.com/wishzy/wishzy-backend/internal/dto"
)

// MockOrderRepository is a function-field mock of OrderRepositoryFacade.
type MockOrderRepository struct {
	SaveOrderFn         func(ctx context.Context, order domain.Order) error
	FindOrderByIDFn     func(ctx context.Context, orderID string) (*domain.Order, error)
	FindOrdersFn        func(ctx context.Context, filter portsrepo.OrderFilter) ([]domain.Order, int, error)
	UpdateOrderStatusFn func(ctx context.Context, orderID string, status domain.OrderStatus) error
}

func (m *MockOrderRepository) SaveOrder(ctx context.Context, order domain.Order) error {
	return m.SaveOrderFn(ctx, order)
}

func (m *MockOrderRepository) FindOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	return m.FindOrderByIDFn(ctx, orderID)
}

func (m *MockOrderRepository) FindOrders(ctx context.Context, filter portsrepo.OrderFilter) ([]domain.Order, int, error) {
	return m.FindOrdersFn(ctx, filter)
}

func (m *MockOrderRepository) UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus) error {
	return m.UpdateOrderStatusFn(ctx, orderID, status)
}

// MockCourseRepository is a function-field mock of CourseRepositoryFacade.
type MockCourseRepository struct {
	SaveCourseFn        func(ctx context.Context, course domain.Course) error
	FindCourseByIDFn    func(ctx context.Context, courseID string) (*domain.Course, error)
	FindCoursesFn       func(ctx context.Context, filter portsrepo.CourseFilter) ([]domain.Course, int, error)
	FindHotCoursesFn    func(ctx context.Context, limit, offset int) ([]domain.Course, int, error)
	FindCoursesByIDsFn  func(ctx context.Context, courseIDs []string) ([]domain.Course, error)
	UpdateCourseFn      func(ctx context.Context, course domain.Course) error
	MarkCourseDeletedFn func(ctx context.Context, courseID string, deletedAt time.Time) error
}

func (m *MockCourseRepository) SaveCourse(ctx context.Context, course domain.Course) error {
	return m.SaveCourseFn(ctx, course)
}

func (m *MockCourseRepository) FindCourseByID(ctx context.Context, courseID string) (*domain.Course, error) {
	return m.FindCourseByIDFn(ctx, courseID)
}

func (m *MockCourseRepository) FindCourses(ctx context.Context, filter portsrepo.CourseFilter) ([]domain.Course, int, error) {
	return m.FindCoursesFn(ctx, filter)
}

func (m *MockCourseRepository) FindHotCourses(ctx context.Context, limit, offset int) ([]domain.Course, int, error) {
	return m.FindHotCoursesFn(ctx, limit, offset)
}

func (m *MockCourseRepository) FindCoursesByIDs(ctx context.Context, courseIDs []string) ([]domain.Course, error) {
	return m.FindCoursesByIDsFn(ctx, courseIDs)
}

func (m *MockCourseRepository) UpdateCourse(ctx context.Context, course domain.Course) error {
	return m.UpdateCourseFn(ctx, course)
}

func (m *MockCourseRepository) MarkCourseDeleted(ctx context.Context, courseID string, deletedAt time.Time) error {
	return m.MarkCourseDeletedFn(ctx, courseID, deletedAt)
}

// MockVoucherRepository is a function-field mock of VoucherRepositoryFacade.
type MockVoucherRepository struct {
	SaveVoucherFn       func(ctx context.Context, voucher domain.Voucher) error
	FindVoucherByIDFn   func(ctx context.Context, voucherID string) (*domain.Voucher, error)
	FindVoucherByCodeFn func(ctx context.Context, code string) (*domain.Voucher, error)
	FindVouchersFn      func(ctx context.Context, filter portsrepo.VoucherFilter) ([]domain.Voucher, int, error)
	UpdateVoucherFn     func(ctx context.Context, voucher domain.Voucher) error
	DeleteVoucherFn     func(ctx context.Context, voucherID string) error
}

func (m *MockVoucherRepository) SaveVoucher(ctx context.Context, voucher domain.Voucher) error {
	return m.SaveVoucherFn(ctx, voucher)
}

func (m *MockVoucherRepository) FindVoucherByID(ctx context.Context, voucherID string) (*domain.Voucher, error) {
	return m.FindVoucherByIDFn(ctx, voucherID)
}

func (m *MockVoucherRepository) FindVoucherByCode(ctx context.Context, code string) (*domain.Voucher, error) {
	return m.FindVoucherByCodeFn(ctx, code)
}

func (m *MockVoucherRepository) FindVouchers(ctx context.Context, filter portsrepo.VoucherFilter) ([]domain.Voucher, int, error) {
	return m.FindVouchersFn(ctx, filter)
}

func (m *MockVoucherRepository) UpdateVoucher(ctx context.Context, voucher domain.Voucher) error {
	return m.UpdateVoucherFn(ctx, voucher)
}

func (m *MockVoucherRepository) DeleteVoucher(ctx context.Context, voucherID string) error {
	return m.DeleteVoucherFn(ctx, voucherID)
}

// MockEnrollmentRepository is a function-field mock of EnrollmentRepositoryFacade.
type MockEnrollmentRepository struct {
	SaveEnrollmentFn        func(ctx context.Context, enrollment domain.Enrollment) error
	FindEnrollmentByIDFn    func(ctx context.Context, enrollmentID string) (*domain.Enrollment, error)
	FindEnrollmentsByUserFn func(ctx context.Context, userID string) ([]domain.Enrollment, error)
	UpdateEnrollmentFn      func(ctx context.Context, enrollment domain.Enrollment) error
}

func (m *MockEnrollmentRepository) SaveEnrollment(ctx context.Context, enrollment domain.Enrollment) error {
	return m.SaveEnrollmentFn(ctx, enrollment)
}

func (m *MockEnrollmentRepository) FindEnrollmentByID(ctx context.Context, enrollmentID string) (*domain.Enrollment, error) {
	return m.FindEnrollmentByIDFn(ctx, enrollmentID)
}

func (m *MockEnrollmentRepository) FindEnrollmentsByUser(ctx context.Context, userID string) ([]domain.Enrollment, error) {
	return m.FindEnrollmentsByUserFn(ctx, userID)
}

func (m *MockEnrollmentRepository) UpdateEnrollment(ctx context.Context, enrollment domain.Enrollment) error {
	return m.UpdateEnrollmentFn(ctx, enrollment)
}

// MockPaymentGateway is a function-field mock of PaymentGatewaySvc.
type MockPaymentGateway struct {
	BuildPaymentURLFn func(orderID string, amount decimal.Decimal, orderInfo, clientIP string) (string, error)
	VerifyReturnFn    func(params url.Values) (string, bool, error)
}

func (m *MockPaymentGateway) BuildPaymentURL(orderID string, amount decimal.Decimal, orderInfo, clientIP string) (string, error) {
	return m.BuildPaymentURLFn(orderID, amount, orderInfo, clientIP)
}

func (m *MockPaymentGateway) VerifyReturn(params url.Values) (string, bool, error) {
	return m.VerifyReturnFn(params)
}

type orderTestDeps struct {
	orderRepo      *MockOrderRepository
	courseRepo     *MockCourseRepository
	voucherRepo    *MockVoucherRepository
	enrollmentRepo *MockEnrollmentRepository
	gateway        *MockPaymentGateway
}

func newOrderTestDeps() *orderTestDeps {
	return &orderTestDeps{
		orderRepo: &MockOrderRepository{
			SaveOrderFn: func(_ context.Context, _ domain.Order) error { return nil },
		},
		courseRepo: &MockCourseRepository{},
		voucherRepo: &MockVoucherRepository{
			FindVoucherByCodeFn: func(_ context.Context, _ string) (*domain.Voucher, error) { return nil, nil },
		},
		enrollmentRepo: &MockEnrollmentRepository{
			FindEnrollmentsByUserFn: func(_ context.Context, _ string) ([]domain.Enrollment, error) { return nil, nil },
			SaveEnrollmentFn:        func(_ context.Context, _ domain.Enrollment) error { return nil },
		},
		gateway: &MockPaymentGateway{
			BuildPaymentURLFn: func(orderID string, _ decimal.Decimal, _, _ string) (string, error) {
				return "https://pay.example.com/" + orderID, nil
			},
		},
	}
}

func (d *orderTestDeps) service() portssvc.OrderSvcFacade {
	return services.NewOrderService(d.orderRepo, d.courseRepo, d.voucherRepo, d.enrollmentRepo, d.gateway)
}

func publishedCourse() *domain.Course {
	return &domain.Course{
		ID:         "c0a80001-0000-4000-8000-000000000001",
		Name:       "Go from scratch",
		Price:      decimal.NewFromInt(200000),
		Status:     true,
		CategoryID: "cat-1",
		CreatedBy:  "instructor-1",
	}
}

func TestCreateOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("course not found", func(t *testing.T) {
		deps := newOrderTestDeps()
		deps.courseRepo.FindCourseByIDFn = func(_ context.Context, _ string) (*domain.Course, error) { return nil, nil }

		_, _, err := deps.service().CreateOrder(ctx, "user-1", "10.0.0.1", dto.CreateOrderRequest{CourseID: "missing"})
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("unpublished course", func(t *testing.T) {
		deps := newOrderTestDeps()
		course := publishedCourse()
		course.Status = false
		deps.courseRepo.FindCourseByIDFn = func(_ context.Context, _ string) (*domain.Course, error) { return course, nil }

		_, _, err := deps.service().CreateOrder(ctx, "user-1", "10.0.0.1", dto.CreateOrderRequest{CourseID: course.ID})
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("already enrolled", func(t *testing.T) {
		deps := newOrderTestDeps()
		course := publishedCourse()
		deps.courseRepo.FindCourseByIDFn = func(_ context.Context, _ string) (*domain.Course, error) { return course, nil }
		deps.enrollmentRepo.FindEnrollmentsByUserFn = func(_ context.Context, _ string) ([]domain.Enrollment, error) {
			return []domain.Enrollment{{CourseID: course.ID}}, nil
		}

		_, _, err := deps.service().CreateOrder(ctx, "user-1", "10.0.0.1", dto.CreateOrderRequest{CourseID: course.ID})
		assert.ErrorIs(t, err, apperrors.ErrDuplicate)
	})

	t.Run("success without voucher", func(t *testing.T) {
		deps := newOrderTestDeps()
		course := publishedCourse()
		deps.courseRepo.FindCourseByIDFn = func(_ context.Context, _ string) (*domain.Course, error) { return course, nil }
		var saved domain.Order
		deps.orderRepo.SaveOrderFn = func(_ context.Context, order domain.Order) error {
			saved = order
			return nil
		}

		order, paymentURL, err := deps.service().CreateOrder(ctx, "user-1", "10.0.0.1", dto.CreateOrderRequest{CourseID: course.ID})
		require.NoError(t, err)
		assert.Equal(t, domain.OrderPending, order.Status)
		assert.Equal(t, domain.PaymentVNPay, order.PaymentMethod)
		assert.True(t, order.TotalPrice.Equal(course.Price))
		assert.Nil(t, order.VoucherID)
		assert.Equal(t, "https://pay.example.com/"+order.ID, paymentURL)
		assert.Equal(t, order.ID, saved.ID)
	})

	t.Run("success with voucher", func(t *testing.T) {
		deps := newOrderTestDeps()
		course := publishedCourse()
		deps.courseRepo.FindCourseByIDFn = func(_ context.Context, _ string) (*domain.Course, error) { return course, nil }
		code := "SUMMER10"
		deps.voucherRepo.FindVoucherByCodeFn = func(_ context.Context, got string) (*domain.Voucher, error) {
			assert.Equal(t, code, got)
			return &domain.Voucher{
				ID:            "voucher-1",
				DiscountValue: decimal.NewFromInt(10),
				DiscountType:  domain.DiscountPercent,
				ApplyScope:    domain.ScopeAll,
				IsActive:      true,
				StartDate:     time.Now().Add(-time.Hour),
				EndDate:       time.Now().Add(time.Hour),
			}, nil
		}

		order, _, err := deps.service().CreateOrder(ctx, "user-1", "10.0.0.1", dto.CreateOrderRequest{CourseID: course.ID, VoucherCode: &code})
		require.NoError(t, err)
		require.NotNil(t, order.VoucherID)
		assert.Equal(t, "voucher-1", *order.VoucherID)
		assert.True(t, order.TotalPrice.Equal(decimal.NewFromInt(180000)))
	})

	t.Run("unknown voucher code", func(t *testing.T) {
		deps := newOrderTestDeps()
		course := publishedCourse()
		deps.courseRepo.FindCourseByIDFn = func(_ context.Context, _ string) (*domain.Course, error) { return course, nil }
		code := "NOPE"

		_, _, err := deps.service().CreateOrder(ctx, "user-1", "10.0.0.1", dto.CreateOrderRequest{CourseID: course.ID, VoucherCode: &code})
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestHandlePaymentReturn(t *testing.T) {
	ctx := context.Background()
	pendingOrder := func() *domain.Order {
		return &domain.Order{
			ID:       "order-1",
			UserID:   "user-1",
			CourseID: "course-1",
			Status:   domain.OrderPending,
		}
	}

	t.Run("invalid signature", func(t *testing.T) {
		deps := newOrderTestDeps()
		deps.gateway.VerifyReturnFn = func(_ url.Values) (string, bool, error) {
			return "", false, errors.New("signature mismatch")
		}

		_, err := deps.service().HandlePaymentReturn(ctx, url.Values{})
		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})

	t.Run("successful payment completes and enrolls", func(t *testing.T) {
		deps := newOrderTestDeps()
		deps.gateway.VerifyReturnFn = func(_ url.Values) (string, bool, error) { return "order-1", true, nil }
		deps.orderRepo.FindOrderByIDFn = func(_ context.Context, _ string) (*domain.Order, error) { return pendingOrder(), nil }
		var updatedStatus domain.OrderStatus
		deps.orderRepo.UpdateOrderStatusFn = func(_ context.Context, _ string, status domain.OrderStatus) error {
			updatedStatus = status
			return nil
		}
		var enrolled domain.Enrollment
		deps.enrollmentRepo.SaveEnrollmentFn = func(_ context.Context, enrollment domain.Enrollment) error {
			enrolled = enrollment
			return nil
		}

		order, err := deps.service().HandlePaymentReturn(ctx, url.Values{})
		require.NoError(t, err)
		assert.Equal(t, domain.OrderCompleted, order.Status)
		assert.Equal(t, domain.OrderCompleted, updatedStatus)
		assert.Equal(t, "user-1", enrolled.UserID)
		assert.Equal(t, "course-1", enrolled.CourseID)
		assert.Equal(t, "order-1", enrolled.OrderID)
	})

	t.Run("failed payment cancels the order", func(t *testing.T) {
		deps := newOrderTestDeps()
		deps.gateway.VerifyReturnFn = func(_ url.Values) (string, bool, error) { return "order-1", false, nil }
		deps.orderRepo.FindOrderByIDFn = func(_ context.Context, _ string) (*domain.Order, error) { return pendingOrder(), nil }
		var updatedStatus domain.OrderStatus
		deps.orderRepo.UpdateOrderStatusFn = func(_ context.Context, _ string, status domain.OrderStatus) error {
			updatedStatus = status
			return nil
		}

		order, err := deps.service().HandlePaymentReturn(ctx, url.Values{})
		require.NoError(t, err)
		assert.Equal(t, domain.OrderCancelled, order.Status)
		assert.Equal(t, domain.OrderCancelled, updatedStatus)
	})

	t.Run("redelivery of a finalized order is a no-op", func(t *testing.T) {
		deps := newOrderTestDeps()
		deps.gateway.VerifyReturnFn = func(_ url.Values) (string, bool, error) { return "order-1", true, nil }
		completed := pendingOrder()
		completed.Status = domain.OrderCompleted
		deps.orderRepo.FindOrderByIDFn = func(_ context.Context, _ string) (*domain.Order, error) { return completed, nil }
		updates := 0
		deps.orderRepo.UpdateOrderStatusFn = func(_ context.Context, _ string, _ domain.OrderStatus) error {
			updates++
			return nil
		}

		order, err := deps.service().HandlePaymentReturn(ctx, url.Values{})
		require.NoError(t, err)
		assert.Equal(t, domain.OrderCompleted, order.Status)
		assert.Zero(t, updates)
	})

	t.Run("enrollment failure does not fail the order", func(t *testing.T) {
		deps := newOrderTestDeps()
		deps.gateway.VerifyReturnFn = func(_ url.Values) (string, bool, error) { return "order-1", true, nil }
		deps.orderRepo.FindOrderByIDFn = func(_ context.Context, _ string) (*domain.Order, error) { return pendingOrder(), nil }
		deps.orderRepo.UpdateOrderStatusFn = func(_ context.Context, _ string, _ domain.OrderStatus) error { return nil }
		deps.enrollmentRepo.SaveEnrollmentFn = func(_ context.Context, _ domain.Enrollment) error {
			return errors.New("duplicate key")
		}

		order, err := deps.service().HandlePaymentReturn(ctx, url.Values{})
		require.NoError(t, err)
		assert.Equal(t, domain.OrderCompleted, order.Status)
	})
}
