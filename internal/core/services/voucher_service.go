package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wishzy/wishzy-backend/internal/apperrors"
	"github.com/wishzy/wishzy-backend/internal/core/domain"
	portsrepo "github.com/wishzy/wishzy-backend/internal/core/ports/repositories"
	portssvc "github.com/wishzy/wishzy-backend/internal/core/ports/services"
	"github.com/wishzy/wishzy-backend/internal/dto"
	"github.com/wishzy/wishzy-backend/internal/middleware"
)

// voucherService handles discount vouchers.
type voucherService struct {
	voucherRepo  portsrepo.VoucherRepositoryFacade
	categoryRepo portsrepo.CategoryRepositoryFacade
	courseRepo   portsrepo.CourseRepositoryFacade
}

// NewVoucherService creates a new voucherService.
func NewVoucherService(voucherRepo portsrepo.VoucherRepositoryFacade, categoryRepo portsrepo.CategoryRepositoryFacade, courseRepo portsrepo.CourseRepositoryFacade) portssvc.VoucherSvcFacade {
	return &voucherService{
		voucherRepo:  voucherRepo,
		categoryRepo: categoryRepo,
		courseRepo:   courseRepo,
	}
}

var _ portssvc.VoucherSvcFacade = (*voucherService)(nil)

// CreateVoucher creates a voucher after validating its rules and scope target.
func (s *voucherService) CreateVoucher(ctx context.Context, creatorID string, req dto.CreateVoucherRequest) (*domain.Voucher, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	code := strings.ToUpper(strings.TrimSpace(req.Code))

	existing, err := s.voucherRepo.FindVoucherByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to check voucher code: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: voucher code already exists", apperrors.ErrDuplicate)
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	now := time.Now()
	voucher := domain.Voucher{
		ID:                uuid.NewString(),
		Code:              code,
		Name:              req.Name,
		DiscountValue:     req.DiscountValue,
		DiscountType:      domain.DiscountType(req.DiscountType),
		MaxDiscountAmount: req.MaxDiscountAmount,
		MinOrderAmount:    req.MinOrderAmount,
		PerUserLimit:      req.PerUserLimit,
		TotalLimit:        req.TotalLimit,
		ApplyScope:        domain.ApplyScope(req.ApplyScope),
		CategoryID:        req.CategoryID,
		CourseID:          req.CourseID,
		IsActive:          isActive,
		StartDate:         req.StartDate,
		EndDate:           req.EndDate,
		CreatedBy:         creatorID,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := voucher.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkScopeTarget(ctx, &voucher); err != nil {
		return nil, err
	}

	if err := s.voucherRepo.SaveVoucher(ctx, voucher); err != nil {
		logger.Error("Failed to save voucher", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create voucher: %w", err)
	}

	logger.Info("Voucher created", slog.String("voucher_id", voucher.ID), slog.String("code", voucher.Code))
	return &voucher, nil
}

// GetVoucherByID retrieves a voucher by ID.
func (s *voucherService) GetVoucherByID(ctx context.Context, voucherID string) (*domain.Voucher, error) {
	voucher, err := s.voucherRepo.FindVoucherByID(ctx, voucherID)
	if err != nil {
		return nil, fmt.Errorf("failed to get voucher: %w", err)
	}
	if voucher == nil {
		return nil, fmt.Errorf("%w: voucher %s", apperrors.ErrNotFound, voucherID)
	}
	return voucher, nil
}

// ListVouchers retrieves a filtered page of vouchers and the total count.
func (s *voucherService) ListVouchers(ctx context.Context, params dto.ListVouchersParams) ([]domain.Voucher, int, error) {
	params.Normalize()
	filter := portsrepo.VoucherFilter{
		Name:         params.Name,
		Code:         params.Code,
		DiscountType: params.DiscountType,
		ApplyScope:   params.ApplyScope,
		CategoryID:   params.CategoryID,
		CourseID:     params.CourseID,
		IsActive:     params.IsActive,
		Limit:        params.Limit,
		Offset:       params.Offset(),
	}
	vouchers, total, err := s.voucherRepo.FindVouchers(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list vouchers: %w", err)
	}
	if vouchers == nil {
		vouchers = []domain.Voucher{}
	}
	return vouchers, total, nil
}

// UpdateVoucher updates an existing voucher. Code and scope are immutable.
func (s *voucherService) UpdateVoucher(ctx context.Context, voucherID string, req dto.UpdateVoucherRequest) (*domain.Voucher, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	voucher, err := s.GetVoucherByID(ctx, voucherID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		voucher.Name = *req.Name
	}
	if req.DiscountValue != nil {
		voucher.DiscountValue = *req.DiscountValue
	}
	if req.DiscountType != nil {
		voucher.DiscountType = domain.DiscountType(*req.DiscountType)
	}
	if req.MaxDiscountAmount != nil {
		voucher.MaxDiscountAmount = req.MaxDiscountAmount
	}
	if req.MinOrderAmount != nil {
		voucher.MinOrderAmount = req.MinOrderAmount
	}
	if req.PerUserLimit != nil {
		voucher.PerUserLimit = req.PerUserLimit
	}
	if req.TotalLimit != nil {
		voucher.TotalLimit = req.TotalLimit
	}
	if req.IsActive != nil {
		voucher.IsActive = *req.IsActive
	}
	if req.StartDate != nil {
		voucher.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		voucher.EndDate = *req.EndDate
	}
	voucher.UpdatedAt = time.Now()

	if err := voucher.Validate(); err != nil {
		return nil, err
	}

	if err := s.voucherRepo.UpdateVoucher(ctx, *voucher); err != nil {
		logger.Error("Failed to update voucher", slog.String("error", err.Error()), slog.String("voucher_id", voucherID))
		return nil, fmt.Errorf("failed to update voucher: %w", err)
	}

	return voucher, nil
}

// DeleteVoucher removes a voucher.
func (s *voucherService) DeleteVoucher(ctx context.Context, voucherID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.GetVoucherByID(ctx, voucherID); err != nil {
		return err
	}

	if err := s.voucherRepo.DeleteVoucher(ctx, voucherID); err != nil {
		logger.Error("Failed to delete voucher", slog.String("error", err.Error()), slog.String("voucher_id", voucherID))
		return fmt.Errorf("failed to delete voucher: %w", err)
	}

	return nil
}

func (s *voucherService) checkScopeTarget(ctx context.Context, voucher *domain.Voucher) error {
	switch voucher.ApplyScope {
	case domain.ScopeCategory:
		category, err := s.categoryRepo.FindCategoryByID(ctx, *voucher.CategoryID)
		if err != nil {
			return fmt.Errorf("failed to validate voucher category: %w", err)
		}
		if category == nil {
			return fmt.Errorf("%w: voucher category not found", apperrors.ErrValidation)
		}
	case domain.ScopeCourse:
		course, err := s.courseRepo.FindCourseByID(ctx, *voucher.CourseID)
		if err != nil {
			return fmt.Errorf("failed to validate voucher course: %w", err)
		}
		if course == nil {
			return fmt.Errorf("%w: voucher course not found", apperrors.ErrValidation)
		}
	}
	return nil
}
