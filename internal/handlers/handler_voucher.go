package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wishzy/wishzy-backend/internal/core/domain"
	portssvc "github.com/wishzy/wishzy-backend/internal/core/ports/services"
	"github.com/wishzy/wishzy-backend/internal/dto"
	"github.com/wishzy/wishzy-backend/internal/middleware"
)

// VoucherHandler handles voucher management requests.
type VoucherHandler struct {
	voucherService portssvc.VoucherSvcFacade
}

// NewVoucherHandler creates a new VoucherHandler.
func NewVoucherHandler(voucherService portssvc.VoucherSvcFacade) *VoucherHandler {
	return &VoucherHandler{voucherService: voucherService}
}

// registerVoucherRoutes sets up the authenticated voucher routes.
func registerVoucherRoutes(rg *gin.RouterGroup, voucherService portssvc.VoucherSvcFacade) {
	h := NewVoucherHandler(voucherService)

	owned := middleware.RequireOwnership("voucher", func(ctx context.Context, id string) (domain.Ownable, error) {
		return voucherService.GetVoucherByID(ctx, id)
	})

	vouchers := rg.Group("/vouchers", middleware.RequireRoles(domain.RoleInstructor, domain.RoleAdmin))
	{
		vouchers.POST("", h.CreateVoucher)
		vouchers.GET("", h.ListVouchers)
		vouchers.GET("/:id", h.GetVoucher)
		vouchers.PUT("/:id", owned, h.UpdateVoucher)
		vouchers.DELETE("/:id", owned, h.DeleteVoucher)
	}
}

// CreateVoucher godoc
// @Summary Create voucher (instructor)
// @Tags vouchers
// @Accept json
// @Produce json
// @Param voucher body dto.CreateVoucherRequest true "Voucher info"
// @Success 201 {object} dto.APIResponse{data=domain.Voucher}
// @Failure 400 {object} dto.APIResponse
// @Failure 409 {object} dto.APIResponse
// @Security BearerAuth
// @Router /vouchers [post]
func (h *VoucherHandler) CreateVoucher(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.APIResponse{Success: false, Message: "Authentication required", URL: c.Request.URL.Path})
		return
	}

	var req dto.CreateVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	voucher, err := h.voucherService.CreateVoucher(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, voucher, "Voucher created")
}

// GetVoucher godoc
// @Summary Get voucher by ID
// @Tags vouchers
// @Produce json
// @Param id path string true "Voucher ID"
// @Success 200 {object} dto.APIResponse{data=domain.Voucher}
// @Failure 404 {object} dto.APIResponse
// @Security BearerAuth
// @Router /vouchers/{id} [get]
func (h *VoucherHandler) GetVoucher(c *gin.Context) {
	voucher, err := h.voucherService.GetVoucherByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, voucher, "")
}

// ListVouchers godoc
// @Summary List vouchers
// @Tags vouchers
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Param name query string false "Filter by name"
// @Param code query string false "Filter by code"
// @Param discountType query string false "Filter by discount type"
// @Param applyScope query string false "Filter by scope"
// @Param isActive query bool false "Filter by active flag"
// @Success 200 {object} dto.APIResponse{data=dto.ListVouchersResponse}
// @Security BearerAuth
// @Router /vouchers [get]
func (h *VoucherHandler) ListVouchers(c *gin.Context) {
	var params dto.ListVouchersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBadRequest(c, err)
		return
	}
	params.Normalize()

	vouchers, total, err := h.voucherService.ListVouchers(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, dto.ListVouchersResponse{
		Items:      vouchers,
		Pagination: dto.NewPagination(total, params.Page, params.Limit),
	}, "")
}

// UpdateVoucher godoc
// @Summary Update voucher (owner)
// @Description Code and scope are immutable; other fields may change.
// @Tags vouchers
// @Accept json
// @Produce json
// @Param id path string true "Voucher ID"
// @Param voucher body dto.UpdateVoucherRequest true "Voucher fields"
// @Success 200 {object} dto.APIResponse{data=domain.Voucher}
// @Failure 403 {object} dto.APIResponse
// @Security BearerAuth
// @Router /vouchers/{id} [put]
func (h *VoucherHandler) UpdateVoucher(c *gin.Context) {
	var req dto.UpdateVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	voucher, err := h.voucherService.UpdateVoucher(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, voucher, "Voucher updated")
}

// DeleteVoucher godoc
// @Summary Delete voucher (owner)
// @Tags vouchers
// @Produce json
// @Param id path string true "Voucher ID"
// @Success 200 {object} dto.APIResponse
// @Failure 403 {object} dto.APIResponse
// @Security BearerAuth
// @Router /vouchers/{id} [delete]
func (h *VoucherHandler) DeleteVoucher(c *gin.Context) {
	if err := h.voucherService.DeleteVoucher(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, nil, "Voucher deleted")
}
