package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wishzy/wishzy-backend/internal/core/domain"
	portssvc "github.com/wishzy/wishzy-backend/internal/core/ports/services"
	"github.com/wishzy/wishzy-backend/internal/dto"
	"github.com/wishzy/wishzy-backend/internal/middleware"
	"github.com/wishzy/wishzy-backend/internal/platform/config"
)

// OrderHandler handles order and payment requests.
type OrderHandler struct {
	orderService portssvc.OrderSvcFacade
	cfg          *config.Config
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(orderService portssvc.OrderSvcFacade, cfg *config.Config) *OrderHandler {
	return &OrderHandler{orderService: orderService, cfg: cfg}
}

// registerPaymentReturnRoute exposes the gateway callback. VNPay redirects
// the buyer's browser here, so it cannot sit behind authentication.
func registerPaymentReturnRoute(rg *gin.Engine, cfg *config.Config, orderService portssvc.OrderSvcFacade) {
	h := NewOrderHandler(orderService, cfg)
	rg.GET("/api/v1/orders/payment/return", h.PaymentReturn)
}

// registerOrderRoutes sets up the authenticated order routes.
func registerOrderRoutes(rg *gin.RouterGroup, cfg *config.Config, orderService portssvc.OrderSvcFacade) {
	h := NewOrderHandler(orderService, cfg)

	orders := rg.Group("/orders")
	{
		orders.POST("", h.CreateOrder)
		orders.GET("/mine", h.ListMyOrders)
		orders.GET("/:id", h.GetOrder)
		orders.GET("", middleware.RequireRoles(domain.RoleAdmin), h.ListOrders)
	}
}

// CreateOrder godoc
// @Summary Create order
// @Description Prices the course, applies an optional voucher and returns the
// @Description pending order with the payment URL to redirect the buyer to.
// @Tags orders
// @Accept json
// @Produce json
// @Param order body dto.CreateOrderRequest true "Order info"
// @Success 201 {object} dto.APIResponse{data=dto.CreateOrderResponse}
// @Failure 400 {object} dto.APIResponse
// @Failure 409 {object} dto.APIResponse
// @Security BearerAuth
// @Router /orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.APIResponse{Success: false, Message: "Authentication required", URL: c.Request.URL.Path})
		return
	}

	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	order, paymentURL, err := h.orderService.CreateOrder(c.Request.Context(), userID, c.ClientIP(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, dto.CreateOrderResponse{
		Order:      *order,
		PaymentURL: paymentURL,
	}, "Order created, redirect to payment")
}

// PaymentReturn godoc
// @Summary Payment gateway return
// @Description Verifies the VNPay callback, finalizes the order and redirects
// @Description the browser back to the storefront result page.
// @Tags orders
// @Success 302
// @Router /orders/payment/return [get]
func (h *OrderHandler) PaymentReturn(c *gin.Context) {
	order, err := h.orderService.HandlePaymentReturn(c.Request.Context(), c.Request.URL.Query())
	if err != nil {
		c.Redirect(http.StatusFound, fmt.Sprintf("%s/payment/result?status=invalid", h.cfg.FrontendBaseURL))
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("%s/payment/result?status=%s&orderId=%s",
		h.cfg.FrontendBaseURL, order.Status, order.ID))
}

// GetOrder godoc
// @Summary Get order by ID
// @Description Buyers see only their own orders; admins see all.
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} dto.APIResponse{data=domain.Order}
// @Failure 403 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Security BearerAuth
// @Router /orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.APIResponse{Success: false, Message: "Authentication required", URL: c.Request.URL.Path})
		return
	}

	order, err := h.orderService.GetOrderByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	role, _ := middleware.GetUserRoleFromContext(c)
	if order.UserID != userID && domain.UserRole(role) != domain.RoleAdmin {
		c.JSON(http.StatusForbidden, dto.APIResponse{Success: false, Message: "You do not have access to this order", URL: c.Request.URL.Path})
		return
	}

	respondSuccess(c, http.StatusOK, order, "")
}

// ListMyOrders godoc
// @Summary List own orders
// @Tags orders
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} dto.APIResponse{data=dto.ListOrdersResponse}
// @Security BearerAuth
// @Router /orders/mine [get]
func (h *OrderHandler) ListMyOrders(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.APIResponse{Success: false, Message: "Authentication required", URL: c.Request.URL.Path})
		return
	}

	var params dto.PageParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBadRequest(c, err)
		return
	}
	params.Normalize()

	orders, total, err := h.orderService.ListUserOrders(c.Request.Context(), userID, params.Limit, params.Offset())
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, dto.ListOrdersResponse{
		Items:      orders,
		Pagination: dto.NewPagination(total, params.Page, params.Limit),
	}, "")
}

// ListOrders godoc
// @Summary List orders (admin)
// @Tags orders
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Param userId query string false "Filter by buyer"
// @Param courseId query string false "Filter by course"
// @Param status query string false "Filter by status"
// @Success 200 {object} dto.APIResponse{data=dto.ListOrdersResponse}
// @Failure 403 {object} dto.APIResponse
// @Security BearerAuth
// @Router /orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	var params dto.ListOrdersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBadRequest(c, err)
		return
	}
	params.Normalize()

	orders, total, err := h.orderService.ListOrders(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, dto.ListOrdersResponse{
		Items:      orders,
		Pagination: dto.NewPagination(total, params.Page, params.Limit),
	}, "")
}
