package dto

import "github.com/wishzy/wishzy-backend/internal/core/domain"

// CreateOrderRequest is the body for POST /orders.
type CreateOrderRequest struct {
	CourseID      string  `json:"courseId" binding:"required,uuid"`
	VoucherCode   *string `json:"voucherCode"`
	PaymentMethod string  `json:"paymentMethod" binding:"omitempty,oneof=vnpay momo zalopay"`
}

// CreateOrderResponse returns the pending order together with the gateway URL
// the client must follow to complete payment.
type CreateOrderResponse struct {
	Order      domain.Order `json:"order"`
	PaymentURL string       `json:"paymentUrl"`
}

// ListOrdersParams are the query parameters for GET /orders (admin).
type ListOrdersParams struct {
	PageParams
	UserID   string `form:"userId"`
	CourseID string `form:"courseId"`
	Status   string `form:"status" binding:"omitempty,oneof=pending completed cancelled"`
}

// ListOrdersResponse wraps a paginated order listing.
type ListOrdersResponse struct {
	Items      []domain.Order `json:"items"`
	Pagination Pagination     `json:"pagination"`
}
