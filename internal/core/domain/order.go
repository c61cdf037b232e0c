package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus enumerates order lifecycle states.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderCompleted OrderStatus = "completed"
	OrderCancelled OrderStatus = "cancelled"
)

// PaymentMethod enumerates the supported payment gateways.
type PaymentMethod string

const (
	PaymentVNPay   PaymentMethod = "vnpay"
	PaymentMomo    PaymentMethod = "momo"
	PaymentZaloPay PaymentMethod = "zalopay"
)

// Order is a course purchase. It starts pending and is completed or cancelled
// by the payment gateway callback.
type Order struct {
	ID            string          `json:"id"`
	UserID        string          `json:"userId"`
	CourseID      string          `json:"courseId"`
	VoucherID     *string         `json:"voucherId,omitempty"`
	TotalPrice    decimal.Decimal `json:"totalPrice"`
	Status        OrderStatus     `json:"status"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}
