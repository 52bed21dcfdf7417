package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderListDTO struct {
	ID            uint            `json:"id"`
	OrderNumber   string          `json:"order_number"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	Status        string          `json:"status"`
	PaymentMethod string          `json:"payment_method"`
	PaymentStatus string          `json:"payment_status"`
	CreatedAt     time.Time       `json:"created_at"`
	DeliveredAt   *time.Time      `json:"delivered_at"`

	CustomerName  string `json:"customer_name,omitempty"`
	CustomerPhone string `json:"customer_phone,omitempty"`
}

type OrderDetailDTO struct {
	ID                  uint            `json:"id"`
	UserID              uint            `json:"-"`
	OrderNumber         string          `json:"order_number"`
	TotalAmount         decimal.Decimal `json:"total_amount"`
	Status              string          `json:"status"`
	PaymentMethod       string          `json:"payment_method"`
	PaymentStatus       string          `json:"payment_status"`
	DeliveryAddress     string          `json:"delivery_address"`
	SpecialInstructions string          `json:"special_instructions"`
	CreatedAt           time.Time       `json:"created_at"`
	DeliveredAt         *time.Time      `json:"delivered_at"`

	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	CustomerEmail string `json:"customer_email"`
}

type OrderItemDTO struct {
	ID              uint            `json:"id"`
	MenuItemID      uint            `json:"menu_item_id"`
	Quantity        int             `json:"quantity"`
	Price           decimal.Decimal `json:"price"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	SpecialRequest  string          `json:"special_request"`
	ItemName        string          `json:"item_name"`
	ItemDescription string          `json:"item_description"`
	ImageURL        string          `json:"image_url"`
}

type EligibleOrderDTO struct {
	ID          uint            `json:"id"`
	OrderNumber string          `json:"order_number"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	DeliveredAt *time.Time      `json:"delivered_at"`
}
