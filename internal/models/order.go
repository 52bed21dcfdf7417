package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"index;not null" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	OrderNumber         string          `gorm:"size:32;uniqueIndex;not null" json:"order_number"`
	TotalAmount         decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	Status              string          `gorm:"size:20;not null;index" json:"status"`
	PaymentMethod       string          `gorm:"size:20;not null" json:"payment_method"`
	PaymentStatus       string          `gorm:"size:20;not null" json:"payment_status"`
	DeliveryAddress     string          `gorm:"type:text" json:"delivery_address"`
	SpecialInstructions string          `gorm:"type:text" json:"special_instructions"`

	Items []OrderItem `json:"items,omitempty"`

	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeliveredAt *time.Time `json:"delivered_at"`
}

// OrderItem keeps the price snapshot taken when the order was placed.
type OrderItem struct {
	ID uint `gorm:"primaryKey" json:"id"`

	OrderID uint `gorm:"index;not null" json:"order_id"`

	MenuItemID uint     `gorm:"index;not null" json:"menu_item_id"`
	MenuItem   MenuItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	Quantity       int             `gorm:"not null" json:"quantity"`
	Price          decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Subtotal       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"subtotal"`
	SpecialRequest string          `gorm:"type:text" json:"special_request"`

	CreatedAt time.Time `json:"created_at"`
}

// OrderSequence holds the last order number issued for a given day (YYYYMMDD).
type OrderSequence struct {
	Day   string `gorm:"primaryKey;size:8"`
	Value int64  `gorm:"not null"`
}
