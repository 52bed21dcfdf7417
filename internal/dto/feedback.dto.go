package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type ReviewDTO struct {
	ID           uint      `json:"id"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	CreatedAt    time.Time `json:"created_at"`
	CustomerName string    `json:"customer_name"`
}

type FeedbackListDTO struct {
	ID           uint      `json:"id"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	IsApproved   bool      `json:"is_approved"`
	CreatedAt    time.Time `json:"created_at"`
	OrderNumber  string    `json:"order_number"`
	MenuItemName *string   `json:"menu_item_name"`

	CustomerName  string `json:"customer_name,omitempty"`
	CustomerEmail string `json:"customer_email,omitempty"`
}

type RatingSummaryDTO struct {
	AverageRating decimal.Decimal `json:"average_rating"`
	TotalRatings  int             `json:"total_ratings"`
	Rating1Count  int             `json:"rating_1_count"`
	Rating2Count  int             `json:"rating_2_count"`
	Rating3Count  int             `json:"rating_3_count"`
	Rating4Count  int             `json:"rating_4_count"`
	Rating5Count  int             `json:"rating_5_count"`
}
