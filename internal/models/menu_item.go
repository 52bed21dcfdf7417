package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type MenuItem struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CategoryID uint     `gorm:"index;not null" json:"category_id"`
	Category   Category `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	Name            string          `gorm:"size:100;not null" json:"name"`
	Description     string          `gorm:"type:text" json:"description"`
	Price           decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	ImageURL        string          `gorm:"size:255" json:"image_url"`
	IsAvailable     bool            `gorm:"not null" json:"is_available"`
	IsFeatured      bool            `gorm:"not null" json:"is_featured"`
	PreparationTime int             `gorm:"not null" json:"preparation_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MenuItemRating is the denormalized rollup of approved feedback for one item.
type MenuItemRating struct {
	ID         uint     `gorm:"primaryKey" json:"-"`
	MenuItemID uint     `gorm:"uniqueIndex;not null" json:"menu_item_id"`
	MenuItem   MenuItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	TotalRatings  int             `gorm:"not null" json:"total_ratings"`
	AverageRating decimal.Decimal `gorm:"type:decimal(3,2);not null" json:"average_rating"`
	Rating1Count  int             `gorm:"column:rating_1_count;not null" json:"rating_1_count"`
	Rating2Count  int             `gorm:"column:rating_2_count;not null" json:"rating_2_count"`
	Rating3Count  int             `gorm:"column:rating_3_count;not null" json:"rating_3_count"`
	Rating4Count  int             `gorm:"column:rating_4_count;not null" json:"rating_4_count"`
	Rating5Count  int             `gorm:"column:rating_5_count;not null" json:"rating_5_count"`

	UpdatedAt time.Time `json:"-"`
}
