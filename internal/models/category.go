package models

import "time"

type Category struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Description  string `gorm:"type:text" json:"description"`
	ImageURL     string `gorm:"size:255" json:"image_url"`
	IsActive     bool   `gorm:"not null" json:"is_active"`
	DisplayOrder int    `gorm:"not null" json:"display_order"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
