package models

import "time"

const (
	AdminRoleAdmin      = "admin"
	AdminRoleSuperAdmin = "super_admin"
)

type Admin struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Username     string     `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Email        string     `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"size:255;not null" json:"-"`
	FullName     string     `gorm:"size:100;not null" json:"full_name"`
	Phone        string     `gorm:"size:20" json:"phone"`
	Role         string     `gorm:"size:20;not null" json:"role"`
	ProfileImage string     `gorm:"size:255" json:"profile_image"`
	IsActive     bool       `gorm:"not null" json:"is_active"`
	LastLogin    *time.Time `json:"last_login"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
