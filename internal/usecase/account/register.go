package account

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/food-ordering/internal/httperr"
	"github.com/BruksfildServices01/food-ordering/internal/models"
	"github.com/BruksfildServices01/food-ordering/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type RegisterUserInput struct {
	Username string `json:"username" binding:"required,notblank,max=50"`
	Email    string `json:"email" binding:"required,email,max=100"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"full_name" binding:"required,notblank,max=100"`
	Phone    string `json:"phone" binding:"phone"`
	Address  string `json:"address"`
}

type RegisterAdminInput struct {
	Username string `json:"username" binding:"required,notblank,max=50"`
	Email    string `json:"email" binding:"required,email,max=100"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"full_name" binding:"required,notblank,max=100"`
	Phone    string `json:"phone" binding:"phone"`
	Role     string `json:"role" binding:"omitempty,oneof=admin super_admin"`
}

// normalize trims surrounding whitespace in place.
func normalize(fields ...*string) {
	for _, f := range fields {
		*f = strings.TrimSpace(*f)
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (s *Service) RegisterUser(ctx context.Context, in RegisterUserInput) (*models.User, error) {
	normalize(&in.Username, &in.Email, &in.FullName, &in.Phone, &in.Address)
	in.Email = strings.ToLower(in.Email)
	if err := validators.Struct(in); err != nil {
		return nil, err
	}

	dup := httperr.Conflict("user_exists", "User with this email or username already exists")

	exists, err := s.repo.UserExists(ctx, in.Username, in.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, dup
	}

	hash, err := s.hash(in.Password)
	if err != nil {
		return nil, err
	}

	u := &models.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		FullName:     in.FullName,
		Phone:        in.Phone,
		Address:      in.Address,
		IsActive:     true,
	}
	if err := s.repo.CreateUser(ctx, u); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, dup
		}
		return nil, err
	}
	return u, nil
}

func (s *Service) RegisterAdmin(ctx context.Context, in RegisterAdminInput) (*models.Admin, error) {
	normalize(&in.Username, &in.Email, &in.FullName, &in.Phone, &in.Role)
	in.Email = strings.ToLower(in.Email)
	if err := validators.Struct(in); err != nil {
		return nil, err
	}

	role := in.Role
	if role == "" {
		role = models.AdminRoleAdmin
	}

	dup := httperr.Conflict("admin_exists", "Admin with this email or username already exists")

	exists, err := s.repo.AdminExists(ctx, in.Username, in.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, dup
	}

	hash, err := s.hash(in.Password)
	if err != nil {
		return nil, err
	}

	a := &models.Admin{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		FullName:     in.FullName,
		Phone:        in.Phone,
		Role:         role,
		IsActive:     true,
	}
	if err := s.repo.CreateAdmin(ctx, a); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, dup
		}
		return nil, err
	}
	return a, nil
}
