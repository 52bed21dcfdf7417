package account

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/food-ordering/internal/auth"
	"github.com/BruksfildServices01/food-ordering/internal/httperr"
	"github.com/BruksfildServices01/food-ordering/internal/models"
	"github.com/BruksfildServices01/food-ordering/internal/validators"
)

var (
	ErrUserNotFound  = httperr.NotFoundf("user_not_found", "User not found")
	ErrAdminNotFound = httperr.NotFoundf("admin_not_found", "Admin not found")
)

// UserProfileInput lists the fields a customer may change. Nil means keep.
type UserProfileInput struct {
	FullName     *string `json:"full_name" binding:"omitempty,notblank,max=100"`
	Phone        *string `json:"phone" binding:"omitempty,phone"`
	Address      *string `json:"address"`
	ProfileImage *string `json:"profile_image"`
}

// AdminProfileInput has no role field: roles are never self-assigned.
type AdminProfileInput struct {
	FullName     *string `json:"full_name" binding:"omitempty,notblank,max=100"`
	Phone        *string `json:"phone" binding:"omitempty,phone"`
	ProfileImage *string `json:"profile_image"`
}

type ChangePasswordInput struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6"`
}

// --------------------------------------------------
// User
// --------------------------------------------------

func (s *Service) UserProfile(ctx context.Context, id uint) (*models.User, error) {
	u, err := s.repo.GetUser(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	return u, err
}

func (s *Service) UpdateUserProfile(ctx context.Context, id uint, in UserProfileInput) (*models.User, error) {
	if in.FullName == nil && in.Phone == nil && in.Address == nil && in.ProfileImage == nil {
		return nil, errNoFields
	}
	if err := validators.Struct(in); err != nil {
		return nil, err
	}

	u, err := s.UserProfile(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.FullName != nil {
		u.FullName = strings.TrimSpace(*in.FullName)
	}
	if in.Phone != nil {
		u.Phone = strings.TrimSpace(*in.Phone)
	}
	if in.Address != nil {
		u.Address = strings.TrimSpace(*in.Address)
	}
	if in.ProfileImage != nil {
		u.ProfileImage = *in.ProfileImage
	}

	if err := s.repo.SaveUser(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// --------------------------------------------------
// Admin
// --------------------------------------------------

func (s *Service) AdminProfile(ctx context.Context, id uint) (*models.Admin, error) {
	a, err := s.repo.GetAdmin(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrAdminNotFound
	}
	return a, err
}

func (s *Service) UpdateAdminProfile(ctx context.Context, id uint, in AdminProfileInput) (*models.Admin, error) {
	if in.FullName == nil && in.Phone == nil && in.ProfileImage == nil {
		return nil, errNoFields
	}
	if err := validators.Struct(in); err != nil {
		return nil, err
	}

	a, err := s.AdminProfile(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.FullName != nil {
		a.FullName = strings.TrimSpace(*in.FullName)
	}
	if in.Phone != nil {
		a.Phone = strings.TrimSpace(*in.Phone)
	}
	if in.ProfileImage != nil {
		a.ProfileImage = *in.ProfileImage
	}

	if err := s.repo.SaveAdmin(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// --------------------------------------------------
// Password
// --------------------------------------------------

// ChangePassword re-checks the current password of whoever is calling,
// customer or staff.
func (s *Service) ChangePassword(ctx context.Context, who auth.Identity, in ChangePasswordInput) error {
	if err := validators.Struct(in); err != nil {
		return err
	}

	wrong := httperr.Unauthenticated("wrong_password", "Current password is incorrect")

	if who.IsAdmin() {
		a, err := s.AdminProfile(ctx, who.SubjectID)
		if err != nil {
			return err
		}
		if !matches(a.PasswordHash, in.CurrentPassword) {
			return wrong
		}
		if a.PasswordHash, err = s.hash(in.NewPassword); err != nil {
			return err
		}
		return s.repo.SaveAdmin(ctx, a)
	}

	u, err := s.UserProfile(ctx, who.SubjectID)
	if err != nil {
		return err
	}
	if !matches(u.PasswordHash, in.CurrentPassword) {
		return wrong
	}
	if u.PasswordHash, err = s.hash(in.NewPassword); err != nil {
		return err
	}
	return s.repo.SaveUser(ctx, u)
}

// SetAdminPassword resets an admin password without the old one. Operator
// tooling only.
func (s *Service) SetAdminPassword(ctx context.Context, login, password string) (*models.Admin, error) {
	if len(password) < MinPasswordLength {
		return nil, errShortPassword
	}

	a, err := s.repo.FindAdminByLogin(ctx, login)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrAdminNotFound
	}
	if err != nil {
		return nil, err
	}

	if a.PasswordHash, err = s.hash(password); err != nil {
		return nil, err
	}
	if err := s.repo.SaveAdmin(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}
