package repository

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/food-ordering/internal/domain/account"
	"github.com/BruksfildServices01/food-ordering/internal/models"
)

type AccountGormRepository struct {
	db *gorm.DB
}

func NewAccountGormRepository(db *gorm.DB) *AccountGormRepository {
	return &AccountGormRepository{db: db}
}

var _ domain.Repository = (*AccountGormRepository)(nil)

// --------------------------------------------------
// User
// --------------------------------------------------

func (r *AccountGormRepository) UserExists(
	ctx context.Context,
	username string,
	email string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("username = ? OR email = ?", username, email).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *AccountGormRepository) CreateUser(
	ctx context.Context,
	u *models.User,
) error {
	return r.db.WithContext(ctx).Create(u).Error
}

// FindUserByLogin matches a username exactly or an email in any case;
// emails are stored lowercased.
func (r *AccountGormRepository) FindUserByLogin(
	ctx context.Context,
	identifier string,
) (*models.User, error) {

	var u models.User
	if err := r.db.WithContext(ctx).
		Where("email = ? OR username = ?", strings.ToLower(identifier), identifier).
		First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *AccountGormRepository) GetUser(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var u models.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *AccountGormRepository) SaveUser(
	ctx context.Context,
	u *models.User,
) error {
	return r.db.WithContext(ctx).Save(u).Error
}

// --------------------------------------------------
// Admin
// --------------------------------------------------

func (r *AccountGormRepository) AdminExists(
	ctx context.Context,
	username string,
	email string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Admin{}).
		Where("username = ? OR email = ?", username, email).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *AccountGormRepository) CreateAdmin(
	ctx context.Context,
	a *models.Admin,
) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *AccountGormRepository) FindAdminByLogin(
	ctx context.Context,
	identifier string,
) (*models.Admin, error) {

	var a models.Admin
	if err := r.db.WithContext(ctx).
		Where("email = ? OR username = ?", strings.ToLower(identifier), identifier).
		First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AccountGormRepository) GetAdmin(
	ctx context.Context,
	id uint,
) (*models.Admin, error) {

	var a models.Admin
	if err := r.db.WithContext(ctx).First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AccountGormRepository) SaveAdmin(
	ctx context.Context,
	a *models.Admin,
) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *AccountGormRepository) TouchAdminLogin(
	ctx context.Context,
	id uint,
	at time.Time,
) error {
	return r.db.WithContext(ctx).
		Model(&models.Admin{}).
		Where("id = ?", id).
		Update("last_login", at).Error
}
