package account

import (
	"context"
	"time"

	"github.com/BruksfildServices01/food-ordering/internal/models"
)

type Repository interface {
	// -------- User --------
	UserExists(ctx context.Context, username, email string) (bool, error)
	CreateUser(ctx context.Context, u *models.User) error
	FindUserByLogin(ctx context.Context, identifier string) (*models.User, error)
	GetUser(ctx context.Context, id uint) (*models.User, error)
	SaveUser(ctx context.Context, u *models.User) error

	// -------- Admin --------
	AdminExists(ctx context.Context, username, email string) (bool, error)
	CreateAdmin(ctx context.Context, a *models.Admin) error
	FindAdminByLogin(ctx context.Context, identifier string) (*models.Admin, error)
	GetAdmin(ctx context.Context, id uint) (*models.Admin, error)
	SaveAdmin(ctx context.Context, a *models.Admin) error
	TouchAdminLogin(ctx context.Context, id uint, at time.Time) error
}
