package order

import (
	"context"

	"github.com/BruksfildServices01/food-ordering/internal/dto"
	"github.com/BruksfildServices01/food-ordering/internal/models"
)

type Repository interface {
	// Transaction runs fn with a Repository bound to a single database
	// transaction. Returning an error rolls everything back.
	Transaction(ctx context.Context, fn func(tx Repository) error) error

	// -------- Catalog lookups --------
	GetMenuItem(ctx context.Context, id uint) (*models.MenuItem, error)

	// -------- Order (create) --------
	NextSequence(ctx context.Context, day string) (int64, error)
	CreateOrder(ctx context.Context, o *models.Order) error
	GetOrderNumber(ctx context.Context, id uint) (string, error)

	// -------- Order (state change) --------
	GetOrder(ctx context.Context, id uint) (*models.Order, error)
	UpdateOrder(ctx context.Context, o *models.Order) error

	// -------- Queries --------
	ListForUser(ctx context.Context, userID uint) ([]dto.OrderListDTO, error)
	ListAll(ctx context.Context, status string) ([]dto.OrderListDTO, error)
	GetDetail(ctx context.Context, id uint) (*dto.OrderDetailDTO, error)
	ListItems(ctx context.Context, orderID uint) ([]dto.OrderItemDTO, error)
}
