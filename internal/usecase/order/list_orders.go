package order

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/food-ordering/internal/auth"
	domain "github.com/BruksfildServices01/food-ordering/internal/domain/order"
	"github.com/BruksfildServices01/food-ordering/internal/dto"
	"github.com/BruksfildServices01/food-ordering/internal/httperr"
)

// ======================================================
// LIST (customer)
// ======================================================

type ListUserOrders struct {
	repo domain.Repository
}

func NewListUserOrders(repo domain.Repository) *ListUserOrders {
	return &ListUserOrders{repo: repo}
}

func (uc *ListUserOrders) Execute(ctx context.Context, userID uint) ([]dto.OrderListDTO, error) {
	return uc.repo.ListForUser(ctx, userID)
}

// ======================================================
// LIST (admin)
// ======================================================

type ListAllOrders struct {
	repo domain.Repository
}

func NewListAllOrders(repo domain.Repository) *ListAllOrders {
	return &ListAllOrders{repo: repo}
}

// Execute filters by status when one is given.
func (uc *ListAllOrders) Execute(ctx context.Context, status string) ([]dto.OrderListDTO, error) {
	if status != "" {
		if _, err := domain.ParseStatus(status); err != nil {
			return nil, err
		}
	}
	return uc.repo.ListAll(ctx, status)
}

// ======================================================
// DETAILS
// ======================================================

type OrderDetails struct {
	Order *dto.OrderDetailDTO `json:"order"`
	Items []dto.OrderItemDTO  `json:"items"`
}

type GetOrderDetails struct {
	repo domain.Repository
}

func NewGetOrderDetails(repo domain.Repository) *GetOrderDetails {
	return &GetOrderDetails{repo: repo}
}

// Execute lets customers read their own orders and admins read any order.
func (uc *GetOrderDetails) Execute(
	ctx context.Context,
	who auth.Identity,
	orderID uint,
) (*OrderDetails, error) {

	detail, err := uc.repo.GetDetail(ctx, orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	if !who.IsAdmin() && detail.UserID != who.SubjectID {
		return nil, httperr.Forbidden("order_forbidden", "You do not have access to this order")
	}

	items, err := uc.repo.ListItems(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []dto.OrderItemDTO{}
	}

	return &OrderDetails{Order: detail, Items: items}, nil
}
