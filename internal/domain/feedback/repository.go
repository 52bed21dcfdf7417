package feedback

import (
	"context"

	"github.com/BruksfildServices01/food-ordering/internal/dto"
	"github.com/BruksfildServices01/food-ordering/internal/models"
)

type Repository interface {
	Transaction(ctx context.Context, fn func(tx Repository) error) error

	// -------- Lookups --------
	GetOrder(ctx context.Context, id uint) (*models.Order, error)
	MenuItemExists(ctx context.Context, id uint) (bool, error)
	ExistsForOrder(ctx context.Context, userID, orderID uint) (bool, error)

	// -------- Feedback --------
	Create(ctx context.Context, f *models.Feedback) error
	Get(ctx context.Context, id uint) (*models.Feedback, error)
	SetApproved(ctx context.Context, id uint, approved bool) error
	Delete(ctx context.Context, id uint) error

	// -------- Rating rollup --------
	ApprovedRatings(ctx context.Context, menuItemID uint) ([]int, error)
	SaveSummary(ctx context.Context, s *models.MenuItemRating) error
	GetSummary(ctx context.Context, menuItemID uint) (*models.MenuItemRating, error)

	// -------- Queries --------
	ListApprovedForItem(ctx context.Context, menuItemID uint, limit int) ([]dto.ReviewDTO, error)
	ListForUser(ctx context.Context, userID uint) ([]dto.FeedbackListDTO, error)
	ListAll(ctx context.Context, approvedOnly bool) ([]dto.FeedbackListDTO, error)
	ListEligibleOrders(ctx context.Context, userID uint) ([]dto.EligibleOrderDTO, error)
}
