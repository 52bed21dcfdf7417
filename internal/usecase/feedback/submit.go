package feedback

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/food-ordering/internal/domain/feedback"
	"github.com/BruksfildServices01/food-ordering/internal/httperr"
	"github.com/BruksfildServices01/food-ordering/internal/models"
)

var errDuplicate = httperr.Conflict("feedback_exists", "Feedback already submitted for this order")

type SubmitFeedbackInput struct {
	UserID     uint
	OrderID    uint
	MenuItemID *uint
	Rating     int
	Comment    string
}

type SubmitFeedback struct {
	repo domain.Repository
}

func NewSubmitFeedback(repo domain.Repository) *SubmitFeedback {
	return &SubmitFeedback{repo: repo}
}

// Execute stores unapproved feedback for a delivered order owned by the
// caller. One submission per order.
func (uc *SubmitFeedback) Execute(
	ctx context.Context,
	in SubmitFeedbackInput,
) (*models.Feedback, error) {

	if in.OrderID == 0 || in.Rating == 0 {
		return nil, httperr.Validation("feedback_required_fields", "Order ID and rating are required")
	}
	if err := domain.ValidateRating(in.Rating); err != nil {
		return nil, err
	}

	o, err := uc.repo.GetOrder(ctx, in.OrderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, httperr.NotFoundf("order_not_found", "Order not found")
	}
	if err != nil {
		return nil, err
	}

	if o.UserID != in.UserID {
		return nil, httperr.Forbidden("order_forbidden", "You can only review your own orders")
	}
	if o.Status != "delivered" {
		return nil, httperr.Validation("order_not_delivered", "Can only give feedback for delivered orders")
	}

	exists, err := uc.repo.ExistsForOrder(ctx, in.UserID, in.OrderID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errDuplicate
	}

	if in.MenuItemID != nil {
		ok, err := uc.repo.MenuItemExists(ctx, *in.MenuItemID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, httperr.NotFoundf("menu_item_not_found", "Menu item %d not found", *in.MenuItemID)
		}
	}

	f := &models.Feedback{
		UserID:     in.UserID,
		OrderID:    in.OrderID,
		MenuItemID: in.MenuItemID,
		Rating:     in.Rating,
		Comment:    in.Comment,
		IsApproved: false,
	}

	if err := uc.repo.Create(ctx, f); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errDuplicate
		}
		return nil, err
	}

	return f, nil
}
