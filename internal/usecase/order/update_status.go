package order

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/food-ordering/internal/audit"
	domain "github.com/BruksfildServices01/food-ordering/internal/domain/order"
	"github.com/BruksfildServices01/food-ordering/internal/httperr"
	"github.com/BruksfildServices01/food-ordering/internal/models"
	"github.com/BruksfildServices01/food-ordering/internal/realtime"
)

var ErrOrderNotFound = httperr.NotFoundf("order_not_found", "Order not found")

type UpdateOrderStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	hub   *realtime.Hub
	now   func() time.Time
}

func NewUpdateOrderStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
	hub *realtime.Hub,
) *UpdateOrderStatus {
	return &UpdateOrderStatus{
		repo:  repo,
		audit: audit,
		hub:   hub,
		now:   time.Now,
	}
}

// Execute sets any listed status; there is no transition table.
func (uc *UpdateOrderStatus) Execute(
	ctx context.Context,
	adminID uint,
	orderID uint,
	rawStatus string,
) (*models.Order, error) {

	status, err := domain.ParseStatus(rawStatus)
	if err != nil {
		return nil, err
	}

	o, err := uc.repo.GetOrder(ctx, orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	previous := o.Status
	domain.ApplyStatus(o, status, uc.now())

	if err := uc.repo.UpdateOrder(ctx, o); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:   &adminID,
		ActorType: "admin",
		Action:    "order_status_updated",
		Entity:    "order",
		EntityID:  &o.ID,
		Metadata: map[string]string{
			"from": previous,
			"to":   o.Status,
		},
	})

	uc.hub.Publish(realtime.Event{
		Type:        realtime.EventOrderStatusUpdated,
		OrderID:     o.ID,
		OrderNumber: o.OrderNumber,
		Status:      o.Status,
	})

	return o, nil
}
