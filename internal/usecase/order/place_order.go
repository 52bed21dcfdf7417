package order

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/food-ordering/internal/domain/order"
	"github.com/BruksfildServices01/food-ordering/internal/httperr"
	"github.com/BruksfildServices01/food-ordering/internal/logging"
	"github.com/BruksfildServices01/food-ordering/internal/metrics"
	"github.com/BruksfildServices01/food-ordering/internal/models"
	"github.com/BruksfildServices01/food-ordering/internal/payment"
	"github.com/BruksfildServices01/food-ordering/internal/realtime"
	"github.com/BruksfildServices01/food-ordering/internal/timezone"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type LineInput struct {
	MenuItemID     uint
	Quantity       int
	SpecialRequest string
}

type PlaceOrderInput struct {
	UserID uint
	Items  []LineInput

	PaymentMethod       string
	DeliveryAddress     string
	SpecialInstructions string
}

type PlaceOrderResult struct {
	OrderID     uint            `json:"order_id"`
	OrderNumber string          `json:"order_number"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	PaymentURL  string          `json:"payment_url,omitempty"`
}

// CheckoutProvider issues a payment link for an order that was already
// committed.
type CheckoutProvider interface {
	CreateCheckout(ctx context.Context, co payment.Checkout) (string, error)
}

// ======================================================
// USE CASE
// ======================================================

type PlaceOrder struct {
	repo     domain.Repository
	hub      *realtime.Hub
	checkout CheckoutProvider
	loc      *time.Location
	now      func() time.Time
}

// NewPlaceOrder wires the use case. hub and checkout may be nil.
func NewPlaceOrder(
	repo domain.Repository,
	hub *realtime.Hub,
	checkout CheckoutProvider,
	tz string,
) *PlaceOrder {
	return &PlaceOrder{
		repo:     repo,
		hub:      hub,
		checkout: checkout,
		loc:      timezone.Location(tz),
		now:      time.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *PlaceOrder) Execute(
	ctx context.Context,
	in PlaceOrderInput,
) (*PlaceOrderResult, error) {

	// --------------------------------------------------
	// 1. Cart shape
	// --------------------------------------------------
	if len(in.Items) == 0 {
		return nil, httperr.Validation("empty_order", "Order must contain at least one item")
	}

	var (
		result *PlaceOrderResult
		lines  []payment.Line
		method string
	)

	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {

		// --------------------------------------------------
		// 2. Live price and availability, all or nothing
		// --------------------------------------------------
		total := decimal.Zero
		items := make([]models.OrderItem, 0, len(in.Items))
		lines = make([]payment.Line, 0, len(in.Items))

		for _, line := range in.Items {
			if line.Quantity <= 0 || line.Quantity > domain.MaxLineQuantity {
				return httperr.Validation("invalid_quantity",
					"Quantity for menu item %d must be between 1 and %d", line.MenuItemID, domain.MaxLineQuantity)
			}

			item, err := tx.GetMenuItem(ctx, line.MenuItemID)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return httperr.NotFoundf("menu_item_not_found", "Menu item %d not found", line.MenuItemID)
			}
			if err != nil {
				return err
			}
			if !item.IsAvailable {
				return httperr.Validation("menu_item_unavailable", "Menu item %d is not available", line.MenuItemID)
			}

			// --------------------------------------------------
			// 3. Server-side totals
			// --------------------------------------------------
			subtotal := item.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
			total = total.Add(subtotal)

			items = append(items, models.OrderItem{
				MenuItemID:     item.ID,
				Quantity:       line.Quantity,
				Price:          item.Price,
				Subtotal:       subtotal,
				SpecialRequest: line.SpecialRequest,
			})
			lines = append(lines, payment.Line{
				MenuItemID: item.ID,
				Title:      item.Name,
				Quantity:   line.Quantity,
				UnitPrice:  item.Price,
			})
		}

		if total.GreaterThan(domain.MaxOrderTotal) {
			return httperr.Validation("order_total_too_large", "Order total exceeds %s", domain.MaxOrderTotal.StringFixed(2))
		}

		var err error
		if method, err = domain.ParsePaymentMethod(in.PaymentMethod); err != nil {
			return err
		}

		// --------------------------------------------------
		// 4. Order number from the per-day counter
		// --------------------------------------------------
		day := timezone.DayKey(uc.now(), uc.loc)
		seq, err := tx.NextSequence(ctx, day)
		if err != nil {
			return err
		}

		// --------------------------------------------------
		// 5. Header, then line items
		// --------------------------------------------------
		o := &models.Order{
			UserID:              in.UserID,
			OrderNumber:         domain.FormatNumber(day, seq),
			TotalAmount:         total,
			Status:              string(domain.StatusPending),
			PaymentMethod:       method,
			PaymentStatus:       domain.PaymentPending,
			DeliveryAddress:     in.DeliveryAddress,
			SpecialInstructions: in.SpecialInstructions,
			Items:               items,
		}

		if err := tx.CreateOrder(ctx, o); err != nil {
			return err
		}

		// --------------------------------------------------
		// 6. Read back what was stored
		// --------------------------------------------------
		number, err := tx.GetOrderNumber(ctx, o.ID)
		if err != nil {
			return err
		}

		result = &PlaceOrderResult{
			OrderID:     o.ID,
			OrderNumber: number,
			TotalAmount: total,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 7. After commit: metrics, live feed, payment link
	// --------------------------------------------------
	metrics.OrdersPlaced.WithLabelValues(method).Inc()

	uc.hub.Publish(realtime.Event{
		Type:        realtime.EventOrderPlaced,
		OrderID:     result.OrderID,
		OrderNumber: result.OrderNumber,
		Status:      string(domain.StatusPending),
	})

	if method == domain.PaymentOnline && uc.checkout != nil {
		url, err := uc.checkout.CreateCheckout(ctx, payment.Checkout{
			OrderID:     result.OrderID,
			OrderNumber: result.OrderNumber,
			Lines:       lines,
		})
		if err != nil {
			logging.FromContext(ctx).Error("checkout link failed",
				"order_number", result.OrderNumber,
				"error", err,
			)
		} else {
			result.PaymentURL = url
		}
	}

	return result, nil
}
