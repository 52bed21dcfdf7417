// Package payment creates hosted checkout links for online orders.
package payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"
	"github.com/shopspring/decimal"
)

const currency = "BRL"

type Line struct {
	MenuItemID uint
	Title      string
	Quantity   int
	UnitPrice  decimal.Decimal
}

type Checkout struct {
	OrderID     uint
	OrderNumber string
	Lines       []Line
}

// MercadoPago builds checkout preferences and returns the payer-facing URL.
type MercadoPago struct {
	client          preference.Client
	notificationURL string
}

func NewMercadoPago(accessToken, notificationURL string) (*MercadoPago, error) {
	if accessToken == "" {
		return nil, errors.New("payment: mercadopago access token is empty")
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("payment: mercadopago config: %w", err)
	}

	return &MercadoPago{
		client:          preference.NewClient(cfg),
		notificationURL: notificationURL,
	}, nil
}

func (m *MercadoPago) CreateCheckout(ctx context.Context, co Checkout) (string, error) {
	resource, err := m.client.Create(ctx, BuildPreference(co, m.notificationURL))
	if err != nil {
		return "", fmt.Errorf("payment: create preference for %s: %w", co.OrderNumber, err)
	}
	return resource.InitPoint, nil
}

func BuildPreference(co Checkout, notificationURL string) preference.Request {
	items := make([]preference.ItemRequest, 0, len(co.Lines))
	for _, l := range co.Lines {
		items = append(items, preference.ItemRequest{
			ID:         fmt.Sprintf("%d", l.MenuItemID),
			Title:      l.Title,
			Quantity:   l.Quantity,
			UnitPrice:  l.UnitPrice.InexactFloat64(),
			CurrencyID: currency,
		})
	}

	return preference.Request{
		Items:             items,
		ExternalReference: co.OrderNumber,
		NotificationURL:   notificationURL,
	}
}
