package order

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/food-ordering/internal/httperr"
	"github.com/BruksfildServices01/food-ordering/internal/models"
)

// ===============================
// Order Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusPreparing Status = "preparing"
	StatusReady     Status = "ready"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

var statuses = []Status{
	StatusPending,
	StatusConfirmed,
	StatusPreparing,
	StatusReady,
	StatusDelivered,
	StatusCancelled,
}

const PaymentPending = "pending"

// ===============================
// Payment Method
// ===============================

const (
	PaymentCash   = "cash"
	PaymentCard   = "card"
	PaymentOnline = "online"
)

// ===============================
// Limits
// ===============================

const MaxLineQuantity = 100

// MaxOrderTotal is the largest amount a decimal(10,2) column holds.
var MaxOrderTotal = decimal.RequireFromString("99999999.99")

// ===============================
// Validations
// ===============================

func ParseStatus(raw string) (Status, error) {
	if raw == "" {
		return "", httperr.Validation("status_required", "Status is required")
	}
	for _, s := range statuses {
		if string(s) == raw {
			return s, nil
		}
	}
	return "", httperr.Validation("invalid_status", "Invalid status")
}

// ParsePaymentMethod defaults an empty value to cash.
func ParsePaymentMethod(raw string) (string, error) {
	switch raw {
	case "":
		return PaymentCash, nil
	case PaymentCash, PaymentCard, PaymentOnline:
		return raw, nil
	default:
		return "", httperr.Validation("invalid_payment_method",
			"Payment method must be one of %s, %s, %s", PaymentCash, PaymentCard, PaymentOnline)
	}
}

// ===============================
// Domain Actions
// ===============================

// ApplyStatus sets any listed status. Only delivered stamps a timestamp, and
// moving away from delivered keeps the original stamp.
func ApplyStatus(o *models.Order, s Status, now time.Time) {
	o.Status = string(s)
	if s == StatusDelivered {
		o.DeliveredAt = &now
	}
}

func FormatNumber(day string, seq int64) string {
	return fmt.Sprintf("ORD-%s-%04d", day, seq)
}
