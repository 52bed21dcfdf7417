package order

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/food-ordering/internal/audit"
	"github.com/BruksfildServices01/food-ordering/internal/auth"
	"github.com/BruksfildServices01/food-ordering/internal/httperr"
	"github.com/BruksfildServices01/food-ordering/internal/infra/repository"
	"github.com/BruksfildServices01/food-ordering/internal/models"
	"github.com/BruksfildServices01/food-ordering/internal/testutil"
)

func TestDeliveredStampSurvivesLaterStatus(t *testing.T) {
	db := testutil.NewDB(t)
	user := testutil.CreateUser(t, db, "ana", "secret1")
	cat := testutil.CreateCategory(t, db, "Mains", 1)
	item := testutil.CreateMenuItem(t, db, cat.ID, "Burger", "8.99", true)

	placed, err := newPlaceOrder(db, nil).Execute(context.Background(), PlaceOrderInput{
		UserID: user.ID,
		Items:  []LineInput{{MenuItemID: item.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	dispatcher := audit.NewDispatcher(audit.New(db))
	uc := NewUpdateOrderStatus(repository.NewOrderGormRepository(db), dispatcher, nil)
	deliveredAt := time.Date(2026, 4, 2, 18, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return deliveredAt }

	_, err = uc.Execute(context.Background(), 1, placed.OrderID, "delivered")
	require.NoError(t, err)

	uc.now = func() time.Time { return deliveredAt.Add(time.Hour) }
	_, err = uc.Execute(context.Background(), 1, placed.OrderID, "preparing")
	require.NoError(t, err)
	dispatcher.Close()

	var stored models.Order
	require.NoError(t, db.First(&stored, placed.OrderID).Error)
	assert.Equal(t, "preparing", stored.Status)
	require.NotNil(t, stored.DeliveredAt)
	assert.True(t, deliveredAt.Equal(*stored.DeliveredAt))

	var logs int64
	require.NoError(t, db.Model(&models.AuditLog{}).Where("action = ?", "order_status_updated").Count(&logs).Error)
	assert.Equal(t, int64(2), logs)
}

func TestUpdateStatusValidation(t *testing.T) {
	db := testutil.NewDB(t)
	uc := NewUpdateOrderStatus(repository.NewOrderGormRepository(db), nil, nil)

	_, err := uc.Execute(context.Background(), 1, 1, "teleported")
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))

	_, err = uc.Execute(context.Background(), 1, 404, "ready")
	assert.True(t, httperr.IsBusiness(err, "order_not_found"))
}

func TestOrderDetailsAccess(t *testing.T) {
	db := testutil.NewDB(t)
	owner := testutil.CreateUser(t, db, "ana", "secret1")
	other := testutil.CreateUser(t, db, "bob", "secret1")
	cat := testutil.CreateCategory(t, db, "Mains", 1)
	item := testutil.CreateMenuItem(t, db, cat.ID, "Burger", "8.99", true)

	placed, err := newPlaceOrder(db, nil).Execute(context.Background(), PlaceOrderInput{
		UserID:          owner.ID,
		Items:           []LineInput{{MenuItemID: item.ID, Quantity: 2, SpecialRequest: "no onions"}},
		DeliveryAddress: "1 Main St",
	})
	require.NoError(t, err)

	uc := NewGetOrderDetails(repository.NewOrderGormRepository(db))

	got, err := uc.Execute(context.Background(), auth.Identity{SubjectID: owner.ID, Role: auth.RoleUser}, placed.OrderID)
	require.NoError(t, err)
	assert.Equal(t, placed.OrderNumber, got.Order.OrderNumber)
	assert.Equal(t, owner.FullName, got.Order.CustomerName)
	assert.Equal(t, "1 Main St", got.Order.DeliveryAddress)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "Burger", got.Items[0].ItemName)
	assert.Equal(t, "no onions", got.Items[0].SpecialRequest)

	_, err = uc.Execute(context.Background(), auth.Identity{SubjectID: other.ID, Role: auth.RoleUser}, placed.OrderID)
	kind, _ := httperr.KindOf(err)
	assert.Equal(t, httperr.KindAuthorization, kind)

	_, err = uc.Execute(context.Background(), auth.Identity{SubjectID: 99, Role: auth.RoleAdmin}, placed.OrderID)
	assert.NoError(t, err)

	_, err = uc.Execute(context.Background(), auth.Identity{SubjectID: owner.ID, Role: auth.RoleUser}, 9999)
	assert.True(t, httperr.IsBusiness(err, "order_not_found"))
}

func TestListOrders(t *testing.T) {
	db := testutil.NewDB(t)
	ana := testutil.CreateUser(t, db, "ana", "secret1")
	bob := testutil.CreateUser(t, db, "bob", "secret1")
	cat := testutil.CreateCategory(t, db, "Mains", 1)
	item := testutil.CreateMenuItem(t, db, cat.ID, "Burger", "8.99", true)

	place := newPlaceOrder(db, nil)
	for _, u := range []*models.User{ana, ana, bob} {
		_, err := place.Execute(context.Background(), PlaceOrderInput{
			UserID: u.ID,
			Items:  []LineInput{{MenuItemID: item.ID, Quantity: 1}},
		})
		require.NoError(t, err)
	}
	testutil.CreateDeliveredOrder(t, db, bob.ID, item.ID, "ORD-20260101-0001")

	repo := repository.NewOrderGormRepository(db)

	mine, err := NewListUserOrders(repo).Execute(context.Background(), ana.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	all, err := NewListAllOrders(repo).Execute(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 4)
	assert.NotEmpty(t, all[0].CustomerName)

	delivered, err := NewListAllOrders(repo).Execute(context.Background(), "delivered")
	require.NoError(t, err)
	require.Len(t, delivered, 1)
	assert.Equal(t, "ORD-20260101-0001", delivered[0].OrderNumber)

	_, err = NewListAllOrders(repo).Execute(context.Background(), "lost")
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))
}
