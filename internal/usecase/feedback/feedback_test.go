package feedback

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/food-ordering/internal/httperr"
	"github.com/BruksfildServices01/food-ordering/internal/infra/repository"
	"github.com/BruksfildServices01/food-ordering/internal/models"
	"github.com/BruksfildServices01/food-ordering/internal/testutil"
)

type fixture struct {
	db    *gorm.DB
	user  *models.User
	item  *models.MenuItem
	order *models.Order

	submit   *SubmitFeedback
	moderate *ModerateFeedback
	remove   *DeleteFeedback
	list     *ListFeedback
}

func newFixture(t *testing.T) fixture {
	db := testutil.NewDB(t)
	user := testutil.CreateUser(t, db, "ana", "secret1")
	cat := testutil.CreateCategory(t, db, "Mains", 1)
	item := testutil.CreateMenuItem(t, db, cat.ID, "Burger", "8.99", true)
	order := testutil.CreateDeliveredOrder(t, db, user.ID, item.ID, "ORD-20260101-0001")

	repo := repository.NewFeedbackGormRepository(db)
	return fixture{
		db:       db,
		user:     user,
		item:     item,
		order:    order,
		submit:   NewSubmitFeedback(repo),
		moderate: NewModerateFeedback(repo, nil),
		remove:   NewDeleteFeedback(repo, nil),
		list:     NewListFeedback(repo),
	}
}

func (f fixture) submitFor(t *testing.T, userID uint, order *models.Order, rating int) *models.Feedback {
	t.Helper()
	fb, err := f.submit.Execute(context.Background(), SubmitFeedbackInput{
		UserID:     userID,
		OrderID:    order.ID,
		MenuItemID: &f.item.ID,
		Rating:     rating,
		Comment:    "tasty",
	})
	require.NoError(t, err)
	return fb
}

func TestSubmitCreatesUnapprovedFeedback(t *testing.T) {
	f := newFixture(t)

	fb := f.submitFor(t, f.user.ID, f.order, 4)
	assert.False(t, fb.IsApproved)
	assert.NotZero(t, fb.ID)
}

func TestDuplicateSubmissionConflicts(t *testing.T) {
	f := newFixture(t)
	first := f.submitFor(t, f.user.ID, f.order, 4)

	_, err := f.submit.Execute(context.Background(), SubmitFeedbackInput{
		UserID:  f.user.ID,
		OrderID: f.order.ID,
		Rating:  1,
		Comment: "changed my mind",
	})
	kind, _ := httperr.KindOf(err)
	assert.Equal(t, httperr.KindConflict, kind)

	var stored models.Feedback
	require.NoError(t, f.db.First(&stored, first.ID).Error)
	assert.Equal(t, 4, stored.Rating)
	assert.Equal(t, "tasty", stored.Comment)
}

func TestSubmitValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	stranger := testutil.CreateUser(t, f.db, "eve", "secret1")

	pending := &models.Order{
		UserID:        f.user.ID,
		OrderNumber:   "ORD-20260101-0002",
		TotalAmount:   f.order.TotalAmount,
		Status:        "preparing",
		PaymentMethod: "cash",
		PaymentStatus: "pending",
	}
	require.NoError(t, f.db.Create(pending).Error)

	missingItem := uint(777)

	cases := []struct {
		name string
		in   SubmitFeedbackInput
		kind httperr.Kind
	}{
		{"missing rating", SubmitFeedbackInput{UserID: f.user.ID, OrderID: f.order.ID}, httperr.KindValidation},
		{"rating too high", SubmitFeedbackInput{UserID: f.user.ID, OrderID: f.order.ID, Rating: 6}, httperr.KindValidation},
		{"unknown order", SubmitFeedbackInput{UserID: f.user.ID, OrderID: 999, Rating: 5}, httperr.KindNotFound},
		{"not owner", SubmitFeedbackInput{UserID: stranger.ID, OrderID: f.order.ID, Rating: 5}, httperr.KindAuthorization},
		{"not delivered", SubmitFeedbackInput{UserID: f.user.ID, OrderID: pending.ID, Rating: 5}, httperr.KindValidation},
		{"unknown item", SubmitFeedbackInput{UserID: f.user.ID, OrderID: f.order.ID, Rating: 5, MenuItemID: &missingItem}, httperr.KindNotFound},
	}

	for _, tc := range cases {
		_, err := f.submit.Execute(ctx, tc.in)
		kind, ok := httperr.KindOf(err)
		require.True(t, ok, tc.name)
		assert.Equal(t, tc.kind, kind, tc.name)
	}
}

func TestFeedbackHiddenUntilApproved(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	fb := f.submitFor(t, f.user.ID, f.order, 5)

	before, err := f.list.ForItem(ctx, f.item.ID)
	require.NoError(t, err)
	assert.Empty(t, before.Feedback)
	assert.Zero(t, before.RatingSummary.TotalRatings)

	require.NoError(t, f.moderate.Execute(ctx, 1, fb.ID, true))

	after, err := f.list.ForItem(ctx, f.item.ID)
	require.NoError(t, err)
	require.Len(t, after.Feedback, 1)
	assert.Equal(t, f.user.FullName, after.Feedback[0].CustomerName)
	assert.Equal(t, 1, after.RatingSummary.TotalRatings)
	assert.Equal(t, 1, after.RatingSummary.Rating5Count)
	assert.Equal(t, "5.00", after.RatingSummary.AverageRating.StringFixed(2))
}

func TestRollupFollowsModeration(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	second := testutil.CreateDeliveredOrder(t, f.db, f.user.ID, f.item.ID, "ORD-20260101-0003")
	a := f.submitFor(t, f.user.ID, f.order, 5)
	b := f.submitFor(t, f.user.ID, second, 2)

	require.NoError(t, f.moderate.Execute(ctx, 1, a.ID, true))
	require.NoError(t, f.moderate.Execute(ctx, 1, b.ID, true))

	got, err := f.list.ForItem(ctx, f.item.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.RatingSummary.TotalRatings)
	assert.Equal(t, "3.50", got.RatingSummary.AverageRating.StringFixed(2))

	require.NoError(t, f.moderate.Execute(ctx, 1, a.ID, false))
	got, err = f.list.ForItem(ctx, f.item.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.RatingSummary.TotalRatings)
	assert.Equal(t, 1, got.RatingSummary.Rating2Count)
	assert.Zero(t, got.RatingSummary.Rating5Count)

	require.NoError(t, f.remove.Execute(ctx, 1, b.ID))
	got, err = f.list.ForItem(ctx, f.item.ID)
	require.NoError(t, err)
	assert.Zero(t, got.RatingSummary.TotalRatings)
	assert.True(t, got.RatingSummary.AverageRating.IsZero())
}

func TestModerateUnknownFeedback(t *testing.T) {
	f := newFixture(t)

	err := f.moderate.Execute(context.Background(), 1, 404, true)
	assert.True(t, httperr.IsBusiness(err, "feedback_not_found"))

	err = f.remove.Execute(context.Background(), 1, 404)
	assert.True(t, httperr.IsBusiness(err, "feedback_not_found"))
}

func TestEligibleOrdersExcludeReviewed(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	second := testutil.CreateDeliveredOrder(t, f.db, f.user.ID, f.item.ID, "ORD-20260101-0004")

	eligible, err := f.list.EligibleOrders(ctx, f.user.ID)
	require.NoError(t, err)
	assert.Len(t, eligible, 2)

	f.submitFor(t, f.user.ID, f.order, 3)

	eligible, err = f.list.EligibleOrders(ctx, f.user.ID)
	require.NoError(t, err)
	require.Len(t, eligible, 1)
	assert.Equal(t, second.ID, eligible[0].ID)
}

func TestMineAndAll(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	fb := f.submitFor(t, f.user.ID, f.order, 3)

	mine, err := f.list.Mine(ctx, f.user.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "ORD-20260101-0001", mine[0].OrderNumber)
	require.NotNil(t, mine[0].MenuItemName)
	assert.Equal(t, "Burger", *mine[0].MenuItemName)

	all, err := f.list.All(ctx, false)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, f.user.Email, all[0].CustomerEmail)

	approved, err := f.list.All(ctx, true)
	require.NoError(t, err)
	assert.Empty(t, approved)

	require.NoError(t, f.moderate.Execute(ctx, 1, fb.ID, true))
	approved, err = f.list.All(ctx, true)
	require.NoError(t, err)
	assert.Len(t, approved, 1)
}
