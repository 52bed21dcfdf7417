package audit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/food-ordering/internal/models"
	"github.com/BruksfildServices01/food-ordering/internal/testutil"
)

func TestListFiltersAndPages(t *testing.T) {
	db := testutil.NewDB(t)
	l := New(db)
	ctx := context.Background()

	day := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	rows := []models.AuditLog{
		{ActorType: "admin", Action: "order_status_updated", Entity: "order", CreatedAt: day},
		{ActorType: "admin", Action: "order_status_updated", Entity: "order", CreatedAt: day.Add(time.Hour)},
		{ActorType: "admin", Action: "category_created", Entity: "category", CreatedAt: day.AddDate(0, 0, 1)},
	}
	require.NoError(t, db.Create(&rows).Error)

	page, err := l.List(ctx, Query{Action: "order_status_updated"})
	require.NoError(t, err)
	assert.EqualValues(t, 2, page.Total)
	assert.Equal(t, DefaultPageSize, page.Limit)
	require.Len(t, page.Logs, 2)
	assert.True(t, page.Logs[0].CreatedAt.After(page.Logs[1].CreatedAt))

	page, err = l.List(ctx, Query{From: day.AddDate(0, 0, 1).Truncate(24 * time.Hour)})
	require.NoError(t, err)
	require.Len(t, page.Logs, 1)
	assert.Equal(t, "category_created", page.Logs[0].Action)

	page, err = l.List(ctx, Query{Page: 2, Limit: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 3, page.Total)
	assert.Len(t, page.Logs, 1)

	page, err = l.List(ctx, Query{Limit: 10_000})
	require.NoError(t, err)
	assert.Equal(t, DefaultPageSize, page.Limit)
}
