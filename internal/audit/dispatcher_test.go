package audit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/food-ordering/internal/models"
	"github.com/BruksfildServices01/food-ordering/internal/testutil"
)

func TestDispatcherWritesEvents(t *testing.T) {
	db := testutil.NewDB(t)
	d := NewDispatcher(New(db))

	actor, order := uint(7), uint(42)
	d.Dispatch(Event{
		ActorID:   &actor,
		ActorType: "admin",
		Action:    "order_status_updated",
		Entity:    "order",
		EntityID:  &order,
		Metadata:  map[string]string{"status": "delivered"},
	})
	d.Close()

	var rows []models.AuditLog
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, "order_status_updated", rows[0].Action)
	assert.Equal(t, uint(42), *rows[0].EntityID)
	assert.JSONEq(t, `{"status":"delivered"}`, rows[0].Metadata)
}

func TestNilDispatcherIsSafe(t *testing.T) {
	var d *Dispatcher
	assert.NotPanics(t, func() {
		d.Dispatch(Event{Action: "noop"})
		d.Close()
	})
}
