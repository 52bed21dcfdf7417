package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreLifecycle(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Hour)

	sid, err := store.Create(ctx, Identity{SubjectID: 3, Role: RoleUser, Username: "ana"})
	require.NoError(t, err)
	require.NotEmpty(t, sid)

	id, ok, err := store.Get(ctx, sid)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, uint(3), id.SubjectID)

	require.NoError(t, store.Delete(ctx, sid))
	_, ok, err = store.Get(ctx, sid)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStoreExpiry(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Minute)
	start := time.Now()
	store.now = func() time.Time { return start }

	sid, err := store.Create(ctx, Identity{SubjectID: 3, Role: RoleUser})
	require.NoError(t, err)

	store.now = func() time.Time { return start.Add(2 * time.Minute) }
	_, ok, err := store.Get(ctx, sid)
	require.NoError(t, err)
	assert.False(t, ok)
}
