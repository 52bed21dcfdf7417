package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductionLoggerWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, true)

	l.Info("order placed", "order_id", 7)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "order placed", line["msg"])
	assert.EqualValues(t, 7, line["order_id"])
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	var buf bytes.Buffer
	base := NewWithWriter(&buf, false)

	assert.Same(t, base, FromContext(context.Background()))

	scoped := base.With("request_id", "abc")
	ctx := WithLogger(context.Background(), scoped)
	assert.Same(t, scoped, FromContext(ctx))
}
