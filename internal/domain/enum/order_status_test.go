package enum

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderStatusString(t *testing.T) {
	assert.Equal(t, "Pending", OrderStatusPending.String())
	assert.Equal(t, "Completed", OrderStatusCompleted.String())
	assert.Equal(t, "Cancelled", OrderStatusCancelled.String())
}

func TestOrderStatusIsTerminal(t *testing.T) {
	assert.False(t, OrderStatusPending.IsTerminal())
	assert.True(t, OrderStatusCompleted.IsTerminal())
	assert.True(t, OrderStatusCancelled.IsTerminal())
}

func TestOrderStatusJSON(t *testing.T) {
	raw, err := json.Marshal(OrderStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, `"Completed"`, string(raw))

	var fromName OrderStatus
	require.NoError(t, json.Unmarshal([]byte(`"Cancelled"`), &fromName))
	assert.Equal(t, OrderStatusCancelled, fromName)

	var fromInt OrderStatus
	require.NoError(t, json.Unmarshal([]byte(`1`), &fromInt))
	assert.Equal(t, OrderStatusCompleted, fromInt)
}

func TestOrderStatusRejectsUnknownValues(t *testing.T) {
	var s OrderStatus

	require.Error(t, json.Unmarshal([]byte(`7`), &s))
	require.Error(t, json.Unmarshal([]byte(`-1`), &s))
	require.Error(t, json.Unmarshal([]byte(`"Shipped"`), &s))
	assert.Equal(t, OrderStatusPending, s)

	require.Error(t, s.Scan(int64(7)))
	require.Error(t, s.Scan("Pending"))

	// String never panics on a corrupt value
	assert.Equal(t, "OrderStatus(9)", OrderStatus(9).String())
}

func TestOrderStatusScan(t *testing.T) {
	var s OrderStatus
	require.NoError(t, s.Scan(int64(2)))
	assert.Equal(t, OrderStatusCancelled, s)

	require.NoError(t, s.Scan(nil))
	assert.Equal(t, OrderStatusPending, s)
}
