package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrderStatus(t *testing.T) {
	st, err := ParseOrderStatus("shipped")
	require.NoError(t, err)
	assert.Equal(t, OrderStatusShipped, st)

	st, err = ParseOrderStatus(" CANCELLED ")
	require.NoError(t, err)
	assert.Equal(t, OrderStatusCancelled, st)

	_, err = ParseOrderStatus("lost")
	assert.Error(t, err)
}

func TestOrderStatus_IsOpen(t *testing.T) {
	open := map[OrderStatus]bool{
		OrderStatusPending:    true,
		OrderStatusConfirmed:  true,
		OrderStatusProcessing: true,
		OrderStatusShipped:    true,
		OrderStatusDelivered:  false,
		OrderStatusCancelled:  false,
	}
	for st, want := range open {
		assert.Equal(t, want, st.IsOpen(), st)
	}
}
