package order_test

import (
	"testing"

	"logistics/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCost(t *testing.T) {
	t.Run("total equals the sum of all components", func(t *testing.T) {
		cases := []struct {
			name                                        string
			freight, insurance, admin, thermoseal, iva float64
		}{
			{"typical", 10000, 300, 500, 0, 2268},
			{"with thermoseal", 8000, 120, 400, 800, 1957.2},
			{"all zero", 0, 0, 0, 0, 0},
			{"fractional", 1234.56, 78.9, 61.728, 0, 288.78},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				c, err := order.NewCost(tc.freight, tc.insurance, tc.admin, tc.thermoseal, tc.iva)
				require.NoError(t, err)
				assert.Equal(t, tc.freight+tc.insurance+tc.admin+tc.thermoseal+tc.iva, c.Total())
			})
		}
	})

	t.Run("should reject negative components", func(t *testing.T) {
		_, err := order.NewCost(-1, 0, 0, 0, 0)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "freight")
	})

	t.Run("zero cost is valid", func(t *testing.T) {
		c, err := order.NewCost(0, 0, 0, 0, 0)
		require.NoError(t, err)
		assert.Zero(t, c.Total())
	})
}

func TestStatus(t *testing.T) {
	t.Run("string representations", func(t *testing.T) {
		assert.Equal(t, "PendingPickup", order.PendingPickup.String())
		assert.Equal(t, "Delivered", order.Delivered.String())
		assert.Equal(t, "Unknown", order.Status(99).String())
	})

	t.Run("validate rejects unknown", func(t *testing.T) {
		require.Error(t, order.Unknown.Validate())
		require.Error(t, order.Status(99).Validate())
		require.NoError(t, order.InTransit.Validate())
	})

	t.Run("delivered is final", func(t *testing.T) {
		assert.True(t, order.Delivered.IsFinal())
		assert.False(t, order.AtAgency.IsFinal())
		assert.False(t, order.Delivered.CanTransitionTo(order.InTransit))
	})

	t.Run("transition table", func(t *testing.T) {
		assert.True(t, order.PendingPickup.CanTransitionTo(order.PickedUp))
		assert.True(t, order.PendingPickup.CanTransitionTo(order.InTransit))
		assert.False(t, order.PendingPickup.CanTransitionTo(order.Delivered))
		assert.True(t, order.InTransit.CanTransitionTo(order.AtAgency))
		assert.False(t, order.AtAgency.CanTransitionTo(order.InTransit))
	})
}
