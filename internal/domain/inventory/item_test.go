package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItem_AvailableStock(t *testing.T) {
	item := &Item{Quantity: 12, ReservedQuantity: 5}
	assert.Equal(t, int64(7), item.AvailableStock())
}

func TestItem_StockStatus(t *testing.T) {
	tests := []struct {
		name     string
		quantity int64
		reserved int64
		want     StockStatus
	}{
		{"plenty available", 50, 5, StockStatusInStock},
		{"at threshold", 13, 3, StockStatusLowStock},
		{"below threshold", 8, 0, StockStatusLowStock},
		{"nothing available", 5, 5, StockStatusOutOfStock},
		{"zero stock", 0, 0, StockStatusOutOfStock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := &Item{Quantity: tt.quantity, ReservedQuantity: tt.reserved}
			assert.Equal(t, tt.want, item.StockStatus(DefaultLowStockThreshold))
		})
	}
}

func TestItem_Adjust(t *testing.T) {
	t.Run("add increases quantity", func(t *testing.T) {
		item := &Item{Quantity: 5}
		require.NoError(t, item.Adjust(AdjustmentAdd, 3))
		assert.Equal(t, int64(8), item.Quantity)
	})

	t.Run("remove floors at zero", func(t *testing.T) {
		item := &Item{Quantity: 2}
		require.NoError(t, item.Adjust(AdjustmentRemove, 10))
		assert.Equal(t, int64(0), item.Quantity)
	})

	t.Run("remove clamps to reserved quantity", func(t *testing.T) {
		item := &Item{Quantity: 5, ReservedQuantity: 3}
		require.NoError(t, item.Adjust(AdjustmentRemove, 4))
		// naive result is 1, raised to the 3 units already reserved
		assert.Equal(t, int64(3), item.Quantity)
	})

	t.Run("set below reserved clamps to reserved", func(t *testing.T) {
		item := &Item{Quantity: 20, ReservedQuantity: 8}
		require.NoError(t, item.Adjust(AdjustmentSet, 2))
		assert.Equal(t, int64(8), item.Quantity)
	})

	t.Run("set replaces quantity", func(t *testing.T) {
		item := &Item{Quantity: 20, ReservedQuantity: 8}
		require.NoError(t, item.Adjust(AdjustmentSet, 15))
		assert.Equal(t, int64(15), item.Quantity)
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		item := &Item{Quantity: 5}
		require.Error(t, item.Adjust(AdjustmentAdd, 0))
		require.Error(t, item.Adjust(AdjustmentRemove, -1))
		assert.Equal(t, int64(5), item.Quantity)
	})

	t.Run("rejects unknown mode", func(t *testing.T) {
		item := &Item{Quantity: 5}
		require.Error(t, item.Adjust(AdjustmentMode("multiply"), 2))
	})

	t.Run("remove never goes negative nor below reserved", func(t *testing.T) {
		for amount := int64(1); amount <= 20; amount++ {
			item := &Item{Quantity: 10, ReservedQuantity: 4}
			require.NoError(t, item.Adjust(AdjustmentRemove, amount))
			assert.GreaterOrEqual(t, item.Quantity, int64(0))
			assert.GreaterOrEqual(t, item.Quantity, item.ReservedQuantity)
		}
	})
}
