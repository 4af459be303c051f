package inventory

import (
	"github.com/google/uuid"

	"github.com/shopadmin/backend/internal/domain/catalog"
	"github.com/shopadmin/backend/internal/domain/shared"
)

// DefaultLowStockThreshold is the available-stock level at or below which
// an item is flagged as low stock.
const DefaultLowStockThreshold int64 = 10

// StockStatus classifies an item's available stock level
type StockStatus string

const (
	StockStatusInStock    StockStatus = "in_stock"
	StockStatusLowStock   StockStatus = "low_stock"
	StockStatusOutOfStock StockStatus = "out_of_stock"
)

// AdjustmentMode selects how an adjustment amount is applied
type AdjustmentMode string

const (
	AdjustmentAdd    AdjustmentMode = "add"
	AdjustmentRemove AdjustmentMode = "remove"
	AdjustmentSet    AdjustmentMode = "set"
)

// IsValid checks if the mode is a known AdjustmentMode
func (m AdjustmentMode) IsValid() bool {
	switch m {
	case AdjustmentAdd, AdjustmentRemove, AdjustmentSet:
		return true
	}
	return false
}

// Item represents stock on hand for one product variant.
// ReservedQuantity is held for open orders and is never edited here;
// the invariant Quantity >= ReservedQuantity is enforced on every adjustment.
type Item struct {
	shared.BaseEntity
	VariantID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Quantity         int64     `gorm:"not null;default:0"`
	ReservedQuantity int64     `gorm:"not null;default:0"`

	Variant *catalog.Variant `gorm:"foreignKey:VariantID;references:ID"`
}

// TableName returns the table name for GORM
func (Item) TableName() string {
	return "inventory"
}

// AvailableStock returns stock not reserved for open orders
func (i *Item) AvailableStock() int64 {
	return i.Quantity - i.ReservedQuantity
}

// StockStatus classifies the item against the given low-stock threshold
func (i *Item) StockStatus(threshold int64) StockStatus {
	available := i.AvailableStock()
	switch {
	case available <= 0:
		return StockStatusOutOfStock
	case available <= threshold:
		return StockStatusLowStock
	default:
		return StockStatusInStock
	}
}

// Adjust applies an adjustment to the quantity. Amount must be positive.
// A result that would drop below ReservedQuantity is clamped up to it,
// never rejected: reserved stock belongs to orders already taken.
func (i *Item) Adjust(mode AdjustmentMode, amount int64) error {
	if amount <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Adjustment amount must be a positive number")
	}

	var next int64
	switch mode {
	case AdjustmentAdd:
		next = i.Quantity + amount
	case AdjustmentRemove:
		next = i.Quantity - amount
		if next < 0 {
			next = 0
		}
	case AdjustmentSet:
		next = amount
	default:
		return shared.NewDomainError("INVALID_ADJUSTMENT", "Unknown adjustment mode")
	}

	if next < i.ReservedQuantity {
		next = i.ReservedQuantity
	}

	i.Quantity = next
	i.Touch()
	return nil
}
