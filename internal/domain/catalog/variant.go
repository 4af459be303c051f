package catalog

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopadmin/backend/internal/domain/shared"
)

// Variant represents a sellable variant of a product (SKU + price)
type Variant struct {
	shared.BaseEntity
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index"`
	SKU       string          `gorm:"uniqueIndex;not null"`
	Price     decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`

	Product *Product `gorm:"foreignKey:ProductID;references:ID"`
}

// TableName returns the table name for GORM
func (Variant) TableName() string {
	return "product_variants"
}
