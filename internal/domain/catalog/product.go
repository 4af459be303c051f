package catalog

import (
	"github.com/shopadmin/backend/internal/domain/shared"
)

// Product represents a storefront product. The portal reads products only
// as joined context for inventory and order rows; it never edits them.
type Product struct {
	shared.BaseEntity
	Name     string `gorm:"not null"`
	Category string
	IsActive bool `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}
