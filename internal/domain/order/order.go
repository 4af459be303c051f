package order

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopadmin/backend/internal/domain/partner"
	"github.com/shopadmin/backend/internal/domain/shared"
)

// Status represents the lifecycle state of a storefront order
type Status string

const (
	StatusPending   Status = "pending"
	StatusPaid      Status = "paid"
	StatusShipped   Status = "shipped"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
	StatusRefunded  Status = "refunded"
)

// AllStatuses lists every valid order status
func AllStatuses() []Status {
	return []Status{StatusPending, StatusPaid, StatusShipped, StatusDelivered, StatusCancelled, StatusRefunded}
}

// IsValid checks if the status is a valid Status
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusShipped, StatusDelivered, StatusCancelled, StatusRefunded:
		return true
	}
	return false
}

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// Order represents a storefront order as seen by the portal.
// Monetary fields and item rows are owned by the storefront; the portal
// treats them as read-only and may only change Status.
type Order struct {
	shared.BaseEntity
	Status         Status          `gorm:"type:varchar(16);not null;default:pending;index"`
	Subtotal       decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	DiscountAmount decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	TaxAmount      decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	TotalAmount    decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	CustomerID     *uuid.UUID      `gorm:"type:uuid;index"`

	Customer *partner.Customer `gorm:"foreignKey:CustomerID;references:ID"`
}

// TableName returns the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// Reference renders the short order reference shown in the portal,
// e.g. "#ORD-1A2B3C4D" from the first eight hex digits of the ID.
func (o *Order) Reference() string {
	id := o.ID.String()
	ref := ""
	for _, r := range id {
		if r == '-' {
			continue
		}
		ref += string(r)
		if len(ref) == 8 {
			break
		}
	}
	return "#ORD-" + toUpperASCII(ref)
}

func toUpperASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'a' <= c && c <= 'z' {
			b[i] = c - 'a' + 'A'
		}
	}
	return string(b)
}

// Item represents a single order line. The portal only ever counts these.
type Item struct {
	shared.BaseEntity
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	VariantID uuid.UUID       `gorm:"type:uuid;not null"`
	Quantity  int64           `gorm:"not null;default:1"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
}

// TableName returns the table name for GORM
func (Item) TableName() string {
	return "order_items"
}
