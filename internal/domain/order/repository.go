package order

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Repository defines the interface for order reads and the single
// portal-writable field (status).
type Repository interface {
	// FindByID finds an order by ID with its customer preloaded
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)

	// FindRecent returns the newest orders first, customer preloaded,
	// capped at limit rows
	FindRecent(ctx context.Context, limit int) ([]Order, error)

	// CountItems counts the line items belonging to one order
	CountItems(ctx context.Context, orderID uuid.UUID) (int64, error)

	// FindItems returns the line items belonging to one order
	FindItems(ctx context.Context, orderID uuid.UUID) ([]Item, error)

	// UpdateStatus writes the status of exactly one order
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error

	// Count counts all orders
	Count(ctx context.Context) (int64, error)

	// CountByCustomer counts orders placed by one customer
	CountByCustomer(ctx context.Context, customerID uuid.UUID) (int64, error)

	// CountCreatedBetween counts orders created in [from, to)
	CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error)

	// SumRevenueBetween sums total_amount of orders with the given
	// status created in [from, to)
	SumRevenueBetween(ctx context.Context, status Status, from, to time.Time) (decimal.Decimal, error)

	// SumRevenueByCustomer sums total_amount of one customer's orders
	SumRevenueByCustomer(ctx context.Context, customerID uuid.UUID) (decimal.Decimal, error)
}
