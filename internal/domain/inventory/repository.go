package inventory

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for inventory persistence
type Repository interface {
	// FindByID finds an inventory item by ID with its variant and
	// product preloaded
	FindByID(ctx context.Context, id uuid.UUID) (*Item, error)

	// FindAll returns every inventory row with variant and product
	// preloaded
	FindAll(ctx context.Context) ([]Item, error)

	// UpdateQuantity writes the quantity and updated timestamp of
	// exactly one item
	UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int64) error
}
