package catalog

import (
	"context"
	"time"
)

// ProductRepository defines the interface for product reads. The
// portal only needs catalog counts for its dashboard tiles.
type ProductRepository interface {
	// Count counts active products
	Count(ctx context.Context) (int64, error)

	// CountCreatedBetween counts active products created in [from, to)
	CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error)
}
