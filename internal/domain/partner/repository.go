package partner

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/shopadmin/backend/internal/domain/shared"
)

// CustomerRepository defines the interface for customer reads.
// The portal never creates or mutates customers.
type CustomerRepository interface {
	// FindByID finds a customer by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Customer, error)

	// FindAll lists customers per the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Customer, error)

	// Count counts all customers
	Count(ctx context.Context) (int64, error)

	// CountCreatedBetween counts customers created in [from, to)
	CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error)
}
