package identity

import (
	"context"

	"github.com/google/uuid"
)

// UserRepository defines the interface for staff user persistence
type UserRepository interface {
	// FindByID finds a staff user by ID
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)

	// FindByEmail finds a staff user by email (lowercased)
	FindByEmail(ctx context.Context, email string) (*User, error)

	// Save creates or updates a staff user
	Save(ctx context.Context, user *User) error
}
