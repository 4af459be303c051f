package partner

import (
	"strings"

	"github.com/shopadmin/backend/internal/domain/shared"
)

// Customer represents a storefront customer. Owned by the storefront;
// the portal reads customers for order joins and the customer list.
type Customer struct {
	shared.BaseEntity
	Email    string `gorm:"uniqueIndex;not null"`
	FullName string
	Phone    string
}

// TableName returns the table name for GORM
func (Customer) TableName() string {
	return "customers"
}

// DisplayName returns the best available human-readable name,
// falling back to the email address, then "Guest".
func (c *Customer) DisplayName() string {
	if c == nil {
		return "Guest"
	}
	if name := strings.TrimSpace(c.FullName); name != "" {
		return name
	}
	if c.Email != "" {
		return c.Email
	}
	return "Guest"
}

// Initials derives up to two uppercase initials from the display name
func (c *Customer) Initials() string {
	name := c.DisplayName()
	fields := strings.Fields(name)
	var b strings.Builder
	for _, f := range fields {
		b.WriteString(strings.ToUpper(f[:1]))
		if b.Len() >= 2 {
			break
		}
	}
	if b.Len() == 0 {
		return "G"
	}
	return b.String()
}
