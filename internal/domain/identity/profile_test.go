package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatRole(t *testing.T) {
	tests := []struct {
		role string
		want string
	}{
		{"store_manager", "Store Manager"},
		{"user", "User"},
		{"admin", "Admin"},
		{"customer_support_agent", "Customer Support Agent"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatRole(tt.role))
		})
	}
}

func TestProfileFromUser(t *testing.T) {
	t.Run("uses display name and formatted role", func(t *testing.T) {
		user, err := NewUser("jamie@example.com", "s3cretpass", "Jamie Cole", "store_manager")
		require.NoError(t, err)

		p := ProfileFromUser(user)
		assert.Equal(t, user.ID.String(), p.UserID)
		assert.Equal(t, "Jamie Cole", p.DisplayName)
		assert.Equal(t, "store_manager", p.Role)
		assert.Equal(t, "Store Manager", p.DisplayRole)
	})

	t.Run("synthesizes display name from email when unset", func(t *testing.T) {
		user, err := NewUser("jamie@example.com", "s3cretpass", "", "staff")
		require.NoError(t, err)

		p := ProfileFromUser(user)
		assert.Equal(t, "jamie", p.DisplayName)
	})
}
