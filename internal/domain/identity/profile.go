package identity

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Profile is the resolved identity shown in the portal chrome.
// It is always fully populated: callers that fail to resolve a display
// record synthesize one from the account email instead of leaving gaps.
type Profile struct {
	UserID      string `json:"user_id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
	DisplayRole string `json:"display_role"`
}

var roleTitleCaser = cases.Title(language.English)

// FormatRole renders a snake_case role token for display:
// "store_manager" becomes "Store Manager". Pure function.
func FormatRole(role string) string {
	if role == "" {
		return ""
	}
	parts := strings.Split(role, "_")
	for i, p := range parts {
		parts[i] = roleTitleCaser.String(p)
	}
	return strings.Join(parts, " ")
}

// ProfileFromUser builds a complete profile from a staff account
func ProfileFromUser(u *User) Profile {
	return Profile{
		UserID:      u.ID.String(),
		Email:       u.Email,
		DisplayName: u.FallbackDisplayName(),
		Role:        u.Role,
		DisplayRole: FormatRole(u.Role),
	}
}
