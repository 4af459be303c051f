package identity

import (
	"github.com/shopadmin/backend/internal/domain/identity"
	"github.com/shopadmin/backend/internal/infrastructure/auth"
)

// LoginInput carries staff login credentials
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResult is returned on successful authentication
type LoginResult struct {
	Tokens  *auth.TokenPair  `json:"tokens"`
	Profile identity.Profile `json:"profile"`
}
