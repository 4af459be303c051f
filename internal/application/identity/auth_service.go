package identity

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/shopadmin/backend/internal/domain/identity"
	"github.com/shopadmin/backend/internal/domain/shared"
	"github.com/shopadmin/backend/internal/infrastructure/auth"
)

// AuthService handles staff sign-in and sign-out
type AuthService struct {
	users     identity.UserRepository
	jwt       *auth.JWTService
	blacklist auth.TokenBlacklist
	logger    *zap.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(users identity.UserRepository, jwt *auth.JWTService, blacklist auth.TokenBlacklist, logger *zap.Logger) *AuthService {
	return &AuthService{
		users:     users,
		jwt:       jwt,
		blacklist: blacklist,
		logger:    logger.Named("auth_service"),
	}
}

// Login verifies credentials and issues a token pair. Unknown emails and
// wrong passwords produce the same error so the response does not reveal
// which accounts exist.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	user, err := s.users.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrInvalidCredentials
		}
		s.logger.Error("Failed to look up staff user", zap.Error(err))
		return nil, err
	}

	if !user.CanLogin() || !user.VerifyPassword(input.Password) {
		return nil, shared.ErrInvalidCredentials
	}

	tokens, err := s.jwt.GenerateTokenPair(auth.GenerateTokenInput{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	})
	if err != nil {
		s.logger.Error("Failed to generate token pair", zap.Error(err))
		return nil, err
	}

	user.RecordLogin()
	if err := s.users.Save(ctx, user); err != nil {
		// Login still succeeds when the timestamp write fails
		s.logger.Warn("Failed to record login time",
			zap.String("user_id", user.ID.String()),
			zap.Error(err))
	}

	s.logger.Info("Staff login", zap.String("user_id", user.ID.String()))
	return &LoginResult{
		Tokens:  tokens,
		Profile: identity.ProfileFromUser(user),
	}, nil
}

// Logout revokes the presented access token. Revocation is best effort:
// an invalid or already-expired token is treated as a completed logout,
// so the operation is safe to repeat.
func (s *AuthService) Logout(ctx context.Context, accessToken string) {
	if accessToken == "" {
		return
	}

	claims, err := s.jwt.ValidateAccessToken(accessToken)
	if err != nil {
		s.logger.Debug("Logout with unusable token", zap.Error(err))
		return
	}

	if err := s.blacklist.AddToBlacklist(ctx, claims.ID, claims.GetRemainingTTL()); err != nil {
		s.logger.Warn("Failed to blacklist token on logout",
			zap.String("user_id", claims.UserID),
			zap.Error(err))
		return
	}

	s.logger.Info("Staff logout", zap.String("user_id", claims.UserID))
}

// Refresh exchanges a refresh token for a new token pair
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*auth.TokenPair, error) {
	claims, err := s.jwt.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, shared.ErrUnauthorized
	}

	userID, err := claims.GetUserUUID()
	if err != nil {
		return nil, shared.ErrUnauthorized
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, shared.ErrUnauthorized
	}
	if !user.CanLogin() {
		return nil, shared.ErrForbidden
	}

	return s.jwt.GenerateTokenPair(auth.GenerateTokenInput{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	})
}

// IsRevoked reports whether a token's JTI has been blacklisted
func (s *AuthService) IsRevoked(ctx context.Context, jti string) bool {
	revoked, err := s.blacklist.IsBlacklisted(ctx, jti)
	if err != nil {
		// Fail open: a blacklist outage must not lock everyone out
		s.logger.Warn("Blacklist check failed", zap.Error(err))
		return false
	}
	return revoked
}
