package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shopadmin/backend/internal/infrastructure/auth"
	"github.com/shopadmin/backend/internal/infrastructure/logger"
	"github.com/shopadmin/backend/internal/interfaces/http/dto"
)

// Session context keys
const (
	SessionClaimsKey = "session_claims"
	SessionUserIDKey = "session_user_id"
	SessionEmailKey  = "session_email"
	SessionRoleKey   = "session_role"
	AuthHeaderKey    = "Authorization"
	BearerPrefix     = "Bearer "
)

// RevocationChecker reports whether a token JTI has been revoked by logout.
// Implemented by the identity application service.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, jti string) bool
}

// SessionConfig holds configuration for the session guard
type SessionConfig struct {
	// JWTService validates access tokens
	JWTService *auth.JWTService
	// Revocations is optional; nil skips the revocation check
	Revocations RevocationChecker
	// CookieName is the session cookie carrying the access token
	CookieName string
	// LoginPath is where unauthenticated browser navigation is redirected
	LoginPath string
	// Logger for middleware logging
	Logger *zap.Logger
}

// SessionGuard authenticates every request behind it. The access token is
// read from the session cookie first, then from the Authorization header.
// Unauthenticated browser navigation is redirected to the login page with
// the original path preserved; API clients get a 401 JSON response.
func SessionGuard(cfg SessionConfig) gin.HandlerFunc {
	if cfg.LoginPath == "" {
		cfg.LoginPath = "/login"
	}

	return func(c *gin.Context) {
		token := extractToken(c, cfg.CookieName)
		if token == "" {
			rejectSession(c, cfg, dto.ErrCodeSessionAbsent, "No active session")
			return
		}

		claims, err := cfg.JWTService.ValidateAccessToken(token)
		if err != nil {
			rejectSession(c, cfg, sessionErrorCode(err), "Session is no longer valid")
			return
		}

		if cfg.Revocations != nil && claims.ID != "" && cfg.Revocations.IsRevoked(c.Request.Context(), claims.ID) {
			rejectSession(c, cfg, dto.ErrCodeTokenRevoked, "Session has been revoked")
			return
		}

		c.Set(SessionClaimsKey, claims)
		c.Set(SessionUserIDKey, claims.UserID)
		c.Set(SessionEmailKey, claims.Email)
		c.Set(SessionRoleKey, claims.Role)

		ctx := c.Request.Context()
		log := logger.FromContext(ctx)
		ctx, _ = logger.WithUserID(ctx, log, claims.UserID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// extractToken reads the access token from the session cookie, falling
// back to a Bearer Authorization header for API clients.
func extractToken(c *gin.Context, cookieName string) string {
	if cookieName != "" {
		if token, err := c.Cookie(cookieName); err == nil && token != "" {
			return token
		}
	}
	header := c.GetHeader(AuthHeaderKey)
	if strings.HasPrefix(header, BearerPrefix) {
		return strings.TrimPrefix(header, BearerPrefix)
	}
	return ""
}

// rejectSession ends the request. Browser navigation goes back to the
// login page with the original destination preserved in the redirect
// query parameter; everything else gets a JSON 401.
func rejectSession(c *gin.Context, cfg SessionConfig, code, message string) {
	if cfg.Logger != nil {
		cfg.Logger.Debug("Session rejected",
			zap.String("code", code),
			zap.String("path", c.Request.URL.Path),
		)
	}

	if isBrowserNavigation(c) {
		target := c.Request.URL.Path
		if q := c.Request.URL.RawQuery; q != "" {
			target += "?" + q
		}
		location := cfg.LoginPath + "?redirect=" + url.QueryEscape(target)
		c.Redirect(http.StatusFound, location)
		c.Abort()
		return
	}

	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(code, message))
}

// isBrowserNavigation detects a top-level page load as opposed to an API
// call. Only GET requests that prefer HTML are redirected.
func isBrowserNavigation(c *gin.Context) bool {
	if c.Request.Method != http.MethodGet {
		return false
	}
	accept := c.GetHeader("Accept")
	return strings.Contains(accept, "text/html")
}

func sessionErrorCode(err error) string {
	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		return dto.ErrCodeTokenExpired
	case errors.Is(err, auth.ErrInvalidTokenType):
		return dto.ErrCodeTokenInvalid
	default:
		return dto.ErrCodeTokenInvalid
	}
}

// GetSessionClaims retrieves the validated claims from gin.Context
func GetSessionClaims(c *gin.Context) *auth.Claims {
	if claims, exists := c.Get(SessionClaimsKey); exists {
		if sessionClaims, ok := claims.(*auth.Claims); ok {
			return sessionClaims
		}
	}
	return nil
}

// GetSessionUserID retrieves the user ID from the session in context
func GetSessionUserID(c *gin.Context) string {
	return c.GetString(SessionUserIDKey)
}

// GetSessionEmail retrieves the email from the session in context
func GetSessionEmail(c *gin.Context) string {
	return c.GetString(SessionEmailKey)
}

// GetSessionRole retrieves the role from the session in context
func GetSessionRole(c *gin.Context) string {
	return c.GetString(SessionRoleKey)
}
