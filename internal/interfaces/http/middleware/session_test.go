package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopadmin/backend/internal/infrastructure/auth"
	"github.com/shopadmin/backend/internal/infrastructure/config"
)

type staticRevocations struct {
	revoked map[string]bool
}

func (s *staticRevocations) IsRevoked(_ context.Context, jti string) bool {
	return s.revoked[jti]
}

func newSessionTestService(accessTTL time.Duration) *auth.JWTService {
	return auth.NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-key-for-session-guard-32",
		AccessTokenExpiration:  accessTTL,
		RefreshTokenExpiration: time.Hour,
		Issuer:                 "test",
	})
}

func issueToken(t *testing.T, svc *auth.JWTService) string {
	t.Helper()
	pair, err := svc.GenerateTokenPair(auth.GenerateTokenInput{
		UserID: uuid.New(),
		Email:  "staff@example.com",
		Role:   "admin",
	})
	require.NoError(t, err)
	return pair.AccessToken
}

func newGuardedRouter(cfg SessionConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(SessionGuard(cfg))
	r.GET("/orders", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"email": GetSessionEmail(c),
			"role":  GetSessionRole(c),
		})
	})
	return r
}

func TestSessionGuard(t *testing.T) {
	svc := newSessionTestService(time.Minute)
	cfg := SessionConfig{
		JWTService: svc,
		CookieName: "admin_session",
		LoginPath:  "/login",
	}

	t.Run("missing token returns 401 for API clients", func(t *testing.T) {
		r := newGuardedRouter(cfg)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/orders", nil)
		req.Header.Set("Accept", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "SESSION_ABSENT")
	})

	t.Run("missing token redirects browser navigation to login", func(t *testing.T) {
		r := newGuardedRouter(cfg)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/orders?status=paid", nil)
		req.Header.Set("Accept", "text/html,application/xhtml+xml")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/login?redirect=%2Forders%3Fstatus%3Dpaid", w.Header().Get("Location"))
	})

	t.Run("non-GET requests are never redirected", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		r := gin.New()
		r.Use(SessionGuard(cfg))
		r.POST("/orders", func(c *gin.Context) { c.Status(http.StatusOK) })

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/orders", nil)
		req.Header.Set("Accept", "text/html")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid cookie token passes with session context", func(t *testing.T) {
		r := newGuardedRouter(cfg)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/orders", nil)
		req.AddCookie(&http.Cookie{Name: "admin_session", Value: issueToken(t, svc)})
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "staff@example.com")
		assert.Contains(t, w.Body.String(), "admin")
	})

	t.Run("valid bearer token passes", func(t *testing.T) {
		r := newGuardedRouter(cfg)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/orders", nil)
		req.Header.Set("Authorization", "Bearer "+issueToken(t, svc))
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		expired := newSessionTestService(-time.Minute)
		r := newGuardedRouter(SessionConfig{
			JWTService: expired,
			CookieName: "admin_session",
			LoginPath:  "/login",
		})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/orders", nil)
		req.AddCookie(&http.Cookie{Name: "admin_session", Value: issueToken(t, expired)})
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "TOKEN_EXPIRED")
	})

	t.Run("revoked token is rejected", func(t *testing.T) {
		token := issueToken(t, svc)
		claims, err := svc.ValidateAccessToken(token)
		require.NoError(t, err)

		guarded := cfg
		guarded.Revocations = &staticRevocations{revoked: map[string]bool{claims.ID: true}}

		r := newGuardedRouter(guarded)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/orders", nil)
		req.AddCookie(&http.Cookie{Name: "admin_session", Value: token})
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "TOKEN_REVOKED")
	})
}
