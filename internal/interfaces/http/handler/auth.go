package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appidentity "github.com/shopadmin/backend/internal/application/identity"
	"github.com/shopadmin/backend/internal/infrastructure/config"
	"github.com/shopadmin/backend/internal/infrastructure/logger"
	"github.com/shopadmin/backend/internal/interfaces/http/middleware"
)

// AuthHandler handles staff session endpoints
type AuthHandler struct {
	BaseHandler
	authService    *appidentity.AuthService
	profileService *appidentity.ProfileService
	cookie         config.CookieConfig
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *appidentity.AuthService, profileService *appidentity.ProfileService, cookie config.CookieConfig) *AuthHandler {
	return &AuthHandler{
		authService:    authService,
		profileService: profileService,
		cookie:         cookie,
	}
}

// RegisterRoutes registers auth routes. Login and refresh are public;
// logout and the profile endpoint require a session.
func (h *AuthHandler) RegisterRoutes(public, protected *gin.RouterGroup) {
	public.POST("/auth/login", h.Login)
	public.POST("/auth/refresh", h.Refresh)
	protected.POST("/auth/logout", h.Logout)
	protected.GET("/auth/me", h.Me)
}

// RefreshRequest carries the refresh token
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// Login authenticates a staff member and opens a browser session
func (h *AuthHandler) Login(c *gin.Context) {
	var input appidentity.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BadRequest(c, "Email and password are required")
		return
	}

	result, err := h.authService.Login(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.setSessionCookie(c, result.Tokens.AccessToken, result.Tokens.AccessTokenExpiresAt)
	h.Success(c, result)
}

// Logout revokes the current session token and clears the cookie.
// Logout always succeeds from the client's point of view.
func (h *AuthHandler) Logout(c *gin.Context) {
	if token := h.sessionToken(c); token != "" {
		h.authService.Logout(c.Request.Context(), token)
	}

	if userID, err := getUserID(c); err == nil {
		h.profileService.Invalidate(c.Request.Context(), userID)
	}

	h.clearSessionCookie(c)
	h.NoContent(c)
}

// Refresh exchanges a refresh token for a new token pair
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Refresh token is required")
		return
	}

	pair, err := h.authService.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.setSessionCookie(c, pair.AccessToken, pair.AccessTokenExpiresAt)
	h.Success(c, pair)
}

// Me returns the profile of the authenticated staff member. Profile
// resolution never fails; a fallback profile is derived from the
// session when the staff record cannot be loaded.
func (h *AuthHandler) Me(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "No active session")
		return
	}

	email := middleware.GetSessionEmail(c)
	profile := h.profileService.LoadProfile(c.Request.Context(), userID, email)
	h.Success(c, profile)
}

func (h *AuthHandler) sessionToken(c *gin.Context) string {
	if token, err := c.Cookie(h.cookie.Name); err == nil && token != "" {
		return token
	}
	header := c.GetHeader(middleware.AuthHeaderKey)
	if len(header) > len(middleware.BearerPrefix) && header[:len(middleware.BearerPrefix)] == middleware.BearerPrefix {
		return header[len(middleware.BearerPrefix):]
	}
	return ""
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string, expiresAt time.Time) {
	maxAge := int(time.Until(expiresAt).Seconds())
	if maxAge < 0 {
		maxAge = 0
	}
	c.SetSameSite(parseSameSite(h.cookie.SameSite))
	c.SetCookie(h.cookie.Name, token, maxAge, h.cookie.Path, h.cookie.Domain, h.cookie.Secure, true)

	logger.GetGinLogger(c).Debug("Session cookie set", zap.Time("expires_at", expiresAt))
}

func (h *AuthHandler) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(parseSameSite(h.cookie.SameSite))
	c.SetCookie(h.cookie.Name, "", -1, h.cookie.Path, h.cookie.Domain, h.cookie.Secure, true)
}

func parseSameSite(mode string) http.SameSite {
	switch mode {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
