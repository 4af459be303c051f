package handler

import (
	"github.com/gin-gonic/gin"

	appsettings "github.com/shopadmin/backend/internal/application/settings"
)

// SettingsHandler handles portal settings endpoints
type SettingsHandler struct {
	BaseHandler
	service *appsettings.Service
}

// NewSettingsHandler creates a new SettingsHandler
func NewSettingsHandler(service *appsettings.Service) *SettingsHandler {
	return &SettingsHandler{service: service}
}

// RegisterRoutes registers settings routes
func (h *SettingsHandler) RegisterRoutes(_, protected *gin.RouterGroup) {
	protected.GET("/settings/main-site-url", h.GetMainSiteURL)
	protected.PUT("/settings/main-site-url", h.SetMainSiteURL)
}

// MainSiteURLRequest carries the storefront URL to store
type MainSiteURLRequest struct {
	URL string `json:"url"`
}

// MainSiteURLResponse carries the configured storefront URL
type MainSiteURLResponse struct {
	URL string `json:"url"`
}

// GetMainSiteURL returns the configured storefront URL, empty when unset
func (h *SettingsHandler) GetMainSiteURL(c *gin.Context) {
	value, err := h.service.MainSiteURL(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, MainSiteURLResponse{URL: value})
}

// SetMainSiteURL stores the storefront URL. An empty URL clears the
// setting.
func (h *SettingsHandler) SetMainSiteURL(c *gin.Context) {
	var req MainSiteURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Request body must be valid JSON")
		return
	}

	if err := h.service.SetMainSiteURL(c.Request.Context(), req.URL); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, MainSiteURLResponse{URL: req.URL})
}
