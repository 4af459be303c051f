package handler

import (
	"github.com/gin-gonic/gin"

	appdashboard "github.com/shopadmin/backend/internal/application/dashboard"
)

// DashboardHandler handles the dashboard summary endpoint
type DashboardHandler struct {
	BaseHandler
	service *appdashboard.Service
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(service *appdashboard.Service) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// RegisterRoutes registers dashboard routes
func (h *DashboardHandler) RegisterRoutes(_, protected *gin.RouterGroup) {
	protected.GET("/dashboard", h.Summary)
}

// Summary returns every dashboard tile plus the recent order list
func (h *DashboardHandler) Summary(c *gin.Context) {
	summary, err := h.service.Summarize(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, summary)
}
