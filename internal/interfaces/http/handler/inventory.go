package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	appinventory "github.com/shopadmin/backend/internal/application/inventory"
	"github.com/shopadmin/backend/internal/interfaces/http/dto"
)

// InventoryHandler handles stock endpoints
type InventoryHandler struct {
	BaseHandler
	service *appinventory.Service
}

// NewInventoryHandler creates a new InventoryHandler
func NewInventoryHandler(service *appinventory.Service) *InventoryHandler {
	return &InventoryHandler{service: service}
}

// RegisterRoutes registers inventory routes
func (h *InventoryHandler) RegisterRoutes(_, protected *gin.RouterGroup) {
	protected.GET("/inventory", h.List)
	protected.POST("/inventory/:id/adjust", h.Adjust)
}

// InventoryListResponse bundles the stock list with its summary
type InventoryListResponse struct {
	Items []appinventory.ItemView `json:"items"`
	Stats appinventory.Stats      `json:"stats"`
}

// List returns every stock record sorted by product name with summary
// statistics
func (h *InventoryHandler) List(c *gin.Context) {
	items, stats, err := h.service.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, InventoryListResponse{Items: items, Stats: stats})
}

// Adjust applies a stock adjustment and returns the updated record
func (h *InventoryHandler) Adjust(c *gin.Context) {
	var idReq dto.IDRequest
	if err := c.ShouldBindUri(&idReq); err != nil {
		h.BadRequest(c, "Inventory ID must be a valid UUID")
		return
	}
	id, err := uuid.Parse(idReq.ID)
	if err != nil {
		h.BadRequest(c, "Inventory ID must be a valid UUID")
		return
	}

	var input appinventory.AdjustInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BadRequest(c, "Adjustment mode and amount are required")
		return
	}

	view, err := h.service.Adjust(c.Request.Context(), id, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, view)
}
