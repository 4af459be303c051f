package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	apporder "github.com/shopadmin/backend/internal/application/order"
	"github.com/shopadmin/backend/internal/domain/order"
	"github.com/shopadmin/backend/internal/interfaces/http/dto"
)

// OrderHandler handles order endpoints
type OrderHandler struct {
	BaseHandler
	syncService *apporder.SyncService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(syncService *apporder.SyncService) *OrderHandler {
	return &OrderHandler{syncService: syncService}
}

// RegisterRoutes registers order routes
func (h *OrderHandler) RegisterRoutes(_, protected *gin.RouterGroup) {
	protected.GET("/orders", h.List)
	protected.GET("/orders/:id", h.Detail)
	protected.PATCH("/orders/:id/status", h.SetStatus)
}

// OrderListResponse bundles the order collection with its summary
type OrderListResponse struct {
	Orders []apporder.OrderView `json:"orders"`
	Stats  apporder.Stats       `json:"stats"`
}

// SetStatusRequest carries the target order status
type SetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// List reloads the order collection from the store and returns it with
// summary statistics
func (h *OrderHandler) List(c *gin.Context) {
	views, err := h.syncService.Load(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, OrderListResponse{
		Orders: views,
		Stats:  apporder.Summarize(views),
	})
}

// Detail returns one order with its line items
func (h *OrderHandler) Detail(c *gin.Context) {
	id, ok := h.orderID(c)
	if !ok {
		return
	}

	detail, err := h.syncService.Detail(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, detail)
}

// SetStatus updates one order's status and returns the reloaded
// collection. A failed write still reloads so the client never renders
// a stale collection.
func (h *OrderHandler) SetStatus(c *gin.Context) {
	id, ok := h.orderID(c)
	if !ok {
		return
	}

	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Status is required")
		return
	}

	views, err := h.syncService.SetStatus(c.Request.Context(), id, order.Status(req.Status))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, OrderListResponse{
		Orders: views,
		Stats:  apporder.Summarize(views),
	})
}

func (h *OrderHandler) orderID(c *gin.Context) (uuid.UUID, bool) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, "Order ID must be a valid UUID")
		return uuid.Nil, false
	}
	id, err := uuid.Parse(req.ID)
	if err != nil {
		h.BadRequest(c, "Order ID must be a valid UUID")
		return uuid.Nil, false
	}
	return id, true
}
