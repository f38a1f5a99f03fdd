package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/orderhub/backend/internal/application/ordering"
	"github.com/orderhub/backend/internal/interfaces/http/router"
)

// OrderHandler handles order endpoints
type OrderHandler struct {
	BaseHandler
	service *ordering.OrderService
}

func NewOrderHandler(service *ordering.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

// OrderRoutes creates the route group for order endpoints
func OrderRoutes(h *OrderHandler) *router.DomainGroup {
	group := router.NewDomainGroup("/orders")

	group.POST("", h.Create)
	group.GET("", h.List)
	group.GET("/stats", h.Stats)
	group.GET("/:id", h.GetByID)
	group.PATCH("/:id/status", h.UpdateStatus)
	group.DELETE("/:id", h.Cancel)

	return group
}

// Create places a new order
func (h *OrderHandler) Create(c *gin.Context) {
	var req ordering.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.CreateOrder(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, resp)
}

// List returns orders newest first, optionally filtered by ?status=
func (h *OrderHandler) List(c *gin.Context) {
	var filter ordering.OrderListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	orders, err := h.service.ListOrders(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, orders)
}

// Stats returns order counts per status
func (h *OrderHandler) Stats(c *gin.Context) {
	stats, err := h.service.OrderStats(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, stats)
}

// GetByID returns one order with its items
func (h *OrderHandler) GetByID(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	order, err := h.service.GetOrder(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, order)
}

// UpdateStatus applies a manual status change
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	var req ordering.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	order, err := h.service.UpdateOrderStatus(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, order)
}

// Cancel removes a pending order
func (h *OrderHandler) Cancel(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	order, err := h.service.CancelOrder(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, order)
}
