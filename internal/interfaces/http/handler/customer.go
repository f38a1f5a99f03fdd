package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/orderhub/backend/internal/application/partner"
	"github.com/orderhub/backend/internal/interfaces/http/router"
)

// CustomerHandler handles customer endpoints
type CustomerHandler struct {
	BaseHandler
	service *partner.CustomerService
}

func NewCustomerHandler(service *partner.CustomerService) *CustomerHandler {
	return &CustomerHandler{service: service}
}

// CustomerRoutes creates the route group for customer endpoints
func CustomerRoutes(h *CustomerHandler) *router.DomainGroup {
	group := router.NewDomainGroup("/customers")

	group.POST("/register", h.Register)
	group.POST("/login", h.Login)
	group.GET("/:id", h.GetByID)
	group.PUT("/:id", h.Update)

	return group
}

// Register creates a new customer account
func (h *CustomerHandler) Register(c *gin.Context) {
	var req partner.RegisterCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	customer, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, customer)
}

// Login looks a customer up by email
func (h *CustomerHandler) Login(c *gin.Context) {
	var req partner.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	customer, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, customer)
}

// GetByID returns one customer
func (h *CustomerHandler) GetByID(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	customer, err := h.service.GetCustomer(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, customer)
}

// Update changes the customer profile
func (h *CustomerHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	var req partner.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	customer, err := h.service.UpdateCustomer(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, customer)
}
