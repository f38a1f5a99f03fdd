package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/orderhub/backend/internal/application/catalog"
	"github.com/orderhub/backend/internal/interfaces/http/router"
)

// ProductHandler handles catalog endpoints
type ProductHandler struct {
	BaseHandler
	service *catalog.ProductService
}

func NewProductHandler(service *catalog.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// ProductRoutes creates the route group for catalog endpoints
func ProductRoutes(h *ProductHandler) *router.DomainGroup {
	group := router.NewDomainGroup("/products")

	group.GET("", h.List)
	group.GET("/categories", h.Categories)
	group.GET("/:id", h.GetByID)

	return group
}

// List returns in-stock products, optionally filtered by ?category=
func (h *ProductHandler) List(c *gin.Context) {
	var filter catalog.ProductListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	products, err := h.service.ListProducts(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, products)
}

// Categories returns the distinct product categories
func (h *ProductHandler) Categories(c *gin.Context) {
	categories, err := h.service.ListCategories(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, categories)
}

// GetByID returns one product
func (h *ProductHandler) GetByID(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	product, err := h.service.GetProduct(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, product)
}
