package product

import (
	"github.com/gin-gonic/gin"

	"storefront-server/services/store-api/internal/interfaces/httpserver/handlers/producthandler"
)

// ProductRoute handles catalog listing routes
type ProductRoute struct {
	handler *producthandler.Handler
}

// NewProductRoute creates a new product route
func NewProductRoute(handler *producthandler.Handler) *ProductRoute {
	return &ProductRoute{handler: handler}
}

// RegisterRouter registers product routes
func (p *ProductRoute) RegisterRouter(router gin.IRouter) {
	productRouter := router.Group("/products")
	productRouter.GET("", p.ListProducts)
	productRouter.GET("/:id", p.GetProduct)
}

// ListProducts godoc
// @Summary List products
// @Description Returns all active catalog entries.
// @Tags Catalog API
// @Produce json
// @Success 200 {object} object "Product list"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /v1/products [get]
func (p *ProductRoute) ListProducts(c *gin.Context) {
	p.handler.List(c)
}

// GetProduct godoc
// @Summary Get a product
// @Description Returns one catalog entry by ID.
// @Tags Catalog API
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} producthandler.ProductResponse "Product"
// @Failure 400 {object} responses.ErrorResponse "Invalid product ID"
// @Failure 404 {object} responses.ErrorResponse "Product not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /v1/products/{id} [get]
func (p *ProductRoute) GetProduct(c *gin.Context) {
	p.handler.Get(c)
}
