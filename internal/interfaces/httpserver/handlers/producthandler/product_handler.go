package producthandler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"storefront-server/services/store-api/internal/domain/product"
	"storefront-server/services/store-api/internal/interfaces/httpserver/responses"
)

// Handler serves the public catalog listing routes.
type Handler struct {
	products *product.Service
}

// NewHandler creates a new product handler.
func NewHandler(products *product.Service) *Handler {
	return &Handler{products: products}
}

// ProductResponse is the wire representation of one catalog entry.
type ProductResponse struct {
	ID          uint           `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Price       string         `json:"price"`
	Attributes  map[string]any `json:"attributes,omitempty"`
}

func toResponse(p *product.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.StringFixed(2),
		Attributes:  p.Attributes,
	}
}

// List returns all active products.
func (h *Handler) List(c *gin.Context) {
	products, err := h.products.List(c.Request.Context())
	if err != nil {
		responses.HandleError(c, err, "failed to list products")
		return
	}

	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toResponse(p))
	}
	c.JSON(http.StatusOK, gin.H{"products": out})
}

// Get returns one product by ID.
func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		responses.HandleErrorWithStatus(c, http.StatusBadRequest, err, "invalid product id")
		return
	}

	p, err := h.products.Get(c.Request.Context(), uint(id))
	if err != nil {
		responses.HandleError(c, err, "failed to load product")
		return
	}
	if p == nil {
		responses.HandleErrorWithStatus(c, http.StatusNotFound, nil, "product not found")
		return
	}

	c.JSON(http.StatusOK, toResponse(p))
}
