package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-server/services/store-api/internal/config"
	"storefront-server/services/store-api/internal/interfaces/httpserver/middlewares"
)

// APIRoute serves the role-gated resource.
type APIRoute struct {
	cfg *config.Config
}

// NewAPIRoute creates a new protected API route
func NewAPIRoute(cfg *config.Config) *APIRoute {
	return &APIRoute{cfg: cfg}
}

// RegisterRouter registers the protected resource behind the role gate.
func (a *APIRoute) RegisterRouter(router gin.IRouter) {
	router.GET("/api", middlewares.RequireRole(a.cfg.APIRequiredRole), a.GetSecret)
}

// GetSecret godoc
// @Summary Get protected data
// @Description Returns the protected payload. Requests without a session receive 401; sessions bound to an account without the required role receive 403.
// @Tags Protected API
// @Produce json
// @Success 200 {object} map[string]string "Protected payload"
// @Failure 401 {object} object "Unauthorized"
// @Failure 403 {object} object "Forbidden"
// @Router /api [get]
func (a *APIRoute) GetSecret(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": "secret information"})
}
