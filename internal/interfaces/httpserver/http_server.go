package httpserver

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"storefront-server/services/store-api/internal/config"
	"storefront-server/services/store-api/internal/domain/account"
	"storefront-server/services/store-api/internal/infrastructure"
	middleware "storefront-server/services/store-api/internal/interfaces/httpserver/middlewares"
	"storefront-server/services/store-api/internal/interfaces/httpserver/routes/api"
	"storefront-server/services/store-api/internal/interfaces/httpserver/routes/auth"
	v1 "storefront-server/services/store-api/internal/interfaces/httpserver/routes/v1"
)

type HTTPServer struct {
	engine    *gin.Engine
	infra     *infrastructure.Infrastructure
	accounts  *account.Service
	authRoute *auth.AuthRoute
	apiRoute  *api.APIRoute
	v1Route   *v1.V1Route
	config    *config.Config
}

func NewHttpServer(
	authRoute *auth.AuthRoute,
	apiRoute *api.APIRoute,
	v1Route *v1.V1Route,
	accounts *account.Service,
	infra *infrastructure.Infrastructure,
	cfg *config.Config,
) *HTTPServer {
	gin.SetMode(gin.ReleaseMode)
	server := HTTPServer{
		gin.New(),
		infra,
		accounts,
		authRoute,
		apiRoute,
		v1Route,
		cfg,
	}
	server.engine.Use(middleware.RequestID())
	server.engine.Use(middleware.LoggingMiddleware(infra.Logger))
	server.engine.Use(middleware.CORSMiddleware())
	server.engine.Use(middleware.MetricsMiddleware())

	// Root health check (for orchestrators probing the bare path)
	server.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	server.engine.GET("/readyz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	server.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return &server
}

// RegisterRoutes wires every route group onto the engine. The session
// middleware runs on all of them: it resolves the cookie to a principal when
// it can and leaves the request anonymous when it cannot. Role enforcement
// happens per-route.
func (httpServer *HTTPServer) RegisterRoutes() {
	root := httpServer.engine.Group("/")
	root.Use(middleware.SessionMiddleware(
		httpServer.config.SessionCookieName,
		httpServer.infra.Sessions,
		httpServer.accounts,
		httpServer.infra.Logger,
	))

	httpServer.authRoute.RegisterRouter(root)
	httpServer.apiRoute.RegisterRouter(root)
	httpServer.v1Route.RegisterRouter(root)
}

func (httpServer *HTTPServer) Run() error {
	httpServer.RegisterRoutes()

	if err := httpServer.engine.Run(fmt.Sprintf(":%d", httpServer.config.HTTPPort)); err != nil {
		return err
	}
	return nil
}
