package routes

import (
	"github.com/google/wire"

	"storefront-server/services/store-api/internal/interfaces/httpserver/handlers/authhandler"
	"storefront-server/services/store-api/internal/interfaces/httpserver/handlers/producthandler"
	"storefront-server/services/store-api/internal/interfaces/httpserver/routes/api"
	"storefront-server/services/store-api/internal/interfaces/httpserver/routes/auth"
	v1 "storefront-server/services/store-api/internal/interfaces/httpserver/routes/v1"
	"storefront-server/services/store-api/internal/interfaces/httpserver/routes/v1/product"
)

var RouteProvider = wire.NewSet(
	// Handlers
	authhandler.NewLocalHandler,
	authhandler.NewOAuthHandler,
	producthandler.NewHandler,

	// Routes
	auth.NewAuthRoute,
	api.NewAPIRoute,
	v1.NewV1Route,
	product.NewProductRoute,
)
