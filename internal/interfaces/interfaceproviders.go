package interfaces

import (
	"github.com/google/wire"

	"storefront-server/services/store-api/internal/interfaces/httpserver"
)

var InterfacesProvider = wire.NewSet(
	httpserver.NewHttpServer,
)
