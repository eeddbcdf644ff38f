package repository

import (
	"storefront-server/services/store-api/internal/infrastructure/database/repository/accountrepo"
	"storefront-server/services/store-api/internal/infrastructure/database/repository/productrepo"

	"github.com/google/wire"
)

var RepositoryProvider = wire.NewSet(
	accountrepo.NewAccountGormRepository,
	productrepo.NewProductGormRepository,
)
