package domain

import (
	"github.com/google/wire"

	"storefront-server/services/store-api/internal/config"
	"storefront-server/services/store-api/internal/domain/account"
	"storefront-server/services/store-api/internal/domain/auth"
	"storefront-server/services/store-api/internal/domain/product"
)

// ServiceProvider provides all domain services
var ServiceProvider = wire.NewSet(
	// Account domain
	account.NewService,

	// Authentication strategies
	auth.NewLocalPassword,
	ProvideOAuth2Delegated,

	// Catalog domain
	product.NewService,
)

// ProvideOAuth2Delegated wires the delegated strategy with the configured
// default role for first-time external logins.
func ProvideOAuth2Delegated(exchanger auth.ProfileExchanger, accounts *account.Service, cfg *config.Config) *auth.OAuth2Delegated {
	return auth.NewOAuth2Delegated(exchanger, accounts, cfg.DefaultRole)
}
