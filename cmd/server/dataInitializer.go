package main

import (
	"context"

	"github.com/shopspring/decimal"

	"storefront-server/services/store-api/internal/config"
	"storefront-server/services/store-api/internal/domain/account"
	"storefront-server/services/store-api/internal/domain/product"
	"storefront-server/services/store-api/internal/infrastructure/logger"
)

// DataInitializer seeds demo accounts and catalog entries on startup. It only
// runs when SEED_DEMO_DATA is set and never overwrites existing records, so
// restarting the service is safe.
type DataInitializer struct {
	accounts *account.Service
	products product.Repository
}

type seedAccount struct {
	username string
	password string
	role     string
}

var demoAccounts = []seedAccount{
	{username: "alice", password: "pw123", role: "admin"},
	{username: "bob", password: "pw456", role: "user"},
}

func (d *DataInitializer) Install(ctx context.Context) error {
	cfg := config.GetGlobal()
	if !cfg.SeedDemoData {
		return nil
	}

	if err := d.seedAccounts(ctx); err != nil {
		return err
	}
	return d.seedProducts(ctx)
}

func (d *DataInitializer) seedAccounts(ctx context.Context) error {
	log := logger.GetLogger()

	for _, seed := range demoAccounts {
		existing, err := d.accounts.ResolveByUsername(ctx, seed.username)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}

		if _, err := d.accounts.CreateLocal(ctx, seed.username, seed.password, seed.role); err != nil {
			return err
		}
		log.Info().Str("username", seed.username).Str("role", seed.role).Msg("seeded demo account")
	}
	return nil
}

func (d *DataInitializer) seedProducts(ctx context.Context) error {
	existing, err := d.products.ListActive(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	log := logger.GetLogger()
	demo := []*product.Product{
		{
			Name:        "Mechanical Keyboard",
			Description: "Tenkeyless board with hot-swappable switches",
			Price:       decimal.NewFromFloat(129.99),
			Attributes:  map[string]any{"layout": "tkl", "switches": "brown"},
			Active:      true,
		},
		{
			Name:        "USB-C Dock",
			Description: "Dual display dock with 96W passthrough",
			Price:       decimal.NewFromFloat(189.00),
			Attributes:  map[string]any{"ports": 11},
			Active:      true,
		},
		{
			Name:        "Laptop Stand",
			Description: "Aluminium stand, adjustable height",
			Price:       decimal.NewFromFloat(49.50),
			Active:      true,
		},
	}

	for _, p := range demo {
		if _, err := d.products.Create(ctx, p); err != nil {
			return err
		}
	}
	log.Info().Int("count", len(demo)).Msg("seeded demo products")
	return nil
}
