package infrastructure

import (
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"storefront-server/services/store-api/internal/config"
	"storefront-server/services/store-api/internal/domain/auth"
	"storefront-server/services/store-api/internal/infrastructure/database"
	"storefront-server/services/store-api/internal/infrastructure/database/repository"
	"storefront-server/services/store-api/internal/infrastructure/logger"
	"storefront-server/services/store-api/internal/infrastructure/oauth"
	"storefront-server/services/store-api/internal/infrastructure/session"
)

// ProvideConfig loads and provides the application configuration
func ProvideConfig() (*config.Config, error) {
	return config.Load()
}

// ProvideDatabase provides a database connection
func ProvideDatabase(cfg *config.Config, log zerolog.Logger) (*gorm.DB, error) {
	db, err := database.NewDB(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	if cfg.AutoMigrate {
		log.Info().Msg("Running database migrations...")
		if err := database.AutoMigrate(db); err != nil {
			log.Error().Err(err).Msg("Failed to run database migrations")
			return nil, err
		}
		log.Info().Msg("Database migrations completed successfully")
	}

	return db, nil
}

// ProvideRedisClient provides the redis client backing the session store
func ProvideRedisClient(cfg *config.Config) redis.UniversalClient {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
}

// ProvideSessionStore provides the redis-backed session reference store
func ProvideSessionStore(client redis.UniversalClient, cfg *config.Config) *session.Store {
	return session.NewStore(client, "storeapi:session", cfg.SessionTTL)
}

// ProvideOAuthRegistry provides the delegated-login provider registry
func ProvideOAuthRegistry(cfg *config.Config, log zerolog.Logger) *oauth.Registry {
	return oauth.NewRegistry(cfg, log)
}

// Infrastructure holds all infrastructure dependencies
type Infrastructure struct {
	DB       *gorm.DB
	Sessions *session.Store
	OAuth    *oauth.Registry
	Logger   zerolog.Logger
}

// NewInfrastructure creates a new infrastructure instance
func NewInfrastructure(
	db *gorm.DB,
	sessions *session.Store,
	oauthRegistry *oauth.Registry,
	log zerolog.Logger,
) *Infrastructure {
	return &Infrastructure{
		DB:       db,
		Sessions: sessions,
		OAuth:    oauthRegistry,
		Logger:   log,
	}
}

// InfrastructureProvider provides all infrastructure dependencies
var InfrastructureProvider = wire.NewSet(
	// Config
	ProvideConfig,

	// Database
	ProvideDatabase,

	// Repositories
	repository.RepositoryProvider,

	// Sessions
	ProvideRedisClient,
	ProvideSessionStore,

	// OAuth providers
	ProvideOAuthRegistry,
	wire.Bind(new(auth.ProfileExchanger), new(*oauth.Registry)),

	// Logger
	logger.GetLogger,

	// Infrastructure struct
	NewInfrastructure,
)
