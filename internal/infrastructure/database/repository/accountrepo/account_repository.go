package accountrepo

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"storefront-server/services/store-api/internal/domain/account"
	"storefront-server/services/store-api/internal/infrastructure/database/dbschema"
	"storefront-server/services/store-api/internal/utils/platformerrors"
)

type AccountGormRepository struct {
	db *gorm.DB
}

var _ account.Repository = (*AccountGormRepository)(nil)

func NewAccountGormRepository(db *gorm.DB) account.Repository {
	return &AccountGormRepository{db: db}
}

func (repo *AccountGormRepository) FindByUsername(ctx context.Context, username string) (*account.Account, error) {
	var entity dbschema.Account
	err := repo.db.WithContext(ctx).
		Where("username = ?", username).
		First(&entity).
		Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to find account by username",
			err,
			"4c8e2f7a-9b31-4d6e-8a05-f12c7d9e3b62",
		)
	}
	return entity.EtoD(), nil
}

func (repo *AccountGormRepository) FindByID(ctx context.Context, id uint) (*account.Account, error) {
	var entity dbschema.Account
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&entity).
		Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to find account by ID",
			err,
			"7d1a9c44-2e85-4b3f-b690-3c5f8a21d7e9",
		)
	}
	return entity.EtoD(), nil
}

func (repo *AccountGormRepository) Create(ctx context.Context, acct *account.Account) (*account.Account, error) {
	entity := dbschema.NewSchemaAccount(acct)
	if err := repo.db.WithContext(ctx).Create(entity).Error; err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to create account",
			err,
			"b3f61a2d-84c7-4e90-a5d8-6e29c4b7f013",
		)
	}
	return entity.EtoD(), nil
}

func (repo *AccountGormRepository) UpsertExternal(ctx context.Context, acct *account.Account) (*account.Account, error) {
	entity := dbschema.NewSchemaAccount(acct)

	assignments := map[string]any{
		"username":   entity.Username,
		"updated_at": gorm.Expr("NOW()"),
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "auth_provider"}, {Name: "subject"}},
			DoUpdates: clause.Assignments(assignments),
		}).
		Create(entity).Error; err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to upsert external account",
			err,
			"e9c05b7f-13d8-4a62-9f41-8b2a6d3c0e57",
		)
	}

	// Reload to capture ID, role, and timestamps for returning logins.
	var persisted dbschema.Account
	if err := repo.db.WithContext(ctx).
		Where("auth_provider = ? AND subject = ?", entity.AuthProvider, entity.Subject).
		First(&persisted).Error; err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to reload upserted account",
			err,
			"2a6d8f31-7c04-4b9e-8e52-d1f3a9c6b084",
		)
	}

	return persisted.EtoD(), nil
}
