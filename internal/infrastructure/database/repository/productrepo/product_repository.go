package productrepo

import (
	"context"

	"gorm.io/gorm"

	"storefront-server/services/store-api/internal/domain/product"
	"storefront-server/services/store-api/internal/infrastructure/database/dbschema"
	"storefront-server/services/store-api/internal/utils/platformerrors"
)

type ProductGormRepository struct {
	db *gorm.DB
}

var _ product.Repository = (*ProductGormRepository)(nil)

func NewProductGormRepository(db *gorm.DB) product.Repository {
	return &ProductGormRepository{db: db}
}

func (repo *ProductGormRepository) ListActive(ctx context.Context) ([]*product.Product, error) {
	var entities []dbschema.Product
	err := repo.db.WithContext(ctx).
		Where("active = ?", true).
		Order("id").
		Find(&entities).
		Error
	if err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to list products",
			err,
			"6f2b9d80-4a17-4c53-9e6d-b8305f1c7a24",
		)
	}

	products := make([]*product.Product, 0, len(entities))
	for i := range entities {
		p, err := entities[i].EtoD()
		if err != nil {
			return nil, platformerrors.NewError(
				ctx,
				platformerrors.LayerRepository,
				platformerrors.ErrorTypeInternal,
				"failed to decode product attributes",
				err,
				"c41e7a93-8d26-4f05-a1b7-59e3d8f2c610",
			)
		}
		products = append(products, p)
	}
	return products, nil
}

func (repo *ProductGormRepository) FindByID(ctx context.Context, id uint) (*product.Product, error) {
	var entity dbschema.Product
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
			"failed to find product by ID",
			err,
			"0d7c3f58-b1a9-4e26-8c40-7f5d2e9a6b13",
		)
	}
	return entity.EtoD()
}

func (repo *ProductGormRepository) Create(ctx context.Context, p *product.Product) (*product.Product, error) {
	entity, err := dbschema.NewSchemaProduct(p)
	if err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeValidation,
			"failed to encode product attributes",
			err,
			"85a1d4c7-2b96-4f30-b7e8-c60f9d3a5e12",
		)
	}

	if err := repo.db.WithContext(ctx).Create(entity).Error; err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to create product",
			err,
			"f7b20c65-9e48-4d13-a2f6-1c8d5b7e0a39",
		)
	}
	return entity.EtoD()
}
