package dbschema

import (
	"encoding/json"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"storefront-server/services/store-api/internal/domain/product"
	"storefront-server/services/store-api/internal/infrastructure/database"
)

func init() {
	database.RegisterSchemaForAutoMigrate(Product{})
}

// Product represents the persisted catalog entry.
type Product struct {
	BaseModel
	Name        string          `gorm:"type:varchar(255);not null"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Attributes  datatypes.JSON  `gorm:"type:jsonb"`
	Active      *bool           `gorm:"not null;default:true"`
}

// NewSchemaProduct converts a domain product into a schema instance.
func NewSchemaProduct(p *product.Product) (*Product, error) {
	if p == nil {
		return nil, nil
	}

	var attributes datatypes.JSON
	if len(p.Attributes) > 0 {
		data, err := json.Marshal(p.Attributes)
		if err != nil {
			return nil, err
		}
		attributes = datatypes.JSON(data)
	}

	active := p.Active
	return &Product{
		BaseModel: BaseModel{
			ID:        p.ID,
			CreatedAt: p.CreatedAt,
			UpdatedAt: p.UpdatedAt,
		},
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Attributes:  attributes,
		Active:      &active,
	}, nil
}

// EtoD converts a schema product back to the domain representation.
func (p *Product) EtoD() (*product.Product, error) {
	if p == nil {
		return nil, nil
	}

	var attributes map[string]any
	if len(p.Attributes) > 0 {
		if err := json.Unmarshal(p.Attributes, &attributes); err != nil {
			return nil, err
		}
	}

	active := true
	if p.Active != nil {
		active = *p.Active
	}

	return &product.Product{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Attributes:  attributes,
		Active:      active,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}, nil
}
