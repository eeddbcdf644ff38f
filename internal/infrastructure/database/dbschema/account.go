package dbschema

import (
	"storefront-server/services/store-api/internal/domain/account"
	"storefront-server/services/store-api/internal/infrastructure/database"
)

func init() {
	database.RegisterSchemaForAutoMigrate(Account{})
}

// Account represents the persisted account schema. Local accounts carry a
// password hash; delegated accounts carry a provider/subject pair instead.
type Account struct {
	BaseModel
	Username     string  `gorm:"type:varchar(150);not null;uniqueIndex"`
	PasswordHash *string `gorm:"type:varchar(255)"`
	Role         string  `gorm:"type:varchar(50);not null;default:'user'"`
	AuthProvider string  `gorm:"type:varchar(50);not null;default:'local';uniqueIndex:ux_accounts_provider_subject"`
	Subject      *string `gorm:"type:varchar(255);uniqueIndex:ux_accounts_provider_subject"`
}

// NewSchemaAccount converts a domain account into a schema instance.
func NewSchemaAccount(a *account.Account) *Account {
	if a == nil {
		return nil
	}

	return &Account{
		BaseModel: BaseModel{
			ID:        a.ID,
			CreatedAt: a.CreatedAt,
			UpdatedAt: a.UpdatedAt,
		},
		Username:     a.Username,
		PasswordHash: a.PasswordHash,
		Role:         a.Role,
		AuthProvider: a.AuthProvider,
		Subject:      a.Subject,
	}
}

// EtoD converts a schema account back to the domain representation.
func (a *Account) EtoD() *account.Account {
	if a == nil {
		return nil
	}

	return &account.Account{
		ID:           a.ID,
		Username:     a.Username,
		PasswordHash: a.PasswordHash,
		Role:         a.Role,
		AuthProvider: a.AuthProvider,
		Subject:      a.Subject,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}
