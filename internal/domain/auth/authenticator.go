// Package auth defines the pluggable authentication strategies. Each
// strategy resolves submitted credentials into a full account record
// through the same interface, so handlers never care which variant ran.
package auth

import (
	"context"
	"errors"

	"storefront-server/services/store-api/internal/domain/account"
)

// Credentials carries the inputs of one authentication attempt. Local
// logins fill Username/Password; delegated logins fill Provider/Code.
type Credentials struct {
	Username string
	Password string

	Provider string
	Code     string
}

// Authenticator is the uniform strategy interface. Implementations return
// the resolved account on success; authentication failures are reported
// with account.ErrInvalidCredentials, everything else is infrastructure.
type Authenticator interface {
	Name() string
	Authenticate(ctx context.Context, creds Credentials) (*account.Account, error)
}

// LocalPassword authenticates against stored bcrypt credentials.
type LocalPassword struct {
	accounts *account.Service
}

// NewLocalPassword constructs the password strategy.
func NewLocalPassword(accounts *account.Service) *LocalPassword {
	return &LocalPassword{accounts: accounts}
}

func (l *LocalPassword) Name() string { return "local" }

func (l *LocalPassword) Authenticate(ctx context.Context, creds Credentials) (*account.Account, error) {
	return l.accounts.VerifyCredentials(ctx, creds.Username, creds.Password)
}

// ProfileExchanger swaps an authorization code for the external profile.
// Implemented by the oauth infrastructure package.
type ProfileExchanger interface {
	Exchange(ctx context.Context, provider, code string) (account.Identity, error)
}

// ErrUnknownProvider is returned for providers without configuration.
var ErrUnknownProvider = errors.New("unknown oauth provider")

// OAuth2Delegated completes an authorization-code login and binds the
// resulting external profile to an internal account.
type OAuth2Delegated struct {
	exchanger   ProfileExchanger
	accounts    *account.Service
	defaultRole string
}

// NewOAuth2Delegated constructs the delegated strategy.
func NewOAuth2Delegated(exchanger ProfileExchanger, accounts *account.Service, defaultRole string) *OAuth2Delegated {
	return &OAuth2Delegated{exchanger: exchanger, accounts: accounts, defaultRole: defaultRole}
}

func (o *OAuth2Delegated) Name() string { return "oauth2" }

func (o *OAuth2Delegated) Authenticate(ctx context.Context, creds Credentials) (*account.Account, error) {
	identity, err := o.exchanger.Exchange(ctx, creds.Provider, creds.Code)
	if err != nil {
		return nil, err
	}
	return o.accounts.EnsureExternal(ctx, identity, o.defaultRole)
}
