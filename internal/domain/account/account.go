// Package account provides the account domain model and the credential
// verification behavior.
package account

import (
	"context"
	"errors"
	"time"

	"storefront-server/services/store-api/internal/utils/crypto"
)

// Account models one registered principal. The ID is assigned at creation
// and immutable; records are treated as immutable snapshots for the
// duration of a request.
type Account struct {
	ID           uint
	Username     string
	PasswordHash *string
	Role         string
	AuthProvider string
	Subject      *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Identity encapsulates externally provided identity attributes resolved
// from an OAuth2 provider profile.
type Identity struct {
	Provider string
	Subject  string
	Username string
}

// Repository defines storage operations for accounts. Implementations
// return (nil, nil) when no record matches, reserving errors for storage
// failures.
type Repository interface {
	FindByUsername(ctx context.Context, username string) (*Account, error)
	FindByID(ctx context.Context, id uint) (*Account, error)
	Create(ctx context.Context, account *Account) (*Account, error)
	UpsertExternal(ctx context.Context, account *Account) (*Account, error)
}

// ErrInvalidCredentials is the uniform verification failure. An unknown
// username and a wrong password both yield this exact error so that
// responses never reveal whether a login name exists.
var ErrInvalidCredentials = errors.New("invalid username or password")

// ErrInvalidIdentity indicates a provider profile without a stable subject.
var ErrInvalidIdentity = errors.New("invalid identity: provider and subject are required")

// Service verifies credentials and resolves accounts from stored state.
type Service struct {
	repo Repository
}

// NewService constructs a Service with required dependencies.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// VerifyCredentials looks up the account by username and checks the
// password against the stored bcrypt hash. Storage and malformed-hash
// failures propagate as errors; authentication failures collapse to
// ErrInvalidCredentials.
func (s *Service) VerifyCredentials(ctx context.Context, username, password string) (*Account, error) {
	acct, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if acct == nil || acct.PasswordHash == nil {
		return nil, ErrInvalidCredentials
	}

	ok, err := crypto.ComparePassword(password, *acct.PasswordHash)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}
	return acct, nil
}

// ResolveByID maps a stored session reference back to an account record.
// A missing account yields (nil, nil): sessions can outlive accounts, and
// the caller must treat that as "no authenticated identity".
func (s *Service) ResolveByID(ctx context.Context, id uint) (*Account, error) {
	return s.repo.FindByID(ctx, id)
}

// ResolveByUsername returns the account with the given username, or
// (nil, nil) when none exists.
func (s *Service) ResolveByUsername(ctx context.Context, username string) (*Account, error) {
	return s.repo.FindByUsername(ctx, username)
}

// EnsureExternal persists the given external identity and returns the
// internal account record, creating it with the default role on first login.
func (s *Service) EnsureExternal(ctx context.Context, identity Identity, defaultRole string) (*Account, error) {
	if identity.Provider == "" || identity.Subject == "" {
		return nil, ErrInvalidIdentity
	}

	subject := identity.Subject
	acct := &Account{
		Username:     identity.Username,
		Role:         defaultRole,
		AuthProvider: identity.Provider,
		Subject:      &subject,
	}
	return s.repo.UpsertExternal(ctx, acct)
}

// CreateLocal registers a password-backed account. Used by startup seeding.
func (s *Service) CreateLocal(ctx context.Context, username, password, role string) (*Account, error) {
	hash, err := crypto.HashPassword(password)
	if err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, &Account{
		Username:     username,
		PasswordHash: &hash,
		Role:         role,
		AuthProvider: "local",
	})
}
