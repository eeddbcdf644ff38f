package account

import (
	"context"
	"errors"
	"testing"

	"storefront-server/services/store-api/internal/utils/crypto"
)

type stubRepository struct {
	byUsername map[string]*Account
	byID       map[uint]*Account
	failWith   error
}

func (r *stubRepository) FindByUsername(_ context.Context, username string) (*Account, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	return r.byUsername[username], nil
}

func (r *stubRepository) FindByID(_ context.Context, id uint) (*Account, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	return r.byID[id], nil
}

func (r *stubRepository) Create(_ context.Context, acct *Account) (*Account, error) {
	return acct, nil
}

func (r *stubRepository) UpsertExternal(_ context.Context, acct *Account) (*Account, error) {
	acct.ID = 99
	return acct, nil
}

func newStubRepository(t *testing.T) *stubRepository {
	t.Helper()
	hash, err := crypto.HashPassword("pw123pw123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	alice := &Account{ID: 1, Username: "alice", PasswordHash: &hash, Role: "admin", AuthProvider: "local"}
	return &stubRepository{
		byUsername: map[string]*Account{"alice": alice},
		byID:       map[uint]*Account{1: alice},
	}
}

func TestVerifyCredentialsSuccess(t *testing.T) {
	svc := NewService(newStubRepository(t))

	acct, err := svc.VerifyCredentials(context.Background(), "alice", "pw123pw123")
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if acct.ID != 1 || acct.Role != "admin" {
		t.Fatalf("unexpected account %+v", acct)
	}
}

func TestVerifyCredentialsUniformFailure(t *testing.T) {
	svc := NewService(newStubRepository(t))
	ctx := context.Background()

	_, wrongSecret := svc.VerifyCredentials(ctx, "alice", "wrong")
	_, noSuchUser := svc.VerifyCredentials(ctx, "nobody", "pw123pw123")

	// Unknown username and bad password must be indistinguishable.
	if !errors.Is(wrongSecret, ErrInvalidCredentials) {
		t.Fatalf("wrong secret: expected ErrInvalidCredentials, got %v", wrongSecret)
	}
	if !errors.Is(noSuchUser, ErrInvalidCredentials) {
		t.Fatalf("unknown user: expected ErrInvalidCredentials, got %v", noSuchUser)
	}
	if wrongSecret.Error() != noSuchUser.Error() {
		t.Fatalf("failure kinds differ: %q vs %q", wrongSecret, noSuchUser)
	}
}

func TestVerifyCredentialsStorageErrorPropagates(t *testing.T) {
	repo := newStubRepository(t)
	repo.failWith = errors.New("connection refused")
	svc := NewService(repo)

	_, err := svc.VerifyCredentials(context.Background(), "alice", "pw123pw123")
	if errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("storage failure must not collapse into an auth failure")
	}
	if err == nil {
		t.Fatalf("expected storage error to propagate")
	}
}

func TestVerifyCredentialsMalformedHash(t *testing.T) {
	repo := newStubRepository(t)
	bad := "not-a-hash"
	repo.byUsername["mallory"] = &Account{ID: 3, Username: "mallory", PasswordHash: &bad}
	svc := NewService(repo)

	_, err := svc.VerifyCredentials(context.Background(), "mallory", "whatever")
	if err == nil || errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("malformed hash must surface as an error, got %v", err)
	}
}

func TestResolveByIDStaleReference(t *testing.T) {
	svc := NewService(newStubRepository(t))

	acct, err := svc.ResolveByID(context.Background(), 42)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if acct != nil {
		t.Fatalf("expected nil account for stale reference, got %+v", acct)
	}
}

func TestEnsureExternalRequiresSubject(t *testing.T) {
	svc := NewService(newStubRepository(t))

	if _, err := svc.EnsureExternal(context.Background(), Identity{Provider: "google"}, "user"); !errors.Is(err, ErrInvalidIdentity) {
		t.Fatalf("expected ErrInvalidIdentity, got %v", err)
	}

	acct, err := svc.EnsureExternal(context.Background(), Identity{Provider: "google", Subject: "sub-1", Username: "carol"}, "user")
	if err != nil {
		t.Fatalf("ensure: %v", err)
	}
	if acct.Role != "user" || acct.AuthProvider != "google" {
		t.Fatalf("unexpected account %+v", acct)
	}
}
