// Package session provides Redis-backed persistence of session references.
//
// A session reference is the minimal durable pointer from a browser session
// to an account: the account ID and nothing else. The full account record is
// re-resolved from the database on every request, so deleted accounts simply
// stop resolving instead of lingering in the session store.
package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrRedisUnavailable wraps transport-level failures talking to redis.
var ErrRedisUnavailable = errors.New("redis unavailable")

// Reference is the persisted session payload.
type Reference struct {
	AccountID uint  `json:"account_id"`
	CreatedAt int64 `json:"created_at"`
}

// Store persists session references keyed by an opaque random token.
type Store struct {
	redis  redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// NewStore creates a Store using the given redis client.
func NewStore(client redis.UniversalClient, prefix string, ttl time.Duration) *Store {
	if prefix == "" {
		prefix = "storeapi:session"
	}
	return &Store{redis: client, prefix: prefix, ttl: ttl}
}

func (s *Store) key(token string) string {
	return s.prefix + ":" + token
}

// newToken returns 32 bytes of crypto/rand entropy, base64url encoded.
func newToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// Create stores a reference to the given account and returns the session
// token to hand to the client.
func (s *Store) Create(ctx context.Context, accountID uint) (string, error) {
	token, err := newToken()
	if err != nil {
		return "", err
	}

	data, err := json.Marshal(Reference{
		AccountID: accountID,
		CreatedAt: time.Now().Unix(),
	})
	if err != nil {
		return "", err
	}

	if err := s.redis.Set(ctx, s.key(token), data, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}
	return token, nil
}

// Get resolves a token to its reference. A missing or expired token yields
// (nil, nil), never an error: the caller treats it as unauthenticated.
func (s *Store) Get(ctx context.Context, token string) (*Reference, error) {
	data, err := s.redis.Get(ctx, s.key(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}

	var ref Reference
	if err := json.Unmarshal(data, &ref); err != nil {
		// Corrupt blob: treat as no session rather than failing the request.
		return nil, nil
	}
	return &ref, nil
}

// Delete removes a session. Deleting an absent token is a no-op.
func (s *Store) Delete(ctx context.Context, token string) error {
	if err := s.redis.Del(ctx, s.key(token)).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}
	return nil
}
