// Package oauth wires the delegated OAuth2 providers. It owns the
// authorization-code exchange and profile fetch; mapping the profile to an
// internal account happens in the domain layer.
package oauth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/oauth2"
	"resty.dev/v3"

	"storefront-server/services/store-api/internal/config"
	"storefront-server/services/store-api/internal/domain/account"
	"storefront-server/services/store-api/internal/domain/auth"
)

// Provider couples an OAuth2 exchange config with its userinfo endpoint.
type Provider struct {
	Name        string
	Config      *oauth2.Config
	UserInfoURL string
}

// Registry holds the configured providers.
type Registry struct {
	providers map[string]*Provider
	client    *resty.Client
	logger    zerolog.Logger
}

var _ auth.ProfileExchanger = (*Registry)(nil)

// NewRegistry builds the provider set from configuration. Providers without
// a client ID are left unregistered.
func NewRegistry(cfg *config.Config, log zerolog.Logger) *Registry {
	providers := make(map[string]*Provider)

	if cfg.GoogleClientID != "" {
		providers["google"] = &Provider{
			Name: "google",
			Config: &oauth2.Config{
				ClientID:     cfg.GoogleClientID,
				ClientSecret: cfg.GoogleClientSecret,
				RedirectURL:  cfg.CallbackURL("google"),
				Scopes:       []string{"openid", "email", "profile"},
				Endpoint: oauth2.Endpoint{
					AuthURL:  "https://accounts.google.com/o/oauth2/auth",
					TokenURL: "https://accounts.google.com/o/oauth2/token",
				},
			},
			UserInfoURL: "https://openidconnect.googleapis.com/v1/userinfo",
		}
	}

	if cfg.GithubClientID != "" {
		providers["github"] = &Provider{
			Name: "github",
			Config: &oauth2.Config{
				ClientID:     cfg.GithubClientID,
				ClientSecret: cfg.GithubClientSecret,
				RedirectURL:  cfg.CallbackURL("github"),
				Scopes:       []string{"read:user", "user:email"},
				Endpoint: oauth2.Endpoint{
					AuthURL:  "https://github.com/login/oauth/authorize",
					TokenURL: "https://github.com/login/oauth/access_token",
				},
			},
			UserInfoURL: "https://api.github.com/user",
		}
	}

	return &Registry{
		providers: providers,
		client:    resty.New(),
		logger:    log,
	}
}

// Lookup returns the provider by name.
func (r *Registry) Lookup(name string) (*Provider, bool) {
	p, ok := r.providers[strings.ToLower(name)]
	return p, ok
}

// AuthCodeURL builds the provider authorization URL for the given state.
func (r *Registry) AuthCodeURL(provider, state string) (string, error) {
	p, ok := r.Lookup(provider)
	if !ok {
		return "", auth.ErrUnknownProvider
	}
	return p.Config.AuthCodeURL(state), nil
}

// GenerateState generates a random state parameter for CSRF protection
func GenerateState() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}

// userProfile is the superset of fields the supported providers return.
type userProfile struct {
	Sub   string `json:"sub"`
	ID    any    `json:"id"`
	Email string `json:"email"`
	Login string `json:"login"`
	Name  string `json:"name"`
}

// Exchange swaps the authorization code for a token, fetches the user
// profile, and normalizes it into an identity.
func (r *Registry) Exchange(ctx context.Context, provider, code string) (account.Identity, error) {
	p, ok := r.Lookup(provider)
	if !ok {
		return account.Identity{}, auth.ErrUnknownProvider
	}

	token, err := p.Config.Exchange(ctx, code)
	if err != nil {
		return account.Identity{}, fmt.Errorf("exchange authorization code: %w", err)
	}

	resp, err := r.client.R().
		SetContext(ctx).
		SetAuthToken(token.AccessToken).
		SetHeader("Accept", "application/json").
		Get(p.UserInfoURL)
	if err != nil {
		return account.Identity{}, fmt.Errorf("fetch user profile: %w", err)
	}
	if resp.IsError() {
		r.logger.Error().
			Str("provider", p.Name).
			Int("status", resp.StatusCode()).
			Msg("userinfo endpoint returned an error")
		return account.Identity{}, fmt.Errorf("userinfo request failed with status %d", resp.StatusCode())
	}

	var profile userProfile
	if err := json.Unmarshal(resp.Bytes(), &profile); err != nil {
		return account.Identity{}, fmt.Errorf("decode user profile: %w", err)
	}

	identity := account.Identity{
		Provider: p.Name,
		Subject:  profile.subject(),
		Username: profile.username(),
	}
	return identity, nil
}

func (p userProfile) subject() string {
	if p.Sub != "" {
		return p.Sub
	}
	switch id := p.ID.(type) {
	case string:
		return id
	case float64:
		return strconv.FormatInt(int64(id), 10)
	}
	return ""
}

func (p userProfile) username() string {
	if p.Login != "" {
		return p.Login
	}
	if p.Email != "" {
		return p.Email
	}
	return p.Name
}
