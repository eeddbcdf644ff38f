package authhandler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"storefront-server/services/store-api/internal/config"
	"storefront-server/services/store-api/internal/domain/auth"
	"storefront-server/services/store-api/internal/infrastructure/metrics"
	"storefront-server/services/store-api/internal/infrastructure/oauth"
	"storefront-server/services/store-api/internal/infrastructure/session"
	"storefront-server/services/store-api/internal/interfaces/httpserver/responses"
)

const stateCookieName = "oauth_state"

// OAuthHandler handles the delegated OAuth2 authorization-code flow.
type OAuthHandler struct {
	registry *oauth.Registry
	strategy *auth.OAuth2Delegated
	sessions *session.Store
	cfg      *config.Config
	logger   zerolog.Logger
}

// NewOAuthHandler creates a new delegated login handler.
func NewOAuthHandler(
	registry *oauth.Registry,
	strategy *auth.OAuth2Delegated,
	sessions *session.Store,
	cfg *config.Config,
	logger zerolog.Logger,
) *OAuthHandler {
	return &OAuthHandler{
		registry: registry,
		strategy: strategy,
		sessions: sessions,
		cfg:      cfg,
		logger:   logger,
	}
}

// InitiateLogin redirects the user to the provider's authorization endpoint
// with a random state parameter bound to a short-lived cookie.
func (h *OAuthHandler) InitiateLogin(c *gin.Context) {
	provider := c.Param("provider")

	state, err := oauth.GenerateState()
	if err != nil {
		responses.HandleErrorWithStatus(c, http.StatusInternalServerError, err, "failed to generate state")
		return
	}

	authURL, err := h.registry.AuthCodeURL(provider, state)
	if err != nil {
		if errors.Is(err, auth.ErrUnknownProvider) {
			responses.HandleErrorWithStatus(c, http.StatusNotFound, err, "unknown provider")
			return
		}
		responses.HandleError(c, err, "failed to build authorization url")
		return
	}

	http.SetCookie(c.Writer, &http.Cookie{
		Name:     stateCookieName,
		Value:    state,
		MaxAge:   600,
		Path:     "/",
		Secure:   h.cfg.SessionCookieSecure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	c.Redirect(http.StatusFound, authURL)
}

// Callback completes the delegated flow: it validates state, exchanges the
// code, binds the external profile to an account, and establishes a session
// the same way the local login does.
func (h *OAuthHandler) Callback(c *gin.Context) {
	provider := c.Param("provider")

	stateCookie, err := c.Cookie(stateCookieName)
	if err != nil || stateCookie == "" || stateCookie != c.Query("state") {
		metrics.RecordAuthAttempt(h.strategy.Name(), "failure")
		responses.HandleErrorWithStatus(c, http.StatusUnauthorized, errors.New("state mismatch"), "authentication failed")
		return
	}
	// One-shot state.
	c.SetCookie(stateCookieName, "", -1, "/", "", h.cfg.SessionCookieSecure, true)

	code := c.Query("code")
	if code == "" {
		metrics.RecordAuthAttempt(h.strategy.Name(), "failure")
		responses.HandleErrorWithStatus(c, http.StatusUnauthorized, errors.New("missing authorization code"), "authentication failed")
		return
	}

	acct, err := h.strategy.Authenticate(c.Request.Context(), auth.Credentials{
		Provider: provider,
		Code:     code,
	})
	if err != nil {
		if errors.Is(err, auth.ErrUnknownProvider) {
			responses.HandleErrorWithStatus(c, http.StatusNotFound, err, "unknown provider")
			return
		}
		metrics.RecordAuthAttempt(h.strategy.Name(), "error")
		h.logger.Error().Err(err).Str("provider", provider).Msg("delegated login failed")
		responses.HandleError(c, err, "delegated login failed")
		return
	}

	token, err := h.sessions.Create(c.Request.Context(), acct.ID)
	if err != nil {
		responses.HandleError(c, err, "failed to establish session")
		return
	}

	maxAge := int(h.cfg.SessionTTL.Seconds())
	c.SetCookie(h.cfg.SessionCookieName, token, maxAge, "/", "", h.cfg.SessionCookieSecure, true)
	metrics.SessionsIssuedTotal.Inc()
	metrics.RecordAuthAttempt(h.strategy.Name(), "success")

	c.Redirect(http.StatusSeeOther, "/api")
}
