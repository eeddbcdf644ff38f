package authhandler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"storefront-server/services/store-api/internal/config"
	"storefront-server/services/store-api/internal/domain/account"
	"storefront-server/services/store-api/internal/domain/auth"
	"storefront-server/services/store-api/internal/infrastructure/metrics"
	"storefront-server/services/store-api/internal/infrastructure/session"
	"storefront-server/services/store-api/internal/interfaces/httpserver/requests"
	"storefront-server/services/store-api/internal/interfaces/httpserver/responses"
)

// LocalHandler handles username/password login and logout.
type LocalHandler struct {
	strategy *auth.LocalPassword
	sessions *session.Store
	cfg      *config.Config
	logger   zerolog.Logger
}

// NewLocalHandler creates a new local credential handler.
func NewLocalHandler(strategy *auth.LocalPassword, sessions *session.Store, cfg *config.Config, logger zerolog.Logger) *LocalHandler {
	return &LocalHandler{strategy: strategy, sessions: sessions, cfg: cfg, logger: logger}
}

// Login verifies submitted credentials, binds a session to the account, and
// redirects to the protected resource. Unknown usernames and wrong passwords
// produce the same response.
func (h *LocalHandler) Login(c *gin.Context) {
	var req requests.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		responses.HandleErrorWithStatus(c, http.StatusBadRequest, err, "username and password are required")
		return
	}

	acct, err := h.strategy.Authenticate(c.Request.Context(), auth.Credentials{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, account.ErrInvalidCredentials) {
			metrics.RecordAuthAttempt(h.strategy.Name(), "failure")
			h.logger.Warn().Str("username", req.Username).Msg("login failed")
			responses.HandleErrorWithStatus(c, http.StatusUnauthorized, err, "authentication failed")
			return
		}
		metrics.RecordAuthAttempt(h.strategy.Name(), "error")
		h.logger.Error().Err(err).Msg("credential verification failed")
		responses.HandleError(c, err, "credential verification failed")
		return
	}

	if err := h.establishSession(c, acct); err != nil {
		responses.HandleError(c, err, "failed to establish session")
		return
	}

	metrics.RecordAuthAttempt(h.strategy.Name(), "success")
	h.logger.Info().Str("username", acct.Username).Msg("login succeeded")
	c.Redirect(http.StatusSeeOther, "/api")
}

// Logout deletes the current session and clears the cookie.
func (h *LocalHandler) Logout(c *gin.Context) {
	token, err := c.Cookie(h.cfg.SessionCookieName)
	if err == nil && token != "" {
		if err := h.sessions.Delete(c.Request.Context(), token); err != nil {
			h.logger.Error().Err(err).Msg("session delete failed")
			responses.HandleError(c, err, "failed to end session")
			return
		}
	}

	c.SetCookie(h.cfg.SessionCookieName, "", -1, "/", "", h.cfg.SessionCookieSecure, true)
	c.JSON(http.StatusOK, gin.H{"status": "logged out"})
}

func (h *LocalHandler) establishSession(c *gin.Context, acct *account.Account) error {
	token, err := h.sessions.Create(c.Request.Context(), acct.ID)
	if err != nil {
		return err
	}

	maxAge := int(h.cfg.SessionTTL.Seconds())
	c.SetCookie(h.cfg.SessionCookieName, token, maxAge, "/", "", h.cfg.SessionCookieSecure, true)
	metrics.SessionsIssuedTotal.Inc()
	return nil
}
