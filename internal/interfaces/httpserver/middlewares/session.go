package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"storefront-server/services/store-api/internal/domain"
	"storefront-server/services/store-api/internal/domain/account"
	"storefront-server/services/store-api/internal/infrastructure/session"
	"storefront-server/services/store-api/internal/interfaces/httpserver/responses"
)

const principalContextKey = "principal"

// SessionMiddleware resolves the session cookie into a full account record
// and attaches it to the request context. Requests without a cookie, with an
// unknown token, or whose account no longer exists proceed unauthenticated;
// only storage failures abort the request.
func SessionMiddleware(cookieName string, sessions *session.Store, accounts *account.Service, logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			c.Next()
			return
		}

		ref, err := sessions.Get(c.Request.Context(), token)
		if err != nil {
			logger.Error().Err(err).Msg("session lookup failed")
			responses.HandleError(c, err, "session lookup failed")
			return
		}
		if ref == nil {
			c.Next()
			return
		}

		acct, err := accounts.ResolveByID(c.Request.Context(), ref.AccountID)
		if err != nil {
			logger.Error().Err(err).Uint("account_id", ref.AccountID).Msg("account resolution failed")
			responses.HandleError(c, err, "account resolution failed")
			return
		}
		if acct == nil {
			// Stale reference: the account was removed while the session
			// persisted. Not an error.
			logger.Debug().Uint("account_id", ref.AccountID).Msg("stale session reference")
			c.Next()
			return
		}

		setPrincipal(c, acct)
		c.Next()
	}
}

// PrincipalFromContext returns the authenticated principal, if any.
func PrincipalFromContext(c *gin.Context) (domain.Principal, bool) {
	val, ok := c.Get(principalContextKey)
	if !ok {
		return domain.Principal{}, false
	}
	principal, ok := val.(domain.Principal)
	return principal, ok
}

func setPrincipal(c *gin.Context, acct *account.Account) {
	method := domain.AuthMethodOAuth
	if acct.AuthProvider == "local" {
		method = domain.AuthMethodLocal
	}
	c.Set(principalContextKey, domain.Principal{
		AccountID:  acct.ID,
		AuthMethod: method,
		Username:   acct.Username,
		Role:       acct.Role,
	})
}
