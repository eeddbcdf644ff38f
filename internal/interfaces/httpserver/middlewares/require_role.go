package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-server/services/store-api/internal/infrastructure/metrics"
)

// RequireRole enforces the authorization gate for protected routes. Identity
// is always checked before role, so anonymous callers never learn which role
// a route requires.
func RequireRole(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := PrincipalFromContext(c)
		if !ok || principal.AccountID == 0 {
			metrics.AccessDeniedTotal.WithLabelValues("unauthorized").Inc()
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Unauthorized",
			})
			return
		}

		if !principal.HasRole(requiredRole) {
			metrics.AccessDeniedTotal.WithLabelValues("forbidden").Inc()
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Forbidden",
			})
			return
		}

		c.Next()
	}
}
