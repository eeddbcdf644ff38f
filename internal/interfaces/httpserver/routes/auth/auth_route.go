package auth

import (
	"github.com/gin-gonic/gin"

	"storefront-server/services/store-api/internal/config"
	"storefront-server/services/store-api/internal/interfaces/httpserver/handlers/authhandler"
	"storefront-server/services/store-api/internal/interfaces/httpserver/middlewares"
)

// AuthRoute handles authentication routes
type AuthRoute struct {
	localHandler *authhandler.LocalHandler
	oauthHandler *authhandler.OAuthHandler
	cfg          *config.Config
}

// NewAuthRoute creates a new auth route
func NewAuthRoute(
	localHandler *authhandler.LocalHandler,
	oauthHandler *authhandler.OAuthHandler,
	cfg *config.Config,
) *AuthRoute {
	return &AuthRoute{
		localHandler: localHandler,
		oauthHandler: oauthHandler,
		cfg:          cfg,
	}
}

// RegisterRouter registers auth routes
func (a *AuthRoute) RegisterRouter(router gin.IRouter) {
	loginLimit := middlewares.RateLimitMiddleware(a.cfg.LoginRateLimitPerMinute)

	router.POST("/login", loginLimit, a.Login)
	router.GET("/logout", a.Logout)

	router.GET("/auth/:provider", a.InitiateOAuth)
	router.GET("/auth/:provider/callback", a.OAuthCallback)
}

// Login godoc
// @Summary Log in with username and password
// @Description Verifies submitted credentials and binds a session to the account. Unknown usernames and wrong passwords produce the same 401 response.
// @Tags Authentication API
// @Accept x-www-form-urlencoded
// @Accept json
// @Produce json
// @Param username formData string true "Account username"
// @Param password formData string true "Account password"
// @Success 303 "Redirects to the protected resource"
// @Failure 400 {object} responses.ErrorResponse "Missing username or password"
// @Failure 401 {object} responses.ErrorResponse "Authentication failed"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /login [post]
func (a *AuthRoute) Login(c *gin.Context) {
	a.localHandler.Login(c)
}

// Logout godoc
// @Summary Log out
// @Description Deletes the current session and clears the session cookie. Logging out without a session succeeds.
// @Tags Authentication API
// @Produce json
// @Success 200 {object} object "Successfully logged out"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /logout [get]
func (a *AuthRoute) Logout(c *gin.Context) {
	a.localHandler.Logout(c)
}

// InitiateOAuth godoc
// @Summary Start delegated login
// @Description Redirects the user to the named provider's authorization endpoint with a state parameter bound to a short-lived cookie.
// @Tags Authentication API
// @Produce json
// @Param provider path string true "Provider name (google, github)"
// @Success 302 "Redirects to the provider"
// @Failure 404 {object} responses.ErrorResponse "Unknown provider"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /auth/{provider} [get]
func (a *AuthRoute) InitiateOAuth(c *gin.Context) {
	a.oauthHandler.InitiateLogin(c)
}

// OAuthCallback godoc
// @Summary Complete delegated login
// @Description Validates the state parameter, exchanges the authorization code for a profile, and binds a session to the resolved account.
// @Tags Authentication API
// @Produce json
// @Param provider path string true "Provider name (google, github)"
// @Param code query string true "Authorization code"
// @Param state query string true "State parameter from the initiate step"
// @Success 303 "Redirects to the protected resource"
// @Failure 401 {object} responses.ErrorResponse "State mismatch or exchange failure"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /auth/{provider}/callback [get]
func (a *AuthRoute) OAuthCallback(c *gin.Context) {
	a.oauthHandler.Callback(c)
}
