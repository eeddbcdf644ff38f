package domain

// AuthMethod describes how a caller authenticated with the API.
type AuthMethod string

const (
	AuthMethodLocal AuthMethod = "local"
	AuthMethodOAuth AuthMethod = "oauth2"
)

// Principal captures the normalized caller identity resolved from the
// session for the duration of one request. It is set by the session
// middleware and discarded when the request ends.
type Principal struct {
	AccountID  uint
	AuthMethod AuthMethod
	Username   string
	Role       string
}

// HasRole checks if the principal carries the given role.
func (p Principal) HasRole(role string) bool {
	return p.Role == role
}
