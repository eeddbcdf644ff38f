package requests

// LoginRequest represents the local credential login payload. Both form and
// JSON bodies are accepted.
type LoginRequest struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}
