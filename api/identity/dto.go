// Package identity provides the HTTP surface for registration and login.
package identity

// AuthRequest carries the credentials of a register or login call.
type AuthRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is the signed-in view of a user.
type AuthResponse struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	SolvedCount int    `json:"solved_count"`
	Token       string `json:"token"`
}
