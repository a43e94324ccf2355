package dto

// LoginRequest carries the 4-digit access PIN. The PIN is the only
// credential — this is a single-user system behind a shared gate.
type LoginRequest struct {
	PIN string `json:"pin" validate:"required,len=4,numeric"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}
