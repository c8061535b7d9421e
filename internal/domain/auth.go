package domain

// TokenRequest is the payload for POST /v1/auth/token.
type TokenRequest struct {
	Password string `json:"password"`
}

// TokenResponse carries the admin access token protecting the
// settings surface.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}
