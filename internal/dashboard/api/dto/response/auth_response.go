package response

type AuthenticationResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	// ExpiresIn in seconds.
	ExpiresIn int `json:"expires_in"`
}
