package request

type ProviderKeysRequest struct {
	Key      string `json:"key"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateKeysRequest maps provider type to its new secrets.
type UpdateKeysRequest map[string]ProviderKeysRequest
