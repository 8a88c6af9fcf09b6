package response

type ProviderKeysResponse struct {
	Key   string `json:"key"`
	Email string `json:"email"`
}
