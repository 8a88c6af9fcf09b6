package response

type HealthResponse struct {
	Healthy bool `json:"healthy"`
}
