package response

import (
	"time"

	"ritual/internal/provider"
)

type ServerDetailsResponse struct {
	ID          string                        `json:"id"`
	Name        string                        `json:"name"`
	Description string                        `json:"description"`
	Model       string                        `json:"model"`
	Provider    string                        `json:"provider"`
	Ip          string                        `json:"ip"`
	Os          string                        `json:"os"`
	Status      string                        `json:"status"`
	Price       provider.ConfigurationPrice   `json:"price"`
	Specs       provider.ServerSpecifications `json:"specs"`
	CreatedAt   time.Time                     `json:"created_at"`
}

type ServerNameResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CreateServerResponse struct {
	ID string `json:"id"`
}

type UptimeResponse struct {
	UptimePercentage float64 `json:"uptime_percentage"`
}
