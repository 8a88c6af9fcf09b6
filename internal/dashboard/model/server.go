package model

import "time"

// Server is the locally tracked half of a provisioned server. ID is the
// provider-assigned machine id; runtime state always comes from the
// provider.
type Server struct {
	ID           string `gorm:"primaryKey"`
	Name         string
	Description  string
	Model        string
	ProviderType string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
