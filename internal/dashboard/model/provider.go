package model

import "time"

// ProviderCredential holds the stored secrets for one provider type. Key is
// the public API key; Email and Password feed the console login that
// refreshes AuthToken and Namespace.
type ProviderCredential struct {
	Type      string `gorm:"primaryKey"`
	Key       string
	Email     string
	Password  string
	AuthToken string
	Namespace string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ProviderCredential) TableName() string {
	return "providers"
}
