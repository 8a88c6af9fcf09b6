package provider

import "context"

// Credential is the stored authentication material for one provider. Key
// authenticates the public API; Email and Password drive the private-API
// login flow; AuthToken and Namespace are the cached session state produced
// by the last successful login.
type Credential struct {
	Type      Type
	Key       string
	Email     string
	Password  string
	AuthToken string
	Namespace string
}

// CredentialStore persists provider credentials and refreshed session state.
// The dashboard's provider repository implements it.
type CredentialStore interface {
	FindByType(ctx context.Context, t Type) (Credential, error)
	Upsert(ctx context.Context, credential Credential) error
}
