package provider

import (
	"context"
	"fmt"
)

// Type identifies an ML inference provider.
type Type string

const (
	TypePaperspace Type = "PAPERSPACE"
)

// SupportedTypes lists every provider type a Registry may carry.
var SupportedTypes = []Type{TypePaperspace}

// Provider is the contract every ML inference provider adapter implements.
type Provider interface {
	// Type maps the adapter to its provider type.
	Type() Type
	// IsAuth reports whether the stored API credentials are valid.
	IsAuth(ctx context.Context) bool
	// GetConfigurations lists the purchasable machine configurations.
	GetConfigurations(ctx context.Context) ([]Configuration, error)
	// GetServer collects details about a single server.
	GetServer(ctx context.Context, id string) (Server, error)
	// GetAllServers collects details about all servers.
	GetAllServers(ctx context.Context) ([]Server, error)
	// CreateServer provisions a new server and returns its id.
	CreateServer(ctx context.Context, serverConfig ServerConfig, runConfig RunConfig) (string, error)
	StartServer(ctx context.Context, id string) error
	StopServer(ctx context.Context, id string) error
	DeleteServer(ctx context.Context, id string) error
}

// Constructor builds an adapter from stored credentials and the store used
// to persist refreshed session state.
type Constructor func(credential Credential, store CredentialStore) Provider

// Registry maps provider types to adapter constructors. It is built once at
// process start; adding a provider is a single Register call.
type Registry struct {
	constructors map[Type]Constructor
}

func NewRegistry() *Registry {
	return &Registry{
		constructors: make(map[Type]Constructor),
	}
}

func (r *Registry) Register(t Type, c Constructor) {
	r.constructors[t] = c
}

// New instantiates the adapter registered for the credential's type.
func (r *Registry) New(credential Credential, store CredentialStore) (Provider, error) {
	c, ok := r.constructors[credential.Type]
	if !ok {
		return nil, NewError(KindNotFound, "Registry.New", fmt.Sprintf("unsupported provider: %s", credential.Type), nil)
	}
	return c(credential, store), nil
}

// Supports reports whether a constructor is registered for t.
func (r *Registry) Supports(t Type) bool {
	_, ok := r.constructors[t]
	return ok
}
