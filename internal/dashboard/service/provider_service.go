package service

import (
	"context"
	"fmt"

	apperrors "ritual/internal/dashboard/errors"
	"ritual/internal/dashboard/model"
	"ritual/internal/dashboard/repository"
	"ritual/internal/provider"
)

// ProviderKeys is one provider's user-supplied secrets. Password is never
// returned, only accepted on update.
type ProviderKeys struct {
	Key      string
	Email    string
	Password string
}

type ProviderService interface {
	// GetAllKeys maps provider type to its stored key and login email.
	GetAllKeys(ctx context.Context) (map[string]ProviderKeys, error)
	// UpdateKeys verifies and stores new provider secrets. Entries with
	// missing fields or values identical to the stored ones are skipped;
	// providers with provisioned servers cannot be modified.
	UpdateKeys(ctx context.Context, keys map[string]ProviderKeys) error
	// AdapterByType builds an adapter for the stored credential of the
	// given provider type.
	AdapterByType(ctx context.Context, providerType string) (provider.Provider, error)
	// AllAdapters builds adapters for every stored credential.
	AllAdapters(ctx context.Context) ([]provider.Provider, error)
	// GetConfigurations maps provider type to its purchasable machine
	// configurations.
	GetConfigurations(ctx context.Context) (map[string][]provider.Configuration, error)
}

type providerService struct {
	providerRepository repository.ProviderRepository
	serverRepository   repository.ServerRepository
	registry           *provider.Registry
	credentialStore    provider.CredentialStore
}

func (p *providerService) GetAllKeys(ctx context.Context) (map[string]ProviderKeys, error) {
	providers, err := p.providerRepository.GetAllProviders(ctx)
	if err != nil {
		return nil, fmt.Errorf("ProviderService.GetAllKeys: %w", err)
	}
	keys := make(map[string]ProviderKeys, len(providers))
	for _, credential := range providers {
		keys[credential.Type] = ProviderKeys{
			Key:   credential.Key,
			Email: credential.Email,
		}
	}
	return keys, nil
}

func (p *providerService) UpdateKeys(ctx context.Context, keys map[string]ProviderKeys) error {
	providers, err := p.providerRepository.GetAllProviders(ctx)
	if err != nil {
		return fmt.Errorf("ProviderService.UpdateKeys: %w", err)
	}
	stored := make(map[string]model.ProviderCredential, len(providers))
	for _, credential := range providers {
		stored[credential.Type] = credential
	}

	var updates []model.ProviderCredential
	for providerType, next := range keys {
		if next.Key == "" || next.Email == "" || next.Password == "" {
			continue
		}
		current, exists := stored[providerType]
		if exists && current.Key == next.Key && current.Email == next.Email && current.Password == next.Password {
			continue
		}
		if !p.registry.Supports(provider.Type(providerType)) {
			return fmt.Errorf("ProviderService.UpdateKeys unsupported provider %s: %w", providerType, apperrors.ErrProviderNotFound)
		}
		inUse, err := p.serverRepository.CountServersByProviderType(ctx, providerType)
		if err != nil {
			return fmt.Errorf("ProviderService.UpdateKeys: %w", err)
		}
		if inUse > 0 {
			return fmt.Errorf("ProviderService.UpdateKeys %s: %w", providerType, apperrors.ErrProviderInUse)
		}

		candidate := provider.Credential{
			Type:     provider.Type(providerType),
			Key:      next.Key,
			Email:    next.Email,
			Password: next.Password,
		}
		adapter, err := p.registry.New(candidate, p.credentialStore)
		if err != nil {
			return fmt.Errorf("ProviderService.UpdateKeys: %w", err)
		}
		if !adapter.IsAuth(ctx) {
			return fmt.Errorf("ProviderService.UpdateKeys %s: %w", providerType, apperrors.ErrInvalidCredentials)
		}

		updates = append(updates, model.ProviderCredential{
			Type:     providerType,
			Key:      next.Key,
			Email:    next.Email,
			Password: next.Password,
		})
	}

	if len(updates) == 0 {
		return fmt.Errorf("ProviderService.UpdateKeys: %w", apperrors.ErrNoKeyDataProvided)
	}
	if err := p.providerRepository.UpsertProviderKeys(ctx, updates); err != nil {
		return fmt.Errorf("ProviderService.UpdateKeys: %w", err)
	}
	return nil
}

func (p *providerService) AdapterByType(ctx context.Context, providerType string) (provider.Provider, error) {
	credential, err := p.providerRepository.GetProviderByType(ctx, providerType)
	if err != nil {
		return nil, fmt.Errorf("ProviderService.AdapterByType: %w", err)
	}
	adapter, err := p.registry.New(repository.CredentialFromModel(credential), p.credentialStore)
	if err != nil {
		return nil, fmt.Errorf("ProviderService.AdapterByType: %w", err)
	}
	return adapter, nil
}

func (p *providerService) AllAdapters(ctx context.Context) ([]provider.Provider, error) {
	providers, err := p.providerRepository.GetAllProviders(ctx)
	if err != nil {
		return nil, fmt.Errorf("ProviderService.AllAdapters: %w", err)
	}
	adapters := make([]provider.Provider, 0, len(providers))
	for _, credential := range providers {
		adapter, err := p.registry.New(repository.CredentialFromModel(credential), p.credentialStore)
		if err != nil {
			return nil, fmt.Errorf("ProviderService.AllAdapters: %w", err)
		}
		adapters = append(adapters, adapter)
	}
	return adapters, nil
}

func (p *providerService) GetConfigurations(ctx context.Context) (map[string][]provider.Configuration, error) {
	adapters, err := p.AllAdapters(ctx)
	if err != nil {
		return nil, fmt.Errorf("ProviderService.GetConfigurations: %w", err)
	}
	configurations := make(map[string][]provider.Configuration, len(adapters))
	for _, adapter := range adapters {
		providerConfigurations, err := adapter.GetConfigurations(ctx)
		if err != nil {
			return nil, fmt.Errorf("ProviderService.GetConfigurations: %w", err)
		}
		configurations[string(adapter.Type())] = providerConfigurations
	}
	return configurations, nil
}

func NewProviderService(providerRepository repository.ProviderRepository, serverRepository repository.ServerRepository, registry *provider.Registry, credentialStore provider.CredentialStore) ProviderService {
	return &providerService{
		providerRepository: providerRepository,
		serverRepository:   serverRepository,
		registry:           registry,
		credentialStore:    credentialStore,
	}
}
