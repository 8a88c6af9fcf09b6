package repository

import (
	"context"
	"errors"
	"fmt"

	apperrors "ritual/internal/dashboard/errors"
	"ritual/internal/dashboard/model"
	"ritual/internal/provider"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProviderRepository interface {
	GetAllProviders(ctx context.Context) ([]model.ProviderCredential, error)
	GetProviderByType(ctx context.Context, providerType string) (model.ProviderCredential, error)
	// UpsertProvider inserts the credential or, when the type already
	// exists, overwrites its secrets including the session token.
	UpsertProvider(ctx context.Context, credential model.ProviderCredential) error
	// UpsertProviderKeys writes only the user-supplied secrets, leaving any
	// established session token in place. All credentials go in one
	// transaction.
	UpsertProviderKeys(ctx context.Context, credentials []model.ProviderCredential) error
}

type providerRepository struct {
	db *gorm.DB
}

func (p *providerRepository) GetAllProviders(ctx context.Context) ([]model.ProviderCredential, error) {
	var providers []model.ProviderCredential
	result := p.db.WithContext(ctx).Find(&providers)
	if result.Error != nil {
		return nil, fmt.Errorf("ProviderRepository.GetAllProviders: %w", result.Error)
	}
	return providers, nil
}

func (p *providerRepository) GetProviderByType(ctx context.Context, providerType string) (model.ProviderCredential, error) {
	var credential model.ProviderCredential
	result := p.db.WithContext(ctx).First(&credential, "type = ?", providerType)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return credential, fmt.Errorf("ProviderRepository.GetProviderByType: %w", apperrors.ErrProviderNotFound)
		}
		return credential, fmt.Errorf("ProviderRepository.GetProviderByType: %w", result.Error)
	}
	return credential, nil
}

func (p *providerRepository) UpsertProvider(ctx context.Context, credential model.ProviderCredential) error {
	result := p.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "type"}},
		DoUpdates: clause.AssignmentColumns([]string{"key", "email", "password", "auth_token", "namespace", "updated_at"}),
	}).Create(&credential)
	if result.Error != nil {
		return fmt.Errorf("ProviderRepository.UpsertProvider: %w", result.Error)
	}
	return nil
}

func (p *providerRepository) UpsertProviderKeys(ctx context.Context, credentials []model.ProviderCredential) error {
	if len(credentials) == 0 {
		return nil
	}
	err := p.db.Transaction(func(tx *gorm.DB) error {
		for _, credential := range credentials {
			result := tx.WithContext(ctx).Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "type"}},
				DoUpdates: clause.AssignmentColumns([]string{"key", "email", "password", "updated_at"}),
			}).Create(&credential)
			if result.Error != nil {
				return result.Error
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("ProviderRepository.UpsertProviderKeys: %w", err)
	}
	return nil
}

func NewProviderRepository(db *gorm.DB) ProviderRepository {
	return &providerRepository{db: db}
}

// credentialStore bridges the stored credential rows to the shape provider
// adapters consume and persist through.
type credentialStore struct {
	providers ProviderRepository
}

func (c *credentialStore) FindByType(ctx context.Context, providerType provider.Type) (provider.Credential, error) {
	stored, err := c.providers.GetProviderByType(ctx, string(providerType))
	if err != nil {
		return provider.Credential{}, err
	}
	return CredentialFromModel(stored), nil
}

func (c *credentialStore) Upsert(ctx context.Context, credential provider.Credential) error {
	return c.providers.UpsertProvider(ctx, model.ProviderCredential{
		Type:      string(credential.Type),
		Key:       credential.Key,
		Email:     credential.Email,
		Password:  credential.Password,
		AuthToken: credential.AuthToken,
		Namespace: credential.Namespace,
	})
}

// CredentialFromModel converts a stored credential row for adapter use.
func CredentialFromModel(credential model.ProviderCredential) provider.Credential {
	return provider.Credential{
		Type:      provider.Type(credential.Type),
		Key:       credential.Key,
		Email:     credential.Email,
		Password:  credential.Password,
		AuthToken: credential.AuthToken,
		Namespace: credential.Namespace,
	}
}

func NewCredentialStore(providers ProviderRepository) provider.CredentialStore {
	return &credentialStore{providers: providers}
}
