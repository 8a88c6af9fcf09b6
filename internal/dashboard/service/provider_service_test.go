package service_test

import (
	"context"
	"errors"
	"testing"

	apperrors "ritual/internal/dashboard/errors"
	mockrepository "ritual/internal/dashboard/mocks/repository"
	"ritual/internal/dashboard/model"
	"ritual/internal/dashboard/service"
	"ritual/internal/provider"
	mockprovider "ritual/internal/provider/mocks"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestProviderService_GetAllKeys(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProviderRepo := mockrepository.NewMockProviderRepository(ctrl)
	p := service.NewProviderService(mockProviderRepo, nil, provider.NewRegistry(), nil)
	ctx := context.Background()

	mockProviderRepo.EXPECT().GetAllProviders(ctx).Return([]model.ProviderCredential{
		{Type: "PAPERSPACE", Key: "api-key", Email: "ops@ritual.com", Password: "hunter2"},
	}, nil).Times(1)

	keys, err := p.GetAllKeys(ctx)
	assert.NoError(t, err)
	// Stored passwords are never surfaced.
	assert.Equal(t, map[string]service.ProviderKeys{
		"PAPERSPACE": {Key: "api-key", Email: "ops@ritual.com"},
	}, keys)
}

func TestProviderService_UpdateKeys(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProviderRepo := mockrepository.NewMockProviderRepository(ctrl)
	mockServerRepo := mockrepository.NewMockServerRepository(ctrl)
	mockAdapter := mockprovider.NewMockProvider(ctrl)
	registry := provider.NewRegistry()
	registry.Register(provider.TypePaperspace, func(credential provider.Credential, store provider.CredentialStore) provider.Provider {
		return mockAdapter
	})
	p := service.NewProviderService(mockProviderRepo, mockServerRepo, registry, nil)
	ctx := context.Background()

	stored := []model.ProviderCredential{
		{Type: "PAPERSPACE", Key: "old-key", Email: "ops@ritual.com", Password: "hunter2"},
	}
	newKeys := service.ProviderKeys{Key: "new-key", Email: "ops@ritual.com", Password: "hunter3"}

	testCases := []struct {
		name        string
		keys        map[string]service.ProviderKeys
		setupMocks  func()
		expectedErr error
	}{
		{
			name: "Success",
			keys: map[string]service.ProviderKeys{"PAPERSPACE": newKeys},
			setupMocks: func() {
				mockProviderRepo.EXPECT().GetAllProviders(ctx).Return(stored, nil).Times(1)
				mockServerRepo.EXPECT().CountServersByProviderType(ctx, "PAPERSPACE").Return(int64(0), nil).Times(1)
				mockAdapter.EXPECT().IsAuth(ctx).Return(true).Times(1)
				mockProviderRepo.EXPECT().
					UpsertProviderKeys(ctx, []model.ProviderCredential{{Type: "PAPERSPACE", Key: "new-key", Email: "ops@ritual.com", Password: "hunter3"}}).
					Return(nil).
					Times(1)
			},
		},
		{
			name: "Incomplete entries are skipped",
			keys: map[string]service.ProviderKeys{"PAPERSPACE": {Key: "new-key", Email: "ops@ritual.com"}},
			setupMocks: func() {
				mockProviderRepo.EXPECT().GetAllProviders(ctx).Return(stored, nil).Times(1)
			},
			expectedErr: apperrors.ErrNoKeyDataProvided,
		},
		{
			name: "Unchanged entries are skipped",
			keys: map[string]service.ProviderKeys{"PAPERSPACE": {Key: "old-key", Email: "ops@ritual.com", Password: "hunter2"}},
			setupMocks: func() {
				mockProviderRepo.EXPECT().GetAllProviders(ctx).Return(stored, nil).Times(1)
			},
			expectedErr: apperrors.ErrNoKeyDataProvided,
		},
		{
			name: "Unsupported provider",
			keys: map[string]service.ProviderKeys{"AWS": newKeys},
			setupMocks: func() {
				mockProviderRepo.EXPECT().GetAllProviders(ctx).Return(stored, nil).Times(1)
			},
			expectedErr: apperrors.ErrProviderNotFound,
		},
		{
			name: "Provider with provisioned servers",
			keys: map[string]service.ProviderKeys{"PAPERSPACE": newKeys},
			setupMocks: func() {
				mockProviderRepo.EXPECT().GetAllProviders(ctx).Return(stored, nil).Times(1)
				mockServerRepo.EXPECT().CountServersByProviderType(ctx, "PAPERSPACE").Return(int64(2), nil).Times(1)
			},
			expectedErr: apperrors.ErrProviderInUse,
		},
		{
			name: "Rejected credentials",
			keys: map[string]service.ProviderKeys{"PAPERSPACE": newKeys},
			setupMocks: func() {
				mockProviderRepo.EXPECT().GetAllProviders(ctx).Return(stored, nil).Times(1)
				mockServerRepo.EXPECT().CountServersByProviderType(ctx, "PAPERSPACE").Return(int64(0), nil).Times(1)
				mockAdapter.EXPECT().IsAuth(ctx).Return(false).Times(1)
			},
			expectedErr: apperrors.ErrInvalidCredentials,
		},
		{
			name: "Empty request",
			keys: map[string]service.ProviderKeys{},
			setupMocks: func() {
				mockProviderRepo.EXPECT().GetAllProviders(ctx).Return(stored, nil).Times(1)
			},
			expectedErr: apperrors.ErrNoKeyDataProvided,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMocks()
			err := p.UpdateKeys(ctx, tc.keys)
			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestProviderService_AdapterByType(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProviderRepo := mockrepository.NewMockProviderRepository(ctrl)
	mockAdapter := mockprovider.NewMockProvider(ctrl)
	registry := provider.NewRegistry()
	var seen provider.Credential
	registry.Register(provider.TypePaperspace, func(credential provider.Credential, store provider.CredentialStore) provider.Provider {
		seen = credential
		return mockAdapter
	})
	p := service.NewProviderService(mockProviderRepo, nil, registry, nil)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockProviderRepo.EXPECT().GetProviderByType(ctx, "PAPERSPACE").Return(model.ProviderCredential{
			Type: "PAPERSPACE", Key: "api-key", Email: "ops@ritual.com", Password: "hunter2", AuthToken: "token-1", Namespace: "ns1",
		}, nil).Times(1)

		adapter, err := p.AdapterByType(ctx, "PAPERSPACE")
		assert.NoError(t, err)
		assert.Equal(t, mockAdapter, adapter)
		assert.Equal(t, provider.Credential{
			Type: provider.TypePaperspace, Key: "api-key", Email: "ops@ritual.com", Password: "hunter2", AuthToken: "token-1", Namespace: "ns1",
		}, seen)
	})

	t.Run("Unknown provider", func(t *testing.T) {
		mockProviderRepo.EXPECT().GetProviderByType(ctx, "AWS").Return(model.ProviderCredential{}, apperrors.ErrProviderNotFound).Times(1)

		_, err := p.AdapterByType(ctx, "AWS")
		assert.ErrorIs(t, err, apperrors.ErrProviderNotFound)
	})
}

func TestProviderService_GetConfigurations(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProviderRepo := mockrepository.NewMockProviderRepository(ctrl)
	mockAdapter := mockprovider.NewMockProvider(ctrl)
	registry := provider.NewRegistry()
	registry.Register(provider.TypePaperspace, func(credential provider.Credential, store provider.CredentialStore) provider.Provider {
		return mockAdapter
	})
	p := service.NewProviderService(mockProviderRepo, nil, registry, nil)
	ctx := context.Background()
	configurations := []provider.Configuration{
		{Gpu: provider.GPUSpecifications{Model: "A4000", Count: 1}},
	}

	testCases := []struct {
		name       string
		setupMocks func()
		output     map[string][]provider.Configuration
		expectErr  bool
	}{
		{
			name: "Success",
			setupMocks: func() {
				mockProviderRepo.EXPECT().GetAllProviders(ctx).Return([]model.ProviderCredential{{Type: "PAPERSPACE"}}, nil).Times(1)
				mockAdapter.EXPECT().GetConfigurations(ctx).Return(configurations, nil).Times(1)
				mockAdapter.EXPECT().Type().Return(provider.TypePaperspace).Times(1)
			},
			output: map[string][]provider.Configuration{"PAPERSPACE": configurations},
		},
		{
			name: "Adapter error",
			setupMocks: func() {
				mockProviderRepo.EXPECT().GetAllProviders(ctx).Return([]model.ProviderCredential{{Type: "PAPERSPACE"}}, nil).Times(1)
				mockAdapter.EXPECT().GetConfigurations(ctx).Return(nil, errors.New("some error")).Times(1)
			},
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMocks()
			res, err := p.GetConfigurations(ctx)
			if tc.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.output, res)
			}
		})
	}
}
