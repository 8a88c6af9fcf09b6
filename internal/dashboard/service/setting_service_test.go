package service_test

import (
	"context"
	"testing"

	mockrepository "ritual/internal/dashboard/mocks/repository"
	"ritual/internal/dashboard/model"
	"ritual/internal/dashboard/service"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestSettingService_GetConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSettingRepo := mockrepository.NewMockSettingRepository(ctrl)
	s := service.NewSettingService(mockSettingRepo)
	ctx := context.Background()

	mockSettingRepo.EXPECT().GetAllSettings(ctx).Return([]model.Setting{
		{Key: "redact_email", Value: model.RedactBlock},
	}, nil).Times(1)

	config, err := s.GetConfig(ctx)
	assert.NoError(t, err)
	assert.Len(t, config, len(model.RedactOptions))
	assert.Equal(t, model.RedactBlock, config["redact_email"])
	// Options never stored fall back to their defaults.
	assert.Equal(t, model.RedactPassthrough, config["redact_name"])
}

func TestSettingService_UpdateConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSettingRepo := mockrepository.NewMockSettingRepository(ctrl)
	s := service.NewSettingService(mockSettingRepo)
	ctx := context.Background()

	testCases := []struct {
		name       string
		config     map[string]string
		setupMocks func()
	}{
		{
			name:   "Valid options are stored",
			config: map[string]string{"redact_email": model.RedactRedact},
			setupMocks: func() {
				mockSettingRepo.EXPECT().
					UpsertSettings(ctx, []model.Setting{{Key: "redact_email", Value: model.RedactRedact}}).
					Return(nil).
					Times(1)
			},
		},
		{
			name: "Unknown keys and invalid values are dropped",
			config: map[string]string{
				"redact_email": "SHRED",
				"redact_ssn":   model.RedactBlock,
			},
			setupMocks: func() {
				mockSettingRepo.EXPECT().UpsertSettings(ctx, gomock.Len(0)).Return(nil).Times(1)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMocks()
			assert.NoError(t, s.UpdateConfig(ctx, tc.config))
		})
	}
}
