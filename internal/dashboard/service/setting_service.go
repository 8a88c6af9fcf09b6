package service

import (
	"context"
	"fmt"
	"slices"

	"ritual/internal/dashboard/model"
	"ritual/internal/dashboard/repository"
)

type SettingService interface {
	// GetConfig returns every redaction option keyed by option name,
	// falling back to defaults for options never stored.
	GetConfig(ctx context.Context) (map[string]string, error)
	// UpdateConfig stores the given options. Unknown keys and invalid
	// values are silently dropped.
	UpdateConfig(ctx context.Context, config map[string]string) error
}

type settingService struct {
	settingRepository repository.SettingRepository
}

func (s *settingService) GetConfig(ctx context.Context) (map[string]string, error) {
	settings, err := s.settingRepository.GetAllSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("SettingService.GetConfig: %w", err)
	}
	config := make(map[string]string, len(model.RedactOptions))
	for _, setting := range settings {
		config[setting.Key] = setting.Value
	}
	for _, option := range model.RedactOptions {
		if _, ok := config[option.Key]; !ok {
			config[option.Key] = option.Default
		}
	}
	return config, nil
}

func (s *settingService) UpdateConfig(ctx context.Context, config map[string]string) error {
	known := make(map[string]struct{}, len(model.RedactOptions))
	for _, option := range model.RedactOptions {
		known[option.Key] = struct{}{}
	}

	var settings []model.Setting
	for key, value := range config {
		if _, ok := known[key]; !ok {
			continue
		}
		if !slices.Contains(model.RedactOptionValues, value) {
			continue
		}
		settings = append(settings, model.Setting{Key: key, Value: value})
	}
	if err := s.settingRepository.UpsertSettings(ctx, settings); err != nil {
		return fmt.Errorf("SettingService.UpdateConfig: %w", err)
	}
	return nil
}

func NewSettingService(settingRepository repository.SettingRepository) SettingService {
	return &settingService{settingRepository: settingRepository}
}
