package repository

import (
	"context"
	"fmt"

	"ritual/internal/dashboard/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingRepository interface {
	GetAllSettings(ctx context.Context) ([]model.Setting, error)
	// UpsertSettings writes every given option in one transaction.
	UpsertSettings(ctx context.Context, settings []model.Setting) error
}

type settingRepository struct {
	db *gorm.DB
}

func (s *settingRepository) GetAllSettings(ctx context.Context) ([]model.Setting, error) {
	var settings []model.Setting
	result := s.db.WithContext(ctx).Find(&settings)
	if result.Error != nil {
		return nil, fmt.Errorf("SettingRepository.GetAllSettings: %w", result.Error)
	}
	return settings, nil
}

func (s *settingRepository) UpsertSettings(ctx context.Context, settings []model.Setting) error {
	if len(settings) == 0 {
		return nil
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, setting := range settings {
			result := tx.WithContext(ctx).Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "key"}},
				DoUpdates: clause.AssignmentColumns([]string{"value"}),
			}).Create(&setting)
			if result.Error != nil {
				return result.Error
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("SettingRepository.UpsertSettings: %w", err)
	}
	return nil
}

func NewSettingRepository(db *gorm.DB) SettingRepository {
	return &settingRepository{db: db}
}
