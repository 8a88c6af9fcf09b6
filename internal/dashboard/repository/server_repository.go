package repository

import (
	"context"
	"errors"
	"fmt"

	apperrors "ritual/internal/dashboard/errors"
	"ritual/internal/dashboard/model"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type ServerRepository interface {
	CreateServer(ctx context.Context, server model.Server) (model.Server, error)
	GetServerById(ctx context.Context, serverId string) (model.Server, error)
	// GetAllServersOrderedByName lists every tracked server sorted by name
	// ascending, the order the dashboard renders in.
	GetAllServersOrderedByName(ctx context.Context) ([]model.Server, error)
	DeleteServerById(ctx context.Context, serverId string) error
	// DeleteServersByIds removes the given servers in one statement. An
	// empty id list is a no-op.
	DeleteServersByIds(ctx context.Context, serverIds []string) error
	CountServersByProviderType(ctx context.Context, providerType string) (int64, error)
}

type serverRepository struct {
	db *gorm.DB
}

func (s *serverRepository) CreateServer(ctx context.Context, server model.Server) (model.Server, error) {
	result := s.db.WithContext(ctx).Create(&server)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == "23505" {
			if pgErr.ConstraintName == "servers_name_key" {
				return server, fmt.Errorf("ServerRepository.CreateServer: %w", apperrors.ErrServerNameAlreadyExists)
			}
		}
		return server, fmt.Errorf("ServerRepository.CreateServer: %w", result.Error)
	}
	return server, nil
}

func (s *serverRepository) GetServerById(ctx context.Context, serverId string) (model.Server, error) {
	var server model.Server
	result := s.db.WithContext(ctx).First(&server, "id = ?", serverId)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return server, fmt.Errorf("ServerRepository.GetServerById: %w", apperrors.ErrServerNotFound)
		}
		return server, fmt.Errorf("ServerRepository.GetServerById: %w", result.Error)
	}
	return server, nil
}

func (s *serverRepository) GetAllServersOrderedByName(ctx context.Context) ([]model.Server, error) {
	var servers []model.Server
	result := s.db.WithContext(ctx).Order("name asc").Find(&servers)
	if result.Error != nil {
		return nil, fmt.Errorf("ServerRepository.GetAllServersOrderedByName: %w", result.Error)
	}
	return servers, nil
}

func (s *serverRepository) DeleteServerById(ctx context.Context, serverId string) error {
	result := s.db.WithContext(ctx).Where("id = ?", serverId).Delete(&model.Server{})
	if result.Error != nil {
		return fmt.Errorf("ServerRepository.DeleteServerById: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("ServerRepository.DeleteServerById: %w", apperrors.ErrServerNotFound)
	}
	return nil
}

func (s *serverRepository) DeleteServersByIds(ctx context.Context, serverIds []string) error {
	if len(serverIds) == 0 {
		return nil
	}
	result := s.db.WithContext(ctx).Where("id IN ?", serverIds).Delete(&model.Server{})
	if result.Error != nil {
		return fmt.Errorf("ServerRepository.DeleteServersByIds: %w", result.Error)
	}
	return nil
}

func (s *serverRepository) CountServersByProviderType(ctx context.Context, providerType string) (int64, error) {
	var count int64
	result := s.db.WithContext(ctx).Model(&model.Server{}).Where("provider_type = ?", providerType).Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("ServerRepository.CountServersByProviderType: %w", result.Error)
	}
	return count, nil
}

func NewServerRepository(db *gorm.DB) ServerRepository {
	return &serverRepository{db: db}
}
