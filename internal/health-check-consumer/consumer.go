package health_check_consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"ritual/internal/dashboard/model"
	"ritual/internal/dashboard/repository"
	"ritual/pkg/infra"

	"go.uber.org/zap"
)

// HealthCheckConsumer drains health check results off kafka and indexes
// them into elasticsearch, where the uptime aggregations run.
type HealthCheckConsumer interface {
	Start()
	Stop()
}

type healthCheckConsumer struct {
	kafkaReader     infra.KafkaReader
	healthCheckRepo repository.HealthCheckRepository
	logger          *zap.Logger
}

func (h *healthCheckConsumer) Start() {
	go func() {
		for {
			m, err := h.kafkaReader.FetchMessage(context.Background())
			if err != nil {
				if errors.Is(err, io.EOF) {
					return
				}
				err = fmt.Errorf("healthCheckConsumer.Start: %w", err)
				h.logger.Log(zap.ErrorLevel, "failed to fetch message", zap.Error(err))
				continue
			}
			if m.Value == nil {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				err = h.kafkaReader.CommitMessages(ctx, m)
				cancel()
				if err != nil {
					err = fmt.Errorf("healthCheckConsumer.Start: %w", err)
					h.logger.Log(zap.ErrorLevel, "failed to commit messages", zap.Error(err))
				}
				continue
			}
			ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
			var healthCheck model.HealthCheck
			if err = json.Unmarshal(m.Value, &healthCheck); err != nil {
				err = fmt.Errorf("healthCheckConsumer.Start: %w", err)
				h.logger.Log(zap.ErrorLevel, "failed to unmarshal message", zap.Error(err))
				err = h.kafkaReader.CommitMessages(ctx, m)
				cancel()
				if err != nil {
					err = fmt.Errorf("healthCheckConsumer.Start: %w", err)
					h.logger.Log(zap.ErrorLevel, "failed to commit messages", zap.Error(err))
				}
				continue
			}
			err = h.healthCheckRepo.IndexHealthCheck(ctx, healthCheck)
			if err != nil {
				cancel()
				err = fmt.Errorf("healthCheckConsumer.Start: %w", err)
				h.logger.Log(zap.ErrorLevel, "failed to index health check", zap.Error(err))
				continue
			}
			err = h.kafkaReader.CommitMessages(ctx, m)
			cancel()
			if err != nil {
				err = fmt.Errorf("healthCheckConsumer.Start: %w", err)
				h.logger.Log(zap.ErrorLevel, "failed to commit messages", zap.Error(err))
			}
		}
	}()
}

func (h *healthCheckConsumer) Stop() {
	h.kafkaReader.Close()
}

func NewHealthCheckConsumer(reader infra.KafkaReader, healthCheckRepo repository.HealthCheckRepository, logger *zap.Logger) HealthCheckConsumer {
	return &healthCheckConsumer{
		kafkaReader:     reader,
		healthCheckRepo: healthCheckRepo,
		logger:          logger,
	}
}
