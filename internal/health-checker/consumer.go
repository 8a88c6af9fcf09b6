package health_checker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"syscall"
	"time"

	"ritual/internal/dashboard/model"
	"ritual/internal/tgi"
	"ritual/pkg/infra"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type Consumer interface {
	Start()
	Stop()
}

type consumer struct {
	kafkaReader   infra.KafkaReader
	kafkaWriter   infra.KafkaWriter
	tgiClient     tgi.Client
	probeInterval time.Duration
	logger        *zap.Logger
}

func (c *consumer) Start() {
	go func() {
		for {
			m, err := c.kafkaReader.FetchMessage(context.Background())
			if err != nil {
				if errors.Is(err, io.EOF) {
					return
				}
				err = fmt.Errorf("consumer.Start: %w", err)
				c.logger.Log(zap.ErrorLevel, "failed to fetch message", zap.Error(err))
				continue
			}
			if m.Value == nil {
				continue
			}
			ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
			var task model.HealthCheckTask
			if err = json.Unmarshal(m.Value, &task); err != nil {
				err = fmt.Errorf("consumer.Start: %w", err)
				c.logger.Log(zap.ErrorLevel, "failed to unmarshal message", zap.Error(err))
				err = c.kafkaReader.CommitMessages(ctx, m)
				cancel()
				if err != nil {
					err = fmt.Errorf("consumer.Start: %w", err)
					c.logger.Log(zap.ErrorLevel, "failed to commit messages", zap.Error(err))
				}
				continue
			}
			err = c.PerformHealthCheck(ctx, task.ServerID, task.Ip)
			if err != nil {
				cancel()
				err = fmt.Errorf("consumer.Start: %w", err)
				c.logger.Log(zap.ErrorLevel, "failed to perform health check", zap.Error(err))
				continue
			}
			err = c.kafkaReader.CommitMessages(ctx, m)
			cancel()
			if err != nil {
				err = fmt.Errorf("consumer.Start: %w", err)
				c.logger.Log(zap.ErrorLevel, "failed to commit messages", zap.Error(err))
			}
		}
	}()
}

func (c *consumer) PerformHealthCheck(ctx context.Context, serverID string, ip string) error {
	start := time.Now()
	probe, err := c.tgiClient.CheckHealth(ctx, ip)
	if err != nil {
		return fmt.Errorf("consumer.PerformHealthCheck: %w", err)
	}
	healthCheck := model.HealthCheck{
		ServerID:  serverID,
		Timestamp: probe.Timestamp,
		Attempts:  probe.Attempts,
	}
	if probe.Error != nil {
		if errors.Is(probe.Error, syscall.ECONNREFUSED) {
			healthCheck.Status = model.ServerStatusInactive
		} else {
			healthCheck.Status = model.ServerStatusNetworkError
		}
	} else {
		if probe.StatusCode >= 200 && probe.StatusCode < 300 {
			healthCheck.Status = model.ServerStatusHealthy
		} else if probe.StatusCode >= 400 && probe.StatusCode < 500 {
			healthCheck.Status = model.ServerStatusConfigurationError
		} else {
			healthCheck.Status = model.ServerStatusUnhealthy
		}
	}
	if healthCheck.Status == model.ServerStatusHealthy {
		healthCheck.StatusNumeric = 1
	}
	healthCheck.LatencyMs = probe.Timestamp.Sub(start).Milliseconds()
	healthCheck.IntervalSinceLastHealthCheckMs = c.probeInterval.Milliseconds() + healthCheck.LatencyMs
	b, err := json.Marshal(healthCheck)
	if err != nil {
		return fmt.Errorf("consumer.PerformHealthCheck: %w", err)
	}
	err = c.kafkaWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(serverID),
		Value: b,
	})
	if err != nil {
		return fmt.Errorf("consumer.PerformHealthCheck: %w", err)
	}
	return nil
}

// Stop closes the kafka reader but not the writer, which may be shared.
func (c *consumer) Stop() {
	c.kafkaReader.Close()
}

func NewConsumer(reader infra.KafkaReader, writer infra.KafkaWriter, tgiClient tgi.Client, probeInterval time.Duration, logger *zap.Logger) Consumer {
	return &consumer{
		kafkaReader:   reader,
		kafkaWriter:   writer,
		tgiClient:     tgiClient,
		probeInterval: probeInterval,
		logger:        logger,
	}
}
