package health_check_consumer

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	mockrepository "ritual/internal/dashboard/mocks/repository"
	"ritual/internal/dashboard/model"
	"ritual/pkg/infra"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newKafkaMessage(t *testing.T, serverID, status string) kafka.Message {
	healthCheck := model.HealthCheck{
		ServerID:                       serverID,
		Status:                         status,
		StatusNumeric:                  1,
		Timestamp:                      time.Now(),
		LatencyMs:                      12,
		Attempts:                       1,
		IntervalSinceLastHealthCheckMs: 30012,
	}
	value, err := json.Marshal(healthCheck)
	assert.NoError(t, err)
	return kafka.Message{Value: value}
}

func TestHealthCheckConsumer_Start(t *testing.T) {
	validMessage := newKafkaMessage(t, "server-001", model.ServerStatusHealthy)
	invalidJSONMessage := kafka.Message{Value: []byte("{not-a-json'")}
	nilValueMessage := kafka.Message{Value: nil}

	testCases := []struct {
		name       string
		setupMocks func(mockReader *infra.MockKafkaReader, mockRepo *mockrepository.MockHealthCheckRepository)
	}{
		{
			name: "Success Process valid message",
			setupMocks: func(mockReader *infra.MockKafkaReader, mockRepo *mockrepository.MockHealthCheckRepository) {
				gomock.InOrder(
					mockReader.EXPECT().FetchMessage(gomock.Any()).Return(validMessage, nil),
					mockRepo.EXPECT().IndexHealthCheck(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, healthCheck model.HealthCheck) error {
						assert.Equal(t, "server-001", healthCheck.ServerID)
						assert.Equal(t, model.ServerStatusHealthy, healthCheck.Status)
						assert.Equal(t, 1, healthCheck.StatusNumeric)
						return nil
					}),
					mockReader.EXPECT().CommitMessages(gomock.Any(), validMessage).Return(nil),
					mockReader.EXPECT().FetchMessage(gomock.Any()).Return(kafka.Message{}, io.EOF),
				)
			},
		},
		{
			name: "Failure FetchMessage returns a generic error",
			setupMocks: func(mockReader *infra.MockKafkaReader, mockRepo *mockrepository.MockHealthCheckRepository) {
				gomock.InOrder(
					mockReader.EXPECT().FetchMessage(gomock.Any()).Return(kafka.Message{}, errors.New("kafka broker unavailable")),
					mockReader.EXPECT().FetchMessage(gomock.Any()).Return(kafka.Message{}, io.EOF),
				)
			},
		},
		{
			name: "Skip Message value is nil",
			setupMocks: func(mockReader *infra.MockKafkaReader, mockRepo *mockrepository.MockHealthCheckRepository) {
				gomock.InOrder(
					mockReader.EXPECT().FetchMessage(gomock.Any()).Return(nilValueMessage, nil),
					mockReader.EXPECT().CommitMessages(gomock.Any(), gomock.Any()).Return(nil),
					mockReader.EXPECT().FetchMessage(gomock.Any()).Return(kafka.Message{}, io.EOF),
				)
			},
		},
		{
			name: "Failure JSON unmarshal fails and commit succeeds",
			setupMocks: func(mockReader *infra.MockKafkaReader, mockRepo *mockrepository.MockHealthCheckRepository) {
				gomock.InOrder(
					mockReader.EXPECT().FetchMessage(gomock.Any()).Return(invalidJSONMessage, nil),
					mockReader.EXPECT().CommitMessages(gomock.Any(), invalidJSONMessage).Return(nil),
					mockReader.EXPECT().FetchMessage(gomock.Any()).Return(kafka.Message{}, io.EOF),
				)
			},
		},
		{
			name: "Failure JSON unmarshal fails and commit also fails",
			setupMocks: func(mockReader *infra.MockKafkaReader, mockRepo *mockrepository.MockHealthCheckRepository) {
				gomock.InOrder(
					mockReader.EXPECT().FetchMessage(gomock.Any()).Return(invalidJSONMessage, nil),
					mockReader.EXPECT().CommitMessages(gomock.Any(), invalidJSONMessage).Return(errors.New("failed to commit")),
					mockReader.EXPECT().FetchMessage(gomock.Any()).Return(kafka.Message{}, io.EOF),
				)
			},
		},
		{
			name: "Failure IndexHealthCheck returns an error",
			setupMocks: func(mockReader *infra.MockKafkaReader, mockRepo *mockrepository.MockHealthCheckRepository) {
				gomock.InOrder(
					mockReader.EXPECT().FetchMessage(gomock.Any()).Return(validMessage, nil),
					mockRepo.EXPECT().IndexHealthCheck(gomock.Any(), gomock.Any()).Return(errors.New("elasticsearch timeout")),
					mockReader.EXPECT().FetchMessage(gomock.Any()).Return(kafka.Message{}, io.EOF),
				)
			},
		},
		{
			name: "Failure CommitMessages fails after successful index",
			setupMocks: func(mockReader *infra.MockKafkaReader, mockRepo *mockrepository.MockHealthCheckRepository) {
				gomock.InOrder(
					mockReader.EXPECT().FetchMessage(gomock.Any()).Return(validMessage, nil),
					mockRepo.EXPECT().IndexHealthCheck(gomock.Any(), gomock.Any()).Return(nil),
					mockReader.EXPECT().CommitMessages(gomock.Any(), validMessage).Return(errors.New("failed to commit offset")),
					mockReader.EXPECT().FetchMessage(gomock.Any()).Return(kafka.Message{}, io.EOF),
				)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			mockReader := infra.NewMockKafkaReader(ctrl)
			mockRepo := mockrepository.NewMockHealthCheckRepository(ctrl)
			logger := zap.NewNop()

			tc.setupMocks(mockReader, mockRepo)

			consumer := NewHealthCheckConsumer(mockReader, mockRepo, logger)
			consumer.Start()

			time.Sleep(50 * time.Millisecond)
		})
	}
}

func TestHealthCheckConsumer_Stop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := infra.NewMockKafkaReader(ctrl)
	logger := zap.NewNop()

	mockReader.EXPECT().Close().Times(1)

	consumer := NewHealthCheckConsumer(mockReader, nil, logger)
	consumer.Stop()
}
