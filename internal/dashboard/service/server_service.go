package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	apperrors "ritual/internal/dashboard/errors"
	"ritual/internal/dashboard/model"
	"ritual/internal/dashboard/repository"
	"ritual/internal/provider"
	"ritual/internal/tgi"
	"ritual/pkg/mail"

	"github.com/segmentio/kafka-go"
)

const maxServerNameLength = 30

type ServerAction string

const (
	ActionStart ServerAction = "start"
	ActionStop  ServerAction = "stop"
)

// ServerDetails merges the locally tracked half of a server with its
// provider-reported state.
type ServerDetails struct {
	provider.Server
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Model       string        `json:"model"`
	Provider    provider.Type `json:"provider"`
	CreatedAt   time.Time     `json:"createdAt"`
}

// HealthCheckQueue publishes health check tasks. Satisfied by
// kafka.Writer.
type HealthCheckQueue interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type ServerService interface {
	// ListServers reconciles local records against every provider and
	// returns the merged view. Local rows whose machine no longer exists
	// remotely are deleted; remote machines never tracked locally are
	// ignored.
	ListServers(ctx context.Context) ([]ServerDetails, error)
	GetServer(ctx context.Context, id string) (ServerDetails, error)
	// GetServerNames lists ids and names of tracked servers without
	// contacting any provider.
	GetServerNames(ctx context.Context) ([]model.Server, error)
	CreateServer(ctx context.Context, serverConfig provider.ServerConfig, runConfig provider.RunConfig) (string, error)
	ToggleServer(ctx context.Context, id string, action ServerAction) error
	DeleteServer(ctx context.Context, id string) error
	GetServerUptimePercentage(ctx context.Context, serverID string, startDate time.Time, endDate time.Time) (float64, error)
	// EnqueueHealthChecks publishes one probe task per running server.
	EnqueueHealthChecks(ctx context.Context) error
	// ReportFleetHealth mails a health summary over the given window.
	ReportFleetHealth(ctx context.Context, startDate time.Time, endDate time.Time, recipient string) error
}

type serverService struct {
	serverRepository      repository.ServerRepository
	healthCheckRepository repository.HealthCheckRepository
	providerService       ProviderService
	healthCheckQueue      HealthCheckQueue
	mailSender            mail.Sender
}

func (s *serverService) ListServers(ctx context.Context) ([]ServerDetails, error) {
	adapters, err := s.providerService.AllAdapters(ctx)
	if err != nil {
		return nil, fmt.Errorf("ServerService.ListServers: %w", err)
	}

	type remoteServer struct {
		server       provider.Server
		providerType provider.Type
	}
	remote := make(map[string]remoteServer)
	for _, adapter := range adapters {
		servers, err := adapter.GetAllServers(ctx)
		if err != nil {
			return nil, fmt.Errorf("ServerService.ListServers: %w", err)
		}
		for _, server := range servers {
			remote[server.ID] = remoteServer{server: server, providerType: adapter.Type()}
		}
	}

	local, err := s.serverRepository.GetAllServersOrderedByName(ctx)
	if err != nil {
		return nil, fmt.Errorf("ServerService.ListServers: %w", err)
	}

	// Local rows without a remote machine were deleted out of band; drop
	// them so the dashboard never shows phantom servers.
	var staleIds []string
	merged := make([]ServerDetails, 0, len(local))
	for _, server := range local {
		r, ok := remote[server.ID]
		if !ok {
			staleIds = append(staleIds, server.ID)
			continue
		}
		merged = append(merged, ServerDetails{
			Server:      r.server,
			Name:        server.Name,
			Description: server.Description,
			Model:       server.Model,
			Provider:    r.providerType,
			CreatedAt:   server.CreatedAt,
		})
	}
	if err = s.serverRepository.DeleteServersByIds(ctx, staleIds); err != nil {
		return nil, fmt.Errorf("ServerService.ListServers: %w", err)
	}
	return merged, nil
}

func (s *serverService) GetServer(ctx context.Context, id string) (ServerDetails, error) {
	local, err := s.serverRepository.GetServerById(ctx, id)
	if err != nil {
		return ServerDetails{}, fmt.Errorf("ServerService.GetServer: %w", err)
	}
	adapter, err := s.providerService.AdapterByType(ctx, local.ProviderType)
	if err != nil {
		return ServerDetails{}, fmt.Errorf("ServerService.GetServer: %w", err)
	}
	remote, err := adapter.GetServer(ctx, id)
	if err != nil {
		return ServerDetails{}, fmt.Errorf("ServerService.GetServer: %w", err)
	}
	return ServerDetails{
		Server:      remote,
		Name:        local.Name,
		Description: local.Description,
		Model:       local.Model,
		Provider:    adapter.Type(),
		CreatedAt:   local.CreatedAt,
	}, nil
}

func (s *serverService) GetServerNames(ctx context.Context) ([]model.Server, error) {
	servers, err := s.serverRepository.GetAllServersOrderedByName(ctx)
	if err != nil {
		return nil, fmt.Errorf("ServerService.GetServerNames: %w", err)
	}
	names := make([]model.Server, 0, len(servers))
	for _, server := range servers {
		names = append(names, model.Server{ID: server.ID, Name: server.Name})
	}
	return names, nil
}

func validateServerConfig(serverConfig provider.ServerConfig) error {
	if serverConfig.Name == "" || serverConfig.Provider == "" || serverConfig.Instance == "" ||
		serverConfig.Size == "" || serverConfig.Region == "" || serverConfig.Os == "" {
		return provider.NewError(provider.KindValidation, "ServerService.CreateServer", "Missing server parameters", nil)
	}
	if len(serverConfig.Name) > maxServerNameLength {
		return provider.NewError(provider.KindValidation, "ServerService.CreateServer", "Name is too long", nil)
	}
	return nil
}

func (s *serverService) CreateServer(ctx context.Context, serverConfig provider.ServerConfig, runConfig provider.RunConfig) (string, error) {
	if err := validateServerConfig(serverConfig); err != nil {
		return "", err
	}
	if err := tgi.ValidateRunConfig(runConfig); err != nil {
		return "", err
	}

	adapter, err := s.providerService.AdapterByType(ctx, string(serverConfig.Provider))
	if err != nil {
		return "", fmt.Errorf("ServerService.CreateServer: %w", err)
	}
	id, err := adapter.CreateServer(ctx, serverConfig, runConfig)
	if err != nil {
		return "", fmt.Errorf("ServerService.CreateServer: %w", err)
	}

	modelID, _ := runConfig["model_id"].(string)
	_, err = s.serverRepository.CreateServer(ctx, model.Server{
		ID:           id,
		Name:         serverConfig.Name,
		Description:  serverConfig.Description,
		Model:        modelID,
		ProviderType: string(serverConfig.Provider),
	})
	if err != nil {
		return "", fmt.Errorf("ServerService.CreateServer: %w", err)
	}
	return id, nil
}

func (s *serverService) ToggleServer(ctx context.Context, id string, action ServerAction) error {
	server, err := s.GetServer(ctx, id)
	if err != nil {
		return fmt.Errorf("ServerService.ToggleServer: %w", err)
	}

	// A start needs a stopped machine and a stop needs a running one;
	// anything mid-transition rejects both until the provider settles.
	switch action {
	case ActionStart:
		if server.Status.IsRunning() {
			return fmt.Errorf("ServerService.ToggleServer: %w", apperrors.ErrServerRunning)
		}
		if server.Status.IsTransitional() {
			return fmt.Errorf("ServerService.ToggleServer: %w", apperrors.ErrServerTransitional)
		}
	case ActionStop:
		if server.Status.IsStopped() {
			return fmt.Errorf("ServerService.ToggleServer: %w", apperrors.ErrServerStopped)
		}
		if server.Status.IsTransitional() {
			return fmt.Errorf("ServerService.ToggleServer: %w", apperrors.ErrServerTransitional)
		}
	}

	adapter, err := s.providerService.AdapterByType(ctx, string(server.Provider))
	if err != nil {
		return fmt.Errorf("ServerService.ToggleServer: %w", err)
	}
	if action == ActionStart {
		err = adapter.StartServer(ctx, id)
	} else {
		err = adapter.StopServer(ctx, id)
	}
	if err != nil {
		return fmt.Errorf("ServerService.ToggleServer: %w", err)
	}
	return nil
}

func (s *serverService) DeleteServer(ctx context.Context, id string) error {
	server, err := s.GetServer(ctx, id)
	if err != nil {
		return fmt.Errorf("ServerService.DeleteServer: %w", err)
	}
	adapter, err := s.providerService.AdapterByType(ctx, string(server.Provider))
	if err != nil {
		return fmt.Errorf("ServerService.DeleteServer: %w", err)
	}
	if err = adapter.DeleteServer(ctx, id); err != nil {
		return fmt.Errorf("ServerService.DeleteServer: %w", err)
	}
	if err = s.serverRepository.DeleteServerById(ctx, id); err != nil {
		return fmt.Errorf("ServerService.DeleteServer: %w", err)
	}
	return nil
}

func (s *serverService) GetServerUptimePercentage(ctx context.Context, serverID string, startDate time.Time, endDate time.Time) (float64, error) {
	res, err := s.healthCheckRepository.GetServerUptimePercentage(ctx, serverID, startDate, endDate)
	if err != nil {
		return 0, fmt.Errorf("ServerService.GetServerUptimePercentage: %w", err)
	}
	return res, nil
}

func (s *serverService) EnqueueHealthChecks(ctx context.Context) error {
	servers, err := s.ListServers(ctx)
	if err != nil {
		return fmt.Errorf("ServerService.EnqueueHealthChecks: %w", err)
	}
	var messages []kafka.Message
	for _, server := range servers {
		if !server.Status.IsRunning() || server.Ip == "" {
			continue
		}
		task := model.HealthCheckTask{ServerID: server.ID, Ip: server.Ip}
		b, err := json.Marshal(task)
		if err != nil {
			return fmt.Errorf("ServerService.EnqueueHealthChecks: %w", err)
		}
		messages = append(messages, kafka.Message{
			Key:   []byte(server.ID),
			Value: b,
		})
	}
	if len(messages) == 0 {
		return nil
	}
	if err = s.healthCheckQueue.WriteMessages(ctx, messages...); err != nil {
		return fmt.Errorf("ServerService.EnqueueHealthChecks: %w", err)
	}
	return nil
}

func (s *serverService) ReportFleetHealth(ctx context.Context, startDate time.Time, endDate time.Time, recipient string) error {
	fleetHealth, err := s.healthCheckRepository.GetFleetHealthInformation(ctx, startDate, endDate)
	if err != nil {
		return fmt.Errorf("ServerService.ReportFleetHealth: %w", err)
	}
	subject := fmt.Sprintf("Inference Servers Health Report From %s To %s", startDate, endDate.Add(-1*time.Second))
	err = s.mailSender.SendMail([]string{recipient}, subject, generateFleetHealthHTMLBody(fleetHealth), generateFleetHealthTextBody(fleetHealth), nil)
	if err != nil {
		return fmt.Errorf("ServerService.ReportFleetHealth: %w", err)
	}
	return nil
}

func generateFleetHealthTextBody(fleetHealth repository.FleetHealthInformation) string {
	return fmt.Sprintf(
		"--- SUMMARY ---\n"+
			"Total Servers: %d\n"+
			"Healthy: %d\n"+
			"Unhealthy: %d\n"+
			"Inactive: %d\n"+
			"Configuration Error: %d\n"+
			"Network Error: %d\n\n"+
			"Average Uptime Across All Servers: %.2f%%",
		fleetHealth.TotalServersCnt,
		fleetHealth.HealthyServersCnt,
		fleetHealth.UnhealthyServersCnt,
		fleetHealth.InactiveServersCnt,
		fleetHealth.ConfigurationErrorServersCnt,
		fleetHealth.NetworkErrorServersCnt,
		fleetHealth.AverageUptimePercentage*100,
	)
}

func generateFleetHealthHTMLBody(fleetHealth repository.FleetHealthInformation) string {
	htmlFormat := `
<body>
    <table style="width:100%%; border-collapse: collapse;">
        <tr>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px; background-color: #f2f2f2;">Total Servers:</td>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px;">%d</td>
        </tr>
        <tr>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px; background-color: #f2f2f2;">Healthy Servers:</td>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px;">%d</td>
        </tr>
        <tr>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px; background-color: #f2f2f2;">Unhealthy Servers:</td>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px;">%d</td>
        </tr>
        <tr>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px; background-color: #f2f2f2;">Inactive Servers:</td>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px;">%d</td>
        </tr>
        <tr>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px; background-color: #f2f2f2;">Configuration Error Servers:</td>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px;">%d</td>
        </tr>
        <tr>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px; background-color: #f2f2f2;">Network Error Servers:</td>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px;">%d</td>
        </tr>
        <tr>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px; background-color: #f2f2f2;">Average Uptime:</td>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px;">%.2f%%</td>
        </tr>
    </table>
</body>`
	return fmt.Sprintf(htmlFormat,
		fleetHealth.TotalServersCnt,
		fleetHealth.HealthyServersCnt,
		fleetHealth.UnhealthyServersCnt,
		fleetHealth.InactiveServersCnt,
		fleetHealth.ConfigurationErrorServersCnt,
		fleetHealth.NetworkErrorServersCnt,
		fleetHealth.AverageUptimePercentage*100,
	)
}

func NewServerService(serverRepository repository.ServerRepository, healthCheckRepository repository.HealthCheckRepository, providerService ProviderService, healthCheckQueue HealthCheckQueue, mailSender mail.Sender) ServerService {
	return &serverService{
		serverRepository:      serverRepository,
		healthCheckRepository: healthCheckRepository,
		providerService:       providerService,
		healthCheckQueue:      healthCheckQueue,
		mailSender:            mailSender,
	}
}
