package model

import "time"

const (
	ServerStatusHealthy            = "healthy"
	ServerStatusUnhealthy          = "unhealthy"
	ServerStatusPending            = "pending"
	ServerStatusInactive           = "inactive"
	ServerStatusConfigurationError = "configuration_error"
	ServerStatusNetworkError       = "network_error"
)

// HealthCheck is one TGI health probe result.
type HealthCheck struct {
	ServerID                       string    `json:"server_id"`
	Status                         string    `json:"status"`
	StatusNumeric                  int       `json:"status_numeric"` // 1 for healthy, 0 for unhealthy and unavailable status
	Timestamp                      time.Time `json:"timestamp"`
	LatencyMs                      int64     `json:"latency_ms"`
	Attempts                       int       `json:"attempts"`
	IntervalSinceLastHealthCheckMs int64     `json:"interval_since_last_health_check_ms"`
}

// HealthCheckTask is the probe request the dashboard enqueues for the
// health checker.
type HealthCheckTask struct {
	ServerID string `json:"server_id"`
	Ip       string `json:"ip"`
}
