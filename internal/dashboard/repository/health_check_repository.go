package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	apperrors "ritual/internal/dashboard/errors"
	"ritual/internal/dashboard/model"

	"github.com/elastic/go-elasticsearch/v9"
)

// FleetHealthInformation summarizes TGI health across every tracked server
// over a time window. Uptime is weighted by the interval each check covers
// so irregular check spacing does not skew the average.
type FleetHealthInformation struct {
	TotalServersCnt              int
	HealthyServersCnt            int
	UnhealthyServersCnt          int
	InactiveServersCnt           int
	ConfigurationErrorServersCnt int
	NetworkErrorServersCnt       int
	AverageUptimePercentage      float64
}

type HealthCheckRepository interface {
	IndexHealthCheck(ctx context.Context, healthCheck model.HealthCheck) error
	GetServerUptimePercentage(ctx context.Context, serverID string, startTime time.Time, endTime time.Time) (float64, error)
	GetFleetHealthInformation(ctx context.Context, startTime time.Time, endTime time.Time) (FleetHealthInformation, error)
}

const esHealthCheckIndexName = "health_checks"

type healthCheckRepository struct {
	es *elasticsearch.Client
}

type esErrorResponse struct {
	Error struct {
		Type   string `json:"type"`
		Reason string `json:"reason"`
	}
}

type esFleetHealthResponse struct {
	Aggregations struct {
		AvgUptimePercentage struct {
			Value float64 `json:"value"`
		} `json:"avg_uptime_percentage"`
		Servers struct {
			Buckets []struct {
				Key         string `json:"key"`
				LatestCheck struct {
					Hits struct {
						Hits []struct {
							Source struct {
								Status string `json:"status"`
							} `json:"_source"`
						} `json:"hits"`
					} `json:"hits"`
				} `json:"latest_check"`
			} `json:"buckets"`
		} `json:"servers"`
	} `json:"aggregations"`
}

func (h *healthCheckRepository) GetFleetHealthInformation(ctx context.Context, startTime time.Time, endTime time.Time) (FleetHealthInformation, error) {
	query := map[string]interface{}{
		"size": 0,
		"query": map[string]interface{}{
			"range": map[string]interface{}{
				"timestamp": map[string]interface{}{
					"gte": startTime,
					"lt":  endTime,
				},
			},
		},
		"aggs": map[string]interface{}{
			"avg_uptime_percentage": map[string]interface{}{
				"weighted_avg": map[string]interface{}{
					"value": map[string]interface{}{
						"field": "status_numeric",
					},
					"weight": map[string]interface{}{
						"field": "interval_since_last_health_check_ms",
					},
				},
			},
			"servers": map[string]interface{}{
				"terms": map[string]interface{}{
					"field": "server_id",
					"size":  20000,
				},
				"aggs": map[string]interface{}{
					"latest_check": map[string]interface{}{
						"top_hits": map[string]interface{}{
							"size": 1,
							"sort": []map[string]interface{}{
								{
									"timestamp": map[string]interface{}{
										"order": "desc",
									},
								},
							},
							"_source": map[string]interface{}{
								"includes": "status",
							},
						},
					},
				},
			},
		},
	}
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(query); err != nil {
		return FleetHealthInformation{}, fmt.Errorf("HealthCheckRepo.GetFleetHealthInformation encode query: %w", err)
	}
	res, err := h.es.Search(
		h.es.Search.WithContext(ctx),
		h.es.Search.WithIndex(esHealthCheckIndexName),
		h.es.Search.WithBody(&buf))
	if err != nil {
		return FleetHealthInformation{}, fmt.Errorf("HealthCheckRepo.GetFleetHealthInformation: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		var e esErrorResponse
		if err = json.NewDecoder(res.Body).Decode(&e); err != nil {
			return FleetHealthInformation{}, fmt.Errorf("HealthCheckRepo.GetFleetHealthInformation decode err response: %w", err)
		}
		return FleetHealthInformation{}, fmt.Errorf("HealthCheckRepo.GetFleetHealthInformation: %w", apperrors.NewElasticSearchError(res.StatusCode, e.Error.Type, e.Error.Reason))
	}

	var fleetRes esFleetHealthResponse
	if err = json.NewDecoder(res.Body).Decode(&fleetRes); err != nil {
		return FleetHealthInformation{}, fmt.Errorf("HealthCheckRepo.GetFleetHealthInformation decode response body: %w", err)
	}
	fleetHealth := FleetHealthInformation{
		TotalServersCnt:         len(fleetRes.Aggregations.Servers.Buckets),
		AverageUptimePercentage: fleetRes.Aggregations.AvgUptimePercentage.Value,
	}
	for _, bucket := range fleetRes.Aggregations.Servers.Buckets {
		if len(bucket.LatestCheck.Hits.Hits) == 0 {
			continue
		}
		switch bucket.LatestCheck.Hits.Hits[0].Source.Status {
		case model.ServerStatusHealthy:
			fleetHealth.HealthyServersCnt += 1
		case model.ServerStatusUnhealthy:
			fleetHealth.UnhealthyServersCnt += 1
		case model.ServerStatusConfigurationError:
			fleetHealth.ConfigurationErrorServersCnt += 1
		case model.ServerStatusNetworkError:
			fleetHealth.NetworkErrorServersCnt += 1
		default:
			fleetHealth.InactiveServersCnt += 1
		}
	}
	return fleetHealth, nil
}

func (h *healthCheckRepository) IndexHealthCheck(ctx context.Context, healthCheck model.HealthCheck) error {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(healthCheck); err != nil {
		return fmt.Errorf("HealthCheckRepo.IndexHealthCheck encode document: %w", err)
	}
	res, err := h.es.Index(
		esHealthCheckIndexName,
		&buf,
		h.es.Index.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("HealthCheckRepo.IndexHealthCheck: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		var e esErrorResponse
		if err = json.NewDecoder(res.Body).Decode(&e); err != nil {
			return fmt.Errorf("HealthCheckRepo.IndexHealthCheck decode err response: %w", err)
		}
		return fmt.Errorf("HealthCheckRepo.IndexHealthCheck: %w", apperrors.NewElasticSearchError(res.StatusCode, e.Error.Type, e.Error.Reason))
	}
	return nil
}

type esUptimePercentageResponse struct {
	Aggregations struct {
		UptimePercentage struct {
			Value float64 `json:"value"`
		} `json:"uptime_percentage"`
	} `json:"aggregations"`
}

func (h *healthCheckRepository) GetServerUptimePercentage(ctx context.Context, serverID string, startTime time.Time, endTime time.Time) (float64, error) {
	query := map[string]interface{}{
		"size": 0,
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"filter": []map[string]interface{}{
					{
						"term": map[string]interface{}{
							"server_id": serverID,
						},
					},
					{
						"range": map[string]interface{}{
							"timestamp": map[string]interface{}{
								"gte": startTime,
								"lt":  endTime,
							},
						},
					},
				},
			},
		},
		"aggs": map[string]interface{}{
			"uptime_percentage": map[string]interface{}{
				"weighted_avg": map[string]interface{}{
					"value": map[string]interface{}{
						"field": "status_numeric",
					},
					"weight": map[string]interface{}{
						"field": "interval_since_last_health_check_ms",
					},
				},
			},
		},
	}
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(query); err != nil {
		return 0, fmt.Errorf("HealthCheckRepo.GetServerUptimePercentage encode query: %w", err)
	}
	res, err := h.es.Search(
		h.es.Search.WithContext(ctx),
		h.es.Search.WithIndex(esHealthCheckIndexName),
		h.es.Search.WithBody(&buf))
	if err != nil {
		return 0, fmt.Errorf("HealthCheckRepo.GetServerUptimePercentage: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		var e esErrorResponse
		if err = json.NewDecoder(res.Body).Decode(&e); err != nil {
			return 0, fmt.Errorf("HealthCheckRepo.GetServerUptimePercentage decode err response: %w", err)
		}
		return 0, fmt.Errorf("HealthCheckRepo.GetServerUptimePercentage: %w", apperrors.NewElasticSearchError(res.StatusCode, e.Error.Type, e.Error.Reason))
	}

	var uptimeResponse esUptimePercentageResponse
	if err = json.NewDecoder(res.Body).Decode(&uptimeResponse); err != nil {
		return 0, fmt.Errorf("HealthCheckRepo.GetServerUptimePercentage decode response: %w", err)
	}
	return uptimeResponse.Aggregations.UptimePercentage.Value, nil
}

func NewHealthCheckRepository(esClient *elasticsearch.Client) HealthCheckRepository {
	return &healthCheckRepository{
		es: esClient,
	}
}
