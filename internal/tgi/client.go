package tgi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"syscall"
	"time"

	"github.com/google/uuid"
)

// TGI containers always listen on the mapped host port.
const tgiPort = 8080

// HealthProbe is the outcome of one health check against a TGI endpoint.
// Error carries the final request error when every attempt failed.
type HealthProbe struct {
	StatusCode int
	Error      error
	Attempts   int
	Timestamp  time.Time
}

type Client interface {
	// CheckHealth probes the TGI health endpoint, retrying transient
	// failures with exponential backoff. An error return means the request
	// could not be built; request failures are reported in HealthProbe.Error.
	CheckHealth(ctx context.Context, ip string) (HealthProbe, error)
	// IsHealthy is a single-shot probe used by the playground.
	IsHealthy(ctx context.Context, ip string) bool
	// OpenStream opens a generate_stream SSE request and hands the raw
	// event stream to the caller, who owns closing it.
	OpenStream(ctx context.Context, ip string, prompt string, parameters map[string]float64) (io.ReadCloser, error)
}

type client struct {
	client *http.Client
	// streamClient carries no overall timeout; stream lifetime is bounded
	// by the caller's context.
	streamClient   *http.Client
	maxRetries     int
	initialBackoff time.Duration
}

func (c *client) CheckHealth(ctx context.Context, ip string) (HealthProbe, error) {
	requestURL := fmt.Sprintf("http://%s:%d/health", ip, tgiPort)
	backoff := c.initialBackoff
	attempts := 0
	var err error
	for attempt := 1; attempt <= c.maxRetries; attempt++ {
		attempts = attempt
		var req *http.Request
		req, err = http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
		if err != nil {
			return HealthProbe{}, fmt.Errorf("tgi.Client.CheckHealth creating request: %w", err)
		}
		var resp *http.Response
		resp, err = c.client.Do(req)
		if err != nil {
			// Connection refused means nothing listens on the port, so
			// retrying is pointless.
			if errors.Is(err, syscall.ECONNREFUSED) {
				break
			}
			if attempt < c.maxRetries {
				time.Sleep(backoff)
				backoff *= 2
			}
			continue
		}
		res := HealthProbe{
			StatusCode: resp.StatusCode,
			Attempts:   attempt,
			Timestamp:  time.Now(),
		}
		resp.Body.Close()
		return res, nil
	}
	return HealthProbe{
		Error:     err,
		Attempts:  attempts,
		Timestamp: time.Now(),
	}, nil
}

func (c *client) IsHealthy(ctx context.Context, ip string) bool {
	requestURL := fmt.Sprintf("http://%s:%d/health", ip, tgiPort)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return false
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode >= 200 && resp.StatusCode < 300
}

func (c *client) OpenStream(ctx context.Context, ip string, prompt string, parameters map[string]float64) (io.ReadCloser, error) {
	body, err := json.Marshal(map[string]any{
		"inputs":     prompt,
		"parameters": parameters,
		"uuid":       uuid.NewString(),
	})
	if err != nil {
		return nil, fmt.Errorf("tgi.Client.OpenStream encoding body: %w", err)
	}
	requestURL := fmt.Sprintf("http://%s:%d/generate_stream", ip, tgiPort)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, requestURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("tgi.Client.OpenStream creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.streamClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tgi.Client.OpenStream: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("tgi.Client.OpenStream: errored opening SSE stream (status %d)", resp.StatusCode)
	}
	return resp.Body, nil
}

func NewClient(maxRetries int, requestTimeout time.Duration, initialBackoff time.Duration) Client {
	return &client{
		client: &http.Client{
			Timeout: requestTimeout,
		},
		streamClient:   &http.Client{},
		maxRetries:     maxRetries,
		initialBackoff: initialBackoff,
	}
}
