package service

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"ritual/internal/tgi"
)

type PlaygroundService interface {
	// GetModels lists the supported models in alphabetical order.
	GetModels() []tgi.SupportedModel
	// CheckServerHealth reports whether the TGI endpoint on the given host
	// answers its health check.
	CheckServerHealth(ctx context.Context, ip string) bool
	// OpenCompletionStream opens a completion SSE stream against the TGI
	// endpoint; the caller owns closing the returned stream.
	OpenCompletionStream(ctx context.Context, ip string, prompt string, parameters map[string]float64) (io.ReadCloser, error)
}

type playgroundService struct {
	tgiClient tgi.Client
}

func (p *playgroundService) GetModels() []tgi.SupportedModel {
	models := make([]tgi.SupportedModel, len(tgi.PublicModels))
	copy(models, tgi.PublicModels)
	sort.SliceStable(models, func(i, j int) bool {
		return strings.ToLower(models[i].Name) < strings.ToLower(models[j].Name)
	})
	return models
}

func (p *playgroundService) CheckServerHealth(ctx context.Context, ip string) bool {
	return p.tgiClient.IsHealthy(ctx, ip)
}

func (p *playgroundService) OpenCompletionStream(ctx context.Context, ip string, prompt string, parameters map[string]float64) (io.ReadCloser, error) {
	stream, err := p.tgiClient.OpenStream(ctx, ip, prompt, parameters)
	if err != nil {
		return nil, fmt.Errorf("PlaygroundService.OpenCompletionStream: %w", err)
	}
	return stream, nil
}

func NewPlaygroundService(tgiClient tgi.Client) PlaygroundService {
	return &playgroundService{tgiClient: tgiClient}
}
