// Package journeys wraps the transit-log endpoints.
package journeys

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/getwaylabs/getway/internal/api"
	"github.com/getwaylabs/getway/pkg/model"
)

// Service calls the /journeys endpoints.
type Service struct {
	client *api.Client
	logger *slog.Logger
}

// NewService creates the journeys service.
func NewService(client *api.Client, logger *slog.Logger) *Service {
	return &Service{client: client, logger: logger.With("component", "journeys")}
}

// Input describes a journey to log.
type Input struct {
	Origin      string            `json:"origin"`
	Destination string            `json:"destination"`
	Mode        model.TransitMode `json:"mode"`
	DurationMin int               `json:"duration_min"`
}

// List returns the caller's logged journeys, newest first.
func (s *Service) List(ctx context.Context, opts model.ListOptions) ([]model.Journey, error) {
	resp, err := s.client.Get(ctx, "/journeys"+opts.Query())
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		return nil, fmt.Errorf("list journeys: %s", resp.Message)
	}
	var out []model.Journey
	if err := resp.DecodeData(&out); err != nil {
		return nil, fmt.Errorf("list journeys: %w", err)
	}
	return out, nil
}

// Log records a journey for the authenticated user.
func (s *Service) Log(ctx context.Context, in Input) (*model.Journey, error) {
	resp, err := s.client.Post(ctx, "/journeys", in)
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		return nil, fmt.Errorf("log journey: %s", resp.Message)
	}
	var j model.Journey
	if err := resp.DecodeData(&j); err != nil {
		return nil, fmt.Errorf("log journey: %w", err)
	}
	return &j, nil
}

// Stats returns the caller's aggregate journey statistics.
func (s *Service) Stats(ctx context.Context) (*model.JourneyStats, error) {
	resp, err := s.client.Get(ctx, "/journeys/stats")
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		return nil, fmt.Errorf("journey stats: %s", resp.Message)
	}
	var st model.JourneyStats
	if err := resp.DecodeData(&st); err != nil {
		return nil, fmt.Errorf("journey stats: %w", err)
	}
	return &st, nil
}
