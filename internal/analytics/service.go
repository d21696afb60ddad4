// Package analytics wraps the Scientist dashboard data endpoints. Unlike
// the other services it opts into the caller-side retry helper: dashboard
// refreshes tolerate transient failures better than interactive flows do.
package analytics

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/getwaylabs/getway/internal/api"
	"github.com/getwaylabs/getway/pkg/model"
)

// Service calls the /analytics endpoints.
type Service struct {
	client *api.Client
	policy api.Policy
	logger *slog.Logger
}

// NewService creates the analytics service with the default retry policy.
func NewService(client *api.Client, logger *slog.Logger) *Service {
	return &Service{
		client: client,
		policy: api.DefaultPolicy(),
		logger: logger.With("component", "analytics"),
	}
}

// Alerts returns the current service alerts.
func (s *Service) Alerts(ctx context.Context) ([]model.Alert, error) {
	var out []model.Alert
	err := api.Retry(ctx, s.logger, s.policy, func(ctx context.Context) error {
		resp, err := s.client.Get(ctx, "/analytics/alerts")
		if err != nil {
			return err
		}
		if !resp.OK() {
			return fmt.Errorf("alerts: %s", resp.Message)
		}
		return resp.DecodeData(&out)
	})
	return out, err
}

// Ridership returns the daily rider counts, optionally filtered to one line.
func (s *Service) Ridership(ctx context.Context, line string) ([]model.RidershipPoint, error) {
	path := "/analytics/ridership"
	if line != "" {
		path += "?line=" + url.QueryEscape(line)
	}
	var out []model.RidershipPoint
	err := api.Retry(ctx, s.logger, s.policy, func(ctx context.Context) error {
		resp, err := s.client.Get(ctx, path)
		if err != nil {
			return err
		}
		if !resp.OK() {
			return fmt.Errorf("ridership: %s", resp.Message)
		}
		return resp.DecodeData(&out)
	})
	return out, err
}
