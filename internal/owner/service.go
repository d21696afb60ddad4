// Package owner wraps the owner-admin endpoints that gate scientist
// access to the analytics data.
package owner

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/getwaylabs/getway/internal/api"
	"github.com/getwaylabs/getway/pkg/model"
)

// Service calls the /owner endpoints. Every call requires an owner-role
// session; the server rejects everyone else.
type Service struct {
	client *api.Client
	logger *slog.Logger
}

// NewService creates the owner service.
func NewService(client *api.Client, logger *slog.Logger) *Service {
	return &Service{client: client, logger: logger.With("component", "owner")}
}

// PendingScientists lists scientist accounts awaiting approval.
func (s *Service) PendingScientists(ctx context.Context) ([]model.User, error) {
	resp, err := s.client.Get(ctx, "/owner/pending")
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		return nil, fmt.Errorf("list pending scientists: %s", resp.Message)
	}
	var out []model.User
	if err := resp.DecodeData(&out); err != nil {
		return nil, fmt.Errorf("list pending scientists: %w", err)
	}
	return out, nil
}

// Approve grants a pending scientist access to the data endpoints.
func (s *Service) Approve(ctx context.Context, userID string) (*model.User, error) {
	resp, err := s.client.Post(ctx, "/owner/approve/"+userID, nil)
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		return nil, fmt.Errorf("approve scientist: %s", resp.Message)
	}
	var u model.User
	if err := resp.DecodeData(&u); err != nil {
		return nil, fmt.Errorf("approve scientist: %w", err)
	}
	return &u, nil
}

// Reject removes a pending scientist account.
func (s *Service) Reject(ctx context.Context, userID string) error {
	resp, err := s.client.Post(ctx, "/owner/reject/"+userID, nil)
	if err != nil {
		return err
	}
	if !resp.OK() {
		return fmt.Errorf("reject scientist: %s", resp.Message)
	}
	return nil
}
