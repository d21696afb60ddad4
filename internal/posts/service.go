// Package posts is the typed wrapper over the social-feed endpoints.
// It layers on the same envelope and error contract as every other
// domain service.
package posts

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/getwaylabs/getway/internal/api"
	"github.com/getwaylabs/getway/pkg/model"
)

// Service calls the /posts endpoints.
type Service struct {
	client *api.Client
	logger *slog.Logger
}

// NewService creates the posts service.
func NewService(client *api.Client, logger *slog.Logger) *Service {
	return &Service{client: client, logger: logger.With("component", "posts")}
}

// List returns a page of the feed, newest first.
func (s *Service) List(ctx context.Context, opts model.ListOptions) ([]model.Post, error) {
	resp, err := s.client.Get(ctx, "/posts"+opts.Query())
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		return nil, fmt.Errorf("list posts: %s", resp.Message)
	}
	var out []model.Post
	if err := resp.DecodeData(&out); err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return out, nil
}

type createRequest struct {
	Content string `json:"content"`
}

// Create publishes a new post as the authenticated user.
func (s *Service) Create(ctx context.Context, content string) (*model.Post, error) {
	resp, err := s.client.Post(ctx, "/posts", createRequest{Content: content})
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		return nil, fmt.Errorf("create post: %s", resp.Message)
	}
	var p model.Post
	if err := resp.DecodeData(&p); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	return &p, nil
}

// Like increments the like counter on a post and returns the new total.
func (s *Service) Like(ctx context.Context, id string) (int, error) {
	resp, err := s.client.Post(ctx, "/posts/"+id+"/like", nil)
	if err != nil {
		return 0, err
	}
	if !resp.OK() {
		return 0, fmt.Errorf("like post: %s", resp.Message)
	}
	var p model.Post
	if err := resp.DecodeData(&p); err != nil {
		return 0, fmt.Errorf("like post: %w", err)
	}
	return p.Likes, nil
}

// Delete removes the caller's own post.
func (s *Service) Delete(ctx context.Context, id string) error {
	resp, err := s.client.Delete(ctx, "/posts/"+id)
	if err != nil {
		return err
	}
	if !resp.OK() {
		return fmt.Errorf("delete post: %s", resp.Message)
	}
	return nil
}
