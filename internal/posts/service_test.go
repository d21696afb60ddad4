package posts

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/getwaylabs/getway/internal/api"
	"github.com/getwaylabs/getway/internal/config"
	"github.com/getwaylabs/getway/internal/server"
	"github.com/getwaylabs/getway/pkg/model"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type staticTokens string

func (s staticTokens) Token(ctx context.Context) (string, error) { return string(s), nil }

// newLoggedInService runs the development server and logs in the seeded
// customer, returning a service bound to that session.
func newLoggedInService(t *testing.T) *Service {
	t.Helper()

	ts := httptest.NewServer(server.New(config.DefaultServerConfig(), testLogger()))
	t.Cleanup(ts.Close)

	body, _ := json.Marshal(map[string]string{"email": "maya@example.com", "password": "getway"})
	resp, err := http.Post(ts.URL+"/auth/login", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	defer resp.Body.Close()

	var env model.Response
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode login envelope: %v", err)
	}
	var sess model.Session
	if err := env.DecodeData(&sess); err != nil {
		t.Fatalf("decode session: %v", err)
	}

	cfg := config.DefaultClientConfig()
	cfg.BaseURL = ts.URL
	cfg.Timeout = 2 * time.Second
	return NewService(api.New(cfg, staticTokens(sess.Token), testLogger()), testLogger())
}

func TestCreateListLikeDelete(t *testing.T) {
	ctx := context.Background()
	svc := newLoggedInService(t)

	p, err := svc.Create(ctx, "Walked the riverside stretch instead of the bus today.")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p.Author != "Maya Chen" {
		t.Errorf("Author = %q, want the session user", p.Author)
	}

	feed, err := svc.List(ctx, model.DefaultListOptions())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(feed) == 0 || feed[0].ID != p.ID {
		t.Errorf("feed not newest-first, got %d entries", len(feed))
	}

	likes, err := svc.Like(ctx, p.ID)
	if err != nil {
		t.Fatalf("Like: %v", err)
	}
	if likes != 1 {
		t.Errorf("likes = %d, want 1", likes)
	}

	if err := svc.Delete(ctx, p.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := svc.Delete(ctx, p.ID); err == nil {
		t.Error("deleting a missing post must fail")
	}
}

func TestListPagination(t *testing.T) {
	ctx := context.Background()
	svc := newLoggedInService(t)

	page, err := svc.List(ctx, model.ListOptions{Limit: 1})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(page) != 1 {
		t.Fatalf("page = %d entries, want 1", len(page))
	}

	next, err := svc.List(ctx, model.ListOptions{Limit: 1, Offset: 1})
	if err != nil {
		t.Fatalf("List offset: %v", err)
	}
	if len(next) != 1 || next[0].ID == page[0].ID {
		t.Errorf("offset page repeats entry %q", page[0].ID)
	}
}
