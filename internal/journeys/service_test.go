package journeys

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

func TestLogAndStats(t *testing.T) {
	ctx := context.Background()
	svc := newLoggedInService(t)

	j, err := svc.Log(ctx, Input{
		Origin:      "Central",
		Destination: "Airport",
		Mode:        model.ModeTrain,
		DurationMin: 40,
	})
	if err != nil {
		t.Fatalf("Log: %v", err)
	}
	if j.CO2SavedKg != 0.12*40 {
		t.Errorf("CO2SavedKg = %v, want train rate times duration", j.CO2SavedKg)
	}

	list, err := svc.List(ctx, model.DefaultListOptions())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 3 || list[0].ID != j.ID {
		t.Errorf("list = %d entries, want 3 with the new journey first", len(list))
	}

	st, err := svc.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if st.TotalJourneys != 3 || st.TotalMinutes != 24+18+40 {
		t.Errorf("stats = %+v", st)
	}
}

func TestLogRejectsInvalidMode(t *testing.T) {
	svc := newLoggedInService(t)
	_, err := svc.Log(context.Background(), Input{
		Origin:      "A",
		Destination: "B",
		Mode:        "rocket",
		DurationMin: 10,
	})
	if err == nil {
		t.Fatal("expected validation error")
	}
}
