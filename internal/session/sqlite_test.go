package session

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/getwaylabs/getway/internal/config"
	"github.com/getwaylabs/getway/pkg/model"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testKeys() config.StorageKeys {
	return config.StorageKeys{
		Token:        "getway.auth.token",
		User:         "getway.auth.user",
		RefreshToken: "getway.auth.refresh_token",
	}
}

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	st, err := NewSQLiteStore(filepath.Join(t.TempDir(), "session.db"), testKeys(), testLogger())
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func TestTokenRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	tok, err := st.Token(ctx)
	if err != nil || tok != "" {
		t.Fatalf("Token on empty store = %q, %v; want \"\", nil", tok, err)
	}

	if err := st.SetToken(ctx, "abc"); err != nil {
		t.Fatalf("SetToken: %v", err)
	}
	tok, err = st.Token(ctx)
	if err != nil {
		t.Fatalf("Token: %v", err)
	}
	if tok != "abc" {
		t.Errorf("Token = %q, want abc", tok)
	}

	if err := st.SetToken(ctx, "def"); err != nil {
		t.Fatalf("SetToken overwrite: %v", err)
	}
	tok, _ = st.Token(ctx)
	if tok != "def" {
		t.Errorf("Token after overwrite = %q, want def", tok)
	}

	if err := st.RemoveToken(ctx); err != nil {
		t.Fatalf("RemoveToken: %v", err)
	}
	tok, err = st.Token(ctx)
	if err != nil || tok != "" {
		t.Errorf("Token after remove = %q, %v; want \"\", nil", tok, err)
	}
}

func TestUserRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	u, err := st.User(ctx)
	if err != nil || u != nil {
		t.Fatalf("User on empty store = %v, %v; want nil, nil", u, err)
	}

	want := &model.User{
		ID:         "usr_1",
		Name:       "Sara Lindqvist",
		Email:      "sara@metrolink.example",
		Role:       model.RoleScientist,
		IsApproved: true,
	}
	if err := st.SetUser(ctx, want); err != nil {
		t.Fatalf("SetUser: %v", err)
	}

	got, err := st.User(ctx)
	if err != nil {
		t.Fatalf("User: %v", err)
	}
	if got.ID != want.ID || got.Email != want.Email || got.Role != want.Role || !got.IsApproved {
		t.Errorf("User = %+v, want %+v", got, want)
	}

	if err := st.RemoveUser(ctx); err != nil {
		t.Fatalf("RemoveUser: %v", err)
	}
	got, err = st.User(ctx)
	if err != nil || got != nil {
		t.Errorf("User after remove = %v, %v; want nil, nil", got, err)
	}
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	if err := st.SetRefreshToken(ctx, "rt_1"); err != nil {
		t.Fatalf("SetRefreshToken: %v", err)
	}
	tok, err := st.RefreshToken(ctx)
	if err != nil {
		t.Fatalf("RefreshToken: %v", err)
	}
	if tok != "rt_1" {
		t.Errorf("RefreshToken = %q, want rt_1", tok)
	}
}

func TestClearAllIsIdempotent(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	if err := st.SetToken(ctx, "abc"); err != nil {
		t.Fatal(err)
	}
	if err := st.SetUser(ctx, &model.User{ID: "usr_1", Role: model.RoleCustomer}); err != nil {
		t.Fatal(err)
	}
	if err := st.SetRefreshToken(ctx, "rt_1"); err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 2; i++ {
		if err := st.ClearAll(ctx); err != nil {
			t.Fatalf("ClearAll #%d: %v", i+1, err)
		}
	}

	tok, _ := st.Token(ctx)
	u, _ := st.User(ctx)
	rt, _ := st.RefreshToken(ctx)
	if tok != "" || u != nil || rt != "" {
		t.Errorf("store not empty after ClearAll: token=%q user=%v refresh=%q", tok, u, rt)
	}
}

func TestKeyNamespacing(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "shared.db")

	a, err := NewSQLiteStore(dbPath, testKeys(), testLogger())
	if err != nil {
		t.Fatal(err)
	}
	defer a.Close()

	otherKeys := config.StorageKeys{
		Token:        "scientist.auth.token",
		User:         "scientist.auth.user",
		RefreshToken: "scientist.auth.refresh_token",
	}
	b, err := NewSQLiteStore(dbPath, otherKeys, testLogger())
	if err != nil {
		t.Fatal(err)
	}
	defer b.Close()

	if err := a.SetToken(ctx, "token-a"); err != nil {
		t.Fatal(err)
	}
	if err := b.SetToken(ctx, "token-b"); err != nil {
		t.Fatal(err)
	}

	if tok, _ := a.Token(ctx); tok != "token-a" {
		t.Errorf("store a token = %q, want token-a", tok)
	}
	if tok, _ := b.Token(ctx); tok != "token-b" {
		t.Errorf("store b token = %q, want token-b", tok)
	}

	if err := a.ClearAll(ctx); err != nil {
		t.Fatal(err)
	}
	if tok, _ := b.Token(ctx); tok != "token-b" {
		t.Errorf("clearing store a wiped store b, token = %q", tok)
	}
}
