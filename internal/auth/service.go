// Package auth orchestrates login, registration, logout, and profile
// refresh as compound operations over the HTTP client core and the
// session store.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/getwaylabs/getway/internal/api"
	"github.com/getwaylabs/getway/internal/session"
	"github.com/getwaylabs/getway/pkg/model"
)

// Semantic failures. Each wraps the transport- or server-level cause and
// carries a message fit for display.
var (
	ErrLoginFailed        = errors.New("login failed")
	ErrRegistrationFailed = errors.New("registration failed")
	ErrProfileFetch       = errors.New("could not load profile")
)

// Service composes the client core and session store into the auth flows.
type Service struct {
	client *api.Client
	store  session.Store
	logger *slog.Logger
}

// NewService creates the auth service. The composition root constructs one
// instance and hands it to the commands that need it.
func NewService(client *api.Client, store session.Store, logger *slog.Logger) *Service {
	return &Service{
		client: client,
		store:  store,
		logger: logger.With("component", "auth"),
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates against POST /auth/login and, on success, stores the
// returned token and user before returning the session.
func (s *Service) Login(ctx context.Context, email, password string) (*model.Session, error) {
	resp, err := s.client.Post(ctx, "/auth/login", loginRequest{Email: email, Password: password}, api.WithoutAuth())
	if err != nil {
		return nil, wrapClientErr(ErrLoginFailed, err)
	}
	if !resp.OK() || len(resp.Data) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrLoginFailed, messageOr(resp, "invalid email or password"))
	}

	var sess model.Session
	if err := resp.DecodeData(&sess); err != nil {
		return nil, fmt.Errorf("%w: malformed server response: %w", ErrLoginFailed, err)
	}
	if sess.Token == "" {
		return nil, fmt.Errorf("%w: server returned no token", ErrLoginFailed)
	}

	if err := s.store.SetToken(ctx, sess.Token); err != nil {
		return nil, fmt.Errorf("store token: %w", err)
	}
	if sess.User != nil {
		if err := s.store.SetUser(ctx, sess.User); err != nil {
			return nil, fmt.Errorf("store user: %w", err)
		}
	}

	s.logger.Info("logged in", "email", email)
	return &sess, nil
}

// Logout best-effort notifies the server, then clears the local session.
// A failing server call is logged and swallowed: the user-visible
// requirement is "you are logged out locally" regardless of server-side
// acknowledgment.
func (s *Service) Logout(ctx context.Context) error {
	tok, err := s.store.Token(ctx)
	if err != nil {
		return fmt.Errorf("read stored token: %w", err)
	}
	if tok != "" {
		if _, err := s.client.Post(ctx, "/auth/logout", nil); err != nil {
			s.logger.Warn("server logout failed; clearing local session anyway", "error", err)
		}
	}
	if err := s.store.ClearAll(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	s.logger.Info("logged out")
	return nil
}

// Profile fetches GET /auth/profile, overwrites the cached user record on
// success so CurrentUser reflects the latest role and approval state, and
// propagates failures without touching the cache.
func (s *Service) Profile(ctx context.Context) (*model.User, error) {
	resp, err := s.client.Get(ctx, "/auth/profile")
	if err != nil {
		return nil, wrapClientErr(ErrProfileFetch, err)
	}
	if !resp.OK() {
		return nil, fmt.Errorf("%w: %s", ErrProfileFetch, messageOr(resp, "server rejected the request"))
	}

	var u model.User
	if err := resp.DecodeData(&u); err != nil {
		return nil, fmt.Errorf("%w: malformed server response: %w", ErrProfileFetch, err)
	}
	if err := s.store.SetUser(ctx, &u); err != nil {
		return nil, fmt.Errorf("cache profile: %w", err)
	}
	return &u, nil
}

// IsAuthenticated reports whether a non-empty token is stored. This is a
// local check only; the token may still be rejected server-side.
func (s *Service) IsAuthenticated(ctx context.Context) (bool, error) {
	tok, err := s.store.Token(ctx)
	if err != nil {
		return false, err
	}
	return tok != "", nil
}

// CurrentUser returns the last cached user record, or nil when none exists.
func (s *Service) CurrentUser(ctx context.Context) (*model.User, error) {
	return s.store.User(ctx)
}

// messageOr returns the envelope's message, or fallback when the server
// provided none.
func messageOr(resp *model.Response, fallback string) string {
	if resp.Message != "" {
		return resp.Message
	}
	return fallback
}

// wrapClientErr converts a client-core failure into a semantic auth error.
// HTTP rejections already carry the server's own message; transport
// failures get a friendly fallback. The original cause stays wrapped
// either way.
func wrapClientErr(sentinel, err error) error {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Kind == api.KindHTTPStatus {
		return fmt.Errorf("%w: %w", sentinel, err)
	}
	return fmt.Errorf("%w: unable to reach the server: %w", sentinel, err)
}
