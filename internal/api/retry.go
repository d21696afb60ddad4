package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Policy bounds the caller-side retry helper.
type Policy struct {
	MaxRetries      int
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

// DefaultPolicy retries three times starting at half a second.
func DefaultPolicy() Policy {
	return Policy{
		MaxRetries:      3,
		InitialInterval: 500 * time.Millisecond,
		MaxInterval:     5 * time.Second,
	}
}

// Retryable reports whether err is worth retrying: timeouts, transport
// failures, and server-side 5xx or 429 responses. Everything else is
// permanent, including auth failures and caller cancellation.
func Retryable(err error) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	switch e.Kind {
	case KindTimeout, KindNetwork:
		return true
	case KindHTTPStatus:
		return e.StatusCode >= 500 || e.StatusCode == http.StatusTooManyRequests
	}
	return false
}

// Retry runs fn with exponential backoff until it succeeds, a permanent
// error occurs, the policy is exhausted, or ctx is done. The client core
// itself never retries; screens that want resilience opt in here.
func Retry(ctx context.Context, logger *slog.Logger, p Policy, fn func(context.Context) error) error {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = p.InitialInterval
	bo.MaxInterval = p.MaxInterval

	op := func() error {
		err := fn(ctx)
		if err == nil {
			return nil
		}
		if !Retryable(err) {
			return backoff.Permanent(err)
		}
		return err
	}

	attempt := 0
	notify := func(err error, next time.Duration) {
		attempt++
		logger.Warn("retrying request", "attempt", attempt, "backoff", next.String(), "error", err)
	}

	return backoff.RetryNotify(op, backoff.WithContext(backoff.WithMaxRetries(bo, uint64(p.MaxRetries)), ctx), notify)
}
