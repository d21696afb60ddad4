package api

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"
)

func fastPolicy() Policy {
	return Policy{MaxRetries: 5, InitialInterval: time.Millisecond, MaxInterval: 5 * time.Millisecond}
}

func TestRetryableClassification(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"timeout", &Error{Kind: KindTimeout}, true},
		{"network", &Error{Kind: KindNetwork}, true},
		{"http 500", &Error{Kind: KindHTTPStatus, StatusCode: 500}, true},
		{"http 429", &Error{Kind: KindHTTPStatus, StatusCode: http.StatusTooManyRequests}, true},
		{"http 401", &Error{Kind: KindHTTPStatus, StatusCode: 401}, false},
		{"http 404", &Error{Kind: KindHTTPStatus, StatusCode: 404}, false},
		{"generic", &Error{Kind: KindGeneric}, false},
		{"plain error", errors.New("boom"), false},
		{"cancellation", context.Canceled, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Retryable(tc.err); got != tc.want {
				t.Errorf("Retryable(%v) = %v, want %v", tc.err, got, tc.want)
			}
		})
	}
}

func TestRetryEventualSuccess(t *testing.T) {
	calls := 0
	err := Retry(context.Background(), testLogger(), fastPolicy(), func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return &Error{Kind: KindNetwork, Message: "cannot reach the server"}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Retry: %v", err)
	}
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
}

func TestRetryStopsOnPermanentError(t *testing.T) {
	calls := 0
	want := &Error{Kind: KindHTTPStatus, StatusCode: 401, Message: "invalid or expired token"}
	err := Retry(context.Background(), testLogger(), fastPolicy(), func(ctx context.Context) error {
		calls++
		return want
	})
	if calls != 1 {
		t.Errorf("calls = %d, want 1 for a permanent error", calls)
	}
	var got *Error
	if !errors.As(err, &got) || got.StatusCode != 401 {
		t.Errorf("error = %v, want the original 401", err)
	}
}

func TestRetryExhaustsPolicy(t *testing.T) {
	calls := 0
	p := Policy{MaxRetries: 2, InitialInterval: time.Millisecond, MaxInterval: 2 * time.Millisecond}
	err := Retry(context.Background(), testLogger(), p, func(ctx context.Context) error {
		calls++
		return &Error{Kind: KindTimeout}
	})
	if err == nil {
		t.Fatal("expected error after exhausting retries")
	}
	if calls != 3 {
		t.Errorf("calls = %d, want initial attempt plus two retries", calls)
	}
}
