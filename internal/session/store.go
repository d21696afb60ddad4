// Package session persists the local auth session: the opaque bearer
// token, the cached user record, and an optional refresh token. The store
// is a single-writer convenience cache, not a concurrency-safe resource;
// overlapping writers race on last-write-wins.
package session

import (
	"context"

	"github.com/getwaylabs/getway/pkg/model"
)

// Store is the durable key-value persistence for session artifacts.
//
// Absent entries read back as zero values with a nil error. Storage
// failures (disk, quota) propagate to the caller; silently losing a
// token would leave the UI in an inconsistent "authenticated" state.
type Store interface {
	SetToken(ctx context.Context, token string) error
	Token(ctx context.Context) (string, error)
	RemoveToken(ctx context.Context) error

	SetUser(ctx context.Context, u *model.User) error
	User(ctx context.Context) (*model.User, error)
	RemoveUser(ctx context.Context) error

	SetRefreshToken(ctx context.Context, token string) error
	RefreshToken(ctx context.Context) (string, error)

	// ClearAll removes token, user, and refresh token in one step.
	// Used on logout and on irrecoverable auth failure; idempotent.
	ClearAll(ctx context.Context) error

	Close() error
}
