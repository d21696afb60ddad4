package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/getwaylabs/getway/internal/config"
	"github.com/getwaylabs/getway/pkg/model"

	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store on a local SQLite database. Entries are
// namespaced by the configured storage keys, so app variants sharing one
// database file stay out of each other's way.
type SQLiteStore struct {
	db     *sql.DB
	keys   config.StorageKeys
	logger *slog.Logger
}

// NewSQLiteStore opens (or creates) the database at dbPath and ensures the
// schema exists. Use ":memory:" for tests.
func NewSQLiteStore(dbPath string, keys config.StorageKeys, logger *slog.Logger) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", dbPath, err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("pragma wal: %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS kv (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create kv table: %w", err)
	}

	return &SQLiteStore{
		db:     db,
		keys:   keys,
		logger: logger.With("component", "session"),
	}, nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) put(ctx context.Context, key, value string) error {
	s.logger.Debug("kv", "op", "put", "key", key)
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("store %s: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", key, err)
	}
	return value, nil
}

func (s *SQLiteStore) del(ctx context.Context, key string) error {
	s.logger.Debug("kv", "op", "del", "key", key)
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("remove %s: %w", key, err)
	}
	return nil
}

// SetToken stores the bearer token.
func (s *SQLiteStore) SetToken(ctx context.Context, token string) error {
	return s.put(ctx, s.keys.Token, token)
}

// Token returns the stored bearer token, or "" when none is stored.
func (s *SQLiteStore) Token(ctx context.Context) (string, error) {
	return s.get(ctx, s.keys.Token)
}

// RemoveToken deletes the bearer token.
func (s *SQLiteStore) RemoveToken(ctx context.Context) error {
	return s.del(ctx, s.keys.Token)
}

// SetUser caches the user record as JSON.
func (s *SQLiteStore) SetUser(ctx context.Context, u *model.User) error {
	data, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("marshal user: %w", err)
	}
	return s.put(ctx, s.keys.User, string(data))
}

// User returns the cached user record, or nil when none is stored.
func (s *SQLiteStore) User(ctx context.Context) (*model.User, error) {
	raw, err := s.get(ctx, s.keys.User)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, nil
	}
	var u model.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return nil, fmt.Errorf("unmarshal user: %w", err)
	}
	return &u, nil
}

// RemoveUser deletes the cached user record.
func (s *SQLiteStore) RemoveUser(ctx context.Context) error {
	return s.del(ctx, s.keys.User)
}

// SetRefreshToken stores the refresh token.
func (s *SQLiteStore) SetRefreshToken(ctx context.Context, token string) error {
	return s.put(ctx, s.keys.RefreshToken, token)
}

// RefreshToken returns the stored refresh token, or "" when none is stored.
func (s *SQLiteStore) RefreshToken(ctx context.Context) (string, error) {
	return s.get(ctx, s.keys.RefreshToken)
}

// ClearAll removes all three session entries in one transaction.
func (s *SQLiteStore) ClearAll(ctx context.Context) error {
	s.logger.Debug("kv", "op", "clear_all")
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	defer tx.Rollback()

	for _, key := range []string{s.keys.Token, s.keys.User, s.keys.RefreshToken} {
		if _, err := tx.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
			return fmt.Errorf("clear %s: %w", key, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
