package credential

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore persists credentials so sessions survive a restart.
type SQLiteStore struct {
	db  *sql.DB
	ttl time.Duration
	now func() time.Time
}

func NewSQLiteStore(dbPath string, ttl time.Duration) (*SQLiteStore, error) {
	if dbPath == "" {
		return nil, errors.New("sqlite path is required")
	}
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	// A single connection keeps ":memory:" databases coherent.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}

	s := &SQLiteStore{db: db, ttl: ttl, now: time.Now}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

func (s *SQLiteStore) migrate() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS credentials (
		session_key TEXT PRIMARY KEY,
		token TEXT NOT NULL,
		saved_at INTEGER NOT NULL
	)`)
	return err
}

func (s *SQLiteStore) Load(ctx context.Context, key string) (string, error) {
	var token string
	var savedAt int64
	err := s.db.QueryRowContext(ctx,
		`SELECT token, saved_at FROM credentials WHERE session_key = ?`, key,
	).Scan(&token, &savedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("load credential: %w", err)
	}
	if s.expired(savedAt) {
		return "", ErrNotFound
	}
	return token, nil
}

func (s *SQLiteStore) Save(ctx context.Context, key, token string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO credentials (session_key, token, saved_at) VALUES (?, ?, ?)
		 ON CONFLICT(session_key) DO UPDATE SET token = excluded.token, saved_at = excluded.saved_at`,
		key, token, s.now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("save credential: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Clear(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM credentials WHERE session_key = ?`, key); err != nil {
		return fmt.Errorf("clear credential: %w", err)
	}
	return nil
}

// PurgeExpired deletes every credential older than the store TTL and
// reports how many rows were removed.
func (s *SQLiteStore) PurgeExpired(ctx context.Context) (int64, error) {
	if s.ttl <= 0 {
		return 0, nil
	}
	cutoff := s.now().Add(-s.ttl).Unix()
	res, err := s.db.ExecContext(ctx, `DELETE FROM credentials WHERE saved_at <= ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("purge credentials: %w", err)
	}
	return res.RowsAffected()
}

// Ping checks the database is reachable.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) expired(savedAt int64) bool {
	if s.ttl <= 0 {
		return false
	}
	return savedAt <= s.now().Add(-s.ttl).Unix()
}
