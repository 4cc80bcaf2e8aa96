// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package cache keeps whole canonical collections in SQLite so repeated runs
// skip slow spreadsheet downloads. Entries expire after a TTL and are keyed by
// the identity of their source (a file path or a sheet id).
package cache

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

// version is mixed into every key; bumping it orphans old entries.
const version = "1"

// DefaultTTL applies when Open is given a non-positive TTL.
const DefaultTTL = time.Hour

// Key returns the entry key of source: the first 16 hex digits of
// sha256("1:" + source).
func Key(source string) string {
	sum := sha256.Sum256([]byte(version + ":" + source))
	return hex.EncodeToString(sum[:])[:16]
}

// Store is a TTL cache backed by one SQLite table.
type Store struct {
	db     *sql.DB
	path   string
	ttl    time.Duration
	logger *zap.Logger
	// now is replaced in tests.
	now func() time.Time
}

// Open opens or creates the cache database at path.
func Open(path string, ttl time.Duration, logger *zap.Logger) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening cache database: %w", err)
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Store{db: db, path: path, ttl: ttl, logger: logger, now: time.Now}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS entries (
		key TEXT PRIMARY KEY,
		source TEXT NOT NULL,
		created_at TEXT NOT NULL,
		ttl_seconds INTEGER NOT NULL,
		data TEXT NOT NULL
	)`)
	return err
}

func (s *Store) expired(createdAt string, ttlSeconds int64) bool {
	created, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return true
	}
	return s.now().After(created.Add(time.Duration(ttlSeconds) * time.Second))
}

// Get decodes the live entry of source into v and reports whether one was
// found. Expired or undecodable entries are deleted and count as misses.
func (s *Store) Get(source string, v any) (bool, error) {
	key := Key(source)
	var createdAt, data string
	var ttlSeconds int64
	err := s.db.QueryRow(
		`SELECT created_at, ttl_seconds, data FROM entries WHERE key = ?`, key,
	).Scan(&createdAt, &ttlSeconds, &data)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("reading cache entry: %w", err)
	}

	if s.expired(createdAt, ttlSeconds) {
		s.logger.Debug("cache entry expired", zap.String("source", source))
		_, err := s.Invalidate(source)
		return false, err
	}
	if err := json.Unmarshal([]byte(data), v); err != nil {
		s.logger.Warn("invalid cache entry, removing", zap.String("source", source), zap.Error(err))
		_, err := s.Invalidate(source)
		return false, err
	}
	return true, nil
}

// Set stores v as the entry of source, replacing any previous one.
func (s *Store) Set(source string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding cache entry: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT OR REPLACE INTO entries (key, source, created_at, ttl_seconds, data) VALUES (?, ?, ?, ?, ?)`,
		Key(source), source, s.now().UTC().Format(time.RFC3339Nano), int64(s.ttl/time.Second), string(data),
	)
	if err != nil {
		return fmt.Errorf("writing cache entry: %w", err)
	}
	return nil
}

// Invalidate removes the entry of source and reports whether one existed.
func (s *Store) Invalidate(source string) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM entries WHERE key = ?`, Key(source))
	if err != nil {
		return false, fmt.Errorf("deleting cache entry: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("deleting cache entry: %w", err)
	}
	return n > 0, nil
}

// Clear removes every entry and returns how many there were.
func (s *Store) Clear() (int, error) {
	res, err := s.db.Exec(`DELETE FROM entries`)
	if err != nil {
		return 0, fmt.Errorf("clearing cache: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("clearing cache: %w", err)
	}
	return int(n), nil
}

// Stats summarizes the cache contents.
type Stats struct {
	Total     int    `json:"total_entries" yaml:"total_entries"`
	Valid     int    `json:"valid_entries" yaml:"valid_entries"`
	Expired   int    `json:"expired_entries" yaml:"expired_entries"`
	DataBytes int64  `json:"data_bytes" yaml:"data_bytes"`
	Path      string `json:"path" yaml:"path"`
}

func (s *Store) Stats() (Stats, error) {
	rows, err := s.db.Query(`SELECT created_at, ttl_seconds, length(data) FROM entries`)
	if err != nil {
		return Stats{}, fmt.Errorf("reading cache stats: %w", err)
	}
	defer rows.Close()

	st := Stats{Path: s.path}
	for rows.Next() {
		var createdAt string
		var ttlSeconds, size int64
		if err := rows.Scan(&createdAt, &ttlSeconds, &size); err != nil {
			return Stats{}, fmt.Errorf("scanning cache stats: %w", err)
		}
		st.Total++
		st.DataBytes += size
		if s.expired(createdAt, ttlSeconds) {
			st.Expired++
		} else {
			st.Valid++
		}
	}
	return st, rows.Err()
}

// Fetch returns the cached value of source, or calls load and caches its
// result. A nil store or refresh always loads.
func Fetch[T any](s *Store, source string, refresh bool, load func() (T, error)) (T, error) {
	if s != nil && !refresh {
		var cached T
		hit, err := s.Get(source, &cached)
		if err != nil {
			s.logger.Warn("cache read failed", zap.String("source", source), zap.Error(err))
		}
		if hit {
			s.logger.Info("using cached data", zap.String("source", source))
			return cached, nil
		}
	}

	v, err := load()
	if err != nil {
		return v, err
	}
	if s != nil {
		if err := s.Set(source, v); err != nil {
			s.logger.Warn("cache write failed", zap.String("source", source), zap.Error(err))
		}
	}
	return v, nil
}
