package lookupcache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"crosscheck/internal/config"
)

// Store manages lookup persistence backed by SQLite.
type Store struct {
	db     *sql.DB
	path   string
	expiry time.Duration
	now    func() time.Time
}

// Entry is one cached lookup row.
type Entry struct {
	IMDbID      string
	Payload     json.RawMessage
	LastChecked time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source used for stamps and expiry checks.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// Open initializes or connects to the lookup database and applies migrations.
func Open(cfg *config.Config, opts ...Option) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := filepath.Join(cfg.Cache.Dir, "lookups.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{
		db:     db,
		path:   dbPath,
		expiry: time.Duration(cfg.Cache.ExpiryDays) * 24 * time.Hour,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(store)
	}
	if err := store.applyMigrations(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Get returns the cached payload for an IMDb ID. A row whose last-checked
// timestamp has aged past the expiry window reads as absent; the row itself
// is left in place until overwritten or pruned.
func (s *Store) Get(ctx context.Context, imdbID string) (json.RawMessage, bool, error) {
	imdbID = strings.TrimSpace(imdbID)
	if imdbID == "" {
		return nil, false, errors.New("imdb id is empty")
	}

	row := s.db.QueryRowContext(
		ctx,
		`SELECT payload, last_checked FROM lookups WHERE imdb_id = ?`,
		imdbID,
	)
	var payload string
	var lastChecked string
	if err := row.Scan(&payload, &lastChecked); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("get lookup: %w", err)
	}

	checkedAt, err := time.Parse(time.RFC3339Nano, lastChecked)
	if err != nil {
		return nil, false, fmt.Errorf("parse last_checked for %s: %w", imdbID, err)
	}
	if s.now().UTC().Sub(checkedAt) >= s.expiry {
		return nil, false, nil
	}
	return json.RawMessage(payload), true, nil
}

// Set upserts the payload for an IMDb ID, stamping last-checked with the
// current time. Last write wins.
func (s *Store) Set(ctx context.Context, imdbID string, payload json.RawMessage) error {
	imdbID = strings.TrimSpace(imdbID)
	if imdbID == "" {
		return errors.New("imdb id is empty")
	}
	if len(payload) == 0 {
		return errors.New("payload is empty")
	}

	timestamp := s.now().UTC().Format(time.RFC3339Nano)
	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO lookups (imdb_id, payload, last_checked) VALUES (?, ?, ?)
         ON CONFLICT(imdb_id) DO UPDATE SET payload = excluded.payload, last_checked = excluded.last_checked`,
		imdbID,
		string(payload),
		timestamp,
	)
	if err != nil {
		return fmt.Errorf("upsert lookup: %w", err)
	}
	return nil
}

// Entries returns every cached row, newest first.
func (s *Store) Entries(ctx context.Context) ([]Entry, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT imdb_id, payload, last_checked FROM lookups ORDER BY last_checked DESC, imdb_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("query lookups: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var entry Entry
		var payload string
		var lastChecked string
		if err := rows.Scan(&entry.IMDbID, &payload, &lastChecked); err != nil {
			return nil, fmt.Errorf("scan lookup: %w", err)
		}
		checkedAt, err := time.Parse(time.RFC3339Nano, lastChecked)
		if err != nil {
			return nil, fmt.Errorf("parse last_checked for %s: %w", entry.IMDbID, err)
		}
		entry.Payload = json.RawMessage(payload)
		entry.LastChecked = checkedAt
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// Stats summarizes cache occupancy.
type Stats struct {
	Total   int
	Fresh   int
	Expired int
}

// Stats counts total, fresh, and expired rows against the expiry window.
// Freshness is evaluated in Go so the stored RFC3339Nano strings never need
// to compare lexicographically.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	entries, err := s.Entries(ctx)
	if err != nil {
		return Stats{}, err
	}
	now := s.now().UTC()
	stats := Stats{Total: len(entries)}
	for _, entry := range entries {
		if now.Sub(entry.LastChecked) < s.expiry {
			stats.Fresh++
		}
	}
	stats.Expired = stats.Total - stats.Fresh
	return stats, nil
}

// Prune deletes rows that have aged past the expiry window and returns the
// number removed. Reads never require pruning; this exists for the cache
// maintenance command.
func (s *Store) Prune(ctx context.Context) (int64, error) {
	entries, err := s.Entries(ctx)
	if err != nil {
		return 0, err
	}
	now := s.now().UTC()
	var removed int64
	for _, entry := range entries {
		if now.Sub(entry.LastChecked) < s.expiry {
			continue
		}
		if _, err := s.db.ExecContext(ctx, `DELETE FROM lookups WHERE imdb_id = ?`, entry.IMDbID); err != nil {
			return removed, fmt.Errorf("prune lookup %s: %w", entry.IMDbID, err)
		}
		removed++
	}
	return removed, nil
}

// Clear removes every cached row.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM lookups`); err != nil {
		return fmt.Errorf("clear lookups: %w", err)
	}
	return nil
}
