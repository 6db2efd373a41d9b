package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/presscan-labs/presscan-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/presscan-labs/presscan-cli/internal/core/domain"
	"github.com/presscan-labs/presscan-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.RunLedger = (*Store)(nil)

// Store is a SQLite-backed run ledger.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.presscan/data/presscan.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".presscan", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "presscan.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "0001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(
			"INSERT INTO schema_migrations (version) VALUES (?)", version,
		); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// SaveRun stores or updates a scrape run by ID.
func (s *Store) SaveRun(ctx context.Context, run domain.ScrapeRun) error {
	var finishedAt any
	if !run.FinishedAt.IsZero() {
		finishedAt = run.FinishedAt.UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO scrape_runs (id, collection, started_at, finished_at, extracted, indexed, failed)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			collection = excluded.collection,
			finished_at = excluded.finished_at,
			extracted = excluded.extracted,
			indexed = excluded.indexed,
			failed = excluded.failed
	`, run.ID, run.Collection, run.StartedAt.UTC(), finishedAt,
		run.Extracted, run.Indexed, run.Failed)

	if err != nil {
		return fmt.Errorf("saving run: %w", err)
	}
	return nil
}

// RecordFeedFetch stores the outcome of one feed fetch.
func (s *Store) RecordFeedFetch(ctx context.Context, fetch domain.FeedFetch) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO feed_fetches (run_id, url, items, error)
		VALUES (?, ?, ?, ?)
	`, fetch.RunID, fetch.URL, fetch.Items, fetch.Error)

	if err != nil {
		return fmt.Errorf("recording feed fetch: %w", err)
	}
	return nil
}

// ListRuns returns the most recent runs, newest first.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]domain.ScrapeRun, error) {
	query := `
		SELECT id, collection, started_at, finished_at, extracted, indexed, failed
		FROM scrape_runs
		ORDER BY started_at DESC
	`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []domain.ScrapeRun //nolint:prealloc // size unknown from query
	for rows.Next() {
		var run domain.ScrapeRun
		var startedAt, finishedAt sql.NullTime
		if err := rows.Scan(&run.ID, &run.Collection, &startedAt, &finishedAt,
			&run.Extracted, &run.Indexed, &run.Failed); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		if startedAt.Valid {
			run.StartedAt = startedAt.Time
		}
		if finishedAt.Valid {
			run.FinishedAt = finishedAt.Time
		}
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating runs: %w", err)
	}

	return runs, nil
}

// ListFeedFetches returns the recorded fetches for a run, in insertion order.
func (s *Store) ListFeedFetches(ctx context.Context, runID string) ([]domain.FeedFetch, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT run_id, url, items, error
		FROM feed_fetches WHERE run_id = ?
		ORDER BY rowid
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("querying feed fetches: %w", err)
	}
	defer rows.Close()

	var fetches []domain.FeedFetch //nolint:prealloc // size unknown from query
	for rows.Next() {
		var fetch domain.FeedFetch
		if err := rows.Scan(&fetch.RunID, &fetch.URL, &fetch.Items, &fetch.Error); err != nil {
			return nil, fmt.Errorf("scanning feed fetch: %w", err)
		}
		fetches = append(fetches, fetch)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating feed fetches: %w", err)
	}

	return fetches, nil
}

// PruneRuns deletes runs that started before the cutoff, with their fetches.
func (s *Store) PruneRuns(ctx context.Context, before time.Time) (int, error) {
	result, err := s.db.ExecContext(ctx,
		"DELETE FROM scrape_runs WHERE started_at < ?", before.UTC())
	if err != nil {
		return 0, fmt.Errorf("pruning runs: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting pruned runs: %w", err)
	}
	return int(affected), nil
}
