package driven

import (
	"context"

	"github.com/presscan-labs/presscan-cli/internal/core/domain"
)

// RunLedger records scrape-run history locally.
// Ledger writes are advisory: a ledger failure never aborts a scrape.
type RunLedger interface {
	// SaveRun stores or updates a scrape run by ID.
	SaveRun(ctx context.Context, run domain.ScrapeRun) error

	// RecordFeedFetch stores the outcome of one feed fetch.
	RecordFeedFetch(ctx context.Context, fetch domain.FeedFetch) error

	// ListRuns returns the most recent runs, newest first.
	ListRuns(ctx context.Context, limit int) ([]domain.ScrapeRun, error)

	// Close releases resources.
	Close() error
}

// BatchArchiver persists the raw article batch from a scrape cycle as a
// local backup before ingestion.
type BatchArchiver interface {
	// Archive writes the batch and returns the location it was written to.
	Archive(ctx context.Context, articles []domain.Article) (string, error)
}
