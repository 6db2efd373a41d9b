// Package memory provides in-memory storage adapters, used in tests and
// as a fallback when no database is configured.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/presscan-labs/presscan-cli/internal/core/domain"
	"github.com/presscan-labs/presscan-cli/internal/core/ports/driven"
)

// Ensure RunLedger implements the interface.
var _ driven.RunLedger = (*RunLedger)(nil)

// RunLedger is an in-memory implementation of driven.RunLedger.
type RunLedger struct {
	mu      sync.RWMutex
	runs    map[string]domain.ScrapeRun
	fetches map[string][]domain.FeedFetch
}

// NewRunLedger creates a new in-memory run ledger.
func NewRunLedger() *RunLedger {
	return &RunLedger{
		runs:    make(map[string]domain.ScrapeRun),
		fetches: make(map[string][]domain.FeedFetch),
	}
}

// SaveRun stores or updates a scrape run by ID.
func (l *RunLedger) SaveRun(_ context.Context, run domain.ScrapeRun) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.runs[run.ID] = run
	return nil
}

// RecordFeedFetch stores the outcome of one feed fetch.
func (l *RunLedger) RecordFeedFetch(_ context.Context, fetch domain.FeedFetch) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.fetches[fetch.RunID] = append(l.fetches[fetch.RunID], fetch)
	return nil
}

// ListRuns returns the most recent runs, newest first.
func (l *RunLedger) ListRuns(_ context.Context, limit int) ([]domain.ScrapeRun, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	runs := make([]domain.ScrapeRun, 0, len(l.runs))
	for id := range l.runs {
		runs = append(runs, l.runs[id])
	}
	sort.Slice(runs, func(i, j int) bool {
		return runs[i].StartedAt.After(runs[j].StartedAt)
	})

	if limit > 0 && len(runs) > limit {
		runs = runs[:limit]
	}
	return runs, nil
}

// ListFeedFetches returns the recorded fetches for a run, in insertion order.
func (l *RunLedger) ListFeedFetches(_ context.Context, runID string) ([]domain.FeedFetch, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	fetches, ok := l.fetches[runID]
	if !ok {
		return nil, nil
	}
	out := make([]domain.FeedFetch, len(fetches))
	copy(out, fetches)
	return out, nil
}

// Close is a no-op for the in-memory ledger.
func (l *RunLedger) Close() error {
	return nil
}
