package domain

import "time"

// ScrapeRun records one scrape-and-index cycle in the local ledger.
type ScrapeRun struct {
	// ID is a unique identifier for the run.
	ID string

	// Collection is the index-service collection written to.
	Collection string

	// StartedAt is when the run began.
	StartedAt time.Time

	// FinishedAt is when the run completed, zero while running.
	FinishedAt time.Time

	// Extracted is the number of articles normalised across all feeds.
	Extracted int

	// Indexed is the number of documents written to the index service.
	Indexed int

	// Failed is the number of write failures (conflicts excluded).
	Failed int
}

// FeedFetch records the outcome of fetching a single feed within a run.
type FeedFetch struct {
	// RunID links to the owning ScrapeRun.
	RunID string

	// URL is the feed URL.
	URL string

	// Items is the number of items extracted from the feed.
	Items int

	// Error holds the fetch error message, empty on success.
	Error string
}
