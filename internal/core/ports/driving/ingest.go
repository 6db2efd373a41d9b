package driving

import "context"

// Ingestor coordinates the scrape-and-index cycle.
type Ingestor interface {
	// ScrapeAndIndex fetches all configured feeds, archives the batch,
	// and ingests the articles into the index service.
	ScrapeAndIndex(ctx context.Context) (*ScrapeReport, error)
}

// ScrapeReport summarises one scrape-and-index cycle.
type ScrapeReport struct {
	// RunID identifies the run in the local ledger.
	RunID string

	// FeedsFetched is the number of feeds that returned items.
	FeedsFetched int

	// FeedsFailed is the number of unreachable or malformed feeds.
	FeedsFailed int

	// Extracted is the number of articles normalised.
	Extracted int

	// Indexed is the number of documents written.
	Indexed int

	// Failed is the number of write failures (conflicts excluded).
	Failed int

	// ArchivePath is where the batch backup was written, empty if
	// archiving failed or was disabled.
	ArchivePath string
}
