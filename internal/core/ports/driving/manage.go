package driving

import (
	"context"

	"github.com/presscan-labs/presscan-cli/internal/core/domain"
)

// Manager exposes collection management operations.
type Manager interface {
	// ListCollections returns all collection names on the service.
	ListCollections(ctx context.Context) ([]string, error)

	// DeleteCollection removes a collection by name.
	DeleteCollection(ctx context.Context, name string) error

	// Status returns indexing-progress counters for a collection.
	// An empty name selects the configured default collection.
	Status(ctx context.Context, collection string) (*domain.CollectionStatus, error)

	// ListRuns returns recent scrape runs from the local ledger.
	ListRuns(ctx context.Context, limit int) ([]domain.ScrapeRun, error)
}
