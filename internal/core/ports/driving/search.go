package driving

import (
	"context"

	"github.com/presscan-labs/presscan-cli/internal/core/domain"
)

// SearchService routes queries to the index service.
type SearchService interface {
	// Search runs a query at the requested granularity.
	Search(ctx context.Context, req SearchRequest) (*domain.SearchResults, error)

	// Status returns the collection's indexing-progress counters.
	Status(ctx context.Context) (*domain.CollectionStatus, error)
}

// SearchRequest describes a routed query.
type SearchRequest struct {
	// Query is the search string.
	Query string

	// Mode selects the retrieval granularity.
	Mode domain.SearchMode

	// K is the number of results to return (default 10).
	K int

	// Creator filters by author metadata when non-empty.
	Creator string

	// Category filters by category metadata when non-empty.
	Category string

	// Reranker names the reranking model. Empty selects the default.
	// Ignored for page retrieval, which the service API offers no
	// reranker for.
	Reranker string
}
