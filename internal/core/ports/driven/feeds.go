package driven

import (
	"context"

	"github.com/presscan-labs/presscan-cli/internal/core/domain"
)

// FeedFetcher retrieves and normalises one feed source.
// A failed fetch returns domain.ErrTransport (wrapped); malformed items
// inside an otherwise healthy feed are skipped, not surfaced.
type FeedFetcher interface {
	// Fetch downloads the feed at url and returns its normalised articles.
	Fetch(ctx context.Context, url string) ([]domain.Article, error)
}
