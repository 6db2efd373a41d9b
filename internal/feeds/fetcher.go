package feeds

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/presscan-labs/presscan-cli/internal/core/domain"
	"github.com/presscan-labs/presscan-cli/internal/core/ports/driven"
	"github.com/presscan-labs/presscan-cli/internal/logger"
)

// Ensure Fetcher implements the interface.
var _ driven.FeedFetcher = (*Fetcher)(nil)

// Default configuration values.
const (
	DefaultTimeout           = 30 * time.Second
	DefaultRequestsPerSecond = 2.0
	DefaultBurst             = 3

	// DefaultUserAgent is a browser-like agent string. Several feed
	// hosts reject the default Go client identifier outright.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/115.0.0.0 Safari/537.36"
)

// Config holds configuration for the feed fetcher.
type Config struct {
	// Timeout is the per-request timeout (default: 30s).
	Timeout time.Duration

	// RequestsPerSecond is the sustained fetch rate across feeds
	// (default: 2).
	RequestsPerSecond float64

	// Burst is the token bucket burst size (default: 3).
	Burst int

	// UserAgent overrides the request User-Agent header.
	UserAgent string
}

// Fetcher downloads RSS feeds over HTTP and normalises their items.
// Fetches are rate limited with a shared token bucket so a scrape cycle
// over many feeds from one host stays polite.
type Fetcher struct {
	client    *http.Client
	limiter   *rate.Limiter
	userAgent string
}

// NewFetcher creates a new feed fetcher.
func NewFetcher(cfg Config) *Fetcher {
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = DefaultRequestsPerSecond
	}
	if cfg.Burst <= 0 {
		cfg.Burst = DefaultBurst
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}

	return &Fetcher{
		client:    &http.Client{Timeout: cfg.Timeout},
		limiter:   rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
		userAgent: cfg.UserAgent,
	}
}

// Fetch downloads the feed at url and returns its normalised articles.
// Network and HTTP-level failures wrap domain.ErrTransport; a feed that
// cannot be parsed at all wraps domain.ErrExtraction. Malformed items
// inside a parseable feed are skipped with a warning.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]domain.Article, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "application/rss+xml, application/xml, text/xml")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrTransport, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s returned status %d", domain.ErrTransport, url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", domain.ErrTransport, url, err)
	}

	items, err := parseFeed(body)
	if err != nil {
		return nil, err
	}

	articles := make([]domain.Article, 0, len(items))
	for i, item := range items {
		article, err := normaliseItem(item, url)
		if err != nil {
			logger.Warn("Skipping item %d of %s: %v", i, url, err)
			continue
		}
		articles = append(articles, article)
	}

	logger.Debug("Fetched %s: %d item(s), %d normalised", url, len(items), len(articles))
	return articles, nil
}
