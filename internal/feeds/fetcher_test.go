package feeds

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/presscan-labs/presscan-cli/internal/core/domain"
)

func TestFetcherFetch(t *testing.T) {
	var gotUserAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(sampleFeed))
	}))
	defer server.Close()

	f := NewFetcher(Config{})
	articles, err := f.Fetch(context.Background(), server.URL)

	require.NoError(t, err)
	require.Len(t, articles, 2)
	assert.Equal(t, DefaultUserAgent, gotUserAgent)
	assert.Equal(t, server.URL, articles[0].SourceURL)
}

func TestFetcherHTTPErrorIsTransport(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	f := NewFetcher(Config{})
	_, err := f.Fetch(context.Background(), server.URL)

	require.ErrorIs(t, err, domain.ErrTransport)
}

func TestFetcherUnreachableIsTransport(t *testing.T) {
	f := NewFetcher(Config{})
	_, err := f.Fetch(context.Background(), "http://127.0.0.1:1/feed")

	require.ErrorIs(t, err, domain.ErrTransport)
}

func TestFetcherMalformedFeed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("not a feed"))
	}))
	defer server.Close()

	f := NewFetcher(Config{})
	_, err := f.Fetch(context.Background(), server.URL)

	require.ErrorIs(t, err, domain.ErrExtraction)
}

func TestFetcherCancelledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(sampleFeed))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f := NewFetcher(Config{})
	_, err := f.Fetch(ctx, server.URL)

	require.Error(t, err)
}
