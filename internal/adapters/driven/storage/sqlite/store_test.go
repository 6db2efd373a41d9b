package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/presscan-labs/presscan-cli/internal/core/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestNewStoreRunsMigrations(t *testing.T) {
	store := newTestStore(t)

	// A fresh database must accept writes immediately.
	err := store.SaveRun(context.Background(), domain.ScrapeRun{
		ID:         "r1",
		Collection: "articles",
		StartedAt:  time.Now().UTC(),
	})
	require.NoError(t, err)
}

func TestMigrationsIdempotent(t *testing.T) {
	dir := t.TempDir()

	store, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	// Reopening the same directory must not re-apply migrations.
	store, err = NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Close())
}

func TestSaveRunUpserts(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	run := domain.ScrapeRun{
		ID:         "r1",
		Collection: "articles",
		StartedAt:  time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		Extracted:  10,
	}
	require.NoError(t, store.SaveRun(ctx, run))

	run.FinishedAt = run.StartedAt.Add(time.Minute)
	run.Indexed = 8
	run.Failed = 2
	require.NoError(t, store.SaveRun(ctx, run))

	runs, err := store.ListRuns(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, 8, runs[0].Indexed)
	assert.Equal(t, 2, runs[0].Failed)
	assert.False(t, runs[0].FinishedAt.IsZero())
}

func TestListRunsNewestFirstWithLimit(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	for i, id := range []string{"a", "b", "c"} {
		require.NoError(t, store.SaveRun(ctx, domain.ScrapeRun{
			ID:         id,
			Collection: "articles",
			StartedAt:  base.Add(time.Duration(i) * time.Hour),
		}))
	}

	runs, err := store.ListRuns(ctx, 2)

	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "c", runs[0].ID)
	assert.Equal(t, "b", runs[1].ID)
}

func TestRecordFeedFetch(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveRun(ctx, domain.ScrapeRun{
		ID:         "r1",
		Collection: "articles",
		StartedAt:  time.Now().UTC(),
	}))
	require.NoError(t, store.RecordFeedFetch(ctx, domain.FeedFetch{
		RunID: "r1", URL: "https://a.example/rss", Items: 5,
	}))
	require.NoError(t, store.RecordFeedFetch(ctx, domain.FeedFetch{
		RunID: "r1", URL: "https://b.example/rss", Error: "connection refused",
	}))

	fetches, err := store.ListFeedFetches(ctx, "r1")

	require.NoError(t, err)
	require.Len(t, fetches, 2)
	assert.Equal(t, 5, fetches[0].Items)
	assert.Equal(t, "connection refused", fetches[1].Error)
}

func TestPruneRuns(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	cutoff := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)

	require.NoError(t, store.SaveRun(ctx, domain.ScrapeRun{
		ID: "old", Collection: "articles", StartedAt: cutoff.Add(-time.Hour),
	}))
	require.NoError(t, store.SaveRun(ctx, domain.ScrapeRun{
		ID: "new", Collection: "articles", StartedAt: cutoff.Add(time.Hour),
	}))

	pruned, err := store.PruneRuns(ctx, cutoff)

	require.NoError(t, err)
	assert.Equal(t, 1, pruned)

	runs, err := store.ListRuns(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "new", runs[0].ID)
}
