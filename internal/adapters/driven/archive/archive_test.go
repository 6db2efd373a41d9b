package archive

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/presscan-labs/presscan-cli/internal/core/domain"
)

func TestArchiveWritesBatch(t *testing.T) {
	dir := t.TempDir()
	writer, err := NewWriter(dir)
	require.NoError(t, err)
	writer.now = func() time.Time {
		return time.Date(2026, 8, 1, 12, 30, 0, 0, time.UTC)
	}

	articles := []domain.Article{
		{
			Title:      "Star returns to TV",
			Creator:    "Jane Doe",
			Categories: []string{"entertainment", "television"},
			PubDate:    "Mon, 01 Aug 2026 10:00:00 GMT",
			Content:    "Full body text.",
			SourceURL:  "https://a.example/rss",
		},
	}

	path, err := writer.Archive(context.Background(), articles)

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "articles_20260801T123000.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var records []archivedArticle
	require.NoError(t, json.Unmarshal(data, &records))
	require.Len(t, records, 1)
	assert.Equal(t, "Star returns to TV", records[0].Title)
	assert.Equal(t, []string{"entertainment", "television"}, records[0].Categories)
}

func TestArchiveEmptyBatch(t *testing.T) {
	writer, err := NewWriter(t.TempDir())
	require.NoError(t, err)

	path, err := writer.Archive(context.Background(), nil)

	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(data))
}

func TestArchiveCancelledContext(t *testing.T) {
	writer, err := NewWriter(t.TempDir())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = writer.Archive(ctx, nil)

	require.Error(t, err)
}
