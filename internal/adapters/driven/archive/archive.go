// Package archive writes scraped article batches to local JSON files as a
// backup alongside index ingestion.
package archive

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/presscan-labs/presscan-cli/internal/core/domain"
	"github.com/presscan-labs/presscan-cli/internal/core/ports/driven"
)

// Ensure Writer implements the interface.
var _ driven.BatchArchiver = (*Writer)(nil)

// Writer stores article batches as timestamped JSON files under a
// directory.
type Writer struct {
	dir string

	// now is swappable for tests.
	now func() time.Time
}

// NewWriter creates an archive writer rooted at dir. An empty dir
// defaults to ~/.presscan/data/archives.
func NewWriter(dir string) (*Writer, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dir = filepath.Join(home, ".presscan", "data", "archives")
	}

	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("creating archive directory: %w", err)
	}

	return &Writer{dir: dir, now: time.Now}, nil
}

// archivedArticle is the on-disk record shape.
type archivedArticle struct {
	Title       string   `json:"title"`
	Creator     string   `json:"creator"`
	Categories  []string `json:"categories"`
	Description string   `json:"description"`
	PubDate     string   `json:"pub_date"`
	Content     string   `json:"content"`
	SourceURL   string   `json:"source_url"`
}

// Archive writes the batch to a timestamped JSON file and returns its
// path. An empty batch still produces a file, recording that the cycle
// ran.
func (w *Writer) Archive(ctx context.Context, articles []domain.Article) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	records := make([]archivedArticle, len(articles))
	for i, a := range articles {
		records[i] = archivedArticle{
			Title:       a.Title,
			Creator:     a.Creator,
			Categories:  a.Categories,
			Description: a.Description,
			PubDate:     a.PubDate,
			Content:     a.Content,
			SourceURL:   a.SourceURL,
		}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding batch: %w", err)
	}

	name := fmt.Sprintf("articles_%s.json", w.now().UTC().Format("20060102T150405"))
	path := filepath.Join(w.dir, name)

	if err := os.WriteFile(path, data, 0600); err != nil {
		return "", fmt.Errorf("writing archive: %w", err)
	}
	return path, nil
}
