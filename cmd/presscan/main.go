// Command presscan scrapes RSS feeds into a remote semantic index and
// searches the indexed articles.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/presscan-labs/presscan-cli/internal/adapters/driven/archive"
	"github.com/presscan-labs/presscan-cli/internal/adapters/driven/config/file"
	"github.com/presscan-labs/presscan-cli/internal/adapters/driven/index/zeroentropy"
	"github.com/presscan-labs/presscan-cli/internal/adapters/driven/storage/sqlite"
	"github.com/presscan-labs/presscan-cli/internal/adapters/driving/cli"
	"github.com/presscan-labs/presscan-cli/internal/core/ports/driven"
	"github.com/presscan-labs/presscan-cli/internal/core/services"
	"github.com/presscan-labs/presscan-cli/internal/feeds"
	"github.com/presscan-labs/presscan-cli/internal/logger"
)

// version is injected at build time:
//
//	go build -ldflags "-X main.version=v1.2.3"
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := file.Load("")
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if cfg.API.Key == "" {
		return fmt.Errorf("no API key configured: set %s or add it to the config file", file.EnvAPIKey)
	}

	client, err := zeroentropy.NewClient(zeroentropy.Config{
		APIKey:  cfg.API.Key,
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.Timeout(),
	})
	if err != nil {
		return fmt.Errorf("creating index client: %w", err)
	}

	fetcher := feeds.NewFetcher(feeds.Config{
		RequestsPerSecond: cfg.Scrape.RequestsPerSecond,
	})

	// Local persistence is advisory: a broken data directory downgrades
	// the experience but scraping and searching still work.
	var ledger driven.RunLedger
	if store, err := sqlite.NewStore(cfg.DataDir); err != nil {
		logger.Warn("Run ledger unavailable: %v", err)
	} else {
		defer store.Close()
		ledger = store
	}

	ingestor := services.NewIngestionService(client, fetcher, cfg.Scrape.Collection, cfg.Scrape.Feeds)
	if ledger != nil {
		ingestor.SetLedger(ledger)
	}

	var archiveDir string
	if cfg.DataDir != "" {
		archiveDir = filepath.Join(cfg.DataDir, "archives")
	}
	if archiver, err := archive.NewWriter(archiveDir); err != nil {
		logger.Warn("Batch archiving unavailable: %v", err)
	} else {
		ingestor.SetArchiver(archiver)
	}

	searcher := services.NewSearchService(client, cfg.Scrape.Collection)
	searcher.Reranker = cfg.Search.Reranker

	manager := services.NewManagementService(client, ledger, cfg.Scrape.Collection)

	cli.SetVersion(version)
	cli.SetServices(cli.Services{
		Ingestor: ingestor,
		Search:   searcher,
		Manager:  manager,
	})

	return cli.Execute()
}
