package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Fetch configured feeds and index the articles",
	Long: `Fetches every configured RSS feed, normalises the articles, archives
the batch locally, and ingests the documents into the index service.
Articles already present in the index are skipped.`,
	Args: cobra.NoArgs,
	RunE: runScrape,
}

func init() {
	rootCmd.AddCommand(scrapeCmd)
}

func runScrape(cmd *cobra.Command, _ []string) error {
	if ingestService == nil {
		return errors.New("ingest service not configured")
	}

	cmd.Println("Scraping configured feeds...")

	report, err := ingestService.ScrapeAndIndex(cmd.Context())
	if err != nil {
		return fmt.Errorf("scrape failed: %w", err)
	}

	cmd.Println()
	cmd.Printf("Run %s complete.\n", report.RunID)
	cmd.Printf("  Feeds fetched:  %d\n", report.FeedsFetched)
	if report.FeedsFailed > 0 {
		cmd.Printf("  Feeds failed:   %d\n", report.FeedsFailed)
	}
	cmd.Printf("  Articles found: %d\n", report.Extracted)
	cmd.Printf("  Indexed:        %d\n", report.Indexed)
	if report.Failed > 0 {
		cmd.Printf("  Write failures: %d\n", report.Failed)
	}
	if report.ArchivePath != "" {
		cmd.Printf("  Archive:        %s\n", report.ArchivePath)
	}

	return nil
}
