// Package cli implements the presscan command-line interface using cobra.
// Commands depend on driving-port interfaces only; services are injected
// by main through SetServices.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/presscan-labs/presscan-cli/internal/core/ports/driving"
	"github.com/presscan-labs/presscan-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Injected services. Commands check for nil and fail with a clear error
// so a partially wired binary degrades instead of panicking.
var (
	ingestService driving.Ingestor
	searchService driving.SearchService
	manageService driving.Manager
)

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "presscan",
	Short: "Scrape RSS feeds and search them semantically",
	Long: `Presscan scrapes configured RSS feeds, normalises the articles, and
ingests them into a remote semantic index. Indexed articles can then be
searched at document, snippet, or page granularity, or through a
two-stage retrieve-and-rerank pipeline.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
}

// Services bundles the driving ports the CLI depends on.
type Services struct {
	Ingestor driving.Ingestor
	Search   driving.SearchService
	Manager  driving.Manager
}

// SetServices injects service implementations into the command tree.
func SetServices(s Services) {
	ingestService = s.Ingestor
	searchService = s.Search
	manageService = s.Manager
}

// SetVersion overrides the displayed version string.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
