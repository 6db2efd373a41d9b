package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var runsLimit int

var manageCmd = &cobra.Command{
	Use:   "manage",
	Short: "Manage collections and scrape history",
}

var manageListCmd = &cobra.Command{
	Use:   "list",
	Short: "List collections on the index service",
	Args:  cobra.NoArgs,
	RunE:  runManageList,
}

var manageDeleteCmd = &cobra.Command{
	Use:   "delete [collection]",
	Short: "Delete a collection and all its documents",
	Args:  cobra.ExactArgs(1),
	RunE:  runManageDelete,
}

var manageStatusCmd = &cobra.Command{
	Use:   "status [collection]",
	Short: "Show indexing progress for a collection",
	Long: `Shows indexing-progress counters for a collection. Without an
argument, the configured default collection is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runManageStatus,
}

var manageRunsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Show recent scrape runs",
	Args:  cobra.NoArgs,
	RunE:  runManageRuns,
}

func init() {
	manageRunsCmd.Flags().IntVar(&runsLimit, "limit", 20, "maximum number of runs to show")
	manageCmd.AddCommand(manageListCmd)
	manageCmd.AddCommand(manageDeleteCmd)
	manageCmd.AddCommand(manageStatusCmd)
	manageCmd.AddCommand(manageRunsCmd)
	rootCmd.AddCommand(manageCmd)
}

func runManageList(cmd *cobra.Command, _ []string) error {
	if manageService == nil {
		return errors.New("management service not configured")
	}

	collections, err := manageService.ListCollections(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing collections: %w", err)
	}

	if len(collections) == 0 {
		cmd.Println("No collections found.")
		return nil
	}

	for _, name := range collections {
		cmd.Printf("  %s\n", name)
	}
	return nil
}

func runManageDelete(cmd *cobra.Command, args []string) error {
	if manageService == nil {
		return errors.New("management service not configured")
	}

	name := args[0]
	if err := manageService.DeleteCollection(cmd.Context(), name); err != nil {
		return fmt.Errorf("deleting collection %s: %w", name, err)
	}

	cmd.Printf("Collection %s deleted.\n", name)
	return nil
}

func runManageStatus(cmd *cobra.Command, args []string) error {
	if manageService == nil {
		return errors.New("management service not configured")
	}

	collection := ""
	if len(args) > 0 {
		collection = args[0]
	}

	status, err := manageService.Status(cmd.Context(), collection)
	if err != nil {
		return fmt.Errorf("fetching status: %w", err)
	}

	renderStatus(cmd, status)
	return nil
}

func runManageRuns(cmd *cobra.Command, _ []string) error {
	if manageService == nil {
		return errors.New("management service not configured")
	}

	runs, err := manageService.ListRuns(cmd.Context(), runsLimit)
	if err != nil {
		return fmt.Errorf("listing runs: %w", err)
	}

	if len(runs) == 0 {
		cmd.Println("No scrape runs recorded.")
		return nil
	}

	for _, run := range runs {
		line := fmt.Sprintf("  %s  %s  extracted=%d indexed=%d failed=%d",
			run.StartedAt.Format("2006-01-02 15:04"), run.ID,
			run.Extracted, run.Indexed, run.Failed)
		if run.FinishedAt.IsZero() {
			line += "  (incomplete)"
		}
		cmd.Println(line)
	}
	return nil
}
