package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/presscan-labs/presscan-cli/internal/core/domain"
	"github.com/presscan-labs/presscan-cli/internal/core/ports/driving"
)

var (
	searchK        int
	searchType     string
	filterCreator  string
	filterCategory string
	searchReranker string
	searchStatus   bool
	searchJSON     bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search indexed articles",
	Long: `Searches the article collection at the requested granularity.

Search types:
  documents - whole-article retrieval (default)
  snippets  - short relevant spans with their location
  pages     - individual pages with content
  advanced  - broad retrieval followed by cross-encoder reranking`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchK, "num-results", "k", 10, "number of results to return")
	searchCmd.Flags().StringVarP(&searchType, "search-type", "t", "documents", "search type: documents, snippets, pages, or advanced")
	searchCmd.Flags().StringVar(&filterCreator, "filter-creator", "", "only return articles by this author")
	searchCmd.Flags().StringVar(&filterCategory, "filter-category", "", "only return articles in this category")
	searchCmd.Flags().StringVar(&searchReranker, "reranker", "", "rerank model for advanced search")
	searchCmd.Flags().BoolVar(&searchStatus, "status", false, "show indexing progress before searching")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if searchService == nil {
		return errors.New("search service not configured")
	}

	mode, err := domain.ParseSearchMode(searchType)
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	if searchStatus {
		status, err := searchService.Status(ctx)
		if err != nil {
			return fmt.Errorf("fetching status: %w", err)
		}
		renderStatus(cmd, status)
		cmd.Println()
	}

	results, err := searchService.Search(ctx, driving.SearchRequest{
		Query:    args[0],
		Mode:     mode,
		K:        searchK,
		Creator:  filterCreator,
		Category: filterCategory,
		Reranker: searchReranker,
	})
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputResultsJSON(cmd, results)
	}

	renderResults(cmd, results)
	return nil
}

func outputResultsJSON(cmd *cobra.Command, results *domain.SearchResults) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
