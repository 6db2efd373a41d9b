package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/presscan-labs/presscan-cli/internal/core/domain"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	scoreStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	metaStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
)

// fallbackWidth is used when stdout is not a terminal.
const fallbackWidth = 80

func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return fallbackWidth
	}
	return width
}

// renderResults prints search results for human consumption.
func renderResults(cmd *cobra.Command, results *domain.SearchResults) {
	if results.Len() == 0 {
		cmd.Println("No results found.")
		return
	}

	cmd.Printf("Results (%s):\n\n", results.Mode)

	switch results.Mode {
	case domain.SearchModeDocuments:
		for i, r := range results.Documents {
			renderHeading(cmd, i, r.Metadata.Title, scoreStyle.Render(fmt.Sprintf("(%.3f)", r.Score)))
			renderMetadata(cmd, r.Metadata)
			cmd.Println()
		}
	case domain.SearchModeSnippets:
		for i, r := range results.Snippets {
			renderHeading(cmd, i, r.Metadata.Title, scoreStyle.Render(fmt.Sprintf("(%.3f)", r.Score)))
			cmd.Printf("      chars %d-%d\n", r.StartIndex, r.EndIndex)
			if r.Content != "" {
				cmd.Printf("      %s\n", clip(r.Content, termWidth()-6))
			}
			cmd.Println()
		}
	case domain.SearchModePages:
		for i, r := range results.Pages {
			renderHeading(cmd, i, r.Metadata.Title, scoreStyle.Render(fmt.Sprintf("(%.3f)", r.Score)))
			cmd.Printf("      page %d\n", r.PageIndex)
			if r.Content != "" {
				cmd.Printf("      %s\n", clip(r.Content, termWidth()-6))
			}
			cmd.Println()
		}
	case domain.SearchModeAdvanced:
		for i, r := range results.Reranked {
			scores := scoreStyle.Render(
				fmt.Sprintf("(rerank %.3f, retrieval %.3f)", r.RerankScore, r.OriginalScore))
			renderHeading(cmd, i, r.Metadata.Title, scores)
			renderMetadata(cmd, r.Metadata)
			cmd.Println()
		}
	}
}

func renderHeading(cmd *cobra.Command, i int, title, scores string) {
	if title == "" || title == domain.FieldAbsent {
		title = "(untitled)"
	}
	cmd.Printf("  [%d] %s %s\n", i+1, titleStyle.Render(title), scores)
}

func renderMetadata(cmd *cobra.Command, md domain.DocumentMetadata) {
	if md.Creator != "" && md.Creator != domain.FieldAbsent {
		cmd.Printf("      %s\n", metaStyle.Render("By "+md.Creator))
	}
	if md.PubDate != "" && md.PubDate != domain.FieldAbsent {
		cmd.Printf("      %s\n", metaStyle.Render(md.PubDate))
	}
	if md.Categories != "" {
		cmd.Printf("      %s\n", metaStyle.Render(md.Categories))
	}
}

// renderStatus prints collection indexing-progress counters.
func renderStatus(cmd *cobra.Command, status *domain.CollectionStatus) {
	cmd.Println("Collection status:")
	cmd.Printf("  Total:    %d\n", status.Total)
	cmd.Printf("  Indexed:  %d\n", status.Indexed)
	cmd.Printf("  Parsing:  %d\n", status.Parsing)
	cmd.Printf("  Indexing: %d\n", status.Indexing)
	cmd.Printf("  Failed:   %d\n", status.Failed)
}

// clip bounds a single-line preview to width runes.
func clip(s string, width int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if width < 10 {
		width = 10
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-1]) + "…"
}
