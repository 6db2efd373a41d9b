package domain

import "fmt"

// SearchMode selects the retrieval granularity.
type SearchMode string

const (
	// SearchModeDocuments retrieves whole documents.
	SearchModeDocuments SearchMode = "documents"

	// SearchModeSnippets retrieves sub-document spans.
	SearchModeSnippets SearchMode = "snippets"

	// SearchModePages retrieves individual pages.
	SearchModePages SearchMode = "pages"

	// SearchModeAdvanced runs broad retrieval followed by reranking.
	SearchModeAdvanced SearchMode = "advanced"
)

// ParseSearchMode validates a mode string.
func ParseSearchMode(s string) (SearchMode, error) {
	switch SearchMode(s) {
	case SearchModeDocuments, SearchModeSnippets, SearchModePages, SearchModeAdvanced:
		return SearchMode(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownSearchMode, s)
	}
}

// Filter is a structured metadata predicate. Multiple clauses are ANDed
// by the index service. The absence of any filter is represented as a nil
// *Filter, never an empty one: the index service distinguishes "empty
// filter present" from "unfiltered".
type Filter struct {
	Clauses []FilterClause
}

// FilterClause is a single equality constraint on a metadata field.
type FilterClause struct {
	Field string
	Value string
}

// NewFilter builds a filter from the provided clauses, or nil when there
// are none.
func NewFilter(clauses ...FilterClause) *Filter {
	if len(clauses) == 0 {
		return nil
	}
	return &Filter{Clauses: clauses}
}

// DocumentResult is a whole-document retrieval hit. Score is in the index
// service's native range, which is not normalised to [0,1].
type DocumentResult struct {
	Path     string           `json:"path"`
	Score    float64          `json:"score"`
	FileURL  string           `json:"file_url,omitempty"`
	Metadata DocumentMetadata `json:"metadata"`
}

// SnippetResult is a sub-document span retrieval hit.
type SnippetResult struct {
	Path       string           `json:"path"`
	Score      float64          `json:"score"`
	StartIndex int              `json:"start_index"`
	EndIndex   int              `json:"end_index"`
	PageSpan   []int            `json:"page_span"`
	Content    string           `json:"content"`
	Metadata   DocumentMetadata `json:"metadata"`
}

// PageResult is a single-page retrieval hit.
type PageResult struct {
	Path      string           `json:"path"`
	Score     float64          `json:"score"`
	PageIndex int              `json:"page_index"`
	Content   string           `json:"content"`
	Metadata  DocumentMetadata `json:"metadata"`
}

// RerankedResult is a DocumentResult that went through the second-stage
// reranker. Both scores are preserved untouched so callers can audit the
// reordering.
type RerankedResult struct {
	DocumentResult

	// OriginalScore is the broad-retrieval stage score.
	OriginalScore float64 `json:"original_score"`

	// RerankScore is the cross-encoder stage score. Output ordering
	// follows this score descending.
	RerankScore float64 `json:"rerank_score"`
}

// RerankHit is one entry of a reranker response. Index refers to the
// position in the submitted text list, not to any sorted order.
type RerankHit struct {
	Index          int     `json:"index"`
	RelevanceScore float64 `json:"relevance_score"`
}

// SearchResults carries the outcome of a routed query. Exactly one slice
// is populated, matching Mode.
type SearchResults struct {
	Mode      SearchMode       `json:"mode"`
	Documents []DocumentResult `json:"documents,omitempty"`
	Snippets  []SnippetResult  `json:"snippets,omitempty"`
	Pages     []PageResult     `json:"pages,omitempty"`
	Reranked  []RerankedResult `json:"reranked,omitempty"`
}

// Len returns the number of results regardless of granularity.
func (r SearchResults) Len() int {
	switch r.Mode {
	case SearchModeDocuments:
		return len(r.Documents)
	case SearchModeSnippets:
		return len(r.Snippets)
	case SearchModePages:
		return len(r.Pages)
	case SearchModeAdvanced:
		return len(r.Reranked)
	}
	return 0
}

// CollectionStatus reports indexing-progress counters for a collection.
// Advisory telemetry: counters may lag behind in-flight writes.
type CollectionStatus struct {
	Total    int `json:"num_documents"`
	Indexed  int `json:"num_indexed_documents"`
	Parsing  int `json:"num_parsing_documents"`
	Indexing int `json:"num_indexing_documents"`
	Failed   int `json:"num_failed_documents"`
}

// IndexedDocument is the orchestrator's view of a stored document: the key,
// a metadata snapshot, and optionally the stored text.
type IndexedDocument struct {
	Path     string           `json:"path"`
	Metadata DocumentMetadata `json:"metadata"`
	Content  string           `json:"content,omitempty"`
	Status   string           `json:"index_status,omitempty"`
}
