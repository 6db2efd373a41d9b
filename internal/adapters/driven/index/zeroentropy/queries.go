package zeroentropy

import (
	"context"

	"github.com/presscan-labs/presscan-cli/internal/core/domain"
)

// lowLatency selects the API's low-latency retrieval path; result
// quality is unchanged for collection sizes this tool produces.
const lowLatency = "low"

type topDocumentsRequest struct {
	CollectionName  string                       `json:"collection_name"`
	Query           string                       `json:"query"`
	K               int                          `json:"k"`
	Filter          map[string]map[string]string `json:"filter,omitempty"`
	IncludeMetadata bool                         `json:"include_metadata"`
	Reranker        string                       `json:"reranker,omitempty"`
	LatencyMode     string                       `json:"latency_mode,omitempty"`
}

type topDocumentsResponse struct {
	Results []documentResult `json:"results"`
}

// documentResult mirrors the wire format. Optional fields are resolved
// to typed defaults here, at the boundary, not in display code.
type documentResult struct {
	Path     string                  `json:"path"`
	Score    float64                 `json:"score"`
	FileURL  string                  `json:"file_url"`
	Metadata domain.DocumentMetadata `json:"metadata"`
}

type topSnippetsRequest struct {
	CollectionName          string                       `json:"collection_name"`
	Query                   string                       `json:"query"`
	K                       int                          `json:"k"`
	Filter                  map[string]map[string]string `json:"filter,omitempty"`
	PreciseResponses        bool                         `json:"precise_responses"`
	IncludeDocumentMetadata bool                         `json:"include_document_metadata"`
	Reranker                string                       `json:"reranker,omitempty"`
}

type topSnippetsResponse struct {
	Results []snippetResult `json:"results"`
}

type snippetResult struct {
	Path       string                  `json:"path"`
	Score      float64                 `json:"score"`
	StartIndex int                     `json:"start_index"`
	EndIndex   int                     `json:"end_index"`
	PageSpan   []int                   `json:"page_span"`
	Content    string                  `json:"content"`
	Metadata   domain.DocumentMetadata `json:"metadata"`
}

type topPagesRequest struct {
	CollectionName string                       `json:"collection_name"`
	Query          string                       `json:"query"`
	K              int                          `json:"k"`
	Filter         map[string]map[string]string `json:"filter,omitempty"`
	IncludeContent bool                         `json:"include_content"`
	LatencyMode    string                       `json:"latency_mode,omitempty"`
}

type topPagesResponse struct {
	Results []pageResult `json:"results"`
}

type pageResult struct {
	Path      string                  `json:"path"`
	Score     float64                 `json:"score"`
	PageIndex int                     `json:"page_index"`
	Content   string                  `json:"content"`
	Metadata  domain.DocumentMetadata `json:"metadata"`
}

// TopDocuments runs whole-document retrieval.
func (c *Client) TopDocuments(
	ctx context.Context, collection, query string, k int, filter *domain.Filter, reranker string,
) ([]domain.DocumentResult, error) {
	req := topDocumentsRequest{
		CollectionName:  collection,
		Query:           query,
		K:               k,
		Filter:          encodeFilter(filter),
		IncludeMetadata: true,
		Reranker:        reranker,
		LatencyMode:     lowLatency,
	}
	var resp topDocumentsResponse
	if err := c.post(ctx, "/queries/top-documents", req, &resp); err != nil {
		return nil, err
	}

	results := make([]domain.DocumentResult, len(resp.Results))
	for i, r := range resp.Results {
		results[i] = domain.DocumentResult{
			Path:     r.Path,
			Score:    r.Score,
			FileURL:  r.FileURL,
			Metadata: r.Metadata,
		}
	}
	return results, nil
}

// TopSnippets runs sub-document span retrieval.
func (c *Client) TopSnippets(
	ctx context.Context, collection, query string, k int, filter *domain.Filter, reranker string,
) ([]domain.SnippetResult, error) {
	req := topSnippetsRequest{
		CollectionName:          collection,
		Query:                   query,
		K:                       k,
		Filter:                  encodeFilter(filter),
		PreciseResponses:        true,
		IncludeDocumentMetadata: true,
		Reranker:                reranker,
	}
	var resp topSnippetsResponse
	if err := c.post(ctx, "/queries/top-snippets", req, &resp); err != nil {
		return nil, err
	}

	results := make([]domain.SnippetResult, len(resp.Results))
	for i, r := range resp.Results {
		results[i] = domain.SnippetResult{
			Path:       r.Path,
			Score:      r.Score,
			StartIndex: r.StartIndex,
			EndIndex:   r.EndIndex,
			PageSpan:   r.PageSpan,
			Content:    r.Content,
			Metadata:   r.Metadata,
		}
	}
	return results, nil
}

// TopPages runs page-level retrieval. The API takes no reranker here.
func (c *Client) TopPages(
	ctx context.Context, collection, query string, k int, filter *domain.Filter,
) ([]domain.PageResult, error) {
	req := topPagesRequest{
		CollectionName: collection,
		Query:          query,
		K:              k,
		Filter:         encodeFilter(filter),
		IncludeContent: true,
		LatencyMode:    lowLatency,
	}
	var resp topPagesResponse
	if err := c.post(ctx, "/queries/top-pages", req, &resp); err != nil {
		return nil, err
	}

	results := make([]domain.PageResult, len(resp.Results))
	for i, r := range resp.Results {
		results[i] = domain.PageResult{
			Path:      r.Path,
			Score:     r.Score,
			PageIndex: r.PageIndex,
			Content:   r.Content,
			Metadata:  r.Metadata,
		}
	}
	return results, nil
}
