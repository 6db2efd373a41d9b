package zeroentropy

import (
	"context"

	"github.com/presscan-labs/presscan-cli/internal/core/domain"
)

type rerankRequest struct {
	Query     string   `json:"query"`
	Documents []string `json:"documents"`
	Model     string   `json:"model"`
	TopN      int      `json:"top_n"`
}

type rerankResponse struct {
	Results []domain.RerankHit `json:"results"`
}

// Rerank scores texts against the query with a cross-encoder model.
// Returned hit indices reference positions in the submitted texts slice.
func (c *Client) Rerank(
	ctx context.Context, query string, texts []string, model string, topN int,
) ([]domain.RerankHit, error) {
	req := rerankRequest{
		Query:     query,
		Documents: texts,
		Model:     model,
		TopN:      topN,
	}
	var resp rerankResponse
	if err := c.post(ctx, "/models/rerank", req, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}
