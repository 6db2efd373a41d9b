package zeroentropy

import (
	"context"

	"github.com/presscan-labs/presscan-cli/internal/core/domain"
)

type statusRequest struct {
	CollectionName string `json:"collection_name"`
}

type statusResponse struct {
	NumDocuments         int `json:"num_documents"`
	NumIndexedDocuments  int `json:"num_indexed_documents"`
	NumParsingDocuments  int `json:"num_parsing_documents"`
	NumIndexingDocuments int `json:"num_indexing_documents"`
	NumFailedDocuments   int `json:"num_failed_documents"`
}

// Status returns indexing-progress counters for a collection.
func (c *Client) Status(ctx context.Context, collection string) (*domain.CollectionStatus, error) {
	var resp statusResponse
	if err := c.post(ctx, "/status/get-status", statusRequest{CollectionName: collection}, &resp); err != nil {
		return nil, err
	}
	return &domain.CollectionStatus{
		Total:    resp.NumDocuments,
		Indexed:  resp.NumIndexedDocuments,
		Parsing:  resp.NumParsingDocuments,
		Indexing: resp.NumIndexingDocuments,
		Failed:   resp.NumFailedDocuments,
	}, nil
}
