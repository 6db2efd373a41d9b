package zeroentropy

import "context"

type collectionRequest struct {
	CollectionName string `json:"collection_name"`
}

type collectionListResponse struct {
	CollectionNames []string `json:"collection_names"`
}

// CreateCollection creates a named collection.
// Returns domain.ErrAlreadyExists (wrapped) when it is already present.
func (c *Client) CreateCollection(ctx context.Context, name string) error {
	return c.post(ctx, "/collections/add-collection", collectionRequest{CollectionName: name}, nil)
}

// DeleteCollection removes a collection and all its documents.
func (c *Client) DeleteCollection(ctx context.Context, name string) error {
	return c.post(ctx, "/collections/delete-collection", collectionRequest{CollectionName: name}, nil)
}

// ListCollections returns all collection names.
func (c *Client) ListCollections(ctx context.Context) ([]string, error) {
	var resp collectionListResponse
	if err := c.post(ctx, "/collections/get-collection-list", struct{}{}, &resp); err != nil {
		return nil, err
	}
	return resp.CollectionNames, nil
}
