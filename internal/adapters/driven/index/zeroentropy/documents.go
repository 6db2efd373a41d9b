package zeroentropy

import (
	"context"

	"github.com/presscan-labs/presscan-cli/internal/core/domain"
)

// documentContent is the typed content envelope for text documents.
type documentContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type addDocumentRequest struct {
	CollectionName string                  `json:"collection_name"`
	Path           string                  `json:"path"`
	Content        documentContent         `json:"content"`
	Metadata       domain.DocumentMetadata `json:"metadata"`
}

type documentInfoRequest struct {
	CollectionName string `json:"collection_name"`
	Path           string `json:"path"`
	IncludeContent bool   `json:"include_content,omitempty"`
}

type documentInfo struct {
	Path        string                  `json:"path"`
	Metadata    domain.DocumentMetadata `json:"metadata"`
	Content     string                  `json:"content"`
	IndexStatus string                  `json:"index_status"`
}

type documentInfoResponse struct {
	Document documentInfo `json:"document"`
}

type updateDocumentRequest struct {
	CollectionName string                  `json:"collection_name"`
	Path           string                  `json:"path"`
	Metadata       domain.DocumentMetadata `json:"metadata"`
}

type documentListRequest struct {
	CollectionName string `json:"collection_name"`
	Limit          int    `json:"limit,omitempty"`
}

type documentListResponse struct {
	Documents []documentInfo `json:"documents"`
}

// AddDocument stores a text document under the given key.
// A duplicate key returns domain.ErrAlreadyExists (wrapped); the stored
// document is left untouched.
func (c *Client) AddDocument(
	ctx context.Context, collection, path, text string, metadata domain.DocumentMetadata,
) error {
	req := addDocumentRequest{
		CollectionName: collection,
		Path:           path,
		Content:        documentContent{Type: "text", Text: text},
		Metadata:       metadata,
	}
	return c.post(ctx, "/documents/add-document", req, nil)
}

// GetDocument retrieves a document by key.
func (c *Client) GetDocument(
	ctx context.Context, collection, path string, includeContent bool,
) (*domain.IndexedDocument, error) {
	req := documentInfoRequest{
		CollectionName: collection,
		Path:           path,
		IncludeContent: includeContent,
	}
	var resp documentInfoResponse
	if err := c.post(ctx, "/documents/get-document-info", req, &resp); err != nil {
		return nil, err
	}
	doc := toIndexedDocument(resp.Document)
	return &doc, nil
}

// UpdateDocumentMetadata replaces a document's metadata record.
func (c *Client) UpdateDocumentMetadata(
	ctx context.Context, collection, path string, metadata domain.DocumentMetadata,
) error {
	req := updateDocumentRequest{
		CollectionName: collection,
		Path:           path,
		Metadata:       metadata,
	}
	return c.post(ctx, "/documents/update-document", req, nil)
}

// DeleteDocument removes a document by key.
func (c *Client) DeleteDocument(ctx context.Context, collection, path string) error {
	req := documentInfoRequest{CollectionName: collection, Path: path}
	return c.post(ctx, "/documents/delete-document", req, nil)
}

// ListDocuments returns up to limit document records.
func (c *Client) ListDocuments(
	ctx context.Context, collection string, limit int,
) ([]domain.IndexedDocument, error) {
	req := documentListRequest{CollectionName: collection, Limit: limit}
	var resp documentListResponse
	if err := c.post(ctx, "/documents/get-document-info-list", req, &resp); err != nil {
		return nil, err
	}

	docs := make([]domain.IndexedDocument, len(resp.Documents))
	for i, doc := range resp.Documents {
		docs[i] = toIndexedDocument(doc)
	}
	return docs, nil
}

func toIndexedDocument(doc documentInfo) domain.IndexedDocument {
	return domain.IndexedDocument{
		Path:     doc.Path,
		Metadata: doc.Metadata,
		Content:  doc.Content,
		Status:   doc.IndexStatus,
	}
}
