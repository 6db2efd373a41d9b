package driven

import (
	"context"

	"github.com/presscan-labs/presscan-cli/internal/core/domain"
)

// IndexService is the remote semantic index consumed by the orchestrator.
// Its storage, ranking model and reranking model are opaque; this port is
// the full surface the application depends on.
//
// Write calls are atomic per document. AddDocument and CreateCollection
// return domain.ErrAlreadyExists on key conflict, which callers treat as
// success-equivalent.
type IndexService interface {
	// CreateCollection creates a named collection.
	CreateCollection(ctx context.Context, name string) error

	// DeleteCollection removes a collection and its documents.
	DeleteCollection(ctx context.Context, name string) error

	// ListCollections returns all collection names.
	ListCollections(ctx context.Context) ([]string, error)

	// AddDocument stores a document under the given key.
	AddDocument(ctx context.Context, collection, path, text string, metadata domain.DocumentMetadata) error

	// GetDocument retrieves a document by key. Content is included only
	// when includeContent is set.
	GetDocument(ctx context.Context, collection, path string, includeContent bool) (*domain.IndexedDocument, error)

	// UpdateDocumentMetadata replaces a document's metadata record.
	UpdateDocumentMetadata(ctx context.Context, collection, path string, metadata domain.DocumentMetadata) error

	// DeleteDocument removes a document by key.
	DeleteDocument(ctx context.Context, collection, path string) error

	// ListDocuments returns up to limit document records.
	ListDocuments(ctx context.Context, collection string, limit int) ([]domain.IndexedDocument, error)

	// TopDocuments runs whole-document retrieval. A nil filter means
	// unfiltered; reranker may be empty to use the service default.
	TopDocuments(ctx context.Context, collection, query string, k int, filter *domain.Filter, reranker string) ([]domain.DocumentResult, error)

	// TopSnippets runs sub-document span retrieval.
	TopSnippets(ctx context.Context, collection, query string, k int, filter *domain.Filter, reranker string) ([]domain.SnippetResult, error)

	// TopPages runs page-level retrieval. The service API takes no
	// reranker for pages.
	TopPages(ctx context.Context, collection, query string, k int, filter *domain.Filter) ([]domain.PageResult, error)

	// Rerank scores texts against the query with a cross-encoder model
	// and returns up to topN hits. Hit indices reference positions in
	// the submitted texts slice.
	Rerank(ctx context.Context, query string, texts []string, model string, topN int) ([]domain.RerankHit, error)

	// Status returns indexing-progress counters for a collection.
	Status(ctx context.Context, collection string) (*domain.CollectionStatus, error)
}
