package services

import (
	"context"
	"sync"

	"github.com/presscan-labs/presscan-cli/internal/core/domain"
	"github.com/presscan-labs/presscan-cli/internal/core/ports/driven"
)

// --- Mock implementations ---

// mockIndexService implements driven.IndexService for testing.
type mockIndexService struct {
	mu sync.Mutex

	// Stored state.
	collections map[string]bool
	documents   map[string]domain.IndexedDocument

	// Canned results.
	topDocs     []domain.DocumentResult
	topSnippets []domain.SnippetResult
	topPages    []domain.PageResult
	rerankHits  []domain.RerankHit
	status      *domain.CollectionStatus

	// Injected errors.
	addErr    map[string]error // keyed by path
	createErr error
	queryErr  error
	rerankErr error
	getErr    error

	// Call recording.
	rerankCalls  int
	rerankTexts  []string
	rerankTopN   int
	topDocsCalls int
	lastFilter   *domain.Filter
	lastReranker string
	lastK        int
}

var _ driven.IndexService = (*mockIndexService)(nil)

func newMockIndexService() *mockIndexService {
	return &mockIndexService{
		collections: make(map[string]bool),
		documents:   make(map[string]domain.IndexedDocument),
		addErr:      make(map[string]error),
	}
}

func (m *mockIndexService) CreateCollection(_ context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	if m.collections[name] {
		return domain.ErrAlreadyExists
	}
	m.collections[name] = true
	return nil
}

func (m *mockIndexService) DeleteCollection(_ context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.collections[name] {
		return domain.ErrNotFound
	}
	delete(m.collections, name)
	return nil
}

func (m *mockIndexService) ListCollections(_ context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	names := make([]string, 0, len(m.collections))
	for name := range m.collections {
		names = append(names, name)
	}
	return names, nil
}

func (m *mockIndexService) AddDocument(
	_ context.Context, _, path, text string, metadata domain.DocumentMetadata,
) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.addErr[path]; err != nil {
		return err
	}
	if _, exists := m.documents[path]; exists {
		return domain.ErrAlreadyExists
	}
	m.documents[path] = domain.IndexedDocument{Path: path, Content: text, Metadata: metadata}
	return nil
}

func (m *mockIndexService) GetDocument(
	_ context.Context, _, path string, includeContent bool,
) (*domain.IndexedDocument, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	doc, ok := m.documents[path]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if !includeContent {
		doc.Content = ""
	}
	return &doc, nil
}

func (m *mockIndexService) UpdateDocumentMetadata(
	_ context.Context, _, path string, metadata domain.DocumentMetadata,
) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	doc, ok := m.documents[path]
	if !ok {
		return domain.ErrNotFound
	}
	doc.Metadata = metadata
	m.documents[path] = doc
	return nil
}

func (m *mockIndexService) DeleteDocument(_ context.Context, _, path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.documents, path)
	return nil
}

func (m *mockIndexService) ListDocuments(_ context.Context, _ string, limit int) ([]domain.IndexedDocument, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	docs := make([]domain.IndexedDocument, 0, len(m.documents))
	for _, doc := range m.documents {
		if len(docs) >= limit {
			break
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func (m *mockIndexService) TopDocuments(
	_ context.Context, _, _ string, k int, filter *domain.Filter, reranker string,
) ([]domain.DocumentResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.topDocsCalls++
	m.lastK = k
	m.lastFilter = filter
	m.lastReranker = reranker
	if m.queryErr != nil {
		return nil, m.queryErr
	}
	if k > len(m.topDocs) {
		return m.topDocs, nil
	}
	return m.topDocs[:k], nil
}

func (m *mockIndexService) TopSnippets(
	_ context.Context, _, _ string, k int, filter *domain.Filter, reranker string,
) ([]domain.SnippetResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastK = k
	m.lastFilter = filter
	m.lastReranker = reranker
	if m.queryErr != nil {
		return nil, m.queryErr
	}
	return m.topSnippets, nil
}

func (m *mockIndexService) TopPages(
	_ context.Context, _, _ string, k int, filter *domain.Filter,
) ([]domain.PageResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastK = k
	m.lastFilter = filter
	if m.queryErr != nil {
		return nil, m.queryErr
	}
	return m.topPages, nil
}

func (m *mockIndexService) Rerank(
	_ context.Context, _ string, texts []string, _ string, topN int,
) ([]domain.RerankHit, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rerankCalls++
	m.rerankTexts = texts
	m.rerankTopN = topN
	if m.rerankErr != nil {
		return nil, m.rerankErr
	}
	if topN > len(m.rerankHits) {
		return m.rerankHits, nil
	}
	return m.rerankHits[:topN], nil
}

func (m *mockIndexService) Status(_ context.Context, _ string) (*domain.CollectionStatus, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.status == nil {
		return &domain.CollectionStatus{}, nil
	}
	return m.status, nil
}

// mockFeedFetcher implements driven.FeedFetcher for testing.
type mockFeedFetcher struct {
	articles map[string][]domain.Article
	errs     map[string]error
}

var _ driven.FeedFetcher = (*mockFeedFetcher)(nil)

func (m *mockFeedFetcher) Fetch(_ context.Context, url string) ([]domain.Article, error) {
	if err := m.errs[url]; err != nil {
		return nil, err
	}
	return m.articles[url], nil
}

// mockArchiver implements driven.BatchArchiver for testing.
type mockArchiver struct {
	path     string
	err      error
	archived []domain.Article
}

var _ driven.BatchArchiver = (*mockArchiver)(nil)

func (m *mockArchiver) Archive(_ context.Context, articles []domain.Article) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.archived = articles
	return m.path, nil
}
