package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/presscan-labs/presscan-cli/internal/core/domain"
	"github.com/presscan-labs/presscan-cli/internal/core/ports/driven"
	"github.com/presscan-labs/presscan-cli/internal/core/ports/driving"
	"github.com/presscan-labs/presscan-cli/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// DefaultReranker is the reranking model used when none is requested.
const DefaultReranker = "zerank-1-small"

// SearchService routes queries to the index service and runs the
// retrieve-and-rerank pipeline for advanced searches.
type SearchService struct {
	index      driven.IndexService
	collection string

	// RetrieveMultiplier scales k for the broad stage that feeds the
	// reranker. Default 2; tunable, not a hard constant.
	RetrieveMultiplier int

	// HydrationWorkers bounds concurrent content fetches during the
	// merge. Hydration order never affects output order, which comes
	// from the reranker's index mapping.
	HydrationWorkers int

	// Reranker is the model used when a request names none.
	Reranker string
}

// NewSearchService creates a new search service for a collection.
func NewSearchService(index driven.IndexService, collection string) *SearchService {
	return &SearchService{
		index:              index,
		collection:         collection,
		RetrieveMultiplier: 2,
		HydrationWorkers:   4,
		Reranker:           DefaultReranker,
	}
}

// BuildFilter converts the optional equality constraints into the
// structured predicate the index service expects. With no constraints it
// returns nil: the service treats an empty-but-present filter differently
// from no filter at all.
func BuildFilter(creator, category string) *domain.Filter {
	var clauses []domain.FilterClause
	if creator != "" {
		clauses = append(clauses, domain.FilterClause{Field: "creator", Value: creator})
	}
	if category != "" {
		clauses = append(clauses, domain.FilterClause{Field: "categories", Value: category})
	}
	return domain.NewFilter(clauses...)
}

// Search routes a query to the retrieval call matching req.Mode.
// An unknown mode is an error, never a silent no-op.
func (s *SearchService) Search(ctx context.Context, req driving.SearchRequest) (*domain.SearchResults, error) {
	if s.index == nil {
		return nil, domain.ErrIndexUnavailable
	}

	logger.Section("Search Execution")
	logger.Debug("Query: %q, mode: %s", req.Query, req.Mode)

	query := strings.TrimSpace(req.Query)
	if query == "" {
		logger.Debug("Empty query, returning no results")
		return &domain.SearchResults{Mode: req.Mode}, nil
	}

	k := req.K
	if k <= 0 {
		k = 10
	}
	reranker := req.Reranker
	if reranker == "" {
		reranker = s.Reranker
	}
	if reranker == "" {
		reranker = DefaultReranker
	}

	filter := BuildFilter(req.Creator, req.Category)
	if filter != nil {
		logger.Debug("Filter: %d clause(s)", len(filter.Clauses))
	}

	switch req.Mode {
	case domain.SearchModeDocuments:
		docs, err := s.index.TopDocuments(ctx, s.collection, query, k, filter, reranker)
		if err != nil {
			return nil, fmt.Errorf("top documents: %w", err)
		}
		return &domain.SearchResults{Mode: req.Mode, Documents: docs}, nil

	case domain.SearchModeSnippets:
		snippets, err := s.index.TopSnippets(ctx, s.collection, query, k, filter, reranker)
		if err != nil {
			return nil, fmt.Errorf("top snippets: %w", err)
		}
		return &domain.SearchResults{Mode: req.Mode, Snippets: snippets}, nil

	case domain.SearchModePages:
		pages, err := s.index.TopPages(ctx, s.collection, query, k, filter)
		if err != nil {
			return nil, fmt.Errorf("top pages: %w", err)
		}
		return &domain.SearchResults{Mode: req.Mode, Pages: pages}, nil

	case domain.SearchModeAdvanced:
		reranked, err := s.SearchAndRerank(ctx, query, k*s.RetrieveMultiplier, k, reranker)
		if err != nil {
			return nil, err
		}
		return &domain.SearchResults{Mode: req.Mode, Reranked: reranked}, nil

	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownSearchMode, req.Mode)
	}
}

// Status returns the collection's indexing-progress counters.
func (s *SearchService) Status(ctx context.Context) (*domain.CollectionStatus, error) {
	if s.index == nil {
		return nil, domain.ErrIndexUnavailable
	}
	return s.index.Status(ctx, s.collection)
}

// SearchAndRerank runs the two-stage pipeline: broad retrieval of k
// candidates, content hydration, cross-encoder reranking of the top n,
// and a score-preserving merge. Output order is the reranker's order.
//
// A retrieval or rerank failure is fatal to the call; a hydration failure
// for an individual candidate falls back to metadata text so every
// retrieved candidate reaches the reranking stage.
func (s *SearchService) SearchAndRerank(
	ctx context.Context, query string, k, topN int, model string,
) ([]domain.RerankedResult, error) {
	candidates, err := s.index.TopDocuments(ctx, s.collection, query, k, nil, "")
	if err != nil {
		return nil, fmt.Errorf("broad retrieval: %w", err)
	}

	logger.Debug("Broad stage: %d candidate(s)", len(candidates))
	if len(candidates) == 0 {
		// Never invoke the reranker on zero input.
		return []domain.RerankedResult{}, nil
	}

	texts := s.hydrate(ctx, candidates)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	n := topN
	if n > len(texts) {
		n = len(texts)
	}

	hits, err := s.index.Rerank(ctx, query, texts, model, n)
	if err != nil {
		return nil, fmt.Errorf("rerank: %w", err)
	}

	results := make([]domain.RerankedResult, 0, len(hits))
	for _, hit := range hits {
		if hit.Index < 0 || hit.Index >= len(candidates) {
			logger.Warn("Reranker returned out-of-range index %d", hit.Index)
			continue
		}
		candidate := candidates[hit.Index]
		results = append(results, domain.RerankedResult{
			DocumentResult: candidate,
			OriginalScore:  candidate.Score,
			RerankScore:    hit.RelevanceScore,
		})
	}

	logger.Debug("Reranked: %d result(s)", len(results))
	return results, nil
}

// hydrate fetches full content for each candidate with a bounded worker
// pool. Unavailable content falls back to metadata text rather than
// dropping the candidate; texts[i] always corresponds to candidates[i].
func (s *SearchService) hydrate(ctx context.Context, candidates []domain.DocumentResult) []string {
	texts := make([]string, len(candidates))

	workers := s.HydrationWorkers
	if workers < 1 {
		workers = 1
	}
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup

	for i := range candidates {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()

			candidate := candidates[i]
			doc, err := s.index.GetDocument(ctx, s.collection, candidate.Path, true)
			if err != nil || doc == nil || doc.Content == "" {
				if err != nil {
					logger.Warn("Hydration failed for %s: %v", candidate.Path, err)
				}
				texts[i] = fallbackText(candidate.Metadata)
				return
			}
			texts[i] = doc.Content
		}(i)
	}

	wg.Wait()
	return texts
}

// fallbackText synthesises rerank input from the metadata snapshot when a
// candidate's stored content cannot be fetched.
func fallbackText(md domain.DocumentMetadata) string {
	parts := make([]string, 0, 2)
	if md.Title != "" && md.Title != domain.FieldAbsent {
		parts = append(parts, md.Title)
	}
	if md.Categories != "" {
		parts = append(parts, md.Categories)
	}
	return strings.Join(parts, " ")
}
