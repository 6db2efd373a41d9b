package cli

import (
	"context"
	"errors"
	"time"

	"github.com/presscan-labs/presscan-cli/internal/core/domain"
	"github.com/presscan-labs/presscan-cli/internal/core/ports/driving"
)

type mockIngestor struct {
	report *driving.ScrapeReport
	err    error
}

func (m *mockIngestor) ScrapeAndIndex(context.Context) (*driving.ScrapeReport, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.report, nil
}

type mockSearchService struct {
	results     *domain.SearchResults
	status      *domain.CollectionStatus
	lastRequest driving.SearchRequest
	err         error
}

func (m *mockSearchService) Search(_ context.Context, req driving.SearchRequest) (*domain.SearchResults, error) {
	m.lastRequest = req
	if m.err != nil {
		return nil, m.err
	}
	return m.results, nil
}

func (m *mockSearchService) Status(context.Context) (*domain.CollectionStatus, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.status, nil
}

type mockManager struct {
	collections []string
	status      *domain.CollectionStatus
	runs        []domain.ScrapeRun
	deleted     []string
	err         error
}

func (m *mockManager) ListCollections(context.Context) ([]string, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.collections, nil
}

func (m *mockManager) DeleteCollection(_ context.Context, name string) error {
	if m.err != nil {
		return m.err
	}
	m.deleted = append(m.deleted, name)
	return nil
}

func (m *mockManager) Status(context.Context, string) (*domain.CollectionStatus, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.status, nil
}

func (m *mockManager) ListRuns(context.Context, int) ([]domain.ScrapeRun, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.runs, nil
}

var errMock = errors.New("mock failure")

// setupTestServices installs mock services and returns a cleanup func
// restoring the previous wiring.
func setupTestServices() func() {
	oldIngest := ingestService
	oldSearch := searchService
	oldManage := manageService

	SetServices(Services{
		Ingestor: &mockIngestor{
			report: &driving.ScrapeReport{
				RunID:        "run-1",
				FeedsFetched: 2,
				Extracted:    12,
				Indexed:      10,
				ArchivePath:  "/tmp/articles.json",
			},
		},
		Search: &mockSearchService{
			results: &domain.SearchResults{
				Mode: domain.SearchModeDocuments,
				Documents: []domain.DocumentResult{
					{
						Path:  "article_0_ff",
						Score: 3.21,
						Metadata: domain.DocumentMetadata{
							Title:   "Star returns to TV",
							Creator: "Jane Doe",
							PubDate: "Mon, 01 Aug 2026 10:00:00 GMT",
						},
					},
				},
			},
			status: &domain.CollectionStatus{Total: 12, Indexed: 10, Indexing: 2},
		},
		Manager: &mockManager{
			collections: []string{"articles", "archive-2025"},
			status:      &domain.CollectionStatus{Total: 12, Indexed: 12},
			runs: []domain.ScrapeRun{
				{
					ID:         "run-1",
					Collection: "articles",
					StartedAt:  time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
					FinishedAt: time.Date(2026, 8, 1, 12, 1, 0, 0, time.UTC),
					Extracted:  12,
					Indexed:    10,
					Failed:     2,
				},
			},
		},
	})

	return func() {
		ingestService = oldIngest
		searchService = oldSearch
		manageService = oldManage
	}
}
