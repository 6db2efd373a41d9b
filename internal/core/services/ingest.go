package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/presscan-labs/presscan-cli/internal/core/domain"
	"github.com/presscan-labs/presscan-cli/internal/core/ports/driven"
	"github.com/presscan-labs/presscan-cli/internal/core/ports/driving"
	"github.com/presscan-labs/presscan-cli/internal/logger"
)

// Ensure IngestionService implements the interface.
var _ driving.Ingestor = (*IngestionService)(nil)

// progressInterval is how many successful writes pass between progress
// log lines during a long batch.
const progressInterval = 10

// writeOutcome is the tagged result of a single document write.
// Duplicate is deliberately separate from failure: a conflict means the
// document is already stored and the batch should move on.
type writeOutcome int

const (
	outcomeWritten writeOutcome = iota
	outcomeDuplicate
	outcomeFailed
)

// IngestionReport holds the per-batch write counters.
type IngestionReport struct {
	// Indexed is the number of documents newly written.
	Indexed int

	// Failed is the number of hard write failures. Conflicts count in
	// neither bucket.
	Failed int
}

// IngestionService runs the scrape-and-index cycle: feed fetching,
// batch archiving and the fail-soft ingestion pipeline.
type IngestionService struct {
	index      driven.IndexService
	fetcher    driven.FeedFetcher
	archiver   driven.BatchArchiver
	ledger     driven.RunLedger
	collection string
	feeds      []string
}

// NewIngestionService creates a new ingestion service.
func NewIngestionService(
	index driven.IndexService,
	fetcher driven.FeedFetcher,
	collection string,
	feeds []string,
) *IngestionService {
	return &IngestionService{
		index:      index,
		fetcher:    fetcher,
		collection: collection,
		feeds:      feeds,
	}
}

// SetArchiver enables JSON batch backups. Optional.
func (s *IngestionService) SetArchiver(a driven.BatchArchiver) {
	s.archiver = a
}

// SetLedger enables scrape-run recording. Optional.
func (s *IngestionService) SetLedger(l driven.RunLedger) {
	s.ledger = l
}

// InitializeCollection ensures the target collection exists.
// An existing collection is not an error.
func (s *IngestionService) InitializeCollection(ctx context.Context) error {
	err := s.index.CreateCollection(ctx, s.collection)
	switch {
	case err == nil:
		logger.Info("Created new collection: %s", s.collection)
		return nil
	case errors.Is(err, domain.ErrAlreadyExists):
		logger.Debug("Collection %s already exists", s.collection)
		return nil
	default:
		return fmt.Errorf("create collection %s: %w", s.collection, err)
	}
}

// ScrapeAndIndex fetches every configured feed, archives the extracted
// batch, and ingests it. An unreachable feed is skipped and the others
// continue; only cancellation aborts the cycle.
func (s *IngestionService) ScrapeAndIndex(ctx context.Context) (*driving.ScrapeReport, error) {
	logger.Section("Scrape and Index")

	run := domain.ScrapeRun{
		ID:         uuid.New().String(),
		Collection: s.collection,
		StartedAt:  time.Now(),
	}
	s.saveRun(ctx, run)

	report := &driving.ScrapeReport{RunID: run.ID}

	var articles []domain.Article
	for _, url := range s.feeds {
		items, err := s.fetcher.Fetch(ctx, url)
		if err != nil {
			if ctx.Err() != nil {
				return report, ctx.Err()
			}
			logger.Warn("Failed to extract content from %s: %v", url, err)
			report.FeedsFailed++
			s.recordFetch(ctx, domain.FeedFetch{RunID: run.ID, URL: url, Error: err.Error()})
			continue
		}

		logger.Info("Extracted %d articles from %s", len(items), url)
		report.FeedsFetched++
		articles = append(articles, items...)
		s.recordFetch(ctx, domain.FeedFetch{RunID: run.ID, URL: url, Items: len(items)})
	}

	report.Extracted = len(articles)
	run.Extracted = len(articles)
	logger.Info("Extracted %d articles total", len(articles))

	if s.archiver != nil && len(articles) > 0 {
		path, err := s.archiver.Archive(ctx, articles)
		if err != nil {
			logger.Warn("Batch archive failed: %v", err)
		} else {
			report.ArchivePath = path
		}
	}

	if len(articles) == 0 {
		logger.Warn("No articles to index")
		run.FinishedAt = time.Now()
		s.saveRun(ctx, run)
		return report, nil
	}

	if err := s.InitializeCollection(ctx); err != nil {
		return report, err
	}

	ingestReport, err := s.Ingest(ctx, articles)
	report.Indexed = ingestReport.Indexed
	report.Failed = ingestReport.Failed

	run.Indexed = ingestReport.Indexed
	run.Failed = ingestReport.Failed
	run.FinishedAt = time.Now()
	s.saveRun(ctx, run)

	if err != nil {
		return report, err
	}
	return report, nil
}

// Ingest writes a batch of articles to the index service. The pipeline is
// fail-soft: a conflict is logged and skipped, any other write failure is
// counted and the batch continues. On cancellation the report covers only
// the items completed before it.
func (s *IngestionService) Ingest(ctx context.Context, articles []domain.Article) (IngestionReport, error) {
	var report IngestionReport

	for i, article := range articles {
		if err := ctx.Err(); err != nil {
			logger.Warn("Ingestion cancelled after %d items", i)
			return report, err
		}

		switch s.writeArticle(ctx, article, i) {
		case outcomeWritten:
			report.Indexed++
			if report.Indexed%progressInterval == 0 {
				logger.Info("Indexed %d articles...", report.Indexed)
			}
		case outcomeDuplicate:
			// Already stored; counted in neither bucket.
		case outcomeFailed:
			report.Failed++
		}
	}

	logger.Info("Indexing complete. Success: %d, Failed: %d", report.Indexed, report.Failed)
	return report, nil
}

// writeArticle attempts a single keyed write and classifies the result.
func (s *IngestionService) writeArticle(ctx context.Context, article domain.Article, ordinal int) writeOutcome {
	key := DocumentKey(ordinal, article.Title)

	err := s.index.AddDocument(ctx, s.collection, key, article.IndexText(), article.Metadata())
	switch {
	case err == nil:
		return outcomeWritten
	case errors.Is(err, domain.ErrAlreadyExists):
		logger.Warn("Article %d already exists as %s, skipping", ordinal, key)
		return outcomeDuplicate
	default:
		logger.Error("Failed to index article %d (%s): %v", ordinal, key, err)
		return outcomeFailed
	}
}

// saveRun persists ledger state, logging instead of failing: run history
// is advisory and must never break a scrape.
func (s *IngestionService) saveRun(ctx context.Context, run domain.ScrapeRun) {
	if s.ledger == nil {
		return
	}
	if err := s.ledger.SaveRun(ctx, run); err != nil {
		logger.Warn("Failed to record scrape run: %v", err)
	}
}

func (s *IngestionService) recordFetch(ctx context.Context, fetch domain.FeedFetch) {
	if s.ledger == nil {
		return
	}
	if err := s.ledger.RecordFeedFetch(ctx, fetch); err != nil {
		logger.Warn("Failed to record feed fetch: %v", err)
	}
}
