package services

import (
	"context"
	"fmt"

	"github.com/presscan-labs/presscan-cli/internal/core/domain"
	"github.com/presscan-labs/presscan-cli/internal/core/ports/driven"
	"github.com/presscan-labs/presscan-cli/internal/core/ports/driving"
	"github.com/presscan-labs/presscan-cli/internal/logger"
)

// Ensure ManagementService implements the interface.
var _ driving.Manager = (*ManagementService)(nil)

// ManagementService exposes collection management and run history.
type ManagementService struct {
	index      driven.IndexService
	ledger     driven.RunLedger
	collection string
}

// NewManagementService creates a new management service.
// The ledger is optional; without it ListRuns returns nothing.
func NewManagementService(index driven.IndexService, ledger driven.RunLedger, collection string) *ManagementService {
	return &ManagementService{
		index:      index,
		ledger:     ledger,
		collection: collection,
	}
}

// ListCollections returns all collection names on the service.
func (s *ManagementService) ListCollections(ctx context.Context) ([]string, error) {
	if s.index == nil {
		return nil, domain.ErrIndexUnavailable
	}
	names, err := s.index.ListCollections(ctx)
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	return names, nil
}

// DeleteCollection removes a collection by name. The name is mandatory:
// deleting the implicit default by accident should be impossible.
func (s *ManagementService) DeleteCollection(ctx context.Context, name string) error {
	if s.index == nil {
		return domain.ErrIndexUnavailable
	}
	if name == "" {
		return fmt.Errorf("%w: collection name", domain.ErrMissingArgument)
	}
	if err := s.index.DeleteCollection(ctx, name); err != nil {
		return fmt.Errorf("delete collection %s: %w", name, err)
	}
	logger.Info("Deleted collection: %s", name)
	return nil
}

// Status returns indexing counters, defaulting to the configured
// collection when none is named.
func (s *ManagementService) Status(ctx context.Context, collection string) (*domain.CollectionStatus, error) {
	if s.index == nil {
		return nil, domain.ErrIndexUnavailable
	}
	if collection == "" {
		collection = s.collection
	}
	status, err := s.index.Status(ctx, collection)
	if err != nil {
		return nil, fmt.Errorf("collection status: %w", err)
	}
	return status, nil
}

// ListRuns returns recent scrape runs, newest first.
func (s *ManagementService) ListRuns(ctx context.Context, limit int) ([]domain.ScrapeRun, error) {
	if s.ledger == nil {
		return nil, nil
	}
	if limit <= 0 {
		limit = 20
	}
	return s.ledger.ListRuns(ctx, limit)
}
