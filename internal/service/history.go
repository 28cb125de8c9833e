package service

import (
	"context"
	"errors"

	"github.com/owenmerry/skyscanner-flight-search-sub002/internal/logger"
	"github.com/owenmerry/skyscanner-flight-search-sub002/internal/store"
	"github.com/owenmerry/skyscanner-flight-search-sub002/models"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

type historyService struct {
	repo   store.SearchResultRepository
	logger *logger.Logger
}

// NewHistoryService returns the search history over repo. It is also the
// [ResultSink] of every search client.
func NewHistoryService(repo store.SearchResultRepository, logger *logger.Logger) HistoryService {
	return &historyService{repo: repo, logger: logger}
}

// SaveCompleted stores record. A record already stored for the same session
// is not an error.
func (s *historyService) SaveCompleted(ctx context.Context, record models.SearchRecord) error {
	err := s.repo.SaveCompleted(ctx, record)
	if errors.Is(err, store.ErrResultAlreadySaved) {
		logger.FromContext(ctx).Debug().Str("session", record.SessionToken).Msg("search result already in history")
		return nil
	}
	return err
}

// Recent returns the newest completed searches. limit falls back to 20 when
// not positive and is capped at 100.
func (s *historyService) Recent(ctx context.Context, limit int) ([]models.SearchRecord, error) {
	switch {
	case limit <= 0:
		limit = defaultHistoryLimit
	case limit > maxHistoryLimit:
		limit = maxHistoryLimit
	}

	return s.repo.ListRecent(ctx, limit)
}
