package store

import (
	"context"

	"github.com/owenmerry/skyscanner-flight-search-sub002/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SearchResultRepository stores completed searches.
type SearchResultRepository interface {
	// SaveCompleted stores record. A record whose session token is already
	// stored yields [ErrResultAlreadySaved].
	SaveCompleted(ctx context.Context, record models.SearchRecord) error
	// ListRecent returns up to limit records, newest first.
	ListRecent(ctx context.Context, limit int) ([]models.SearchRecord, error)
}

// ErrorClassificator maps driver errors to what the repositories should do
// with them.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
	IsDuplicate(err error) bool
}
