package service

import (
	"context"
	"time"

	"github.com/owenmerry/skyscanner-flight-search-sub002/models"
)

// SearchClient runs one asynchronous flight search at a time and exposes
// its progress as observable state. [AsyncSearchClient] is the only
// implementation.
type SearchClient interface {
	Submit(ctx context.Context, query models.SearchQuery)
	State() models.SearchState
	Subscribe(fn func(models.SearchState)) (unsubscribe func())
	Wait(ctx context.Context) (models.SearchState, error)
	Close()
}

// ResultSink receives every completed search. Errors are logged by the
// caller and never change the search state.
type ResultSink interface {
	SaveCompleted(ctx context.Context, record models.SearchRecord) error
}

// SessionService hands out one SearchClient per viewer.
type SessionService interface {
	// Client returns the viewer's client, creating it on first use.
	Client(viewerID string) SearchClient
	// Lookup returns the viewer's client without creating one.
	Lookup(viewerID string) (SearchClient, bool)
	// Prune closes clients unused for longer than maxIdle and returns how
	// many were removed.
	Prune(maxIdle time.Duration) int
	// CloseAll closes every client.
	CloseAll()
}

// TripService exposes the dashboard of configured trips.
type TripService interface {
	Snapshot() []models.TripState
	Trip(id string) (models.TripState, error)
}

// HistoryService persists and lists completed searches.
type HistoryService interface {
	ResultSink
	Recent(ctx context.Context, limit int) ([]models.SearchRecord, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
