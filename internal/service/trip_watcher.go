package service

import (
	"context"
	"sync"
	"time"

	"github.com/owenmerry/skyscanner-flight-search-sub002/internal/config"
	"github.com/owenmerry/skyscanner-flight-search-sub002/internal/logger"
	"github.com/owenmerry/skyscanner-flight-search-sub002/models"
)

// TripWatcher keeps a background search running for every configured trip
// and refreshes finished ones on a ticker. Each trip owns its own
// SearchClient, so trips never affect each other.
type TripWatcher struct {
	trips    []models.Trip
	clients  map[string]SearchClient
	interval time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

var _ TripService = (*TripWatcher)(nil)

// NewTripWatcher creates a watcher with one client per trip, built by
// newClient. The watcher is idle until Start is called. If interval is zero
// or negative it defaults to config.DefaultRefreshInterval.
func NewTripWatcher(trips []models.Trip, newClient func() SearchClient, interval time.Duration, logger *logger.Logger) *TripWatcher {
	if interval <= 0 {
		interval = config.DefaultRefreshInterval
	}

	clients := make(map[string]SearchClient, len(trips))
	for _, trip := range trips {
		clients[trip.ID] = newClient()
	}

	return &TripWatcher{
		trips:    trips,
		clients:  clients,
		interval: interval,
		logger:   logger,
	}
}

// Start stops any previous run, submits every trip, then launches a
// goroutine that re-submits finished trips every interval. The goroutine
// exits when ctx is cancelled or Stop is called.
func (w *TripWatcher) Start(ctx context.Context) {
	w.Stop()

	w.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	for _, trip := range w.trips {
		w.clients[trip.ID].Submit(jobCtx, trip.Query)
	}
	w.logger.Info().Int("trips", len(w.trips)).Dur("refresh", w.interval).Msg("trip watcher started")

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(w.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				w.refresh(jobCtx)
			}
		}
	}()
}

// Run starts the watcher. It lets TripWatcher serve as a background worker.
func (w *TripWatcher) Run(ctx context.Context) {
	w.Start(ctx)
}

// Stop cancels the refresh goroutine, waits for it to exit and closes every
// trip's running search. Safe to call when the watcher is not running.
func (w *TripWatcher) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel == nil {
		return
	}

	cancel()
	w.wg.Wait()

	for _, trip := range w.trips {
		w.clients[trip.ID].Close()
	}
}

// Snapshot returns the state of every trip in configuration order.
func (w *TripWatcher) Snapshot() []models.TripState {
	states := make([]models.TripState, 0, len(w.trips))
	for _, trip := range w.trips {
		states = append(states, models.TripState{Trip: trip, State: w.clients[trip.ID].State()})
	}
	return states
}

// Trip returns the state of one trip.
func (w *TripWatcher) Trip(id string) (models.TripState, error) {
	for _, trip := range w.trips {
		if trip.ID == id {
			return models.TripState{Trip: trip, State: w.clients[trip.ID].State()}, nil
		}
	}
	return models.TripState{}, ErrTripNotFound
}

// refresh re-submits trips whose previous search has finished. Trips still
// polling are left alone.
func (w *TripWatcher) refresh(ctx context.Context) {
	for _, trip := range w.trips {
		client := w.clients[trip.ID]
		state := client.State()
		if state.Status == models.SearchStatusSearching || (state.Status == models.SearchStatusResult && !state.Terminal()) {
			continue
		}

		w.logger.Debug().Str("trip", trip.ID).Msg("refreshing trip")
		client.Submit(ctx, trip.Query)
	}
}
