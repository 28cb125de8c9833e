package service

import (
	"sync"
	"time"

	"github.com/owenmerry/skyscanner-flight-search-sub002/internal/logger"
)

type sessionEntry struct {
	client   SearchClient
	lastUsed time.Time
}

// searchSessions keeps one SearchClient per viewer, the way a page keeps one
// search component per browser tab.
type searchSessions struct {
	newClient func() SearchClient
	now       func() time.Time

	mu       sync.Mutex
	sessions map[string]*sessionEntry

	logger *logger.Logger
}

// NewSearchSessions returns a registry that builds clients with newClient.
func NewSearchSessions(newClient func() SearchClient, logger *logger.Logger) SessionService {
	return &searchSessions{
		newClient: newClient,
		now:       time.Now,
		sessions:  make(map[string]*sessionEntry),
		logger:    logger,
	}
}

func (s *searchSessions) Client(viewerID string) SearchClient {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[viewerID]
	if !ok {
		entry = &sessionEntry{client: s.newClient()}
		s.sessions[viewerID] = entry
		s.logger.Debug().Str("viewer", viewerID).Int("sessions", len(s.sessions)).Msg("search session created")
	}
	entry.lastUsed = s.now()

	return entry.client
}

func (s *searchSessions) Lookup(viewerID string) (SearchClient, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[viewerID]
	if !ok {
		return nil, false
	}
	entry.lastUsed = s.now()

	return entry.client, true
}

func (s *searchSessions) Prune(maxIdle time.Duration) int {
	cutoff := s.now().Add(-maxIdle)

	s.mu.Lock()
	var stale []SearchClient
	for id, entry := range s.sessions {
		if entry.lastUsed.Before(cutoff) {
			stale = append(stale, entry.client)
			delete(s.sessions, id)
		}
	}
	s.mu.Unlock()

	// Close waits for the running search, so it happens outside the lock.
	for _, client := range stale {
		client.Close()
	}

	if len(stale) > 0 {
		s.logger.Debug().Int("pruned", len(stale)).Msg("idle search sessions closed")
	}
	return len(stale)
}

func (s *searchSessions) CloseAll() {
	s.mu.Lock()
	clients := make([]SearchClient, 0, len(s.sessions))
	for id, entry := range s.sessions {
		clients = append(clients, entry.client)
		delete(s.sessions, id)
	}
	s.mu.Unlock()

	for _, client := range clients {
		client.Close()
	}
}
