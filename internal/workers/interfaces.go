// Package workers runs the background jobs of the search server: the trip
// dashboard watcher and the pruning of idle viewer sessions.
package workers

import (
	"context"
	"time"
)

// Worker is a background job. Run must return quickly and keep working in
// its own goroutines until ctx is cancelled or Stop is called. Stop blocks
// until those goroutines have exited.
type Worker interface {
	Run(ctx context.Context)
	Stop()
}

// SessionPrunerTarget is what [SessionPruner] cleans up.
type SessionPrunerTarget interface {
	Prune(maxIdle time.Duration) int
}
