package workers

import (
	"context"
	"sync"
	"time"

	"github.com/owenmerry/skyscanner-flight-search-sub002/internal/logger"
)

// SessionPruner periodically closes viewer sessions idle for longer than
// maxIdle. It checks every maxIdle/2.
type SessionPruner struct {
	target  SessionPrunerTarget
	maxIdle time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

func NewSessionPruner(target SessionPrunerTarget, maxIdle time.Duration, logger *logger.Logger) *SessionPruner {
	return &SessionPruner{target: target, maxIdle: maxIdle, logger: logger}
}

func (p *SessionPruner) Run(ctx context.Context) {
	p.Stop()

	interval := p.maxIdle / 2
	if interval <= 0 {
		interval = time.Minute
	}

	p.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.wg.Add(1)
	p.mu.Unlock()

	go func() {
		defer p.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if n := p.target.Prune(p.maxIdle); n > 0 {
					p.logger.Info().Int("sessions", n).Msg("pruned idle search sessions")
				}
			}
		}
	}()
}

func (p *SessionPruner) Stop() {
	p.mu.Lock()
	cancel := p.cancel
	p.cancel = nil
	p.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	p.wg.Wait()
}
