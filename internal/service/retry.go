package service

import (
	"context"
	"errors"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/owenmerry/skyscanner-flight-search-sub002/internal/adapter"
)

type phase string

const (
	phaseCreate phase = "create"
	phasePoll   phase = "poll"
)

// retryState counts failed attempts of one phase and schedules the delay
// before the next one.
type retryState struct {
	attempt int
	max     int
	backoff retry.Backoff
}

func newRetryState(opts Options) *retryState {
	var b retry.Backoff = retry.NewExponential(opts.BackoffBase)
	if opts.JitterPercent > 0 {
		b = retry.WithJitterPercent(opts.JitterPercent, b)
	}
	b = retry.WithCappedDuration(opts.BackoffCap, b)

	return &retryState{max: opts.MaxAttempts, backoff: b}
}

// fail records one failed attempt. It reports the attempt number and whether
// the budget is now spent, so exactly max failures end the phase.
func (r *retryState) fail() (attempt int, exhausted bool) {
	r.attempt++
	return r.attempt, r.attempt >= r.max
}

// next returns the delay before the next attempt.
func (r *retryState) next() time.Duration {
	d, stop := r.backoff.Next()
	if stop {
		return 0
	}
	return d
}

// failureTag classifies err into one of the four call sites.
func failureTag(p phase, err error) FailureTag {
	response := adapter.IsResponseFailure(err) || errors.Is(err, ErrMissingSessionToken)

	switch {
	case p == phaseCreate && response:
		return TagCreateResponse
	case p == phaseCreate:
		return TagCreateRequest
	case response:
		return TagPollResponse
	default:
		return TagPollRequest
	}
}

// sleep waits for d or until ctx is done. It reports whether the wait
// completed.
func sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
