// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/owenmerry/skyscanner-flight-search-sub002/internal/adapter"
	"github.com/owenmerry/skyscanner-flight-search-sub002/internal/config"
	"github.com/owenmerry/skyscanner-flight-search-sub002/internal/logger"
	"github.com/owenmerry/skyscanner-flight-search-sub002/models"
)

// Options tunes one [AsyncSearchClient]. Zero fields fall back to the
// package defaults in config.
type Options struct {
	// PollInterval is the delay before every poll request.
	PollInterval time.Duration
	// MaxAttempts is the number of failed requests per phase that ends the
	// search in the error state.
	MaxAttempts int
	// RequestTimeout bounds one create or poll request.
	RequestTimeout time.Duration
	// BackoffBase and BackoffCap shape the exponential delay between
	// failed attempts.
	BackoffBase time.Duration
	BackoffCap  time.Duration
	// JitterPercent randomises each backoff delay by up to this percentage.
	JitterPercent uint64
}

// InteractiveOptions returns options for a search started by a user.
func InteractiveOptions(search config.Search, adapterCfg config.Adapter) Options {
	return Options{
		PollInterval:   search.PollInterval,
		MaxAttempts:    search.MaxAttempts,
		RequestTimeout: adapterCfg.RequestTimeout,
		BackoffBase:    search.BackoffBase,
		BackoffCap:     search.BackoffCap,
		JitterPercent:  uint64(max(search.BackoffJitterPercent, 0)),
	}
}

// BackgroundOptions returns options for dashboard searches, which poll at
// the slower background interval.
func BackgroundOptions(search config.Search, adapterCfg config.Adapter) Options {
	opts := InteractiveOptions(search, adapterCfg)
	opts.PollInterval = search.BackgroundPollInterval
	return opts
}

func (o Options) withDefaults() Options {
	if o.PollInterval <= 0 {
		o.PollInterval = config.DefaultPollInterval
	}
	if o.MaxAttempts <= 0 {
		o.MaxAttempts = config.DefaultMaxAttempts
	}
	if o.RequestTimeout <= 0 {
		o.RequestTimeout = config.DefaultRequestTimeout
	}
	if o.BackoffBase <= 0 {
		o.BackoffBase = config.DefaultBackoffBase
	}
	if o.BackoffCap < o.BackoffBase {
		o.BackoffCap = max(o.BackoffBase, config.DefaultBackoffCap)
	}
	if o.JitterPercent > 100 {
		o.JitterPercent = 100
	}
	return o
}

// AsyncSearchClient runs the create → poll-until-complete protocol of the
// flight API for one caller and publishes every snapshot as [models.SearchState].
//
// At most one search is current per client. Submit supersedes the running
// search: its context is cancelled and any response that still arrives for
// it is dropped by comparing generations. State changes and listener
// notifications are serialised, so listeners observe states in publication
// order.
type AsyncSearchClient struct {
	api    adapter.FlightAPI
	opts   Options
	sink   ResultSink
	logger *logger.Logger

	// notifyMu is held across a state change and the listener calls it
	// triggers. It is always taken before mu.
	notifyMu sync.Mutex

	mu         sync.Mutex
	state      models.SearchState
	generation uint64
	cancel     context.CancelFunc
	done       chan struct{}
	listeners  map[int]func(models.SearchState)
	nextID     int
}

// NewAsyncSearchClient constructs an idle client. sink may be nil.
func NewAsyncSearchClient(api adapter.FlightAPI, opts Options, sink ResultSink, logger *logger.Logger) *AsyncSearchClient {
	return &AsyncSearchClient{
		api:       api,
		opts:      opts.withDefaults(),
		sink:      sink,
		logger:    logger,
		state:     models.SearchState{Status: models.SearchStatusIdle},
		listeners: make(map[int]func(models.SearchState)),
	}
}

// Submit starts a new search for query and returns immediately. It never
// fails: an invalid query moves the client to the error state synchronously
// without any network call, and runtime failures surface through State.
//
// ctx provides values such as the request logger; its cancellation does not
// stop the search. A later Submit or Close does.
func (c *AsyncSearchClient) Submit(ctx context.Context, query models.SearchQuery) {
	query = query.Normalize()

	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()

	c.mu.Lock()
	c.generation++
	gen := c.generation
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}

	if err := query.Validate(); err != nil {
		c.done = nil
		c.state = models.SearchState{
			Status:       models.SearchStatusError,
			Query:        query,
			ErrorMessage: userMessage(err),
			Err:          err,
			Generation:   gen,
			UpdatedAt:    time.Now(),
		}
		snapshot, listeners := c.snapshotLocked()
		c.mu.Unlock()

		c.logger.Debug().Err(err).Uint64("generation", gen).Msg("search rejected before any request")
		notify(listeners, snapshot)
		return
	}

	lifeCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	done := make(chan struct{})
	c.cancel = cancel
	c.done = done
	c.state = models.SearchState{
		Status:     models.SearchStatusSearching,
		Query:      query,
		Generation: gen,
		UpdatedAt:  time.Now(),
	}
	snapshot, listeners := c.snapshotLocked()
	c.mu.Unlock()

	notify(listeners, snapshot)

	go c.run(lifeCtx, cancel, gen, query, done)
}

// State returns the current state.
func (c *AsyncSearchClient) State() models.SearchState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Subscribe registers fn for every published state and calls it once with
// the current state. fn runs while notifications are serialised, so it must
// not call Submit, Subscribe or Close on the same client.
func (c *AsyncSearchClient) Subscribe(fn func(models.SearchState)) (unsubscribe func()) {
	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()

	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.listeners[id] = fn
	current := c.state
	c.mu.Unlock()

	fn(current)

	return func() {
		c.mu.Lock()
		delete(c.listeners, id)
		c.mu.Unlock()
	}
}

// Wait blocks until the current search has ended and returns the final
// state. A search superseded while waiting is followed to its successor.
func (c *AsyncSearchClient) Wait(ctx context.Context) (models.SearchState, error) {
	for {
		c.mu.Lock()
		done, gen := c.done, c.generation
		c.mu.Unlock()

		if done != nil {
			select {
			case <-done:
			case <-ctx.Done():
				return c.State(), ctx.Err()
			}
		}

		c.mu.Lock()
		if c.generation == gen {
			state := c.state
			c.mu.Unlock()
			return state, nil
		}
		c.mu.Unlock()
	}
}

// Close cancels the running search and waits for it to exit. A search that
// was still running leaves the client idle. The client may be reused.
func (c *AsyncSearchClient) Close() {
	c.notifyMu.Lock()

	c.mu.Lock()
	cancel, done := c.cancel, c.done
	c.cancel = nil
	c.generation++
	var (
		snapshot  models.SearchState
		listeners []func(models.SearchState)
		changed   bool
	)
	if c.state.Status == models.SearchStatusSearching || (c.state.Status == models.SearchStatusResult && !c.state.Terminal()) {
		c.state = models.SearchState{
			Status:     models.SearchStatusIdle,
			Query:      c.state.Query,
			Generation: c.generation,
			UpdatedAt:  time.Now(),
		}
		changed = true
	} else {
		c.state.Generation = c.generation
	}
	snapshot, listeners = c.snapshotLocked()
	c.mu.Unlock()

	if changed {
		notify(listeners, snapshot)
	}
	c.notifyMu.Unlock()

	if cancel != nil {
		cancel()
	}
	if done != nil {
		<-done
	}
}

func (c *AsyncSearchClient) run(ctx context.Context, cancel context.CancelFunc, gen uint64, query models.SearchQuery, done chan struct{}) {
	defer close(done)
	defer cancel()

	log := c.logger.With().
		Uint64("generation", gen).
		Str("from", query.FromID).
		Str("to", query.ToID).
		Str("depart", query.DepartDate).
		Logger()
	ctx = log.WithContext(ctx)
	l := &logger.Logger{Logger: log}

	token, polling := c.create(ctx, gen, query, l)
	if !polling {
		return
	}

	c.poll(ctx, gen, query, token, l)
}

// create issues create requests until one succeeds or the attempt budget is
// spent. It returns the session token and whether polling should follow.
func (c *AsyncSearchClient) create(ctx context.Context, gen uint64, query models.SearchQuery, log *logger.Logger) (string, bool) {
	retries := newRetryState(c.opts)
	var delay time.Duration

	for {
		if !sleep(ctx, delay) {
			return "", false
		}

		result, err := c.call(ctx, func(ctx context.Context) (models.SearchResult, error) {
			return c.api.Create(ctx, query)
		})
		if ctx.Err() != nil {
			return "", false
		}
		if err == nil && result.SessionToken == "" {
			err = ErrMissingSessionToken
		}

		if err != nil {
			stop, d := c.failAttempt(gen, query, retries, failureTag(phaseCreate, err), err, log)
			if stop {
				return "", false
			}
			delay = d
			continue
		}

		if !c.publishResult(gen, result) {
			return "", false
		}

		if result.IsComplete() {
			log.Info().Str("session", result.SessionToken).Msg("search completed on create")
			c.persist(ctx, query, result, log)
			return "", false
		}

		log.Debug().Str("session", result.SessionToken).Msg("search created, polling")
		return result.SessionToken, true
	}
}

// poll polls sessionToken until the job completes, the search is superseded
// or the attempt budget is spent.
func (c *AsyncSearchClient) poll(ctx context.Context, gen uint64, query models.SearchQuery, sessionToken string, log *logger.Logger) {
	retries := newRetryState(c.opts)
	delay := c.opts.PollInterval

	for {
		if !sleep(ctx, delay) {
			return
		}
		delay = c.opts.PollInterval

		result, err := c.call(ctx, func(ctx context.Context) (models.SearchResult, error) {
			return c.api.Poll(ctx, sessionToken)
		})
		if ctx.Err() != nil {
			return
		}

		if err != nil {
			stop, d := c.failAttempt(gen, query, retries, failureTag(phasePoll, err), err, log)
			if stop {
				return
			}
			// a failing API is never polled faster than a healthy one
			delay = max(c.opts.PollInterval, d)
			continue
		}

		if result.SessionToken == "" {
			result.SessionToken = sessionToken
		}

		switch {
		case result.IsComplete():
			if !c.publishResult(gen, result) {
				return
			}
			log.Info().Str("session", sessionToken).Int("items", len(result.Items)).Msg("search completed")
			c.persist(ctx, query, result, log)
			return
		case result.IsNotModified():
			if !c.isCurrent(gen) {
				return
			}
		default:
			if !c.publishResult(gen, result) {
				return
			}
		}
	}
}

func (c *AsyncSearchClient) call(ctx context.Context, fn func(context.Context) (models.SearchResult, error)) (models.SearchResult, error) {
	reqCtx, cancel := context.WithTimeout(ctx, c.opts.RequestTimeout)
	defer cancel()

	result, err := fn(reqCtx)
	if err == nil && reqCtx.Err() != nil {
		err = fmt.Errorf("%w: %w", adapter.ErrRequestFailed, reqCtx.Err())
	}
	return result, err
}

// failAttempt records a failed attempt. It ends the search when the budget
// is spent and otherwise returns the delay before the next attempt.
func (c *AsyncSearchClient) failAttempt(gen uint64, query models.SearchQuery, retries *retryState, tag FailureTag, err error, log *logger.Logger) (stop bool, delay time.Duration) {
	attempt, exhausted := retries.fail()
	if exhausted {
		exhaustedErr := &ExhaustedRetriesError{Attempt: attempt, Tag: tag, Last: err}
		log.Error().Err(err).Int("attempt", attempt).Str("tag", string(tag)).Msg("search gave up")
		c.publishError(gen, query, exhaustedErr)
		return true, 0
	}

	failure := &TransientFailure{Tag: tag, Attempt: attempt, Err: err}
	log.Warn().Err(failure).Int("attempt", attempt).Str("tag", string(tag)).Msg("search attempt failed, retrying")

	return !c.isCurrent(gen), retries.next()
}

func (c *AsyncSearchClient) persist(ctx context.Context, query models.SearchQuery, result models.SearchResult, log *logger.Logger) {
	if c.sink == nil {
		return
	}

	record := models.SearchRecord{
		SessionToken: result.SessionToken,
		Query:        query,
		Result:       result,
		CompletedAt:  time.Now().UTC(),
	}
	if err := c.sink.SaveCompleted(ctx, record); err != nil && !errors.Is(err, context.Canceled) {
		log.Err(err).Str("func", "*AsyncSearchClient.persist").Msg("error saving completed search")
	}
}

func (c *AsyncSearchClient) isCurrent(gen uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generation == gen
}

// publishResult replaces the current snapshot. It reports false when gen is
// no longer current, in which case nothing is published.
func (c *AsyncSearchClient) publishResult(gen uint64, result models.SearchResult) bool {
	snapshot := result
	return c.publish(gen, func(s *models.SearchState) {
		s.Status = models.SearchStatusResult
		s.Result = &snapshot
		s.ErrorMessage = ""
		s.Err = nil
	})
}

func (c *AsyncSearchClient) publishError(gen uint64, query models.SearchQuery, err error) bool {
	return c.publish(gen, func(s *models.SearchState) {
		s.Status = models.SearchStatusError
		s.Query = query
		s.ErrorMessage = userMessage(err)
		s.Err = err
	})
}

func (c *AsyncSearchClient) publish(gen uint64, mutate func(*models.SearchState)) bool {
	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()

	c.mu.Lock()
	if c.generation != gen {
		c.mu.Unlock()
		return false
	}
	mutate(&c.state)
	c.state.UpdatedAt = time.Now()
	snapshot, listeners := c.snapshotLocked()
	c.mu.Unlock()

	notify(listeners, snapshot)
	return true
}

func (c *AsyncSearchClient) snapshotLocked() (models.SearchState, []func(models.SearchState)) {
	listeners := make([]func(models.SearchState), 0, len(c.listeners))
	for _, fn := range c.listeners {
		listeners = append(listeners, fn)
	}
	return c.state, listeners
}

func notify(listeners []func(models.SearchState), state models.SearchState) {
	for _, fn := range listeners {
		fn(state)
	}
}
