// SPDX-License-Identifier: Apache-2.0

package service

import (
	"errors"
	"fmt"

	"github.com/owenmerry/skyscanner-flight-search-sub002/models"
)

var (
	// ErrInvalidQuery aliases [models.ErrInvalidQuery] for callers of this
	// package.
	ErrInvalidQuery = models.ErrInvalidQuery

	// ErrSameOriginDestination aliases [models.ErrSameOriginDestination].
	ErrSameOriginDestination = models.ErrSameOriginDestination

	// ErrMissingSessionToken is a failed attempt where the create response
	// carried no session token.
	ErrMissingSessionToken = errors.New("flight api response has no session token")

	// ErrVersionIsNotSpecified is returned by [NewAppInfoService].
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrTripNotFound is returned by [TripWatcher.Trip] for unknown ids.
	ErrTripNotFound = errors.New("trip not found")
)

// User-facing messages of the error state.
const (
	invalidQueryMessage     = "Please choose an origin, a destination and a valid travel date"
	sameOriginDestMessage   = "Origin and destination can't be the same, please choose a different destination"
	exhaustedMessageFormat  = "Sorry, something happened and we couldn't do this search, maybe try a different search (code:%d|%s)"
	unexpectedErrorsMessage = "Sorry, something unexpected happened"
)

// FailureTag names the call site of a failed attempt. It only appears in the
// diagnostic suffix of the exhausted-retries message.
type FailureTag string

const (
	TagCreateResponse FailureTag = "create-response"
	TagCreateRequest  FailureTag = "create-request"
	TagPollResponse   FailureTag = "poll-response"
	TagPollRequest    FailureTag = "poll-request"
)

// TransientFailure is one failed attempt that will be retried.
type TransientFailure struct {
	Tag     FailureTag
	Attempt int
	Err     error
}

func (e *TransientFailure) Error() string {
	return fmt.Sprintf("attempt %d failed (%s): %v", e.Attempt, e.Tag, e.Err)
}

func (e *TransientFailure) Unwrap() error {
	return e.Err
}

// ExhaustedRetriesError ends a search after the attempt budget of a phase is
// spent. Its message is the one shown to the user.
type ExhaustedRetriesError struct {
	Attempt int
	Tag     FailureTag
	Last    error
}

func (e *ExhaustedRetriesError) Error() string {
	return fmt.Sprintf(exhaustedMessageFormat, e.Attempt, e.Tag)
}

func (e *ExhaustedRetriesError) Unwrap() error {
	return e.Last
}

// userMessage maps a terminal error to the text of the error state.
func userMessage(err error) string {
	var exhausted *ExhaustedRetriesError
	switch {
	case errors.As(err, &exhausted):
		return exhausted.Error()
	case errors.Is(err, ErrSameOriginDestination):
		return sameOriginDestMessage
	case errors.Is(err, ErrInvalidQuery):
		return invalidQueryMessage
	default:
		return unexpectedErrorsMessage
	}
}
