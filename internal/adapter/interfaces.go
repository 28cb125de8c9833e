// SPDX-License-Identifier: Apache-2.0

// Package adapter talks to the remote flight price API.
//
// The API is job-style: a create call starts a search and returns a session
// token together with the first (often incomplete) snapshot, and poll calls
// return newer snapshots for that token until the job reports completion.
//
// [FlightAPI] hides the transport. Every failure it returns wraps one of the
// sentinels in errors.go so the search client can classify it with
// [errors.Is]: [ErrRequestFailed] and [ErrDecodeResponse] mean no usable
// response arrived, while [ErrEmptyBody], [ErrErrorPayload] and
// [ErrUnexpectedStatus] mean the API answered with an error.
package adapter

import (
	"context"

	"github.com/owenmerry/skyscanner-flight-search-sub002/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/flight_api_mock.go -package=mock

// FlightAPI is the create/poll protocol of the flight price API.
type FlightAPI interface {
	// Create starts a search job for query. The returned snapshot carries the
	// session token used by Poll.
	Create(ctx context.Context, query models.SearchQuery) (models.SearchResult, error)

	// Poll fetches the latest snapshot of the job identified by sessionToken.
	Poll(ctx context.Context, sessionToken string) (models.SearchResult, error)
}
