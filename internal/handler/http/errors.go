// SPDX-License-Identifier: Apache-2.0

package http

import "errors"

var (
	// ErrNoViewer is returned when a viewer-bound handler runs without the
	// viewer middleware.
	ErrNoViewer = errors.New("request has no viewer")

	// ErrInvalidLimit is returned for a non-numeric history limit.
	ErrInvalidLimit = errors.New("limit must be a positive integer")

	// ErrTripsNotConfigured is returned when the server runs without a trips
	// file.
	ErrTripsNotConfigured = errors.New("no trips are configured")

	errHijackNotSupported = errors.New("response writer does not support hijacking")
)
