// SPDX-License-Identifier: Apache-2.0

// Package app contains response messages shared by the HTTP handlers.
//
// Msg* strings are written into error response bodies. Server-side failures
// are always answered with MsgInternalServerError so driver or upstream
// details never reach the caller.
package app

const (
	// MsgInvalidJSON is returned when the request body is not a valid search
	// query document.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgInternalServerError replaces the message of every 5xx answer.
	MsgInternalServerError = "internal server error"

	// MsgUnauthorized is returned when a viewer-bound handler has no viewer.
	MsgUnauthorized = "viewer token is missing or invalid"
)
