// Package http implements the browser-facing HTTP API of the search server.
//
// Every viewer (a browser identified by a signed viewer token) owns one
// search client. The API lets the viewer submit a search, read its current
// state, follow it over a websocket until it finishes, and read the search
// history and the trips dashboard. Tracing, access logging, viewer tokens and
// response compression are handled by middleware in this package.
package http
