// Package utils holds small helpers shared by the handlers, services and
// binaries: typed context keys, JSON responses, the resty client, viewer
// tokens and id generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys so they never collide with
// keys of other packages.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// ViewerIDCtxKey stores the id of the browser viewer a request belongs to.
var ViewerIDCtxKey = contextKey("viewerID")

// WithViewerID returns a copy of ctx carrying viewerID.
func WithViewerID(ctx context.Context, viewerID string) context.Context {
	return context.WithValue(ctx, ViewerIDCtxKey, viewerID)
}

// GetViewerIDFromContext returns the viewer id and whether a non-empty one
// was found.
func GetViewerIDFromContext(ctx context.Context) (string, bool) {
	viewerID, ok := ctx.Value(ViewerIDCtxKey).(string)
	return viewerID, ok && viewerID != ""
}
