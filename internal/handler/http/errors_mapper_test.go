package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/owenmerry/skyscanner-flight-search-sub002/internal/app"
	"github.com/owenmerry/skyscanner-flight-search-sub002/internal/service"
	"github.com/owenmerry/skyscanner-flight-search-sub002/internal/store"
	"github.com/owenmerry/skyscanner-flight-search-sub002/internal/utils"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{service.ErrInvalidQuery, http.StatusBadRequest},
		{fmt.Errorf("wrapped: %w", service.ErrSameOriginDestination), http.StatusBadRequest},
		{service.ErrTripNotFound, http.StatusNotFound},
		{ErrTripsNotConfigured, http.StatusNotFound},
		{ErrInvalidLimit, http.StatusBadRequest},
		{utils.ErrInvalidToken, http.StatusUnauthorized},
		{store.ErrScanningRows, http.StatusInternalServerError},
		{errors.New("unknown"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, statusFromError(tt.err), tt.err.Error())
	}
}

func TestWriteServiceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{"client error keeps message", service.ErrSameOriginDestination, http.StatusBadRequest, service.ErrSameOriginDestination.Error()},
		{"server error is hidden", fmt.Errorf("%w: pq: connection refused", store.ErrExecutingQuery), http.StatusInternalServerError, app.MsgInternalServerError},
		{"auth error is generic", utils.ErrInvalidToken, http.StatusUnauthorized, app.MsgUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeServiceError(rec, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
			assert.NotContains(t, rec.Body.String(), "connection refused")
		})
	}
}
