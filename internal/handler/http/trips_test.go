package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/owenmerry/skyscanner-flight-search-sub002/internal/logger"
	"github.com/owenmerry/skyscanner-flight-search-sub002/internal/service"
	"github.com/owenmerry/skyscanner-flight-search-sub002/models"
)

var dashboardTrips = []models.Trip{
	{ID: "trip-1", Name: "London to Paris", Query: models.SearchQuery{FromID: "LOND", ToID: "PARI", DepartDate: "2026-12-01"}},
	{ID: "trip-2", Name: "London to Rome", Query: models.SearchQuery{FromID: "LOND", ToID: "ROME", DepartDate: "2026-12-02"}},
}

func newTripsRouter(t *testing.T) http.Handler {
	t.Helper()
	svcs := newTestServices()
	svcs.Trips = service.NewTripWatcher(dashboardTrips, func() service.SearchClient {
		return newStubClient()
	}, 0, logger.Nop())
	return newTestHandler(svcs).Init()
}

func TestGetTrips_Snapshot(t *testing.T) {
	rec := httptest.NewRecorder()
	newTripsRouter(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/trips", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var got []models.TripState
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "trip-1", got[0].Trip.ID)
	assert.Equal(t, "trip-2", got[1].Trip.ID)
	assert.Equal(t, models.SearchStatusIdle, got[0].State.Status)
}

func TestGetTrip_ByID(t *testing.T) {
	rec := httptest.NewRecorder()
	newTripsRouter(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/trips/trip-2", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var got models.TripState
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "London to Rome", got.Trip.Name)
}

func TestGetTrip_Unknown(t *testing.T) {
	rec := httptest.NewRecorder()
	newTripsRouter(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/trips/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetTrips_NotConfigured(t *testing.T) {
	router := newTestHandler(nil).Init()

	for _, path := range []string{"/api/trips", "/api/trips/trip-1"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

		assert.Equal(t, http.StatusNotFound, rec.Code, path)
		assert.Contains(t, rec.Body.String(), ErrTripsNotConfigured.Error())
	}
}
