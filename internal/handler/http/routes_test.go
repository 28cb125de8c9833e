package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type routeCase struct {
	method string
	path   string
}

// expectedRoutes lists every route that Init() must register.
var expectedRoutes = []routeCase{
	{http.MethodGet, "/api/version"},
	{http.MethodPost, "/api/search"},
	{http.MethodGet, "/api/search"},
	{http.MethodGet, "/api/search/stream"},
	{http.MethodGet, "/api/history"},
	{http.MethodGet, "/api/trips"},
	{http.MethodGet, "/api/trips/{tripID}"},
}

func TestInit_RegistersAllRoutes(t *testing.T) {
	router := newTestHandler(nil).Init()

	registered := make(map[routeCase]bool)
	err := chi.Walk(router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		registered[routeCase{method, route}] = true
		return nil
	})
	require.NoError(t, err)

	for _, rc := range expectedRoutes {
		assert.True(t, registered[rc], "route %s %s is not registered", rc.method, rc.path)
	}
}

func TestInit_UnknownRoute(t *testing.T) {
	router := newTestHandler(nil).Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/unknown", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_WrongMethod(t *testing.T) {
	router := newTestHandler(nil).Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/search", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestInit_EveryResponseHasTraceID(t *testing.T) {
	router := newTestHandler(nil).Init()

	for _, path := range []string{"/api/version", "/api/search", "/api/unknown"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

		assert.NotEmpty(t, rec.Header().Get(traceIDHeader), path)
	}
}

func TestInit_RecoversFromPanic(t *testing.T) {
	svcs := newTestServices()
	svcs.AppInfo = nil // getVersion разыменует nil-интерфейс
	router := newTestHandler(svcs).Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/version", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
