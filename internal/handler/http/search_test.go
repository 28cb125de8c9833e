package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/owenmerry/skyscanner-flight-search-sub002/internal/service"
	"github.com/owenmerry/skyscanner-flight-search-sub002/internal/utils"
	"github.com/owenmerry/skyscanner-flight-search-sub002/models"
)

const londonParisJSON = `{"fromId":"LOND","toId":"PARI","departDate":"2026-11-01"}`

type viewerFixture struct {
	id       string
	token    string
	sessions *stubSessions
	router   http.Handler
}

func newViewerFixture(t *testing.T) viewerFixture {
	t.Helper()
	svcs := newTestServices()
	id := utils.NewUUIDGenerator().Generate()
	return viewerFixture{
		id:       id,
		token:    issueToken(t, id),
		sessions: svcs.Sessions.(*stubSessions),
		router:   newTestHandler(svcs).Init(),
	}
}

func (f viewerFixture) do(method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+f.token)
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func decodeState(t *testing.T, rec *httptest.ResponseRecorder) models.SearchState {
	t.Helper()
	var state models.SearchState
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state), rec.Body.String())
	return state
}

// ─────────────────────────────────────────────
// POST /api/search
// ─────────────────────────────────────────────

func TestSubmitSearch_Accepted(t *testing.T) {
	f := newViewerFixture(t)

	rec := f.do(http.MethodPost, "/api/search", londonParisJSON)

	require.Equal(t, http.StatusAccepted, rec.Code)
	state := decodeState(t, rec)
	assert.Equal(t, models.SearchStatusSearching, state.Status)
	assert.Equal(t, "LOND", state.Query.FromID)

	client := f.sessions.client(f.id)
	require.Len(t, client.submitted, 1)
	assert.Equal(t, "PARI", client.submitted[0].ToID)
}

func TestSubmitSearch_RejectedQuery(t *testing.T) {
	f := newViewerFixture(t)
	f.sessions.client(f.id).onSubmit = func(c *stubClient, q models.SearchQuery) {
		c.publish(models.SearchState{
			Status:       models.SearchStatusError,
			Query:        q,
			ErrorMessage: "Origin and destination can't be the same",
			Err:          service.ErrSameOriginDestination,
			Generation:   1,
		})
	}

	rec := f.do(http.MethodPost, "/api/search", `{"fromId":"LOND","toId":"LOND","departDate":"2026-11-01"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	state := decodeState(t, rec)
	assert.Equal(t, models.SearchStatusError, state.Status)
	assert.NotEmpty(t, state.ErrorMessage)
}

func TestSubmitSearch_InvalidJSON(t *testing.T) {
	f := newViewerFixture(t)

	rec := f.do(http.MethodPost, "/api/search", `{not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid JSON")
	assert.Empty(t, f.sessions.client(f.id).submitted)
}

func TestSubmitSearch_NewViewerGetsToken(t *testing.T) {
	f := newViewerFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/api/search", strings.NewReader(londonParisJSON))
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusAccepted, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get("Authorization"), "Bearer "))
}

func TestSubmitSearch_WithoutViewerMiddleware(t *testing.T) {
	h := newTestHandler(nil)
	rec := httptest.NewRecorder()

	h.submitSearch(rec, httptest.NewRequest(http.MethodPost, "/api/search", strings.NewReader(londonParisJSON)))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// ─────────────────────────────────────────────
// GET /api/search
// ─────────────────────────────────────────────

func TestGetSearch_IdleForUnknownViewer(t *testing.T) {
	f := newViewerFixture(t)

	rec := f.do(http.MethodGet, "/api/search", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.SearchStatusIdle, decodeState(t, rec).Status)
	_, created := f.sessions.Lookup(f.id)
	assert.False(t, created, "reading the state must not create a client")
}

func TestGetSearch_CurrentState(t *testing.T) {
	f := newViewerFixture(t)
	f.sessions.client(f.id).publish(models.SearchState{
		Status:     models.SearchStatusResult,
		Generation: 3,
		Result: &models.SearchResult{
			SessionToken: "tok",
			Status:       models.ResultStatusIncomplete,
			Cheapest:     []models.Itinerary{{ItineraryID: "it-1", Price: 99}},
		},
	})

	rec := f.do(http.MethodGet, "/api/search", "")

	require.Equal(t, http.StatusOK, rec.Code)
	state := decodeState(t, rec)
	assert.Equal(t, models.SearchStatusResult, state.Status)
	assert.EqualValues(t, 3, state.Generation)
	require.NotNil(t, state.Result)
	assert.Equal(t, "it-1", state.Result.Cheapest[0].ItineraryID)
}

func TestGetSearch_ViewersAreIsolated(t *testing.T) {
	f := newViewerFixture(t)
	f.do(http.MethodPost, "/api/search", londonParisJSON)

	other := f
	other.id = utils.NewUUIDGenerator().Generate()
	other.token = issueToken(t, other.id)

	rec := other.do(http.MethodGet, "/api/search", "")

	assert.Equal(t, models.SearchStatusIdle, decodeState(t, rec).Status)
}

// ─────────────────────────────────────────────
// GET /api/search/stream
// ─────────────────────────────────────────────

func dialStream(t *testing.T, f viewerFixture) *websocket.Conn {
	t.Helper()
	srv := httptest.NewServer(f.router)
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/search/stream?token=" + f.token
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	_ = resp.Body.Close()
	t.Cleanup(func() { _ = conn.Close() })

	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	return conn
}

func readState(t *testing.T, conn *websocket.Conn) models.SearchState {
	t.Helper()
	var state models.SearchState
	require.NoError(t, conn.ReadJSON(&state))
	return state
}

func TestStreamSearch_PushesUntilTerminal(t *testing.T) {
	f := newViewerFixture(t)
	conn := dialStream(t, f)
	client := f.sessions.client(f.id)

	// первое сообщение: текущее состояние
	assert.Equal(t, models.SearchStatusIdle, readState(t, conn).Status)

	client.publish(models.SearchState{Status: models.SearchStatusSearching, Generation: 1})
	client.publish(models.SearchState{Status: models.SearchStatusResult, Generation: 1,
		Result: &models.SearchResult{SessionToken: "tok", Status: models.ResultStatusIncomplete}})
	client.publish(models.SearchState{Status: models.SearchStatusResult, Generation: 1,
		Result: &models.SearchResult{SessionToken: "tok", Status: models.ResultStatusComplete}})

	assert.Equal(t, models.SearchStatusSearching, readState(t, conn).Status)

	partial := readState(t, conn)
	require.NotNil(t, partial.Result)
	assert.Equal(t, models.ResultStatusIncomplete, partial.Result.Status)

	final := readState(t, conn)
	require.NotNil(t, final.Result)
	assert.True(t, final.Terminal())

	_, _, err := conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseNormalClosure), "got %v", err)
}

func TestStreamSearch_ErrorStateClosesStream(t *testing.T) {
	f := newViewerFixture(t)
	conn := dialStream(t, f)
	client := f.sessions.client(f.id)
	readState(t, conn)

	client.publish(models.SearchState{Status: models.SearchStatusError, ErrorMessage: "Sorry", Generation: 1})

	state := readState(t, conn)
	assert.Equal(t, models.SearchStatusError, state.Status)
	assert.Equal(t, "Sorry", state.ErrorMessage)

	_, _, err := conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseNormalClosure), "got %v", err)
}

func TestStreamSearch_UnsubscribesWhenViewerLeaves(t *testing.T) {
	f := newViewerFixture(t)
	conn := dialStream(t, f)
	client := f.sessions.client(f.id)
	readState(t, conn)
	require.Equal(t, 1, client.subscribers())

	require.NoError(t, conn.Close())

	assert.Eventually(t, func() bool { return client.subscribers() == 0 }, 5*time.Second, 10*time.Millisecond)
}

func TestStreamSearch_NotAWebsocket(t *testing.T) {
	f := newViewerFixture(t)

	rec := f.do(http.MethodGet, "/api/search/stream", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
