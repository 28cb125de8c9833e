package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/owenmerry/skyscanner-flight-search-sub002/internal/app"
	"github.com/owenmerry/skyscanner-flight-search-sub002/internal/logger"
	"github.com/owenmerry/skyscanner-flight-search-sub002/internal/service"
	"github.com/owenmerry/skyscanner-flight-search-sub002/internal/utils"
	"github.com/owenmerry/skyscanner-flight-search-sub002/models"
)

const (
	streamBuffer = 32
	writeWait    = 10 * time.Second
	pingPeriod   = 30 * time.Second
)

// submitSearch starts a search for the viewer, replacing any running one.
// It answers 202 with the state right after submission, or 400 with the
// error state when the query is rejected.
func (h *Handler) submitSearch(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	viewerID, ok := utils.GetViewerIDFromContext(r.Context())
	if !ok {
		writeServiceError(w, ErrNoViewer)
		return
	}

	var query models.SearchQuery
	if err := json.NewDecoder(r.Body).Decode(&query); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	client := h.services.Sessions.Client(viewerID)
	client.Submit(r.Context(), query)

	state := client.State()
	status := http.StatusAccepted
	if state.Status == models.SearchStatusError && rejectedQuery(state.Err) {
		status = http.StatusBadRequest
	}

	log.Debug().Str("status", string(state.Status)).Uint64("generation", state.Generation).Msg("search submitted")
	_, _ = utils.WriteJSON(w, state, status)
}

// getSearch returns the viewer's current search state. A viewer that never
// searched is idle.
func (h *Handler) getSearch(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := utils.GetViewerIDFromContext(r.Context())
	if !ok {
		writeServiceError(w, ErrNoViewer)
		return
	}

	state := models.SearchState{Status: models.SearchStatusIdle}
	if client, found := h.services.Sessions.Lookup(viewerID); found {
		state = client.State()
	}

	_, _ = utils.WriteJSON(w, state, http.StatusOK)
}

// streamSearch upgrades to a websocket and pushes the viewer's state on
// every change. The first message is the current state. The socket is
// closed normally after a terminal state has been sent.
func (h *Handler) streamSearch(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	viewerID, ok := utils.GetViewerIDFromContext(r.Context())
	if !ok {
		writeServiceError(w, ErrNoViewer)
		return
	}
	client := h.services.Sessions.Client(viewerID)

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// the upgrader has already answered
		log.Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	states := make(chan models.SearchState, streamBuffer)
	unsubscribe := client.Subscribe(service.ChannelListener(states))
	defer unsubscribe()

	// the read loop only notices the peer going away
	peerGone := make(chan struct{})
	go func() {
		defer close(peerGone)
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()

	ping := time.NewTicker(pingPeriod)
	defer ping.Stop()

	for {
		select {
		case <-peerGone:
			log.Debug().Msg("search stream closed by viewer")
			return
		case <-r.Context().Done():
			return
		case <-ping.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		case state := <-states:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(state); err != nil {
				log.Err(err).Msg("writing search state to stream failed")
				return
			}
			if state.Terminal() {
				msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, string(state.Status))
				_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait))
				return
			}
		}
	}
}

func rejectedQuery(err error) bool {
	return errors.Is(err, service.ErrInvalidQuery) || errors.Is(err, service.ErrSameOriginDestination)
}
