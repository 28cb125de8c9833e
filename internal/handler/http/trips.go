package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/owenmerry/skyscanner-flight-search-sub002/internal/utils"
)

func (h *Handler) getTrips(w http.ResponseWriter, r *http.Request) {
	if h.services.Trips == nil {
		writeServiceError(w, ErrTripsNotConfigured)
		return
	}

	_, _ = utils.WriteJSON(w, h.services.Trips.Snapshot(), http.StatusOK)
}

func (h *Handler) getTrip(w http.ResponseWriter, r *http.Request) {
	if h.services.Trips == nil {
		writeServiceError(w, ErrTripsNotConfigured)
		return
	}

	trip, err := h.services.Trips.Trip(chi.URLParam(r, "tripID"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, trip, http.StatusOK)
}
