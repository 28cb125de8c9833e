package http

import (
	"net/http"
	"strconv"

	"github.com/owenmerry/skyscanner-flight-search-sub002/internal/logger"
	"github.com/owenmerry/skyscanner-flight-search-sub002/internal/utils"
)

// getHistory lists the most recently completed searches. ?limit=N is
// optional; the service applies its default and cap.
func (h *Handler) getHistory(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeServiceError(w, ErrInvalidLimit)
			return
		}
		limit = n
	}

	records, err := h.services.History.Recent(r.Context(), limit)
	if err != nil {
		log.Err(err).Msg("listing search history failed")
		writeServiceError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, records, http.StatusOK)
}
