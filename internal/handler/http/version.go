package http

import (
	"net/http"

	"github.com/owenmerry/skyscanner-flight-search-sub002/internal/utils"
)

func (h *Handler) getVersion(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, h.services.AppInfo.GetBuildInfo(r.Context()), http.StatusOK)
}
