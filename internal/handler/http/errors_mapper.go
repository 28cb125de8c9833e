package http

import (
	"errors"
	"net/http"

	"github.com/owenmerry/skyscanner-flight-search-sub002/internal/app"
	"github.com/owenmerry/skyscanner-flight-search-sub002/internal/service"
	"github.com/owenmerry/skyscanner-flight-search-sub002/internal/store"
	"github.com/owenmerry/skyscanner-flight-search-sub002/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidQuery:          http.StatusBadRequest,
	service.ErrSameOriginDestination: http.StatusBadRequest,
	service.ErrTripNotFound:          http.StatusNotFound,

	ErrNoViewer:           http.StatusUnauthorized,
	ErrInvalidLimit:       http.StatusBadRequest,
	ErrTripsNotConfigured: http.StatusNotFound,

	utils.ErrInvalidToken:       http.StatusUnauthorized,
	utils.ErrInvalidTokenParams: http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
	store.ErrEncodingResult:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeServiceError answers with the status mapped from err. Server and auth
// errors hide their message.
func writeServiceError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	switch {
	case status >= http.StatusInternalServerError:
		utils.WriteError(w, app.MsgInternalServerError, status)
		return
	case status == http.StatusUnauthorized:
		utils.WriteError(w, app.MsgUnauthorized, status)
		return
	}
	utils.WriteError(w, err.Error(), status)
}
