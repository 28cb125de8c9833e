package http

import (
	"fmt"
	"net/http"

	"github.com/owenmerry/skyscanner-flight-search-sub002/internal/logger"
	"github.com/owenmerry/skyscanner-flight-search-sub002/internal/utils"
)

const (
	authorizationHeader = "Authorization"
	// browsers cannot set headers on a websocket handshake
	tokenQueryParam = "token"
)

// withViewer binds the request to a viewer. A valid viewer token is read
// from the Authorization header or the token query parameter. Requests
// without one get a new viewer id, and the token for it is returned in the
// Authorization response header. The viewer id is stored under
// [utils.ViewerIDCtxKey].
func (h *Handler) withViewer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		viewerID, err := h.viewerFromRequest(r)
		if err != nil {
			log.Debug().Err(err).Msg("no valid viewer token, issuing a new one")

			token, err := utils.GenerateViewerToken(h.tokens.TokenIssuer, utils.NewUUIDGenerator().Generate(), h.tokens.TokenDuration, h.tokens.TokenSignKey)
			if err != nil {
				log.Err(err).Msg("creation of viewer token failed")
				writeServiceError(w, err)
				return
			}

			viewerID = token.ViewerID
			w.Header().Set(authorizationHeader, fmt.Sprintf("Bearer %s", token.SignedString))
		}

		ctx := utils.WithViewerID(r.Context(), viewerID)
		l := logger.FromContext(ctx).WithStr("viewer", viewerID)

		next.ServeHTTP(w, r.WithContext(l.WithContext(ctx)))
	})
}

func (h *Handler) viewerFromRequest(r *http.Request) (string, error) {
	tokenString := r.URL.Query().Get(tokenQueryParam)
	if header := r.Header.Get(authorizationHeader); header != "" {
		var err error
		if tokenString, err = utils.ParseBearerToken(header); err != nil {
			return "", err
		}
	}
	if tokenString == "" {
		return "", utils.ErrInvalidToken
	}

	token, err := utils.ValidateViewerToken(tokenString, h.tokens.TokenSignKey, h.tokens.TokenIssuer)
	if err != nil {
		return "", err
	}
	return token.ViewerID, nil
}
