// Package handler builds the transport handlers of the search server.
package handler

import (
	"github.com/owenmerry/skyscanner-flight-search-sub002/internal/config"
	"github.com/owenmerry/skyscanner-flight-search-sub002/internal/handler/http"
	"github.com/owenmerry/skyscanner-flight-search-sub002/internal/logger"
	"github.com/owenmerry/skyscanner-flight-search-sub002/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg.App, logger),
	}, nil
}
