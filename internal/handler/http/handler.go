package http

import (
	"github.com/gorilla/websocket"

	"github.com/owenmerry/skyscanner-flight-search-sub002/internal/config"
	"github.com/owenmerry/skyscanner-flight-search-sub002/internal/logger"
	"github.com/owenmerry/skyscanner-flight-search-sub002/internal/service"
)

type Handler struct {
	services *service.Services
	tokens   config.App
	upgrader websocket.Upgrader

	logger *logger.Logger
}

// NewHandler builds the HTTP handler. tokens carries the viewer token sign
// key, issuer and lifetime.
func NewHandler(services *service.Services, tokens config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		tokens:   tokens,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
		},
		logger: logger,
	}
}
