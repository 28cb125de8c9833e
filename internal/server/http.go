package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/owenmerry/skyscanner-flight-search-sub002/internal/config"
	"github.com/owenmerry/skyscanner-flight-search-sub002/internal/logger"
)

const readHeaderTimeout = 10 * time.Second

type httpServer struct {
	server          *http.Server
	shutdownTimeout time.Duration

	mu   sync.Mutex
	addr net.Addr

	logger *logger.Logger
}

func newHTTPServer(handler http.Handler, cfg config.Server, logger *logger.Logger) *httpServer {
	return &httpServer{
		server: &http.Server{
			Addr:              cfg.HTTPAddress,
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger,
	}
}

// RunServer listens on the configured address and serves until Shutdown.
func (h *httpServer) RunServer() {
	listener, err := net.Listen("tcp", h.server.Addr)
	if err != nil {
		h.logger.Error().Err(err).Str("address", h.server.Addr).Msg("HTTP server Listen")
		return
	}

	h.mu.Lock()
	h.addr = listener.Addr()
	h.mu.Unlock()

	h.logger.Info().Str("address", listener.Addr().String()).Msg("HTTP server listening")
	if err = h.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		h.logger.Error().Err(err).Msg("HTTP server Serve")
	}
}

// Shutdown waits for in-flight requests up to the shutdown timeout, then
// closes the remaining connections.
func (h *httpServer) Shutdown() {
	ctx := context.Background()
	if h.shutdownTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.shutdownTimeout)
		defer cancel()
	}

	if err := h.server.Shutdown(ctx); err != nil {
		// ошибки закрытия Listener
		h.logger.Warn().Err(err).Msg("HTTP server Shutdown")
		_ = h.server.Close()
	}
}

// listenAddr returns the bound address, or nil before the listener is up.
func (h *httpServer) listenAddr() net.Addr {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.addr
}
