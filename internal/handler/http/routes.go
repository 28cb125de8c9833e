package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)

	router.Get("/api/version", h.getVersion)

	// routes bound to a viewer
	router.Group(func(r chi.Router) {
		r.Use(h.withViewer)

		r.Post("/api/search", h.submitSearch)
		r.Get("/api/search", h.getSearch)
		r.Get("/api/search/stream", h.streamSearch)
	})

	// shared read-only routes
	router.Group(func(r chi.Router) {
		r.Use(withGZip)

		r.Get("/api/history", h.getHistory)
		r.Get("/api/trips", h.getTrips)
		r.Get("/api/trips/{tripID}", h.getTrip)
	})

	return router
}
