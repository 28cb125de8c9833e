package service

import (
	"github.com/owenmerry/skyscanner-flight-search-sub002/internal/adapter"
	"github.com/owenmerry/skyscanner-flight-search-sub002/internal/config"
	"github.com/owenmerry/skyscanner-flight-search-sub002/internal/logger"
	"github.com/owenmerry/skyscanner-flight-search-sub002/internal/store"
	"github.com/owenmerry/skyscanner-flight-search-sub002/models"
)

// Services groups everything the HTTP handlers and workers depend on.
type Services struct {
	Sessions SessionService
	History  HistoryService
	AppInfo  AppInfoService
	// Trips is nil when no trips file is configured.
	Trips *TripWatcher
}

func NewServices(api adapter.FlightAPI, storages *store.Storages, trips []models.Trip, buildInfo models.AppBuildInfo, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, err
	}

	history := NewHistoryService(storages.SearchResults, logger)

	interactive := InteractiveOptions(cfg.Search, cfg.Adapter)
	sessions := NewSearchSessions(func() SearchClient {
		return NewAsyncSearchClient(api, interactive, history, logger.WithStr("component", "search"))
	}, logger)

	services := &Services{
		Sessions: sessions,
		History:  history,
		AppInfo:  appInfo,
	}

	if len(trips) > 0 {
		background := BackgroundOptions(cfg.Search, cfg.Adapter)
		services.Trips = NewTripWatcher(trips, func() SearchClient {
			return NewAsyncSearchClient(api, background, history, logger.WithStr("component", "trips"))
		}, cfg.Workers.RefreshInterval, logger)
	}

	return services, nil
}
