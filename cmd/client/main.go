package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/owenmerry/skyscanner-flight-search-sub002/internal/adapter"
	"github.com/owenmerry/skyscanner-flight-search-sub002/internal/config"
	"github.com/owenmerry/skyscanner-flight-search-sub002/internal/logger"
	"github.com/owenmerry/skyscanner-flight-search-sub002/internal/service"
	"github.com/owenmerry/skyscanner-flight-search-sub002/internal/store"
	"github.com/owenmerry/skyscanner-flight-search-sub002/internal/tui"
	"github.com/owenmerry/skyscanner-flight-search-sub002/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewClientLogger("flight-search-client")
	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	logger.SetLevel(cfg.App.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	api, err := adapter.NewHTTPFlightAPI(cfg.Adapter, log.WithStr("component", "adapter"))
	if err != nil {
		log.Fatal().Err(err).Msg("create flight api adapter")
	}

	// history is optional for the terminal client
	var history service.HistoryService
	localStorage, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Error().Err(err).Msg("local history is disabled")
	} else {
		defer localStorage.Close()
		history = service.NewHistoryService(localStorage.SearchResults, log)
	}

	var sink service.ResultSink
	if history != nil {
		sink = history
	}
	client := service.NewAsyncSearchClient(api, service.InteractiveOptions(cfg.Search, cfg.Adapter), sink, log.WithStr("component", "search"))
	defer client.Close()

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	ui := tui.New(client, history, cfg.ExportDir, buildInfo, log)
	if err = ui.Run(ctx); err != nil {
		log.Error().Err(err).Msg("client run error")
	}
}
