package main

import (
	"context"
	"fmt"
	"os"

	"github.com/owenmerry/skyscanner-flight-search-sub002/internal/adapter"
	"github.com/owenmerry/skyscanner-flight-search-sub002/internal/config"
	"github.com/owenmerry/skyscanner-flight-search-sub002/internal/handler"
	"github.com/owenmerry/skyscanner-flight-search-sub002/internal/logger"
	"github.com/owenmerry/skyscanner-flight-search-sub002/internal/server"
	"github.com/owenmerry/skyscanner-flight-search-sub002/internal/service"
	"github.com/owenmerry/skyscanner-flight-search-sub002/internal/store"
	"github.com/owenmerry/skyscanner-flight-search-sub002/internal/workers"
	"github.com/owenmerry/skyscanner-flight-search-sub002/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("flight-search-server")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = cfg.ValidateServer(); err != nil {
		log.Fatal().Err(err).Msg("invalid server config")
	}
	logger.SetLevel(cfg.App.LogLevel)

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	api, err := adapter.NewHTTPFlightAPI(cfg.Adapter, log.WithStr("component", "adapter"))
	if err != nil {
		log.Fatal().Err(err).Msg("error creating flight api adapter")
	}

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Error().Err(err).Msg("error closing storages")
		}
	}()

	var trips []models.Trip
	if cfg.Workers.TripsFile != "" {
		trips, err = config.LoadTrips(cfg.Workers.TripsFile)
		if err != nil {
			log.Fatal().Err(err).Str("file", cfg.Workers.TripsFile).Msg("error loading trips")
		}
		log.Info().Int("trips", len(trips)).Msg("dashboard trips loaded")
	}

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	services, err := service.NewServices(api, storages, trips, buildInfo, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}
	defer services.Sessions.CloseAll()

	jobs := []workers.Worker{
		workers.NewSessionPruner(services.Sessions, cfg.Workers.SessionIdleTimeout, log.WithStr("component", "pruner")),
	}
	// a nil *TripWatcher inside the interface would not be skipped by NewWorkers
	if services.Trips != nil {
		jobs = append(jobs, services.Trips)
	}
	background := workers.NewWorkers(jobs...)
	background.Run(ctx)
	defer background.Stop()

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log.GetChildLogger())
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	fmt.Printf("Build version: %s\n", orNotAvailable(buildVersion))
	fmt.Printf("Build date: %s\n", orNotAvailable(buildDate))
	fmt.Printf("Build commit: %s\n", orNotAvailable(buildCommit))
}

func orNotAvailable(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
