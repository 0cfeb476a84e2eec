package main

import (
	"context"
	"fmt"

	"github.com/vkotlyar/account-keeper/internal/config"
	"github.com/vkotlyar/account-keeper/internal/handler"
	"github.com/vkotlyar/account-keeper/internal/logger"
	"github.com/vkotlyar/account-keeper/internal/media"
	"github.com/vkotlyar/account-keeper/internal/server"
	"github.com/vkotlyar/account-keeper/internal/service"
	"github.com/vkotlyar/account-keeper/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("account-keeper-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	// failing to reach the database is the sole fatal runtime condition
	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	storages := store.NewStorages(db, log)

	uploader, err := media.NewUploader(ctx, cfg.Media, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating media uploader")
	}

	services := service.NewServices(*storages, uploader, *cfg, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
