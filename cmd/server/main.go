package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-agent-chat/internal/config"
	"github.com/MKhiriev/go-agent-chat/internal/handler"
	"github.com/MKhiriev/go-agent-chat/internal/logger"
	"github.com/MKhiriev/go-agent-chat/internal/server"
	"github.com/MKhiriev/go-agent-chat/internal/service"
	"github.com/MKhiriev/go-agent-chat/internal/store"
	"github.com/MKhiriev/go-agent-chat/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	for _, line := range models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).Lines() {
		fmt.Println(line)
	}

	log := logger.NewLogger("agent-chat-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
