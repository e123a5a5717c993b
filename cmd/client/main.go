package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-agent-chat/internal/adapter"
	"github.com/MKhiriev/go-agent-chat/internal/client"
	"github.com/MKhiriev/go-agent-chat/internal/config"
	"github.com/MKhiriev/go-agent-chat/internal/logger"
	"github.com/MKhiriev/go-agent-chat/internal/service"
	"github.com/MKhiriev/go-agent-chat/internal/tui"
	"github.com/MKhiriev/go-agent-chat/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	log := logger.NewClientLogger("agent-chat-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	chatbotAdapter, err := adapter.NewHTTPChatbotAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create chatbot adapter")
	}

	services := service.NewClientServices(chatbotAdapter, cfg.App, log)

	ui, err := tui.New(services, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
