package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-agent-chat/internal/config"
	"github.com/MKhiriev/go-agent-chat/internal/logger"
	"github.com/MKhiriev/go-agent-chat/internal/service"
	"golang.org/x/sync/errgroup"
)

// App is the chat client process: it loads the initial state, keeps the
// conversation list fresh in the background and hands the terminal to the UI.
type App struct {
	services *service.ClientServices
	ui       UI
	workers  config.ClientWorkers
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, workers config.ClientWorkers, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, ErrNotConfigured
	}

	return &App{
		services: services,
		ui:       ui,
		workers:  workers,
		logger:   logger.WithComponent("client-app"),
	}, nil
}

// Run blocks until the UI exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	health := a.startup(ctx)

	a.services.RefreshJob.Start(ctx, a.workers.RefreshInterval)
	defer a.services.RefreshJob.Stop()

	if err := a.ui.Run(ctx, health); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

// startup probes the backend and loads the first page of conversations in
// parallel. Neither failure is fatal: a failed list is already reported
// through the session error slot and the UI shows it.
func (a *App) startup(ctx context.Context) string {
	var health string

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		status, err := a.services.StatusService.Health(gctx)
		if err != nil {
			a.logger.Warn().Err(err).Msg("backend health check failed")
			health = "Backend unavailable"
			return nil
		}
		health = describeHealth(status.Status, status.Service, status.Version)
		return nil
	})
	g.Go(func() error {
		if err := a.services.ConversationService.List(gctx); err != nil {
			a.logger.Warn().Err(err).Msg("initial conversation list failed")
		}
		return nil
	})
	_ = g.Wait()

	return health
}

func describeHealth(status, serviceName, version string) string {
	s := "Backend " + status
	if serviceName != "" {
		s += " • " + serviceName
	}
	if version != "" {
		s += " " + version
	}
	return s
}
