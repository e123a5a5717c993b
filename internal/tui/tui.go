// Package tui implements the terminal chat interface on top of bubbletea.
//
// The UI never mutates session state itself: key presses start service
// calls in tea.Cmd goroutines and the screen is redrawn from the snapshots
// the session store publishes.
package tui

import (
	"context"

	"github.com/MKhiriev/go-agent-chat/internal/logger"
	"github.com/MKhiriev/go-agent-chat/internal/service"
	"github.com/MKhiriev/go-agent-chat/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil || services.Store == nil {
		return nil, ErrNoServices
	}
	return &TUI{
		services:  services,
		buildInfo: buildInfo,
		logger:    logger.WithComponent("tui"),
	}, nil
}

// Run shows the chat screen until the user quits or ctx is cancelled.
// health is shown in the status line while nothing else is reported.
func (t *TUI) Run(ctx context.Context, health string) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	model := newChatModel(ctx, t.services, t.buildInfo, health, t.logger)
	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil && ctx.Err() != nil {
		// cancelled from outside
		return nil
	}
	return err
}
