package handler

import (
	"testing"

	"github.com/MKhiriev/go-agent-chat/internal/config"
	"github.com/MKhiriev/go-agent-chat/internal/logger"
	"github.com/MKhiriev/go-agent-chat/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandlers(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.ServerConfig
		wantErr error
	}{
		{name: "http address set", cfg: config.ServerConfig{HTTPAddress: "localhost:8000"}},
		{name: "no address", cfg: config.ServerConfig{}, wantErr: errNoHandlersAreCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handlers, err := NewHandlers(&service.Services{}, tt.cfg, logger.Nop())

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, handlers)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, handlers.HTTP)
		})
	}
}
