package config

import (
	"fmt"
	"time"
)

// ServerConfig is the configuration view of the development backend.
type ServerConfig struct {
	// HTTPAddress is the listen address in host:port form.
	HTTPAddress string
	// RequestTimeout bounds every inbound request.
	RequestTimeout time.Duration
	// Version is reported by GET /health.
	Version string
	// Storage holds database and cache settings.
	Storage Storage
}

// GetServerConfig builds and validates the development backend view of the
// merged structured configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := newServerConfig(cfg)
	return serverCfg, serverCfg.validate()
}

func newServerConfig(cfg *StructuredConfig) *ServerConfig {
	return &ServerConfig{
		HTTPAddress:    cfg.Server.HTTPAddress,
		RequestTimeout: cfg.Server.RequestTimeout,
		Version:        cfg.App.Version,
		Storage:        cfg.Storage,
	}
}
