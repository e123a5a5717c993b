// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// chat client and the development backend. It is populated by merging
// built-in defaults, environment variables, command-line flags and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds client application settings: the user identity, list
	// paging and optional history hydration.
	App App `envPrefix:"APP_"`

	// Storage holds persistence settings of the development backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the listen address and timeout of the development backend.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the chatbot backend address used by the client transport.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background client jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds client application-level configuration.
type App struct {
	// UserID identifies the chat user towards the backend.
	// Env: APP_USER_ID
	UserID string `env:"USER_ID"`

	// HydrateHistory enables loading the persisted transcript of a
	// conversation from the backend when it is selected.
	// Env: APP_HYDRATE_HISTORY
	HydrateHistory bool `env:"HYDRATE_HISTORY"`

	// ListLimit is the page size used when listing conversations (1..100).
	// Env: APP_LIST_LIMIT
	ListLimit int `env:"LIST_LIMIT"`

	// Version is reported by the development backend's health endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the persistence settings of the development backend.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// Cache holds the optional message-history cache settings.
	Cache Cache `envPrefix:"CACHE_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects both the driver and the database: "postgres://..." and
	// "postgresql://..." DSNs open PostgreSQL through pgx, anything else is
	// treated as an SQLite file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Cache holds settings of the redis-backed history cache.
type Cache struct {
	// RedisAddress is the host:port of the redis server. Empty disables
	// caching.
	// Env: STORAGE_CACHE_REDIS_ADDRESS
	RedisAddress string `env:"REDIS_ADDRESS"`

	// TTL is how long a cached conversation history stays valid.
	// Env: STORAGE_CACHE_TTL
	TTL time.Duration `env:"TTL"`
}

// Server holds network and timeout settings for the development backend.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the client transport settings.
type Adapter struct {
	// HTTPAddress is the base URL of the chatbot backend. A missing scheme
	// defaults to http.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background client jobs.
type Workers struct {
	// RefreshInterval is how often the conversation list is re-fetched in
	// the background.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources in the following priority order (last source wins
// for non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			UserID:    "default_user",
			ListLimit: 50,
			Version:   "1.0.0",
		},
		Storage: Storage{
			DB:    DB{DSN: "chatbot.db"},
			Cache: Cache{TTL: time.Hour},
		},
		Server: Server{
			HTTPAddress:    "localhost:8000",
			RequestTimeout: 30 * time.Second,
		},
		Adapter: Adapter{
			HTTPAddress:    "http://localhost:8000",
			RequestTimeout: 30 * time.Second,
		},
		Workers: Workers{
			RefreshInterval: time.Minute,
		},
	}
}
