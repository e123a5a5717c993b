package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a development backend listen address in format [host]:[port]
//	-backend chatbot backend base URL used by the client
//	-d database DSN
//	-redis redis address of the history cache
//	-cache-ttl history cache TTL (e.g. "1h")
//	-c/-config json file path with configs
//	-user chat user id
//	-hydrate load persisted history when a conversation is selected
//	-list-limit conversation list page size
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-refresh-interval background conversation refresh interval
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("agent-chat", flag.ContinueOnError)

	var serverAddress NetAddress
	var backendAddress string
	var databaseDSN string
	var redisAddress string
	var cacheTTL time.Duration
	var jsonConfigPath string
	var userID string
	var hydrate bool
	var listLimit int
	var requestTimeout time.Duration
	var refreshInterval time.Duration

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&backendAddress, "backend", "", "Chatbot backend base URL")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&redisAddress, "redis", "", "Redis address host:port")
	fs.DurationVar(&cacheTTL, "cache-ttl", 0, "History cache TTL (e.g., 1h, 30m)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&userID, "user", "", "Chat user id")
	fs.BoolVar(&hydrate, "hydrate", false, "Load persisted history on conversation select")
	fs.IntVar(&listLimit, "list-limit", 0, "Conversation list page size")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&refreshInterval, "refresh-interval", 0, "Conversation refresh interval (e.g., 1m)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			UserID:         userID,
			HydrateHistory: hydrate,
			ListLimit:      listLimit,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Cache: Cache{
				RedisAddress: redisAddress,
				TTL:          cacheTTL,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    backendAddress,
			RequestTimeout: requestTimeout,
		},
		Workers:      Workers{RefreshInterval: refreshInterval},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
