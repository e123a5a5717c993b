package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-agent-chat/internal/config"
	"github.com/MKhiriev/go-agent-chat/internal/logger"
)

// Storages groups the backend storage components passed to the service
// layer.
type Storages struct {
	ConversationStorage ConversationStorage
	MessageStorage      MessageStorage

	db    *DB
	cache HistoryCache
}

// NewStorages opens the database named by cfg.DB.DSN, applies migrations
// and, when cfg.Cache.RedisAddress is set, connects the history cache.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewDB(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	cache := NewNoopHistoryCache()
	if cfg.Cache.RedisAddress != "" {
		if cache, err = NewRedisHistoryCache(ctx, cfg.Cache, logger); err != nil {
			db.Close()
			return nil, fmt.Errorf("history cache: %w", err)
		}
	}

	return newStorages(db, cache, logger), nil
}

func newStorages(db *DB, cache HistoryCache, logger *logger.Logger) *Storages {
	conversations := NewConversationRepository(db, logger)

	return &Storages{
		ConversationStorage: NewConversationStorage(conversations, cache, logger),
		MessageStorage:      NewMessageStorage(NewMessageRepository(db, logger), conversations, cache, logger),
		db:                  db,
		cache:               cache,
	}
}

// Close releases the cache client and the database pool.
func (s *Storages) Close() error {
	return errors.Join(s.cache.Close(), s.db.Close())
}
