// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-agent-chat/internal/logger"
	"github.com/MKhiriev/go-agent-chat/models"
)

// messageStorage is the default [MessageStorage]. First pages of a history
// are served from the cache when it holds enough messages; every new
// message invalidates the cached history of its conversation.
type messageStorage struct {
	messages      MessageRepository
	conversations ConversationRepository
	cache         HistoryCache
	logger        *logger.Logger
	now           func() time.Time
}

func NewMessageStorage(messages MessageRepository, conversations ConversationRepository, cache HistoryCache, logger *logger.Logger) MessageStorage {
	return &messageStorage{
		messages:      messages,
		conversations: conversations,
		cache:         cache,
		logger:        logger,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

func (s *messageStorage) Append(ctx context.Context, message models.PersistedMessage) (models.PersistedMessage, error) {
	log := logger.FromContext(ctx)

	if message.CreatedAt.IsZero() {
		message.CreatedAt = models.NewTimestamp(s.now())
	}

	saved, err := s.messages.SaveMessage(ctx, message)
	if err != nil {
		return models.PersistedMessage{}, err
	}

	if err = s.conversations.TouchConversation(ctx, message.ConversationID, message.CreatedAt.Time); err != nil {
		log.Warn().Err(err).Str("conversation_id", message.ConversationID).Msg("updated_at not bumped")
	}
	if err = s.cache.Invalidate(ctx, message.ConversationID); err != nil {
		log.Warn().Err(err).Str("conversation_id", message.ConversationID).Msg("cache invalidation failed")
	}

	return saved, nil
}

// List serves first pages from the cache. Misses and cache errors fall back
// to the database; a first page read from the database is cached.
func (s *messageStorage) List(ctx context.Context, conversationID string, page models.ListRequest) ([]models.PersistedMessage, error) {
	log := logger.FromContext(ctx)
	firstPage := page.Offset == 0

	if firstPage {
		cached, ok, err := s.cache.Get(ctx, conversationID)
		switch {
		case err != nil:
			log.Warn().Err(err).Str("conversation_id", conversationID).Msg("cache read failed")
		case ok && page.Limit > 0 && len(cached) >= page.Limit:
			log.Debug().Str("conversation_id", conversationID).Msg("history cache hit")
			return cached[:page.Limit], nil
		}
	}

	messages, err := s.messages.ListMessages(ctx, conversationID, page)
	if err != nil {
		return nil, err
	}

	if firstPage {
		if err = s.cache.Set(ctx, conversationID, messages); err != nil {
			log.Warn().Err(err).Str("conversation_id", conversationID).Msg("cache write failed")
		}
	}

	return messages, nil
}

// All returns every message of the conversation straight from the database.
func (s *messageStorage) All(ctx context.Context, conversationID string) ([]models.PersistedMessage, error) {
	return s.messages.ListMessages(ctx, conversationID, models.ListRequest{})
}

func (s *messageStorage) CacheStats(ctx context.Context) (models.CacheStats, error) {
	return s.cache.Stats(ctx)
}

func (s *messageStorage) InvalidateCache(ctx context.Context, conversationID string) error {
	return s.cache.Invalidate(ctx, conversationID)
}
