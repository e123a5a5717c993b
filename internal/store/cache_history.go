package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-agent-chat/internal/config"
	"github.com/MKhiriev/go-agent-chat/internal/logger"
	"github.com/MKhiriev/go-agent-chat/models"
)

const (
	historyKeyPattern = "conversation:*:history"
	scanBatchSize     = 100
)

func historyKey(conversationID string) string {
	return fmt.Sprintf("conversation:%s:history", conversationID)
}

// cachedHistory is the JSON value stored under a history key.
type cachedHistory struct {
	Messages     []models.PersistedMessage `json:"messages"`
	CachedAt     time.Time                 `json:"cached_at"`
	MessageCount int                       `json:"message_count"`
}

// redisHistoryCache stores conversation histories in redis with a TTL.
type redisHistoryCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *logger.Logger
}

// NewRedisHistoryCache connects to cfg.RedisAddress and verifies the
// connection with PING.
func NewRedisHistoryCache(ctx context.Context, cfg config.Cache, logger *logger.Logger) (HistoryCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddress,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("%w: %w", ErrCacheUnavailable, err)
	}
	logger.Info().Str("address", cfg.RedisAddress).Msg("connected to redis")

	return newRedisHistoryCache(client, cfg.TTL, logger), nil
}

func newRedisHistoryCache(client *redis.Client, ttl time.Duration, logger *logger.Logger) *redisHistoryCache {
	return &redisHistoryCache{client: client, ttl: ttl, logger: logger}
}

func (c *redisHistoryCache) Get(ctx context.Context, conversationID string) ([]models.PersistedMessage, bool, error) {
	raw, err := c.client.Get(ctx, historyKey(conversationID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: %w", ErrCacheUnavailable, err)
	}

	var entry cachedHistory
	if err = json.Unmarshal(raw, &entry); err != nil {
		// a corrupt entry is a miss; the next Set overwrites it
		c.logger.Warn().Err(err).Str("conversation_id", conversationID).Msg("dropping undecodable cache entry")
		return nil, false, nil
	}

	return entry.Messages, true, nil
}

func (c *redisHistoryCache) Set(ctx context.Context, conversationID string, messages []models.PersistedMessage) error {
	raw, err := json.Marshal(cachedHistory{
		Messages:     messages,
		CachedAt:     time.Now().UTC(),
		MessageCount: len(messages),
	})
	if err != nil {
		return fmt.Errorf("encode cached history: %w", err)
	}

	if err = c.client.Set(ctx, historyKey(conversationID), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrCacheUnavailable, err)
	}
	return nil
}

func (c *redisHistoryCache) Invalidate(ctx context.Context, conversationID string) error {
	if err := c.client.Del(ctx, historyKey(conversationID)).Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrCacheUnavailable, err)
	}
	return nil
}

// Stats counts cached histories with SCAN.
func (c *redisHistoryCache) Stats(ctx context.Context) (models.CacheStats, error) {
	stats := models.CacheStats{Enabled: true, TTLSeconds: int64(c.ttl / time.Second)}

	iter := c.client.Scan(ctx, 0, historyKeyPattern, scanBatchSize).Iterator()
	for iter.Next(ctx) {
		stats.ConversationKeys++
	}
	if err := iter.Err(); err != nil {
		return models.CacheStats{}, fmt.Errorf("%w: %w", ErrCacheUnavailable, err)
	}

	return stats, nil
}

func (c *redisHistoryCache) Close() error {
	return c.client.Close()
}

// noopHistoryCache is used when no redis address is configured.
type noopHistoryCache struct{}

func NewNoopHistoryCache() HistoryCache {
	return noopHistoryCache{}
}

func (noopHistoryCache) Get(context.Context, string) ([]models.PersistedMessage, bool, error) {
	return nil, false, nil
}

func (noopHistoryCache) Set(context.Context, string, []models.PersistedMessage) error { return nil }

func (noopHistoryCache) Invalidate(context.Context, string) error { return nil }

func (noopHistoryCache) Stats(context.Context) (models.CacheStats, error) {
	return models.CacheStats{}, nil
}

func (noopHistoryCache) Close() error { return nil }
