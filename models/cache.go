package models

// CacheStats is the response payload of GET /cache/stats.
type CacheStats struct {
	// Enabled is false when the backend runs without a history cache.
	Enabled bool `json:"enabled"`

	// ConversationKeys is the number of cached conversation histories.
	ConversationKeys int `json:"conversation_keys"`

	// TTLSeconds is the expiry applied to new cache entries.
	TTLSeconds int64 `json:"ttl_seconds"`
}
