package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-agent-chat/models"
)

// ConversationRepository persists conversation records.
type ConversationRepository interface {
	CreateConversation(ctx context.Context, conversation models.Conversation) (models.Conversation, error)
	GetConversation(ctx context.Context, conversationID string) (models.Conversation, error)
	ListConversations(ctx context.Context, userID string, page models.ListRequest) ([]models.Conversation, error)
	UpdateTitle(ctx context.Context, conversationID, title string, at time.Time) (models.Conversation, error)
	TouchConversation(ctx context.Context, conversationID string, at time.Time) error
	// DeleteConversation removes the conversation together with its messages.
	DeleteConversation(ctx context.Context, conversationID string) error
}

// MessageRepository persists chat turns.
type MessageRepository interface {
	SaveMessage(ctx context.Context, message models.PersistedMessage) (models.PersistedMessage, error)
	// ListMessages returns turns oldest first. A zero page limit returns all.
	ListMessages(ctx context.Context, conversationID string, page models.ListRequest) ([]models.PersistedMessage, error)
}

// HistoryCache keeps recently read conversation histories.
type HistoryCache interface {
	Get(ctx context.Context, conversationID string) ([]models.PersistedMessage, bool, error)
	Set(ctx context.Context, conversationID string, messages []models.PersistedMessage) error
	Invalidate(ctx context.Context, conversationID string) error
	Stats(ctx context.Context) (models.CacheStats, error)
	Close() error
}

// ConversationStorage is the conversation persistence used by the service
// layer. Deleting a conversation also drops its cached history.
type ConversationStorage interface {
	Create(ctx context.Context, conversation models.Conversation) (models.Conversation, error)
	Get(ctx context.Context, conversationID string) (models.Conversation, error)
	List(ctx context.Context, userID string, page models.ListRequest) ([]models.Conversation, error)
	Rename(ctx context.Context, conversationID, title string) (models.Conversation, error)
	Delete(ctx context.Context, conversationID string) error
}

// MessageStorage is the message persistence used by the service layer.
// Reads go through the history cache when one is configured.
type MessageStorage interface {
	// Append saves a turn and bumps the conversation's updated_at.
	Append(ctx context.Context, message models.PersistedMessage) (models.PersistedMessage, error)
	List(ctx context.Context, conversationID string, page models.ListRequest) ([]models.PersistedMessage, error)
	All(ctx context.Context, conversationID string) ([]models.PersistedMessage, error)
	CacheStats(ctx context.Context) (models.CacheStats, error)
	InvalidateCache(ctx context.Context, conversationID string) error
}
