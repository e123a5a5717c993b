package service

import (
	"context"

	"github.com/MKhiriev/go-agent-chat/models"
)

// ConversationService implements the conversation endpoints of the
// development backend.
type ConversationService interface {
	CreateConversation(ctx context.Context, req models.CreateConversationRequest) (models.Conversation, error)
	GetConversation(ctx context.Context, conversationID string) (models.Conversation, error)
	ListConversations(ctx context.Context, userID string, page models.ListRequest) ([]models.Conversation, error)
	RenameConversation(ctx context.Context, conversationID string, req models.RenameConversationRequest) (models.Conversation, error)
	DeleteConversation(ctx context.Context, conversationID string) error
	ConversationStats(ctx context.Context, conversationID string) (models.ConversationStats, error)
}

// ChatService answers chat turns and persists them.
type ChatService interface {
	Chat(ctx context.Context, req models.ChatRequest) (models.ChatResponse, error)
}

// MessageService exposes persisted history and its cache.
type MessageService interface {
	ListMessages(ctx context.Context, conversationID string, page models.ListRequest) ([]models.PersistedMessage, error)
	CacheStats(ctx context.Context) (models.CacheStats, error)
	InvalidateCache(ctx context.Context, conversationID string) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	Health(ctx context.Context) models.HealthStatus
}

// Agent produces the reply text of a chat turn.
type Agent interface {
	Name() string
	Respond(ctx context.Context, message string) (string, error)
}

// ConversationServiceWrapper decorates a ConversationService, e.g. with
// validation.
type ConversationServiceWrapper interface {
	Wrap(ConversationService) ConversationService
}

// ChatServiceWrapper decorates a ChatService.
type ChatServiceWrapper interface {
	Wrap(ChatService) ChatService
}

// MessageServiceWrapper decorates a MessageService.
type MessageServiceWrapper interface {
	Wrap(MessageService) MessageService
}
