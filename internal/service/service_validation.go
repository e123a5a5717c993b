package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-agent-chat/internal/validators"
	"github.com/MKhiriev/go-agent-chat/models"
)

// ConversationValidationService validates requests before passing them to
// the wrapped ConversationService.
type ConversationValidationService struct {
	inner     ConversationService
	validator validators.Validator
}

func NewConversationValidationService() ConversationServiceWrapper {
	return &ConversationValidationService{
		validator: validators.NewChatValidator(),
	}
}

func (v *ConversationValidationService) Wrap(inner ConversationService) ConversationService {
	v.inner = inner
	return v
}

func (v *ConversationValidationService) CreateConversation(ctx context.Context, req models.CreateConversationRequest) (models.Conversation, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Conversation{}, fmt.Errorf("invalid create request: %w", err)
	}
	return v.inner.CreateConversation(ctx, req)
}

func (v *ConversationValidationService) GetConversation(ctx context.Context, conversationID string) (models.Conversation, error) {
	return v.inner.GetConversation(ctx, conversationID)
}

func (v *ConversationValidationService) ListConversations(ctx context.Context, userID string, page models.ListRequest) ([]models.Conversation, error) {
	if err := v.validator.Validate(ctx, page, validators.FieldLimit, validators.FieldOffset); err != nil {
		return nil, fmt.Errorf("invalid page: %w", err)
	}
	return v.inner.ListConversations(ctx, userID, page)
}

func (v *ConversationValidationService) RenameConversation(ctx context.Context, conversationID string, req models.RenameConversationRequest) (models.Conversation, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Conversation{}, fmt.Errorf("invalid rename request: %w", err)
	}
	return v.inner.RenameConversation(ctx, conversationID, req)
}

func (v *ConversationValidationService) DeleteConversation(ctx context.Context, conversationID string) error {
	return v.inner.DeleteConversation(ctx, conversationID)
}

func (v *ConversationValidationService) ConversationStats(ctx context.Context, conversationID string) (models.ConversationStats, error) {
	return v.inner.ConversationStats(ctx, conversationID)
}

// ChatValidationService validates chat turns before passing them to the
// wrapped ChatService.
type ChatValidationService struct {
	inner     ChatService
	validator validators.Validator
}

func NewChatValidationService() ChatServiceWrapper {
	return &ChatValidationService{
		validator: validators.NewChatValidator(),
	}
}

func (v *ChatValidationService) Wrap(inner ChatService) ChatService {
	v.inner = inner
	return v
}

func (v *ChatValidationService) Chat(ctx context.Context, req models.ChatRequest) (models.ChatResponse, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.ChatResponse{}, fmt.Errorf("invalid chat request: %w", err)
	}
	return v.inner.Chat(ctx, req)
}

// MessageValidationService checks page bounds before passing requests to
// the wrapped MessageService.
type MessageValidationService struct {
	inner     MessageService
	validator validators.Validator
}

func NewMessageValidationService() MessageServiceWrapper {
	return &MessageValidationService{
		validator: validators.NewChatValidator(),
	}
}

func (v *MessageValidationService) Wrap(inner MessageService) MessageService {
	v.inner = inner
	return v
}

func (v *MessageValidationService) ListMessages(ctx context.Context, conversationID string, page models.ListRequest) ([]models.PersistedMessage, error) {
	if err := v.validator.Validate(ctx, page, validators.FieldMessagesLimit, validators.FieldOffset); err != nil {
		return nil, fmt.Errorf("invalid page: %w", err)
	}
	return v.inner.ListMessages(ctx, conversationID, page)
}

func (v *MessageValidationService) CacheStats(ctx context.Context) (models.CacheStats, error) {
	return v.inner.CacheStats(ctx)
}

func (v *MessageValidationService) InvalidateCache(ctx context.Context, conversationID string) error {
	return v.inner.InvalidateCache(ctx, conversationID)
}
