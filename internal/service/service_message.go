package service

import (
	"context"

	"github.com/MKhiriev/go-agent-chat/internal/logger"
	"github.com/MKhiriev/go-agent-chat/internal/store"
	"github.com/MKhiriev/go-agent-chat/models"
)

type messageService struct {
	messages store.MessageStorage

	logger *logger.Logger
}

func NewMessageService(messages store.MessageStorage, logger *logger.Logger) MessageService {
	return &messageService{
		messages: messages,
		logger:   logger,
	}
}

func (s *messageService) ListMessages(ctx context.Context, conversationID string, page models.ListRequest) ([]models.PersistedMessage, error) {
	return s.messages.List(ctx, conversationID, page)
}

func (s *messageService) CacheStats(ctx context.Context) (models.CacheStats, error) {
	return s.messages.CacheStats(ctx)
}

func (s *messageService) InvalidateCache(ctx context.Context, conversationID string) error {
	return s.messages.InvalidateCache(ctx, conversationID)
}
