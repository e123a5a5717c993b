package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-agent-chat/internal/logger"
	"github.com/MKhiriev/go-agent-chat/internal/store"
	"github.com/MKhiriev/go-agent-chat/models"
)

type conversationService struct {
	conversations store.ConversationStorage
	messages      store.MessageStorage

	logger *logger.Logger
}

func NewConversationService(conversations store.ConversationStorage, messages store.MessageStorage, logger *logger.Logger) ConversationService {
	return &conversationService{
		conversations: conversations,
		messages:      messages,
		logger:        logger,
	}
}

func (s *conversationService) CreateConversation(ctx context.Context, req models.CreateConversationRequest) (models.Conversation, error) {
	return s.conversations.Create(ctx, models.Conversation{
		ConversationID: req.ConversationID,
		UserID:         req.UserID,
		Title:          req.Title,
	})
}

func (s *conversationService) GetConversation(ctx context.Context, conversationID string) (models.Conversation, error) {
	return s.conversations.Get(ctx, conversationID)
}

func (s *conversationService) ListConversations(ctx context.Context, userID string, page models.ListRequest) ([]models.Conversation, error) {
	return s.conversations.List(ctx, userID, page)
}

func (s *conversationService) RenameConversation(ctx context.Context, conversationID string, req models.RenameConversationRequest) (models.Conversation, error) {
	return s.conversations.Rename(ctx, conversationID, req.Title)
}

func (s *conversationService) DeleteConversation(ctx context.Context, conversationID string) error {
	return s.conversations.Delete(ctx, conversationID)
}

// ConversationStats aggregates every persisted turn of the conversation.
// Both the current and the legacy field names are filled.
func (s *conversationService) ConversationStats(ctx context.Context, conversationID string) (models.ConversationStats, error) {
	conversation, err := s.conversations.Get(ctx, conversationID)
	if err != nil {
		return models.ConversationStats{}, err
	}

	messages, err := s.messages.All(ctx, conversationID)
	if err != nil {
		return models.ConversationStats{}, fmt.Errorf("load messages for stats: %w", err)
	}

	return aggregateStats(conversation, messages), nil
}

func aggregateStats(conversation models.Conversation, messages []models.PersistedMessage) models.ConversationStats {
	stats := models.ConversationStats{
		ConversationID: conversation.ConversationID,
		TotalMessages:  len(messages),
		CreatedAt:      conversation.CreatedAt,
		LastActivity:   conversation.UpdatedAt,
		UpdatedAt:      conversation.UpdatedAt,
		AgentUsage:     make(map[string]int),
	}
	if stats.LastActivity.IsZero() {
		stats.LastActivity = conversation.CreatedAt
	}

	var (
		totalTime float64
		timed     int
	)
	for _, m := range messages {
		if m.Response != nil {
			stats.UserMessages++
		}
		if m.SourceAgent != nil && *m.SourceAgent != "" {
			stats.AgentResponses++
			stats.AgentUsage[*m.SourceAgent]++
		}
		if m.ExecutionTime != nil && *m.ExecutionTime > 0 {
			totalTime += *m.ExecutionTime
			timed++
		}
	}

	if timed > 0 {
		stats.AverageResponseTime = totalTime / float64(timed)
	}
	stats.AverageExecutionTime = stats.AverageResponseTime
	stats.AgentBreakdown = stats.AgentUsage

	return stats
}
