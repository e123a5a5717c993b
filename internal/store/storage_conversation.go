package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-agent-chat/internal/logger"
	"github.com/MKhiriev/go-agent-chat/models"
)

// conversationStorage is the default [ConversationStorage]. It delegates to
// a [ConversationRepository] and keeps the history cache consistent.
type conversationStorage struct {
	repository ConversationRepository
	cache      HistoryCache
	logger     *logger.Logger
	now        func() time.Time
}

func NewConversationStorage(repository ConversationRepository, cache HistoryCache, logger *logger.Logger) ConversationStorage {
	return &conversationStorage{
		repository: repository,
		cache:      cache,
		logger:     logger,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Create stamps created_at when the caller left it empty.
func (s *conversationStorage) Create(ctx context.Context, conversation models.Conversation) (models.Conversation, error) {
	if conversation.CreatedAt.IsZero() {
		conversation.CreatedAt = models.NewTimestamp(s.now())
	}
	return s.repository.CreateConversation(ctx, conversation)
}

func (s *conversationStorage) Get(ctx context.Context, conversationID string) (models.Conversation, error) {
	return s.repository.GetConversation(ctx, conversationID)
}

func (s *conversationStorage) List(ctx context.Context, userID string, page models.ListRequest) ([]models.Conversation, error) {
	return s.repository.ListConversations(ctx, userID, page)
}

func (s *conversationStorage) Rename(ctx context.Context, conversationID, title string) (models.Conversation, error) {
	return s.repository.UpdateTitle(ctx, conversationID, title, s.now())
}

// Delete removes the conversation, then its cached history. A cache failure
// is logged and does not fail the delete.
func (s *conversationStorage) Delete(ctx context.Context, conversationID string) error {
	if err := s.repository.DeleteConversation(ctx, conversationID); err != nil {
		return err
	}

	if err := s.cache.Invalidate(ctx, conversationID); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("conversation_id", conversationID).Msg("cache invalidation failed")
	}
	return nil
}
