package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-agent-chat/internal/adapter"
	"github.com/MKhiriev/go-agent-chat/internal/logger"
	"github.com/MKhiriev/go-agent-chat/internal/session"
	"github.com/MKhiriev/go-agent-chat/models"
	"golang.org/x/sync/singleflight"
)

// DefaultConversationTitle names conversations created without a title.
const DefaultConversationTitle = "New Conversation"

// idGenerator produces unique identifiers.
type idGenerator interface {
	Generate() string
}

type clientConversationService struct {
	store   *session.Store
	adapter adapter.ChatbotAdapter
	ids     idGenerator
	logger  *logger.Logger

	userID    string
	listLimit int
	listGroup singleflight.Group
}

// NewClientConversationService creates a ClientConversationService for userID. New
// conversation ids come from ids; listLimit bounds the page size of List.
func NewClientConversationService(
	store *session.Store,
	chatbotAdapter adapter.ChatbotAdapter,
	ids idGenerator,
	userID string,
	listLimit int,
	logger *logger.Logger,
) ClientConversationService {
	return &clientConversationService{
		store:     store,
		adapter:   chatbotAdapter,
		ids:       ids,
		logger:    logger.WithComponent("conversations"),
		userID:    userID,
		listLimit: listLimit,
	}
}

// List is shared by concurrent callers, so the request runs detached from
// the first caller's cancellation; the adapter's request timeout bounds it.
func (s *clientConversationService) List(ctx context.Context) error {
	sharedCtx := context.WithoutCancel(ctx)
	_, err, shared := s.listGroup.Do(s.userID, func() (any, error) {
		conversations, err := s.adapter.ListConversations(sharedCtx, s.userID, models.ListRequest{Limit: s.listLimit})
		if err != nil {
			s.fail("load conversations", err)
			return nil, err
		}

		s.store.ReplaceConversations(conversations)
		s.store.ClearError()
		s.logger.Debug().Int("count", len(conversations)).Msg("conversations listed")
		return nil, nil
	})
	if shared {
		s.logger.Debug().Msg("list request coalesced")
	}
	if err != nil {
		return fmt.Errorf("list conversations: %w", err)
	}

	return nil
}

func (s *clientConversationService) Create(ctx context.Context, title string) (models.Conversation, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		title = DefaultConversationTitle
	}

	end := s.store.BeginOperation()
	defer end()

	created, err := s.adapter.CreateConversation(ctx, models.CreateConversationRequest{
		ConversationID: s.ids.Generate(),
		UserID:         s.userID,
		Title:          title,
	})
	if err != nil {
		s.fail("create conversation", err)
		return models.Conversation{}, fmt.Errorf("create conversation: %w", err)
	}

	s.store.AddConversation(created)
	s.store.ClearError()
	s.logger.Info().Str("conversation_id", created.ConversationID).Msg("conversation created")

	return created, nil
}

func (s *clientConversationService) Select(conversationID string) error {
	if err := s.store.Select(conversationID); err != nil {
		return fmt.Errorf("select conversation %q: %w", conversationID, err)
	}
	return nil
}

func (s *clientConversationService) Rename(ctx context.Context, conversationID, title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil
	}

	end := s.store.BeginOperation()
	defer end()

	previous, ok := s.store.SetConversationTitle(conversationID, title)
	if !ok {
		return fmt.Errorf("rename conversation %q: %w", conversationID, session.ErrUnknownConversation)
	}

	updated, err := s.adapter.RenameConversation(ctx, conversationID, models.RenameConversationRequest{Title: title})
	if err != nil {
		s.store.SetConversationTitle(conversationID, previous)
		s.fail("rename conversation", err)
		return fmt.Errorf("rename conversation: %w", err)
	}

	if updated.ConversationID == conversationID {
		s.store.ReplaceConversation(updated)
	}
	s.store.ClearError()

	return nil
}

func (s *clientConversationService) Delete(ctx context.Context, conversationID string) error {
	end := s.store.BeginOperation()
	defer end()

	if err := s.adapter.DeleteConversation(ctx, conversationID); err != nil {
		s.fail("delete conversation", err)
		return fmt.Errorf("delete conversation: %w", err)
	}

	s.store.RemoveConversation(conversationID)
	s.store.ClearError()
	s.logger.Info().Str("conversation_id", conversationID).Msg("conversation deleted")

	return nil
}

func (s *clientConversationService) Stats(ctx context.Context, conversationID string) (models.ConversationStats, error) {
	stats, err := s.adapter.ConversationStats(ctx, conversationID)
	if err != nil {
		s.fail("load statistics", err)
		return models.ConversationStats{}, fmt.Errorf("conversation stats: %w", err)
	}

	s.store.ClearError()
	return stats, nil
}

func (s *clientConversationService) fail(action string, err error) {
	s.logger.Err(err).Str("action", action).Msg("backend operation failed")
	s.store.SetError(session.ErrorKindTransport, describeError(action, err))
}
