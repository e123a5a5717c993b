package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-agent-chat/internal/adapter"
	"github.com/MKhiriev/go-agent-chat/models"
)

// HistoryPageSize is the number of persisted turns fetched on hydration.
const HistoryPageSize = 100

// NoopHistoryHydrator leaves transcripts empty: selecting a conversation
// always starts a fresh in-memory transcript.
type NoopHistoryHydrator struct{}

func (NoopHistoryHydrator) Hydrate(context.Context, string) ([]models.Message, error) {
	return nil, nil
}

type backendHistoryHydrator struct {
	adapter adapter.ChatbotAdapter
	ids     idGenerator
}

// NewBackendHistoryHydrator returns a HistoryHydrator that rebuilds the
// transcript from GET /messages/conversation/{id}. Each persisted turn
// becomes a user message followed by the assistant reply, if any.
func NewBackendHistoryHydrator(chatbotAdapter adapter.ChatbotAdapter, ids idGenerator) HistoryHydrator {
	return &backendHistoryHydrator{adapter: chatbotAdapter, ids: ids}
}

func (h *backendHistoryHydrator) Hydrate(ctx context.Context, conversationID string) ([]models.Message, error) {
	persisted, err := h.adapter.ListMessages(ctx, conversationID, models.ListRequest{Limit: HistoryPageSize})
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}

	messages := make([]models.Message, 0, 2*len(persisted))
	for _, p := range persisted {
		messages = append(messages, models.Message{
			ID:         h.ids.Generate(),
			Content:    p.Content,
			IsFromUser: true,
			Timestamp:  p.CreatedAt.Time,
		})

		if p.Response == nil {
			continue
		}
		messages = append(messages, models.Message{
			ID:             h.ids.Generate(),
			Content:        *p.Response,
			ProducingAgent: models.LastAgent(p.AgentWorkflow),
			Workflow:       p.AgentWorkflow,
			Timestamp:      p.CreatedAt.Time,
		})
	}

	return messages, nil
}
