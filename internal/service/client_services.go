package service

import (
	"github.com/MKhiriev/go-agent-chat/internal/adapter"
	"github.com/MKhiriev/go-agent-chat/internal/config"
	"github.com/MKhiriev/go-agent-chat/internal/logger"
	"github.com/MKhiriev/go-agent-chat/internal/session"
	"github.com/MKhiriev/go-agent-chat/internal/utils"
)

// ConversationIDPrefix starts every client-generated conversation id.
const ConversationIDPrefix = "conv-"

// ClientServices bundles the client-side services sharing one session store.
type ClientServices struct {
	Store               *session.Store
	ConversationService ClientConversationService
	ChatService         ClientChatService
	StatusService       ClientStatusService
	RefreshJob          ClientRefreshJob
}

func NewClientServices(chatbotAdapter adapter.ChatbotAdapter, cfg config.ClientApp, logger *logger.Logger) *ClientServices {
	store := session.NewStore()
	messageIDs := utils.NewUUIDGenerator()

	conversations := NewClientConversationService(
		store,
		chatbotAdapter,
		utils.NewPrefixedUUIDGenerator(ConversationIDPrefix),
		cfg.UserID,
		cfg.ListLimit,
		logger,
	)

	var hydrator HistoryHydrator = NoopHistoryHydrator{}
	if cfg.HydrateHistory {
		hydrator = NewBackendHistoryHydrator(chatbotAdapter, messageIDs)
	}

	return &ClientServices{
		Store:               store,
		ConversationService: conversations,
		ChatService:         NewClientChatService(store, chatbotAdapter, conversations, hydrator, messageIDs, cfg.UserID, logger),
		StatusService:       NewClientStatusService(chatbotAdapter),
		RefreshJob:          NewClientRefreshJob(conversations),
	}
}
