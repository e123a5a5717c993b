package service

import (
	"github.com/MKhiriev/go-agent-chat/internal/config"
	"github.com/MKhiriev/go-agent-chat/internal/logger"
	"github.com/MKhiriev/go-agent-chat/internal/store"
)

// Services bundles the backend services behind the HTTP handlers.
type Services struct {
	ConversationService ConversationService
	ChatService         ChatService
	MessageService      MessageService
	AppInfoService      AppInfoService
}

func NewServices(storages *store.Storages, cfg config.ServerConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.Version, logger)
	if err != nil {
		return nil, err
	}

	conversations := NewConversationService(storages.ConversationStorage, storages.MessageStorage, logger)
	chat := NewChatService(storages.ConversationStorage, storages.MessageStorage, NewEchoAgent(), logger)

	return &Services{
		ConversationService: NewConversationValidationService().Wrap(conversations),
		ChatService:         NewChatValidationService().Wrap(chat),
		MessageService:      NewMessageValidationService().Wrap(NewMessageService(storages.MessageStorage, logger)),
		AppInfoService:      appInfo,
	}, nil
}
