package service

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/MKhiriev/go-agent-chat/internal/logger"
	"github.com/MKhiriev/go-agent-chat/internal/mock"
	"github.com/MKhiriev/go-agent-chat/internal/session"
	"github.com/MKhiriev/go-agent-chat/models"
	"go.uber.org/mock/gomock"
)

const testUserID = "user-1"

// seqIDs выдаёт предсказуемые идентификаторы: prefix1, prefix2, ...
type seqIDs struct {
	prefix string
	n      atomic.Int64
}

func (g *seqIDs) Generate() string {
	return fmt.Sprintf("%s%d", g.prefix, g.n.Add(1))
}

func testConv(id, title string) models.Conversation {
	return models.Conversation{ConversationID: id, UserID: testUserID, Title: title}
}

func newTestConversationSvc(t *testing.T, ctrl *gomock.Controller) (*clientConversationService, *mock.MockChatbotAdapter, *session.Store) {
	t.Helper()

	adapter := mock.NewMockChatbotAdapter(ctrl)
	store := session.NewStore()
	svc := NewClientConversationService(store, adapter, &seqIDs{prefix: "conv-"}, testUserID, 50, logger.Nop())

	return svc.(*clientConversationService), adapter, store
}

func newTestChatSvc(t *testing.T, ctrl *gomock.Controller) (*clientChatService, *mock.MockChatbotAdapter, *session.Store) {
	t.Helper()

	conversations, adapter, store := newTestConversationSvc(t, ctrl)
	svc := NewClientChatService(store, adapter, conversations, nil, &seqIDs{prefix: "msg-"}, testUserID, logger.Nop())

	return svc.(*clientChatService), adapter, store
}

func strPtr(s string) *string { return &s }
