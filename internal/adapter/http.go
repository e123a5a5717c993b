package adapter

import (
	"context"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-agent-chat/models"
	"github.com/go-resty/resty/v2"
)

const (
	opSendChat           = "send chat"
	opCreateConversation = "create conversation"
	opListConversations  = "list conversations"
	opRenameConversation = "rename conversation"
	opDeleteConversation = "delete conversation"
	opConversationStats  = "conversation stats"
	opListMessages       = "list messages"
	opHealth             = "health check"
)

// SendChat implements [ChatbotAdapter] via POST /chat.
func (h *httpChatbotAdapter) SendChat(ctx context.Context, req models.ChatRequest) (models.ChatResponse, error) {
	resp, err := h.execute(opSendChat, h.request(ctx).SetBody(req), http.MethodPost, "/chat")
	if err != nil {
		return models.ChatResponse{}, err
	}

	return decodeJSON[models.ChatResponse](opSendChat, resp)
}

// CreateConversation implements [ChatbotAdapter] via POST /conversations.
func (h *httpChatbotAdapter) CreateConversation(ctx context.Context, req models.CreateConversationRequest) (models.Conversation, error) {
	resp, err := h.execute(opCreateConversation, h.request(ctx).SetBody(req), http.MethodPost, "/conversations")
	if err != nil {
		return models.Conversation{}, err
	}

	return decodeJSON[models.Conversation](opCreateConversation, resp)
}

// ListConversations implements [ChatbotAdapter] via
// GET /conversations/user/{userId}?limit=&offset=.
func (h *httpChatbotAdapter) ListConversations(ctx context.Context, userID string, page models.ListRequest) ([]models.Conversation, error) {
	req := withPage(h.request(ctx), page).SetPathParam("userId", userID)

	resp, err := h.execute(opListConversations, req, http.MethodGet, "/conversations/user/{userId}")
	if err != nil {
		return nil, err
	}

	conversations, err := decodeJSON[[]models.Conversation](opListConversations, resp)
	if err != nil {
		return nil, err
	}
	if conversations == nil {
		conversations = []models.Conversation{}
	}

	return conversations, nil
}

// RenameConversation implements [ChatbotAdapter] via
// PUT /conversations/{id}/title. The title travels in the JSON body and is
// mirrored as a query parameter for backends that read it from there.
func (h *httpChatbotAdapter) RenameConversation(ctx context.Context, conversationID string, req models.RenameConversationRequest) (models.Conversation, error) {
	r := h.request(ctx).
		SetPathParam("id", conversationID).
		SetQueryParam("title", req.Title).
		SetBody(req)

	resp, err := h.execute(opRenameConversation, r, http.MethodPut, "/conversations/{id}/title")
	if err != nil {
		return models.Conversation{}, err
	}

	return decodeJSON[models.Conversation](opRenameConversation, resp)
}

// DeleteConversation implements [ChatbotAdapter] via DELETE /conversations/{id}.
// Any response body is ignored.
func (h *httpChatbotAdapter) DeleteConversation(ctx context.Context, conversationID string) error {
	req := h.request(ctx).SetPathParam("id", conversationID)

	_, err := h.execute(opDeleteConversation, req, http.MethodDelete, "/conversations/{id}")
	return err
}

// ConversationStats implements [ChatbotAdapter] via GET /conversations/{id}/stats.
func (h *httpChatbotAdapter) ConversationStats(ctx context.Context, conversationID string) (models.ConversationStats, error) {
	req := h.request(ctx).SetPathParam("id", conversationID)

	resp, err := h.execute(opConversationStats, req, http.MethodGet, "/conversations/{id}/stats")
	if err != nil {
		return models.ConversationStats{}, err
	}

	stats, err := decodeJSON[models.ConversationStats](opConversationStats, resp)
	if err != nil {
		return models.ConversationStats{}, err
	}
	stats.Normalize()

	return stats, nil
}

// ListMessages implements [ChatbotAdapter] via
// GET /messages/conversation/{id}?limit=&offset=.
func (h *httpChatbotAdapter) ListMessages(ctx context.Context, conversationID string, page models.ListRequest) ([]models.PersistedMessage, error) {
	req := withPage(h.request(ctx), page).SetPathParam("id", conversationID)

	resp, err := h.execute(opListMessages, req, http.MethodGet, "/messages/conversation/{id}")
	if err != nil {
		return nil, err
	}

	messages, err := decodeJSON[[]models.PersistedMessage](opListMessages, resp)
	if err != nil {
		return nil, err
	}
	if messages == nil {
		messages = []models.PersistedMessage{}
	}

	return messages, nil
}

// Health implements [ChatbotAdapter] via GET /health.
func (h *httpChatbotAdapter) Health(ctx context.Context) (models.HealthStatus, error) {
	resp, err := h.execute(opHealth, h.request(ctx), http.MethodGet, "/health")
	if err != nil {
		return models.HealthStatus{}, err
	}

	return decodeJSON[models.HealthStatus](opHealth, resp)
}

func withPage(req *resty.Request, page models.ListRequest) *resty.Request {
	if page.Limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(page.Limit))
	}
	if page.Offset > 0 {
		req.SetQueryParam("offset", strconv.Itoa(page.Offset))
	}
	return req
}
