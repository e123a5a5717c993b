package http

import (
	"net/http"

	"github.com/MKhiriev/go-agent-chat/internal/app"
	"github.com/MKhiriev/go-agent-chat/models"
)

func (h *Handler) chat(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, "*Handler.chat", app.MsgInvalidRequestBody, err)
		return
	}

	resp, err := h.services.ChatService.Chat(r.Context(), req)
	if err != nil {
		writeError(w, r, "*Handler.chat", app.MsgChatFailed, err)
		return
	}

	writeJSON(w, r, resp, http.StatusOK)
}
