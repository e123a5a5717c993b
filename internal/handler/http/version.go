package http

import (
	"net/http"

	"github.com/MKhiriev/go-agent-chat/internal/logger"
)

// getServerVersion answers with the bare version string, as text/plain.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := w.Write([]byte(h.services.AppInfoService.GetAppVersion(r.Context()))); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getServerVersion").Msg("error writing response")
	}
}

// health is polled by the chat client on start.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, h.services.AppInfoService.Health(r.Context()), http.StatusOK)
}
