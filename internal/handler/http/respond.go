package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-agent-chat/internal/logger"
	"github.com/MKhiriev/go-agent-chat/internal/utils"
	"github.com/MKhiriev/go-agent-chat/models"
)

// writeError logs err and answers with the mapped status. Server-side
// failures hide the cause from the client.
func writeError(w http.ResponseWriter, r *http.Request, funcName, msg string, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", funcName).Msg(msg)
		utils.WriteDetail(w, msg, status)
		return
	}

	log.Debug().Err(err).Str("func", funcName).Int("status", status).Msg(msg)
	utils.WriteDetail(w, err.Error(), status)
}

func writeJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

// pageFromQuery reads ?limit= and ?offset=, falling back to defaultLimit.
func pageFromQuery(r *http.Request, defaultLimit int) (models.ListRequest, error) {
	page := models.ListRequest{Limit: defaultLimit}

	query := r.URL.Query()
	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return page, fmt.Errorf("%w: limit %q", ErrInvalidQueryParam, raw)
		}
		page.Limit = limit
	}
	if raw := query.Get("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil {
			return page, fmt.Errorf("%w: offset %q", ErrInvalidQueryParam, raw)
		}
		page.Offset = offset
	}

	return page, nil
}
