// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-agent-chat/internal/config"
	"github.com/MKhiriev/go-agent-chat/internal/logger"
	"github.com/MKhiriev/go-agent-chat/internal/utils"
	"github.com/go-resty/resty/v2"
)

const traceIDHeader = "X-Trace-ID"

type httpChatbotAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPChatbotAdapter constructs an HTTP/REST implementation of
// [ChatbotAdapter]. It normalises the base URL from cfg.HTTPAddress (a
// missing scheme defaults to http) and bounds every request by
// cfg.RequestTimeout.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPChatbotAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ChatbotAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpChatbotAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger.WithComponent("adapter"),
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", errors.New("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// request starts a resty request bound to ctx, forwarding the trace id when
// the caller attached one.
func (h *httpChatbotAdapter) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		req.SetHeader(traceIDHeader, traceID)
	}
	return req
}

// execute performs req and maps every failure to a [*TransportError].
func (h *httpChatbotAdapter) execute(op string, req *resty.Request, method, path string) (*resty.Response, error) {
	resp, err := req.Execute(method, path)
	if err != nil {
		h.logger.Err(err).Str("op", op).Msg("backend request failed")
		return nil, networkError(op, err)
	}

	h.logger.Debug().
		Str("op", op).
		Str("method", method).
		Str("url", resp.Request.URL).
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time()).
		Send()

	if err = mapHTTPError(op, resp); err != nil {
		return nil, err
	}

	return resp, nil
}

func decodeJSON[T any](op string, resp *resty.Response) (T, error) {
	var out T
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return out, malformedBodyError(op, resp, err)
	}
	return out, nil
}
