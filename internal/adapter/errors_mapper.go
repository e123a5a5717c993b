package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// mapHTTPError converts a non-2xx response into a [*TransportError]. The
// message is "HTTP <code> <status text>", followed by the backend's
// "detail" field or the raw body when one is present.
func mapHTTPError(op string, resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	msg := fmt.Sprintf("HTTP %d %s", resp.StatusCode(), http.StatusText(resp.StatusCode()))
	if detail := errorDetail(resp.Body()); detail != "" {
		msg += ": " + detail
	}

	return &TransportError{Op: op, StatusCode: resp.StatusCode(), Message: msg}
}

func errorDetail(body []byte) string {
	raw := strings.TrimSpace(string(body))
	if raw == "" {
		return ""
	}

	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Detail) == 0 {
		return raw
	}

	var detail string
	if err := json.Unmarshal(envelope.Detail, &detail); err == nil {
		return detail
	}

	// validation errors carry a structured detail
	return string(envelope.Detail)
}

func networkError(op string, err error) error {
	return &TransportError{
		Op:         op,
		StatusCode: StatusNetworkFailure,
		Message:    "network error: " + err.Error(),
		Err:        err,
	}
}

func malformedBodyError(op string, resp *resty.Response, err error) error {
	return &TransportError{
		Op:         op,
		StatusCode: resp.StatusCode(),
		Message:    "malformed response body: " + err.Error(),
		Err:        err,
	}
}
