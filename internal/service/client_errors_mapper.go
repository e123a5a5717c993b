// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-agent-chat/internal/adapter"
)

// describeError turns a transport failure into the message shown to the
// user, e.g. "Could not send message: backend is unreachable".
func describeError(action string, err error) string {
	var terr *adapter.TransportError

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Sprintf("Could not %s: request timed out", action)
	case errors.Is(err, context.Canceled):
		return fmt.Sprintf("Could not %s: request cancelled", action)
	case errors.As(err, &terr) && terr.IsNetworkFailure():
		return fmt.Sprintf("Could not %s: backend is unreachable", action)
	case errors.As(err, &terr):
		return fmt.Sprintf("Could not %s: %s", action, terr.Message)
	default:
		return fmt.Sprintf("Could not %s: %v", action, err)
	}
}
