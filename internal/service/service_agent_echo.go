package service

import (
	"context"
	"strings"
)

// EchoAgentName is the agent recorded in every workflow produced by the
// development backend.
const EchoAgentName = "EchoAgent"

// EchoAgent answers with the user's own message. It stands in for the real
// agent pipeline during local development.
type EchoAgent struct{}

func NewEchoAgent() Agent {
	return EchoAgent{}
}

func (EchoAgent) Name() string {
	return EchoAgentName
}

func (EchoAgent) Respond(ctx context.Context, message string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return "Echo: " + strings.TrimSpace(message), nil
}
