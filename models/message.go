// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ErrorHandlerAgent is the producing agent attached to the synthetic reply
// that is inserted into the transcript when a chat turn fails.
const ErrorHandlerAgent = "ErrorHandler"

// AgentWorkflowStep records one backend sub-agent's participation in
// producing a reply. Steps are ordered by execution.
type AgentWorkflowStep struct {
	// Agent is the name of the sub-agent (e.g. "RouterAgent").
	Agent string `json:"agent"`

	// Decision is the optional routing decision taken by the agent.
	Decision *string `json:"decision,omitempty"`

	// ExecutionTimeMs is the time the agent spent, in milliseconds.
	ExecutionTimeMs float64 `json:"execution_time"`
}

// Message is one entry of the in-memory transcript of the active
// conversation. Messages are never persisted by the client.
type Message struct {
	// ID is generated on the client and is unique within the session.
	ID string

	// Content is the message text.
	Content string

	// IsFromUser is true for messages typed by the user.
	IsFromUser bool

	// ProducingAgent names the agent that produced an assistant reply.
	// Empty for user messages and for replies without a workflow trace.
	ProducingAgent string

	// Workflow is the ordered agent trace behind an assistant reply.
	Workflow []AgentWorkflowStep

	// Timestamp is the local time the message was appended.
	Timestamp time.Time
}

// Clone returns a copy of m that shares no mutable state with it.
func (m Message) Clone() Message {
	c := m
	if m.Workflow != nil {
		c.Workflow = make([]AgentWorkflowStep, len(m.Workflow))
		for i, step := range m.Workflow {
			c.Workflow[i] = step
			if step.Decision != nil {
				d := *step.Decision
				c.Workflow[i].Decision = &d
			}
		}
	}
	return c
}

// LastAgent returns the agent of the final step of workflow, or an empty
// string when the trace is empty.
func LastAgent(workflow []AgentWorkflowStep) string {
	if len(workflow) == 0 {
		return ""
	}
	return workflow[len(workflow)-1].Agent
}

// PersistedMessage is a chat turn as stored by the backend and returned by
// GET /messages/conversation/{id}. One record holds both the user's message
// (Content) and the assistant's reply (Response).
type PersistedMessage struct {
	ID                  int64               `json:"id"`
	ConversationID      string              `json:"conversation_id"`
	Content             string              `json:"content"`
	Response            *string             `json:"response"`
	SourceAgent         *string             `json:"source_agent"`
	SourceAgentResponse *string             `json:"source_agent_response"`
	AgentWorkflow       []AgentWorkflowStep `json:"agent_workflow"`
	CreatedAt           Timestamp           `json:"created_at"`
	ExecutionTime       *float64            `json:"execution_time"`
}
