package models

// ChatRequest is the payload of POST /chat.
type ChatRequest struct {
	Message        string `json:"message"`
	UserID         string `json:"user_id"`
	ConversationID string `json:"conversation_id"`
}

// ChatResponse is the backend's answer to one chat turn.
type ChatResponse struct {
	// Response is the reply text shown to the user.
	Response string `json:"response"`

	// SourceAgentResponse is the raw answer of the final agent.
	SourceAgentResponse string `json:"source_agent_response"`

	// AgentWorkflow is the ordered trace of agents that produced Response.
	AgentWorkflow []AgentWorkflowStep `json:"agent_workflow"`

	ConversationID string `json:"conversation_id"`

	// ExecutionTime is the total server-side time of the turn in ms.
	ExecutionTime float64 `json:"execution_time"`
}
