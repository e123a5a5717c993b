package models

// ConversationStats is the response of GET /conversations/{id}/stats.
//
// Two generations of the backend name the same figures differently; both
// sets of fields are decoded and [ConversationStats.Normalize] folds the
// legacy ones into the canonical fields.
type ConversationStats struct {
	ConversationID      string         `json:"conversation_id"`
	TotalMessages       int            `json:"total_messages"`
	AverageResponseTime float64        `json:"average_response_time"`
	AgentUsage          map[string]int `json:"agent_usage,omitempty"`
	CreatedAt           Timestamp      `json:"created_at"`
	LastActivity        Timestamp      `json:"last_activity"`

	UserMessages         int            `json:"user_messages,omitempty"`
	AgentResponses       int            `json:"agent_responses,omitempty"`
	AgentBreakdown       map[string]int `json:"agent_breakdown,omitempty"`
	AverageExecutionTime float64        `json:"average_execution_time,omitempty"`
	UpdatedAt            Timestamp      `json:"updated_at"`
}

// Normalize fills the canonical fields from their legacy counterparts when
// the canonical ones are empty.
func (s *ConversationStats) Normalize() {
	if len(s.AgentUsage) == 0 && len(s.AgentBreakdown) > 0 {
		s.AgentUsage = s.AgentBreakdown
	}
	if s.AverageResponseTime == 0 && s.AverageExecutionTime != 0 {
		s.AverageResponseTime = s.AverageExecutionTime
	}
	if s.LastActivity.IsZero() && !s.UpdatedAt.IsZero() {
		s.LastActivity = s.UpdatedAt
	}
}

// HealthStatus is the response of GET /health.
type HealthStatus struct {
	Status  string `json:"status"`
	Service string `json:"service,omitempty"`
	Version string `json:"version,omitempty"`
}
