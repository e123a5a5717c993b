package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-agent-chat/models"
)

const (
	conversationsTable = "conversations"
	messagesTable      = "messages"

	conversationsOrder = "COALESCE(c.updated_at, c.created_at) DESC"
	messagesOrder      = "created_at ASC, id ASC"
)

var conversationColumns = []string{
	"c.conversation_id",
	"c.user_id",
	"COALESCE(c.title, '')",
	"c.created_at",
	"c.updated_at",
}

var messageColumns = []string{
	"id",
	"conversation_id",
	"content",
	"response",
	"source_agent",
	"source_agent_response",
	"agent_workflow",
	"created_at",
	"execution_time",
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// selectConversations selects conversation records with their computed
// message count.
func selectConversations(b sq.StatementBuilderType) sq.SelectBuilder {
	count := sq.Select("COUNT(*)").
		From(messagesTable + " m").
		Where("m.conversation_id = c.conversation_id")

	return b.Select(conversationColumns...).
		Column(sq.Alias(count, "message_count")).
		From(conversationsTable + " c")
}

func selectMessages(b sq.StatementBuilderType) sq.SelectBuilder {
	return b.Select(messageColumns...).From(messagesTable)
}

func paginate(q sq.SelectBuilder, page models.ListRequest) sq.SelectBuilder {
	if page.Limit > 0 {
		q = q.Limit(uint64(page.Limit))
	}
	if page.Offset > 0 {
		q = q.Offset(uint64(page.Offset))
	}
	return q
}

func scanConversation(row rowScanner) (models.Conversation, error) {
	var (
		c         models.Conversation
		createdAt time.Time
		updatedAt sql.NullTime
	)

	if err := row.Scan(&c.ConversationID, &c.UserID, &c.Title, &createdAt, &updatedAt, &c.MessageCount); err != nil {
		return models.Conversation{}, err
	}

	c.CreatedAt = models.NewTimestamp(createdAt)
	if updatedAt.Valid {
		c.UpdatedAt = models.NewTimestamp(updatedAt.Time)
	}
	return c, nil
}

func scanMessage(row rowScanner) (models.PersistedMessage, error) {
	var (
		m                   models.PersistedMessage
		response            sql.NullString
		sourceAgent         sql.NullString
		sourceAgentResponse sql.NullString
		workflow            sql.NullString
		createdAt           time.Time
		executionTime       sql.NullFloat64
	)

	err := row.Scan(&m.ID, &m.ConversationID, &m.Content, &response, &sourceAgent,
		&sourceAgentResponse, &workflow, &createdAt, &executionTime)
	if err != nil {
		return models.PersistedMessage{}, err
	}

	m.Response = nullString(response)
	m.SourceAgent = nullString(sourceAgent)
	m.SourceAgentResponse = nullString(sourceAgentResponse)
	m.CreatedAt = models.NewTimestamp(createdAt)
	if executionTime.Valid {
		m.ExecutionTime = &executionTime.Float64
	}
	if workflow.Valid && workflow.String != "" {
		if err = json.Unmarshal([]byte(workflow.String), &m.AgentWorkflow); err != nil {
			return models.PersistedMessage{}, fmt.Errorf("decode agent workflow: %w", err)
		}
	}

	return m, nil
}

// encodeWorkflow returns the JSON column value of workflow, or NULL.
func encodeWorkflow(workflow []models.AgentWorkflowStep) (any, error) {
	if len(workflow) == 0 {
		return nil, nil
	}

	b, err := json.Marshal(workflow)
	if err != nil {
		return nil, fmt.Errorf("encode agent workflow: %w", err)
	}
	return string(b), nil
}

func nullString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	return &s.String
}
