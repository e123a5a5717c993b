package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-agent-chat/internal/logger"
	"github.com/MKhiriev/go-agent-chat/models"
)

// messageRepository is the SQL implementation of [MessageRepository] over
// the "messages" table.
type messageRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewMessageRepository(db *DB, logger *logger.Logger) MessageRepository {
	logger.Debug().Msg("creating message repository")
	return &messageRepository{
		db:     db,
		logger: logger,
	}
}

// SaveMessage inserts a turn and returns it with the assigned id. A missing
// conversation yields [ErrConversationNotFound].
func (r *messageRepository) SaveMessage(ctx context.Context, message models.PersistedMessage) (models.PersistedMessage, error) {
	log := logger.FromContext(ctx)

	workflow, err := encodeWorkflow(message.AgentWorkflow)
	if err != nil {
		return models.PersistedMessage{}, err
	}

	query, args, err := r.db.builder.
		Insert(messagesTable).
		Columns("conversation_id", "content", "response", "source_agent", "source_agent_response",
			"agent_workflow", "created_at", "execution_time").
		Values(message.ConversationID, message.Content, message.Response, message.SourceAgent,
			message.SourceAgentResponse, workflow, message.CreatedAt.Time, message.ExecutionTime).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return models.PersistedMessage{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(&message.ID)
	})
	if err != nil {
		log.Err(err).Str("func", "*messageRepository.SaveMessage").Msg("error inserting message")

		switch r.db.errorClassificator.Classify(err) {
		case MissingReference:
			return models.PersistedMessage{}, ErrConversationNotFound
		default:
			return models.PersistedMessage{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return message, nil
}

func (r *messageRepository) ListMessages(ctx context.Context, conversationID string, page models.ListRequest) ([]models.PersistedMessage, error) {
	query, args, err := paginate(
		selectMessages(r.db.builder).
			Where(sq.Eq{"conversation_id": conversationID}).
			OrderBy(messagesOrder),
		page,
	).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*messageRepository.ListMessages").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	messages := make([]models.PersistedMessage, 0)
	for rows.Next() {
		message, scanErr := scanMessage(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		messages = append(messages, message)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return messages, nil
}
