// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-agent-chat/internal/logger"
	"github.com/MKhiriev/go-agent-chat/models"
)

// conversationRepository is the SQL implementation of [ConversationRepository]
// over the "conversations" table. It works with both supported dialects.
type conversationRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewConversationRepository constructs a [ConversationRepository] backed by db.
func NewConversationRepository(db *DB, logger *logger.Logger) ConversationRepository {
	logger.Debug().Msg("creating conversation repository")
	return &conversationRepository{
		db:     db,
		logger: logger,
	}
}

// CreateConversation inserts a new record. A taken id yields
// [ErrConversationAlreadyExists].
func (r *conversationRepository) CreateConversation(ctx context.Context, conversation models.Conversation) (models.Conversation, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Insert(conversationsTable).
		Columns("conversation_id", "user_id", "title", "created_at").
		Values(conversation.ConversationID, conversation.UserID, conversation.Title, conversation.CreatedAt.Time).
		ToSql()
	if err != nil {
		return models.Conversation{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.withRetry(ctx, func() error {
		_, execErr := r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "*conversationRepository.CreateConversation").Msg("error inserting conversation")

		switch r.db.errorClassificator.Classify(err) {
		case Duplicate:
			return models.Conversation{}, ErrConversationAlreadyExists
		default:
			return models.Conversation{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	conversation.MessageCount = 0
	conversation.UpdatedAt = models.Timestamp{}
	return conversation, nil
}

func (r *conversationRepository) GetConversation(ctx context.Context, conversationID string) (models.Conversation, error) {
	query, args, err := selectConversations(r.db.builder).
		Where(sq.Eq{"c.conversation_id": conversationID}).
		ToSql()
	if err != nil {
		return models.Conversation{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	conversation, err := scanConversation(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Conversation{}, ErrConversationNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*conversationRepository.GetConversation").Msg("scanning error")
		return models.Conversation{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return conversation, nil
}

// ListConversations returns the user's conversations, most recently updated
// first.
func (r *conversationRepository) ListConversations(ctx context.Context, userID string, page models.ListRequest) ([]models.Conversation, error) {
	log := logger.FromContext(ctx)

	query, args, err := paginate(
		selectConversations(r.db.builder).
			Where(sq.Eq{"c.user_id": userID}).
			OrderBy(conversationsOrder),
		page,
	).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*conversationRepository.ListConversations").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	conversations := make([]models.Conversation, 0)
	for rows.Next() {
		conversation, scanErr := scanConversation(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		conversations = append(conversations, conversation)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return conversations, nil
}

// UpdateTitle sets the title and updated_at, then returns the stored record.
func (r *conversationRepository) UpdateTitle(ctx context.Context, conversationID, title string, at time.Time) (models.Conversation, error) {
	query, args, err := r.db.builder.
		Update(conversationsTable).
		Set("title", title).
		Set("updated_at", at).
		Where(sq.Eq{"conversation_id": conversationID}).
		ToSql()
	if err != nil {
		return models.Conversation{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.execAffectingOne(ctx, query, args...); err != nil {
		return models.Conversation{}, err
	}

	return r.GetConversation(ctx, conversationID)
}

func (r *conversationRepository) TouchConversation(ctx context.Context, conversationID string, at time.Time) error {
	query, args, err := r.db.builder.
		Update(conversationsTable).
		Set("updated_at", at).
		Where(sq.Eq{"conversation_id": conversationID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execAffectingOne(ctx, query, args...)
}

// DeleteConversation removes the messages and the conversation in one
// transaction.
func (r *conversationRepository) DeleteConversation(ctx context.Context, conversationID string) error {
	log := logger.FromContext(ctx)

	deleteMessages, messageArgs, err := r.db.builder.
		Delete(messagesTable).
		Where(sq.Eq{"conversation_id": conversationID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	deleteConversation, conversationArgs, err := r.db.builder.
		Delete(conversationsTable).
		Where(sq.Eq{"conversation_id": conversationID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*conversationRepository.DeleteConversation").Msg("error beginning transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, deleteMessages, messageArgs...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	result, err := tx.ExecContext(ctx, deleteConversation, conversationArgs...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return ErrConversationNotFound
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*conversationRepository.DeleteConversation").Msg("error committing transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// execAffectingOne runs a single-row UPDATE and maps zero affected rows to
// [ErrConversationNotFound].
func (r *conversationRepository) execAffectingOne(ctx context.Context, query string, args ...any) error {
	var result sql.Result
	err := r.db.withRetry(ctx, func() error {
		var execErr error
		result, execErr = r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*conversationRepository.execAffectingOne").Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		return ErrConversationNotFound
	}
	return nil
}
