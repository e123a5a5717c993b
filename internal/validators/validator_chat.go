package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-agent-chat/models"
)

const (
	FieldUserID         = "user_id"
	FieldConversationID = "conversation_id"
	FieldMessage        = "message"
	FieldTitle          = "title"
	FieldOptionalTitle  = "optional_title"
	FieldLimit          = "limit"
	FieldMessagesLimit  = "messages_limit"
	FieldOffset         = "offset"
)

// Column sizes of the conversations table and the page bounds of the list
// endpoints.
const (
	MaxIDLength          = 255
	MaxTitleLength       = 500
	MaxListLimit         = 100
	MaxMessagesLimit     = 500
	DefaultListLimit     = 50
	DefaultMessagesLimit = 100
)

type ChatValidator struct{}

func NewChatValidator() Validator {
	return &ChatValidator{}
}

func (v *ChatValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ChatRequest:
		return v.validateChatRequest(value, fields...)
	case *models.ChatRequest:
		return v.validateChatRequest(*value, fields...)

	case models.CreateConversationRequest:
		return v.validateCreateRequest(value, fields...)
	case *models.CreateConversationRequest:
		return v.validateCreateRequest(*value, fields...)

	case models.RenameConversationRequest:
		return v.validateTitle(value.Title)
	case *models.RenameConversationRequest:
		return v.validateTitle(value.Title)

	case models.ListRequest:
		return v.validateListRequest(value, fields...)
	case *models.ListRequest:
		return v.validateListRequest(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ChatValidator) validateChatRequest(req models.ChatRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldMessage, FieldUserID, FieldConversationID}
	}

	for _, f := range fields {
		switch f {
		case FieldMessage:
			if strings.TrimSpace(req.Message) == "" {
				return fieldError(f, ErrEmptyMessage)
			}
		case FieldUserID:
			if err := requiredID(f, req.UserID, ErrEmptyUserID); err != nil {
				return err
			}
		case FieldConversationID:
			if err := requiredID(f, req.ConversationID, ErrEmptyConversationID); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ChatValidator) validateCreateRequest(req models.CreateConversationRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldConversationID, FieldUserID, FieldOptionalTitle}
	}

	for _, f := range fields {
		switch f {
		case FieldConversationID:
			if err := requiredID(f, req.ConversationID, ErrEmptyConversationID); err != nil {
				return err
			}
		case FieldUserID:
			if err := requiredID(f, req.UserID, ErrEmptyUserID); err != nil {
				return err
			}
		case FieldOptionalTitle:
			if utf8.RuneCountInString(req.Title) > MaxTitleLength {
				return fieldError(FieldTitle, ErrValueTooLong)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ChatValidator) validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return fieldError(FieldTitle, ErrEmptyTitle)
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return fieldError(FieldTitle, ErrValueTooLong)
	}
	return nil
}

// validateListRequest checks the page bounds. FieldLimit applies the
// conversation list bound, FieldMessagesLimit the message list bound.
func (v *ChatValidator) validateListRequest(req models.ListRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLimit, FieldOffset}
	}

	for _, f := range fields {
		switch f {
		case FieldLimit:
			if req.Limit < 1 || req.Limit > MaxListLimit {
				return fieldError(FieldLimit, ErrInvalidLimit)
			}
		case FieldMessagesLimit:
			if req.Limit < 1 || req.Limit > MaxMessagesLimit {
				return fieldError(FieldLimit, ErrInvalidLimit)
			}
		case FieldOffset:
			if req.Offset < 0 {
				return fieldError(FieldOffset, ErrInvalidOffset)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func requiredID(field, value string, empty error) error {
	if strings.TrimSpace(value) == "" {
		return fieldError(field, empty)
	}
	if len(value) > MaxIDLength {
		return fieldError(field, ErrValueTooLong)
	}
	return nil
}
