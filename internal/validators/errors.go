package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyUserID         = errors.New("user id is required")
	ErrEmptyConversationID = errors.New("conversation id is required")
	ErrEmptyMessage        = errors.New("message is required")
	ErrEmptyTitle          = errors.New("title is required")
	ErrValueTooLong        = errors.New("value is too long")
	ErrInvalidLimit        = errors.New("invalid limit")
	ErrInvalidOffset       = errors.New("invalid offset")
)

// ValidationError wraps one of the sentinels above with the offending field.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func fieldError(field string, err error) error {
	return &ValidationError{Field: field, Err: err}
}
