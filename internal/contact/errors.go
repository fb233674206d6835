package contact

import "errors"

// Validation errors. [ValidateField] wraps them with the field label.
var (
	ErrEmptyField   = errors.New("value cannot be empty")
	ErrFieldTooLong = errors.New("value is too long")
	ErrLineBreak    = errors.New("value cannot contain line breaks")
	ErrInvalidPhone = errors.New("invalid phone number (digits and + - ( ) . space only)")
	ErrInvalidEmail = errors.New("invalid email address")
	ErrUnknownField = errors.New("unknown field")
	ErrSearchMode   = errors.New("unknown search mode")
)
