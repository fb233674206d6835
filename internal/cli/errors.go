package cli

import "errors"

var (
	errUnknownCommand = errors.New("unknown command")
	errCanceled       = errors.New("canceled")
	errTooManyArgs    = errors.New("too many arguments")
	errNoMatch        = errors.New("no matching contact")
	errIndexRange     = errors.New("index out of range")
	errFieldName      = errors.New("unknown field name")
)
