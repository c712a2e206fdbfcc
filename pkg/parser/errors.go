package parser

import "errors"

// Reasons a line is rejected. Diagnose wraps one of these with detail;
// Parse reports all of them as a plain false.
var (
	ErrSyntax         = errors.New("unbalanced quotes")
	ErrTooFewTokens   = errors.New("too few words")
	ErrPrefix         = errors.New("prefix mismatch")
	ErrUnknownCommand = errors.New("unknown command")
	ErrFieldCount     = errors.New("wrong number of fields")
	ErrEmptyField     = errors.New("required field is empty")
	ErrNotNumeric     = errors.New("not an integer")
	ErrOutOfRange     = errors.New("value out of range")
)
