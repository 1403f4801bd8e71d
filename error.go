package orderly

import (
	"errors"
	"fmt"
)

// ErrNoTokens is returned when no word of the input could be classified.
var ErrNoTokens = errors.New("no valid tokens")

// Error represents an input that does not match the grammar.
//
// The error will contain the index of the offending token.
type Error interface {
	error
	// Unadorned message.
	Message() string
	// Position is the index of the token the error occurred at.
	Position() int
}

// MismatchError is returned by Validate when a token sequence fails one of the acceptance rules.
type MismatchError struct {
	// Rule that failed, eg. "order-keyword".
	Rule string
	Pos  int
	Msg  string
}

var _ Error = &MismatchError{}

func mismatchf(rule string, pos int, format string, args ...interface{}) *MismatchError {
	return &MismatchError{Rule: rule, Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

func (m *MismatchError) Error() string {
	return fmt.Sprintf("does not match the grammar: %s", m.Msg)
}

func (m *MismatchError) Message() string { return m.Msg } // nolint: golint
func (m *MismatchError) Position() int   { return m.Pos } // nolint: golint
