// Package errors provides sentinel errors and error types for the chess
// service. It defines common error conditions and structured error types
// that preserve context while allowing error inspection with errors.Is()
// and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrIllegalMove indicates a move that violates chess rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrGameOver indicates a move was attempted after the game ended.
	ErrGameOver = errors.New("game is over")

	// ErrOutOfBounds indicates a coordinate outside the 8x8 board.
	ErrOutOfBounds = errors.New("square out of bounds")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidGrid indicates a malformed board grid dump.
	ErrInvalidGrid = errors.New("invalid board grid")

	// ErrGameNotFound indicates an unknown game id.
	ErrGameNotFound = errors.New("game not found")

	// ErrUnknownMessage indicates an unrecognized websocket message type.
	ErrUnknownMessage = errors.New("unknown message type")
)

// IllegalMoveError wraps a rejected move attempt with the squares involved
// and the specific reason. It implements the error interface and supports
// unwrapping via errors.Is() and errors.As().
type IllegalMoveError struct {
	Err       error  // The underlying sentinel (ErrIllegalMove or ErrGameOver)
	From      string // Source square in algebraic notation
	To        string // Destination square in algebraic notation
	Promotion string // Requested promotion kind (empty if none)
	Reason    string // Human-readable rejection reason
}

// Error returns a formatted error message including all available context.
func (e *IllegalMoveError) Error() string {
	var parts []string

	if e.From != "" || e.To != "" {
		move := e.From + e.To
		if e.Promotion != "" {
			move += "=" + e.Promotion
		}
		parts = append(parts, fmt.Sprintf("move %s", move))
	}

	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}

	context := strings.Join(parts, ": ")

	if e.Err != nil {
		if context != "" {
			return fmt.Sprintf("%v: %s", e.Err, context)
		}
		return e.Err.Error()
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the IllegalMoveError wrapper.
func (e *IllegalMoveError) Unwrap() error {
	return e.Err
}

// ParseError represents a board text parsing error (FEN or grid dump)
// with context about the offending field.
type ParseError struct {
	Err   error  // The underlying error
	Input string // The full input being parsed
	Field string // Which field failed (e.g. "piece placement")
	Got   string // What was found
}

// Error returns a formatted error message with field context.
func (e *ParseError) Error() string {
	var parts []string

	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	if e.Got != "" {
		parts = append(parts, fmt.Sprintf("got %q", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%v: %s", e.Err, strings.Join(parts, ": "))
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
