// Package errors provides sentinel errors and error types for the chess engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidMove indicates move text that cannot be parsed.
	ErrInvalidMove = errors.New("invalid move text")

	// ErrInvalidSquare indicates a coordinate that is off the board.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrInvariant indicates a broken engine invariant, such as a missing king.
	ErrInvariant = errors.New("engine invariant violated")

	// ErrNotImplemented indicates a reserved operation.
	ErrNotImplemented = errors.New("not implemented")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrGameNotFound indicates an unknown game id in the store.
	ErrGameNotFound = errors.New("game not found")
)

// FENError wraps FEN parse failures with the offending field.
type FENError struct {
	Err   error  // The underlying error
	FEN   string // The whole FEN string
	Field string // Name of the field that failed (placement, side, castling, ...)
	Got   string // The offending text
}

// Error returns a formatted error message including all available context.
func (e *FENError) Error() string {
	var parts []string
	if e.Field != "" {
		if e.Got != "" {
			parts = append(parts, fmt.Sprintf("%s %q", e.Field, e.Got))
		} else {
			parts = append(parts, e.Field)
		}
	}
	if e.FEN != "" {
		parts = append(parts, fmt.Sprintf("in %q", e.FEN))
	}

	context := strings.Join(parts, " ")
	switch {
	case e.Err != nil && context != "":
		return fmt.Sprintf("%s: %v", context, e.Err)
	case e.Err != nil:
		return e.Err.Error()
	case context != "":
		return context
	}
	return "FEN error"
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the FENError wrapper.
func (e *FENError) Unwrap() error {
	return e.Err
}

// MoveError represents unparsable move text.
type MoveError struct {
	Err      error  // The underlying error
	MoveText string // The move text as received
	Reason   string // What was wrong with it
}

// Error returns a formatted error message with the move and reason.
func (e *MoveError) Error() string {
	msg := fmt.Sprintf("move %q", e.MoveText)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// Is reports whether any error in err's chain matches target.
// It re-exports the standard library function so callers need one import.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
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
