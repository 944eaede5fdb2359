// Package pgnerror provides sentinel errors and error types for the PGN
// parser and chess engine. It defines common error conditions and structured
// error types that preserve context while allowing error inspection with
// errors.Is() and errors.As().
package pgnerror

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the recoverable and fatal error kinds the parser and
// engine can produce. Use these with errors.Is() to check for specific
// error conditions regardless of the wrapping context.
var (
	// ErrLexical indicates a bad NAG, an unterminated string or brace
	// comment, or a stray '/' in a symbol. An unknown token character is
	// not an error: the lexer returns it as an UnknownToken token.
	ErrLexical = errors.New("lexical error")

	// ErrParse indicates an unexpected token or malformed tag block.
	ErrParse = errors.New("parse error")

	// ErrSanAmbiguous indicates a SAN token matched more than one legal move.
	ErrSanAmbiguous = errors.New("ambiguous SAN move")

	// ErrSanIllegal indicates a SAN token matched no legal move.
	ErrSanIllegal = errors.New("illegal SAN move")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrIO indicates a failure to read the underlying byte source. It is
	// fatal to the invocation, unlike the recoverable kinds above.
	ErrIO = errors.New("io error")

	// ErrProgrammer indicates a violated API contract, such as a second
	// pushback of a character or token. It is never meant to be recovered
	// from; callers should treat it as an assertion failure.
	ErrProgrammer = errors.New("programmer error")
)

// GameError wraps an error with the game and ply at which it occurred, so
// that a caller driving the parser across many games in one file can report
// exactly where an error that was not recovered from happened.
type GameError struct {
	Err     error // the underlying error
	GameNum int   // 1-based game number in the input
	PlyNum  int   // ply at which the error occurred, 0 if not applicable
	Move    string
}

// Error returns a formatted error message including all available context.
func (e *GameError) Error() string {
	var parts []string
	parts = append(parts, fmt.Sprintf("game %d", e.GameNum))
	if e.PlyNum > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.PlyNum))
	}
	if e.Move != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.Move))
	}
	context := strings.Join(parts, ", ")
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the GameError wrapper.
func (e *GameError) Unwrap() error {
	return e.Err
}

// LexError represents a lexical error with an absolute byte offset into the
// input, as produced by the windowed BufferedCharSource.
type LexError struct {
	Err    error
	Offset int64
	Line   int
}

// Error returns a formatted message with location context.
func (e *LexError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("offset %d (line %d): %v", e.Offset, e.Line, e.Err)
	}
	return fmt.Sprintf("offset %d: %v", e.Offset, e.Err)
}

// Unwrap returns the underlying error.
func (e *LexError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error for
// inspection with errors.Is() and errors.As().
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
