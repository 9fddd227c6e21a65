// Package errors provides error types with actionable suggestions for sticks.
// Errors carry a kind sentinel so callers can branch with errors.Is while the
// CLI prints the message, details and suggestion to the user.
package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Common sentinel errors for use with errors.Is().
var (
	// ErrNotFound indicates a file or directory the operation needs does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput indicates the caller supplied unusable arguments.
	ErrInvalidInput = errors.New("invalid input")
	// ErrIO indicates an underlying read or write failure.
	ErrIO = errors.New("i/o failure")
	// ErrConfig indicates a configuration error.
	ErrConfig = errors.New("configuration error")
	// ErrExists indicates the target of a create operation is already present.
	ErrExists = errors.New("already exists")
	// ErrUnsupported indicates an unknown language, build system or package manager.
	ErrUnsupported = errors.New("unsupported")
)

// StickError is the base error type for sticks errors.
// It wraps an underlying error and provides additional context.
type StickError struct {
	// Kind is the category of error (e.g., ErrNotFound, ErrIO).
	Kind error
	// Message is the human-readable error message.
	Message string
	// Suggestion provides actionable advice for resolving the error.
	Suggestion string
	// Cause is the underlying error that caused this error.
	Cause error
	// Details provides additional context (e.g., file path, operation).
	Details map[string]string
}

// Error implements the error interface.
func (e *StickError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause for use with errors.Is/errors.As.
func (e *StickError) Unwrap() error {
	if e.Cause != nil {
		return e.Cause
	}
	return e.Kind
}

// Is reports whether the error's kind matches the target.
func (e *StickError) Is(target error) bool {
	return errors.Is(e.Kind, target)
}

// Format returns a formatted error message with details and suggestions.
func (e *StickError) Format() string {
	var sb strings.Builder

	sb.WriteString("Error: ")
	sb.WriteString(e.Error())
	sb.WriteString("\n")

	if len(e.Details) > 0 {
		keys := make([]string, 0, len(e.Details))
		for k := range e.Details {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		sb.WriteString("\nDetails:\n")
		for _, k := range keys {
			sb.WriteString(fmt.Sprintf("  %s: %s\n", k, e.Details[k]))
		}
	}

	if e.Suggestion != "" {
		sb.WriteString("\n💡 Suggestion: ")
		sb.WriteString(e.Suggestion)
		sb.WriteString("\n")
	}

	return sb.String()
}

// WithDetails adds details to the error.
func (e *StickError) WithDetails(key, value string) *StickError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// WithCause sets the underlying cause of the error.
func (e *StickError) WithCause(cause error) *StickError {
	e.Cause = cause
	return e
}

// New creates a new StickError with the given kind and message.
func New(kind error, message string) *StickError {
	return &StickError{
		Kind:    kind,
		Message: message,
	}
}

// Wrap wraps an existing error with additional context.
func Wrap(err error, kind error, message string) *StickError {
	return &StickError{
		Kind:    kind,
		Message: message,
		Cause:   err,
	}
}

// WithSuggestion creates a new error with a suggestion.
func WithSuggestion(kind error, message, suggestion string) *StickError {
	return &StickError{
		Kind:       kind,
		Message:    message,
		Suggestion: suggestion,
	}
}

// FormatError renders err for the terminal. StickErrors get their full
// report; anything else is printed as a single "Error:" line.
func FormatError(err error) string {
	var se *StickError
	if errors.As(err, &se) {
		return se.Format()
	}
	return fmt.Sprintf("Error: %v\n", err)
}

// Is is errors.Is, re-exported so callers importing this package under its
// own name need not also import the standard library errors package.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As is errors.As, re-exported for the same reason as Is.
func As(err error, target any) bool {
	return errors.As(err, target)
}
