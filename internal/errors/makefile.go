// Package errors provides error types for sticks.
// This file contains build-file and dependency errors.
package errors

import (
	"fmt"
	"strings"
)

// Build-file related error constructors.

// MakefileNotFound creates an error for a missing build file. action names
// what was attempted, e.g. "add a dependency".
func MakefileNotFound(path, action string) *StickError {
	return &StickError{
		Kind:    ErrNotFound,
		Message: fmt.Sprintf("Makefile not found at %s. Cannot %s.", path, action),
		Details: map[string]string{
			"path": path,
		},
		Suggestion: `Run sticks from a project directory, or create one first:
  sticks c my_project
  sticks init c`,
	}
}

// NoNames creates an error for an empty name list.
func NoNames(what string) *StickError {
	return &StickError{
		Kind:       ErrInvalidInput,
		Message:    fmt.Sprintf("no %s names given", what),
		Suggestion: fmt.Sprintf("Pass at least one %s name.", what),
	}
}

// InvalidName creates an error for a name that cannot be used as a single
// token in a build file or as a file name.
func InvalidName(what, name, reason string) *StickError {
	return &StickError{
		Kind:    ErrInvalidInput,
		Message: fmt.Sprintf("invalid %s name %q: %s", what, name, reason),
		Details: map[string]string{
			"name": name,
		},
	}
}

// IOFailure wraps a read or write failure with the attempted operation.
func IOFailure(op, path string, cause error) *StickError {
	return &StickError{
		Kind:    ErrIO,
		Message: fmt.Sprintf("failed to %s %s", op, path),
		Cause:   cause,
		Details: map[string]string{
			"operation": op,
			"path":      path,
		},
	}
}

// UnsupportedValue creates an error for an unknown language, build system
// or package manager name.
func UnsupportedValue(what, value string, valid []string) *StickError {
	return &StickError{
		Kind:       ErrUnsupported,
		Message:    fmt.Sprintf("unsupported %s: %s", what, value),
		Suggestion: fmt.Sprintf("Use one of: %s", strings.Join(valid, ", ")),
	}
}
