// Package errors provides error types for sticks.
// This file contains project layout errors.
package errors

import (
	"fmt"
	"strings"
)

// DirectoryExists creates an error when a new project directory is already present.
func DirectoryExists(path string) *StickError {
	return &StickError{
		Kind:    ErrExists,
		Message: fmt.Sprintf("directory '%s' already exists", path),
		Details: map[string]string{
			"path": path,
		},
		Suggestion: `Choose another project name, or scaffold into the existing directory:
  cd <dir> && sticks init c`,
	}
}

// SrcDirNotFound creates an error when the project has no src directory.
func SrcDirNotFound(path string) *StickError {
	return &StickError{
		Kind:    ErrNotFound,
		Message: "src directory not found. Cannot add sources and headers.",
		Details: map[string]string{
			"path": path,
		},
		Suggestion: "Maybe try creating a new project or initializing a new project in the current directory.",
	}
}

// AlreadyConfigured creates an error when a conversion or addition would be a no-op.
func AlreadyConfigured(what string) *StickError {
	return &StickError{
		Kind:    ErrExists,
		Message: fmt.Sprintf("project already uses %s. No changes needed.", what),
	}
}

// NotConfigured creates an error when a feature to remove is not present.
func NotConfigured(file string) *StickError {
	return &StickError{
		Kind:    ErrNotFound,
		Message: fmt.Sprintf("%s not found in project. Nothing to remove.", file),
	}
}

// ConfigInvalid wraps a configuration load or validation failure.
func ConfigInvalid(path string, cause error) *StickError {
	return &StickError{
		Kind:    ErrConfig,
		Message: "invalid sticks configuration",
		Cause:   cause,
		Details: map[string]string{
			"path": path,
		},
		Suggestion: `Check .sticks.yaml for typos. Valid keys:
  makefile.filename, makefile.aggregate_target, makefile.rule_name,
  makefile.install_prefix, makefile.sort_dependencies,
  project.language, project.build_system, project.version, project.editor_files`,
	}
}

// ManifestInvalid creates an error for a generated manifest that fails schema validation.
func ManifestInvalid(file string, issues []string) *StickError {
	return &StickError{
		Kind:    ErrInvalidInput,
		Message: fmt.Sprintf("generated %s is invalid", file),
		Details: map[string]string{
			"file":   file,
			"issues": strings.Join(issues, "; "),
		},
	}
}
