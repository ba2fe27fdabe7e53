package config

import (
	"errors"
	"fmt"
)

var (
	// ErrConfigNotFound indicates the configuration file was not found.
	ErrConfigNotFound = errors.New("configuration file not found")

	// ErrInvalidYAML indicates YAML parsing failed.
	ErrInvalidYAML = errors.New("invalid YAML syntax")

	// ErrValidationFailed indicates configuration validation failed.
	ErrValidationFailed = errors.New("configuration validation failed")

	// ErrUnknownAgent indicates an agent name not in the built-in catalogue.
	ErrUnknownAgent = errors.New("unknown agent")
)

// ValidationError wraps configuration validation errors with context.
type ValidationError struct {
	Section string // Section being validated (provider, cache, agents, ...)
	Field   string // Field name (optional)
	Err     error  // Underlying error
}

// Error returns the formatted error message.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("config %s.%s: %v", e.Section, e.Field, e.Err)
	}
	return fmt.Sprintf("config %s: %v", e.Section, e.Err)
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a validation error for a section/field.
func NewValidationError(section, field string, err error) error {
	return &ValidationError{Section: section, Field: field, Err: err}
}

// LoadError wraps file-loading errors with the file name.
type LoadError struct {
	File string
	Err  error
}

// Error returns the formatted error message.
func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load %s: %v", e.File, e.Err)
}

// Unwrap returns the underlying error.
func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError creates a load error for a file.
func NewLoadError(file string, err error) error {
	return &LoadError{File: file, Err: err}
}
