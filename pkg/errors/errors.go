package errors

import (
	"fmt"
)

// ParseError represents a failure to decode a persisted document, with
// optional line metadata for YAML sources.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures document or configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// StorageError represents a failure reading or writing persisted state.
type StorageError struct {
	Path string
	Op   string
	Err  error
}

// NewStorageError constructs a StorageError for the given path and operation.
func NewStorageError(path, op string, err error) error {
	return &StorageError{Path: path, Op: op, Err: err}
}

func (e *StorageError) Error() string {
	if e == nil {
		return ""
	}
	if e.Path != "" {
		return fmt.Sprintf("storage error: %s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("storage error: %s: %v", e.Op, e.Err)
}

// Unwrap exposes the root error.
func (e *StorageError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// PresetError indicates issues loading or importing theme presets.
type PresetError struct {
	Preset  string
	Message string
	Err     error
}

// NewPresetError constructs a PresetError for the named preset.
func NewPresetError(preset string, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &PresetError{Preset: preset, Message: message, Err: err}
}

func (e *PresetError) Error() string {
	if e == nil {
		return ""
	}
	if e.Preset != "" {
		return fmt.Sprintf("preset error [%s]: %s", e.Preset, e.Message)
	}
	return fmt.Sprintf("preset error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *PresetError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
