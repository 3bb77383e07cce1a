package model

import (
	"errors"
	"fmt"
)

// StubErrorType categorizes stub errors.
type StubErrorType int

const (
	// ConfigurationError indicates a fatal setup problem (missing or empty
	// template directory, missing or empty user list, malformed identifier).
	ConfigurationError StubErrorType = iota
	// InputValidationError indicates console input that was rejected.
	// The state that produced it re-prompts.
	InputValidationError
	// FileSystemError indicates a read, write, move or mkdir failure.
	FileSystemError
	// InvalidArgument indicates a programming error such as an empty search literal.
	InvalidArgument
)

// String returns the string representation of the error type.
func (t StubErrorType) String() string {
	switch t {
	case ConfigurationError:
		return "ConfigurationError"
	case InputValidationError:
		return "InputValidationError"
	case FileSystemError:
		return "FileSystemError"
	case InvalidArgument:
		return "InvalidArgument"
	default:
		return "Unknown"
	}
}

// StubError represents a stub-related error.
type StubError struct {
	// Type categorizes the error.
	Type StubErrorType
	// Message is the human-readable error message.
	Message string
	// Path is the file or directory related to the error (if applicable).
	Path string
	// Cause is the underlying error (if any).
	Cause error
}

// Error implements the error interface.
func (e *StubError) Error() string {
	if e.Path != "" {
		if e.Cause != nil {
			return fmt.Sprintf("%s (path: %s): %v", e.Message, e.Path, e.Cause)
		}
		return fmt.Sprintf("%s (path: %s)", e.Message, e.Path)
	}

	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}

	return e.Message
}

// Unwrap returns the underlying cause error for error unwrapping.
func (e *StubError) Unwrap() error {
	return e.Cause
}

// NewStubError creates a new StubError.
func NewStubError(typ StubErrorType, message, path string, cause error) *StubError {
	return &StubError{
		Type:    typ,
		Message: message,
		Path:    path,
		Cause:   cause,
	}
}

// NewConfigurationError creates a configuration error.
func NewConfigurationError(message, path string, cause error) *StubError {
	return NewStubError(ConfigurationError, message, path, cause)
}

// NewInputValidationError creates an input validation error.
func NewInputValidationError(message string) *StubError {
	return NewStubError(InputValidationError, message, "", nil)
}

// NewFileSystemError creates a filesystem error.
func NewFileSystemError(message, path string, cause error) *StubError {
	return NewStubError(FileSystemError, message, path, cause)
}

// NewInvalidArgumentError creates an invalid argument error.
func NewInvalidArgumentError(message string) *StubError {
	return NewStubError(InvalidArgument, message, "", nil)
}

// IsType reports whether err is a *StubError of the given type.
func IsType(err error, typ StubErrorType) bool {
	var se *StubError
	if !errors.As(err, &se) {
		return false
	}
	return se.Type == typ
}
