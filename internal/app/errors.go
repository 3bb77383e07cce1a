package app

import "fmt"

// AppErrorType represents the type of application error.
type AppErrorType int

const (
	// SetupFailed indicates the session could not be started.
	SetupFailed AppErrorType = iota
	// DestinationFailed indicates destination browsing cannot continue.
	DestinationFailed
	// GenerationFailed indicates generation aborted before any file was handled.
	GenerationFailed
)

// AppError represents an application-layer error.
type AppError struct {
	// Type is the error type.
	Type AppErrorType
	// Message is the error message.
	Message string
	// Cause is the underlying error.
	Cause error
}

// Error returns the error message.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewAppError creates a new AppError.
func NewAppError(errType AppErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// NewSetupError creates a setup error.
func NewSetupError(message string) *AppError {
	return NewAppError(SetupFailed, message, nil)
}

// NewDestinationError creates a destination error.
func NewDestinationError(message string, cause error) *AppError {
	return NewAppError(DestinationFailed, message, cause)
}

// NewGenerationError creates a generation error.
func NewGenerationError(message string, cause error) *AppError {
	return NewAppError(GenerationFailed, message, cause)
}
