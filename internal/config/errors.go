package config

import "fmt"

// ConfigErrorType represents the type of configuration error.
type ConfigErrorType int

const (
	// ConfigNotFound indicates the configuration file was not found.
	ConfigNotFound ConfigErrorType = iota
	// ConfigInvalid indicates the configuration file could not be read or parsed.
	ConfigInvalid
	// ConfigValidationFailed indicates a configuration value is unusable.
	ConfigValidationFailed
)

// String returns the string representation of the error type.
func (t ConfigErrorType) String() string {
	switch t {
	case ConfigNotFound:
		return "NotFound"
	case ConfigInvalid:
		return "Invalid"
	case ConfigValidationFailed:
		return "ValidationFailed"
	default:
		return "Unknown"
	}
}

// ConfigError represents a configuration-related error.
type ConfigError struct {
	// Type is the error type.
	Type ConfigErrorType
	// Message is the error message.
	Message string
	// File is the configuration file path (empty for flag or env values).
	File string
	// Field is the configuration field that caused the error.
	Field string
	// Cause is the underlying error if any.
	Cause error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	where := "configuration"
	if e.File != "" {
		where = fmt.Sprintf("configuration in %s", e.File)
	}
	if e.Field != "" {
		where = fmt.Sprintf("%s [field: %s]", where, e.Field)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", where, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", where, e.Message)
}

// Unwrap returns the underlying cause error.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// NewConfigError creates a new ConfigError.
func NewConfigError(typ ConfigErrorType, file, message string, cause error) *ConfigError {
	return &ConfigError{
		Type:    typ,
		File:    file,
		Message: message,
		Cause:   cause,
	}
}

// NewFieldError creates a validation error for a single field.
func NewFieldError(field, message string) *ConfigError {
	return &ConfigError{
		Type:    ConfigValidationFailed,
		Field:   field,
		Message: message,
	}
}
