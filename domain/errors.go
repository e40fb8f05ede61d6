package domain

import (
	"errors"
	"fmt"
)

// Error represents errors raised by the report-generation core
type Error struct {
	Code    string
	Message string
	Cause   error
}

func (e Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e Error) Unwrap() error {
	return e.Cause
}

// Error codes
const (
	ErrCodeConfig       = "CONFIG_ERROR"
	ErrCodeDuplicateKey = "DUPLICATE_KEY"
	ErrCodeLookup       = "KEY_NOT_FOUND"
	ErrCodeInvariant    = "INVARIANT_VIOLATION"
	ErrCodeIngest       = "INGEST_ERROR"
	ErrCodeOutput       = "OUTPUT_ERROR"
)

// NewError creates a new domain error
func NewError(code, message string, cause error) error {
	return Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// NewConfigError creates a configuration error. Configuration errors are
// raised at construction time, never deferred to analyze time.
func NewConfigError(message string, cause error) error {
	return NewError(ErrCodeConfig, message, cause)
}

// NewDuplicateKeyError creates an error for registering a child under a name
// that is already taken
func NewDuplicateKeyError(name string) error {
	return NewError(ErrCodeDuplicateKey, fmt.Sprintf("`%s` is already used to register an analyzer", name), nil)
}

// NewLookupError creates an error for a lookup of an unregistered key
func NewLookupError(key string) error {
	return NewError(ErrCodeLookup, fmt.Sprintf("key not found: %s", key), nil)
}

// NewInvariantError creates an error for a violated internal invariant
func NewInvariantError(message string) error {
	return NewError(ErrCodeInvariant, message, nil)
}

// NewIngestError creates a data ingestion error
func NewIngestError(message string, cause error) error {
	return NewError(ErrCodeIngest, message, cause)
}

// NewOutputError creates an output error
func NewOutputError(message string, cause error) error {
	return NewError(ErrCodeOutput, message, cause)
}

// HasCode reports whether err is a domain error with the given code
func HasCode(err error, code string) bool {
	var de Error
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}
