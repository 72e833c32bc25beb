package domain

import "fmt"

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

// Only conditions that abort the run carry an error code. Malformed and
// answerless records are dropped and counted, never raised; undersized
// groups are skipped by the orchestrator.
const (
	ErrInternal      ErrorCode = "INTERNAL_ERROR"
	ErrInvalidConfig ErrorCode = "INVALID_CONFIG"
	ErrInputIO       ErrorCode = "INPUT_IO_ERROR"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func NewInternalError(message string, err error) *DomainError {
	return NewError(ErrInternal, message, err)
}

func NewInvalidConfigError(message string) *DomainError {
	return NewError(ErrInvalidConfig, message, nil)
}

// NewInputIOError wraps an unreadable source or unwritable artifact. These
// are fatal: the batch job aborts on the first one.
func NewInputIOError(message string, err error) *DomainError {
	return NewError(ErrInputIO, message, err)
}

// ValidationError represents a validation error
type ValidationError struct {
	message string
}

func (e *ValidationError) Error() string {
	return e.message
}

func NewValidationError(message string) error {
	return &ValidationError{message: message}
}
