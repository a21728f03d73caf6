package errors

import "fmt"

// ErrorCode classifies a StudySync error.
type ErrorCode string

const (
	ErrInvalidInput ErrorCode = "INVALID_INPUT" // rejected interactive or caller input
	ErrNotFound     ErrorCode = "NOT_FOUND"     // missing session file, concept, or goal
	ErrIOFailure    ErrorCode = "IO_FAILURE"    // store read/write failed
	ErrInternal     ErrorCode = "INTERNAL"      // unexpected failure
)

// StudyError represents a structured error with a code and optional details.
type StudyError struct {
	Code    ErrorCode
	Message string
	Details map[string]any
}

// Error implements the error interface.
func (e *StudyError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewInvalidInput creates an error for invalid caller-supplied input.
func NewInvalidInput(msg string) *StudyError {
	return &StudyError{
		Code:    ErrInvalidInput,
		Message: msg,
	}
}

// NewNotFound creates an error for a missing record.
func NewNotFound(identifier string) *StudyError {
	return &StudyError{
		Code:    ErrNotFound,
		Message: fmt.Sprintf("not found: %s", identifier),
		Details: map[string]any{"identifier": identifier},
	}
}

// NewIOFailure wraps a failed store read or write. The operation that
// triggered it reports the failure and continues; it never terminates the
// process.
func NewIOFailure(op string, err error) *StudyError {
	return &StudyError{
		Code:    ErrIOFailure,
		Message: fmt.Sprintf("%s: %v", op, err),
		Details: map[string]any{"op": op},
	}
}

// NewInternal creates an error for unexpected internal failures.
func NewInternal(err error) *StudyError {
	msg := "internal error"
	if err != nil {
		msg = err.Error()
	}
	return &StudyError{
		Code:    ErrInternal,
		Message: msg,
	}
}

// Is checks if an error is a StudyError with the given code.
func Is(err error, code ErrorCode) bool {
	if sErr, ok := err.(*StudyError); ok {
		return sErr.Code == code
	}
	return false
}
