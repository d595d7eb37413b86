package model

import "fmt"

const (
	CodeNotFound     = "NOT_FOUND"
	CodeNoData       = "NO_DATA"
	CodeInvalidInput = "INVALID_INPUT"
)

// DomainError is a failure surfaced to callers. Two domain errors match under
// errors.Is when their codes are equal.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func (e *DomainError) Is(target error) bool {
	if t, ok := target.(*DomainError); ok {
		return e.Code == t.Code
	}
	return false
}

var (
	ErrNotFound = &DomainError{
		Code:    CodeNotFound,
		Message: "resource not found",
	}

	// ErrNoData means the snapshot slot has never been initialized.
	ErrNoData = &DomainError{
		Code:    CodeNoData,
		Message: "No data found",
	}

	ErrInvalidInput = &DomainError{
		Code:    CodeInvalidInput,
		Message: "invalid input",
	}
)

func NewNotFoundError(format string, args ...any) *DomainError {
	return &DomainError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf(format, args...),
	}
}

func NewInvalidInputError(message string) *DomainError {
	return &DomainError{
		Code:    CodeInvalidInput,
		Message: message,
	}
}
