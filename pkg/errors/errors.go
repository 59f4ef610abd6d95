package errors

import (
	"errors"
	"fmt"
)

// Code represents a stable error code for programmatic handling.
type Code string

const (
	CodeUnknown     Code = "unknown"
	CodeInvalid     Code = "invalid"
	CodeNotFound    Code = "not_found"
	CodeInternal    Code = "internal"
	CodeUnavailable Code = "unavailable"
	CodeDeadline    Code = "deadline_exceeded"

	// CodeStorage marks failures talking to the backing store.
	CodeStorage Code = "storage"
	// CodeMail marks failures handing a message to the mail relay.
	CodeMail Code = "mail"
)

// AppError is a structured error type that carries a code, message, and optional metadata.
type AppError struct {
	Code    Code
	Message string
	Err     error
	Meta    map[string]any
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *AppError) Unwrap() error { return e.Err }

// WithMeta attaches metadata to the error.
func (e *AppError) WithMeta(k string, v any) *AppError {
	if e.Meta == nil {
		e.Meta = map[string]any{}
	}
	e.Meta[k] = v
	return e
}

// New creates a new AppError with code and message.
func New(code Code, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Wrap wraps an existing error with code and message.
func Wrap(err error, code Code, message string) *AppError {
	if err == nil {
		return New(code, message)
	}
	return &AppError{Code: code, Message: message, Err: err}
}

// Storage wraps err as a storage failure.
func Storage(err error, message string) *AppError { return Wrap(err, CodeStorage, message) }

// Mail wraps err as a mail relay failure.
func Mail(err error, message string) *AppError { return Wrap(err, CodeMail, message) }

// Invalid reports a rejected input field.
func Invalid(field, message string) *AppError {
	return New(CodeInvalid, message).WithMeta("field", field)
}

// IsCode reports whether any AppError in err's tree carries code. Joined
// errors are searched branch by branch.
func IsCode(err error, code Code) bool {
	if err == nil {
		return false
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			if IsCode(e, code) {
				return true
			}
		}
		return false
	}
	var ae *AppError
	if errors.As(err, &ae) {
		if ae.Code == code {
			return true
		}
		return IsCode(ae.Err, code)
	}
	return false
}

// CodeOf returns the code of the outermost AppError in err, or CodeUnknown.
func CodeOf(err error) Code {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Code
	}
	return CodeUnknown
}
