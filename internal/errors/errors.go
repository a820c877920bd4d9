// Package errors provides error handling utilities.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Type identifies the category of error
type Type string

const (
	// TypeInput indicates an input validation error
	TypeInput Type = "INPUT_ERROR"

	// TypeParsing indicates a decoding or parsing error
	TypeParsing Type = "PARSING_ERROR"

	// TypeConfig indicates a configuration error
	TypeConfig Type = "CONFIG_ERROR"

	// TypeTransport indicates the billing API did not answer with 200
	TypeTransport Type = "TRANSPORT_ERROR"

	// TypeFetch indicates the billing API answered with a non-success status
	TypeFetch Type = "FETCH_ERROR"

	// TypeUnknownRegion indicates usage for a region with no pricing entry
	TypeUnknownRegion Type = "UNKNOWN_REGION"

	// TypeInvalidUsage indicates negative or out of range usage figures
	TypeInvalidUsage Type = "INVALID_USAGE"

	// TypeDivisionByZero indicates a projection over zero elapsed days
	TypeDivisionByZero Type = "DIVISION_BY_ZERO"

	// TypeInternal indicates an internal error
	TypeInternal Type = "INTERNAL_ERROR"
)

// Error represents a domain error with context
type Error struct {
	Type    Type                   `json:"type"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the error is of a specific type
func (e *Error) Is(t Type) bool {
	return e.Type == t
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// New creates a new error
func New(errType Type, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
	}
}

// Newf creates a new formatted error
func Newf(errType Type, format string, args ...interface{}) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with context
func Wrap(errType Type, message string, cause error) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// Wrapf wraps an error with formatted context
func Wrapf(errType Type, cause error, format string, args ...interface{}) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// IsType reports whether any error in err's chain is a domain error of type t
func IsType(err error, t Type) bool {
	var e *Error
	for err != nil {
		if !stderrors.As(err, &e) {
			return false
		}
		if e.Type == t {
			return true
		}
		err = e.Cause
	}
	return false
}

// TypeOf returns the type of the outermost domain error in err's chain,
// or TypeInternal if there is none.
func TypeOf(err error) Type {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Type
	}
	return TypeInternal
}

// Input creates an input error
func Input(message string) *Error {
	return New(TypeInput, message)
}

// Parsing creates a parsing error
func Parsing(message string, cause error) *Error {
	return Wrap(TypeParsing, message, cause)
}

// Config creates a configuration error
func Config(message string, cause error) *Error {
	return Wrap(TypeConfig, message, cause)
}

// Transport creates a transport error for an unexpected HTTP status
func Transport(statusCode int) *Error {
	return Newf(TypeTransport, "received %d, was expecting 200", statusCode).
		WithContext("status_code", statusCode)
}

// Fetch creates a fetch error for a non-success document status
func Fetch(status string) *Error {
	return Newf(TypeFetch, "status is not success: %s", status).
		WithContext("status", status)
}

// UnknownRegion creates an unknown region error
func UnknownRegion(regionID string) *Error {
	return Newf(TypeUnknownRegion, "no pricing for region %q", regionID).
		WithContext("region", regionID)
}

// InvalidUsage creates an invalid usage error
func InvalidUsage(message string) *Error {
	return New(TypeInvalidUsage, message)
}

// Internal creates an internal error
func Internal(message string, cause error) *Error {
	return Wrap(TypeInternal, message, cause)
}
