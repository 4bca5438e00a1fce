// Package errors provides error handling utilities.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Type identifies the category of error
type Type string

const (
	// TypeInput indicates malformed vendor or scenario input
	TypeInput Type = "INPUT_ERROR"

	// TypeParsing indicates a catalog or scenario file could not be decoded
	TypeParsing Type = "PARSING_ERROR"

	// TypePricing indicates a vendor's cost could not be computed
	TypePricing Type = "PRICING_ERROR"

	// TypeCurrency indicates a conversion failure in strict mode
	TypeCurrency Type = "CURRENCY_ERROR"

	// TypeConfig indicates a configuration error
	TypeConfig Type = "CONFIG_ERROR"

	// TypeNotSupported indicates an unsupported operation or format
	TypeNotSupported Type = "NOT_SUPPORTED"
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
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
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

// IsType checks whether err, or anything it wraps, is a domain error of type t
func IsType(err error, t Type) bool {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Type == t
	}
	return false
}

// Input creates an input error
func Input(message string) *Error {
	return New(TypeInput, message)
}

// Parsing creates a parsing error
func Parsing(message string, cause error) *Error {
	return Wrap(TypeParsing, message, cause)
}

// Pricing creates a formatted pricing error
func Pricing(format string, args ...interface{}) *Error {
	return Newf(TypePricing, format, args...)
}

// Currency creates a currency conversion error
func Currency(message string) *Error {
	return New(TypeCurrency, message)
}

// Config creates a configuration error
func Config(message string, cause error) *Error {
	return Wrap(TypeConfig, message, cause)
}

// NotSupported creates a not supported error
func NotSupported(operation string) *Error {
	return Newf(TypeNotSupported, "operation not supported: %s", operation)
}
