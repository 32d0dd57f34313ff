package errors

import (
	"fmt"
)

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures a user-correctable precondition failure. No network
// call is made when one is reported.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// RequestError is the normalized failure of a remote call. Message is the
// human-readable text shown to the user; Err keeps the root cause.
type RequestError struct {
	Endpoint   string
	StatusCode int
	Message    string
	Err        error
}

// NewRequestError constructs a RequestError.
func NewRequestError(endpoint string, status int, message string, err error) error {
	return &RequestError{Endpoint: endpoint, StatusCode: status, Message: message, Err: err}
}

func (e *RequestError) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

// Detail renders the message together with endpoint and status for logs.
func (e *RequestError) Detail() string {
	if e == nil {
		return ""
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("request error [%s %d]: %s", e.Endpoint, e.StatusCode, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("request error [%s]: %s: %v", e.Endpoint, e.Message, e.Err)
	}
	return fmt.Sprintf("request error [%s]: %s", e.Endpoint, e.Message)
}

// Unwrap exposes the root cause.
func (e *RequestError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// DecodeError indicates a local file could not be read for upload.
type DecodeError struct {
	Path string
	Err  error
}

// NewDecodeError constructs a DecodeError for the given file.
func NewDecodeError(path string, err error) error {
	return &DecodeError{Path: path, Err: err}
}

func (e *DecodeError) Error() string {
	if e == nil {
		return ""
	}
	if e.Path != "" {
		return fmt.Sprintf("cannot read image %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("cannot read image: %v", e.Err)
}

// Unwrap exposes the underlying error.
func (e *DecodeError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
