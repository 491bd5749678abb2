package types

import (
	"errors"
	"fmt"
)

// ErrorType defines the category of an error
type ErrorType string

// Error types
const (
	ParseError      ErrorType = "parse"
	ExtractionError ErrorType = "extraction"
	IOError         ErrorType = "io"
)

// Common errors that can be used throughout the package
var (
	ErrParse       = errors.New("input could not be interpreted as markup")
	ErrEmptyResult = errors.New("no usernames found")
	ErrIO          = errors.New("input could not be read")
	ErrInputLarge  = errors.New("input too large")
)

// Error is the error returned by every failing operation of the library.
// Role is only set once the error has crossed the orchestration layer,
// where the following and followers exports can be told apart.
type Error struct {
	Type    ErrorType
	Op      string
	Role    Role
	Message string
	Err     error
}

func (e *Error) Error() string {
	prefix := fmt.Sprintf("[%s:%s]", e.Type, e.Op)
	if e.Role != RoleUnknown {
		prefix += " " + string(e.Role)
	}
	if e.Message == "" {
		return fmt.Sprintf("%s %v", prefix, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", prefix, e.Message, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// WrapError wraps an error with context information
func WrapError(err error, errorType ErrorType, funcName, message string) error {
	if err == nil {
		return nil
	}
	return &Error{Type: errorType, Op: funcName, Message: message, Err: err}
}

// WrapParseError wraps a parsing error
func WrapParseError(err error, funcName, message string) error {
	return WrapError(err, ParseError, funcName, message)
}

// WrapExtractionError wraps an extraction error
func WrapExtractionError(err error, funcName, message string) error {
	return WrapError(err, ExtractionError, funcName, message)
}

// WrapIOError wraps a read failure of the input collaborator
func WrapIOError(err error, funcName, message string) error {
	if err != nil && !errors.Is(err, ErrIO) {
		err = fmt.Errorf("%w: %w", ErrIO, err)
	}
	return WrapError(err, IOError, funcName, message)
}

// WithRole returns a copy of err tagged with the export role that produced it.
// Errors not created by this package are wrapped as extraction errors.
func WithRole(err error, role Role) error {
	if err == nil {
		return nil
	}
	var e *Error
	if !errors.As(err, &e) {
		return &Error{Type: ExtractionError, Op: "WithRole", Role: role, Err: err}
	}
	tagged := *e
	tagged.Role = role
	if role != RoleUnknown && errors.Is(err, ErrEmptyResult) {
		tagged.Message = fmt.Sprintf("No users found in your %s list. Please make sure you uploaded the correct '%s' file",
			role, role.FileName())
	}
	return &tagged
}

// RoleOf returns the role recorded on err, if any.
func RoleOf(err error) Role {
	var e *Error
	if errors.As(err, &e) {
		return e.Role
	}
	return RoleUnknown
}

// IsErrorType checks if an error is of a specific type
func IsErrorType(err error, errorType ErrorType) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Type == errorType
}

// IsParseError returns true if the error is a parse error
func IsParseError(err error) bool {
	return IsErrorType(err, ParseError)
}

// IsEmptyResultError returns true if every extraction strategy came up empty
func IsEmptyResultError(err error) bool {
	return IsErrorType(err, ExtractionError) && errors.Is(err, ErrEmptyResult)
}

// IsIOError returns true if the input could not be read
func IsIOError(err error) bool {
	return IsErrorType(err, IOError)
}
