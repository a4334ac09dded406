// Package errors holds the error values the plan engine reports back to
// callers. Only two things can go wrong while building a prescription: a
// configuration lookup fails or a baseline weight is still unknown.
package errors

import (
	"errors"
	"fmt"
)

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an error that did not come from this package.
	CodeUnknown Code = "UNKNOWN"

	// CodeNotFound means a setting, apparatus, exercise or workout is missing.
	CodeNotFound Code = "NOT_FOUND"
	// CodeMisconfigured means a parameter is present but invalid.
	CodeMisconfigured Code = "MISCONFIGURED"
	// CodeBlocked means no baseline weight is known yet.
	CodeBlocked Code = "BLOCKED"
)

// Error is a coded error whose message is meant to be shown to the user as is.
type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Is lets errors.Is match on the code alone.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Message == "" && t.Code == e.Code
}

// Sentinels for errors.Is.
var (
	ErrNotFound      = &Error{Code: CodeNotFound}
	ErrMisconfigured = &Error{Code: CodeMisconfigured}
	ErrBlocked       = &Error{Code: CodeBlocked}
)

func NotFound(format string, args ...any) *Error {
	return &Error{Code: CodeNotFound, Message: fmt.Sprintf(format, args...)}
}

func Misconfigured(format string, args ...any) *Error {
	return &Error{Code: CodeMisconfigured, Message: fmt.Sprintf(format, args...)}
}

func Blocked(format string, args ...any) *Error {
	return &Error{Code: CodeBlocked, Message: fmt.Sprintf(format, args...)}
}

// GetCode extracts the error code from any error.
// Returns CodeUnknown if the error is not one of ours.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeUnknown
}

// IsCode checks if the error has the specified code.
func IsCode(err error, code Code) bool {
	return GetCode(err) == code
}
