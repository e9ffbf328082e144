// Package domainerrors provides coded errors that the transport layer can
// translate into HTTP responses without inspecting error strings.
//
// Data-driven conditions in the eligibility engine (unknown method id, missing
// capability status, missing limit entry) are never errors: they fail closed by
// excluding a method. Errors here are reserved for malformed requests and
// programming mistakes surfaced at the transport boundary.
package domainerrors

import "errors"

// Code identifies a class of error for HTTP translation and assertions.
type Code string

const (
	CodeBadRequest Code = "bad_request"
	CodeValidation Code = "validation_error"
	CodeNotFound   Code = "not_found"
	CodeInternal   Code = "internal_error"
)

// DomainError carries a code alongside a human-readable message.
type DomainError struct {
	Code    Code
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// New constructs a DomainError with the given code and message.
func New(code Code, message string) *DomainError {
	return &DomainError{Code: code, Message: message}
}

// HasCode reports whether err (or anything it wraps) carries the given code.
func HasCode(err error, code Code) bool {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// CodeOf extracts the code from an error, defaulting to CodeInternal for
// errors that did not originate in this package.
func CodeOf(err error) Code {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}

// ToHTTPStatus maps an error code to its HTTP status.
func ToHTTPStatus(code Code) int {
	switch code {
	case CodeBadRequest, CodeValidation:
		return 400
	case CodeNotFound:
		return 404
	default:
		return 500
	}
}
