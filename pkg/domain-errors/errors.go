// Package domainerrors provides the coded error type shared by every service.
//
// Services return these (usually via New, Wrap or Validation) and the HTTP layer
// translates the code into a status and JSON envelope with httputil.WriteError.
// Infrastructure facts (not found, unavailable) live in pkg/platform/sentinel and
// are translated into coded errors by the service that observes them.
package domainerrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code identifies a class of failure. Codes are part of the public error
// envelope, so renaming one is a breaking API change.
type Code string

const (
	CodeBadRequest           Code = "bad_request"
	CodeValidation           Code = "validation_error"
	CodeNotFound             Code = "not_found"
	CodeTimeout              Code = "timeout"
	CodeUnavailable          Code = "service_unavailable"
	CodeIntentParse          Code = "intent_parse_error"
	CodeIntentService        Code = "intent_service_error"
	CodeExtractionService    Code = "extraction_service_error"
	CodeComplianceEvaluation Code = "compliance_evaluation_error"
	CodeInternal             Code = "internal_error"
)

// Error is a coded, optionally field-scoped error.
type Error struct {
	Code    Code
	Message string
	// Field names the offending input field for validation failures.
	Field string
	Err   error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a coded error.
func New(code Code, message string) error {
	return &Error{Code: code, Message: message}
}

// Wrap annotates err with a code and message. A nil err stays nil.
func Wrap(err error, code Code, message string) error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Message: message, Err: err}
}

// Validation creates a validation error naming the offending field.
func Validation(field, message string) error {
	return &Error{
		Code:    CodeValidation,
		Message: fmt.Sprintf("%s %s", field, message),
		Field:   field,
	}
}

// HasCode reports whether any coded error in err's chain carries code.
func HasCode(err error, code Code) bool {
	for err != nil {
		var de *Error
		if !errors.As(err, &de) {
			return false
		}
		if de.Code == code {
			return true
		}
		err = de.Err
	}
	return false
}

// Is is an alias of HasCode kept for call sites that read better with it.
func Is(err error, code Code) bool {
	return HasCode(err, code)
}

// CodeOf returns the outermost code in err's chain, or CodeInternal.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}

// MessageOf returns the outermost coded message, or a generic message for
// uncoded errors so internals never leak into responses.
func MessageOf(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Message
	}
	return "internal error"
}

// FieldOf returns the first field recorded in err's chain.
func FieldOf(err error) string {
	for err != nil {
		var de *Error
		if !errors.As(err, &de) {
			return ""
		}
		if de.Field != "" {
			return de.Field
		}
		err = de.Err
	}
	return ""
}

// HTTPStatus maps a code to its HTTP status.
func HTTPStatus(code Code) int {
	switch code {
	case CodeBadRequest, CodeValidation:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeTimeout:
		return http.StatusGatewayTimeout
	case CodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
