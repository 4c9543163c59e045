// Package upstream normalises failures from the external systems the services
// call (the LLM, Document AI, sibling services) into one taxonomy.
package upstream

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"realeagent/pkg/platform/sentinel"
)

// Category is the normalised failure taxonomy.
type Category string

const (
	// Timeout: the upstream took too long or the caller's deadline expired.
	Timeout Category = "timeout"

	// BadData: the upstream answered with a body we could not use.
	BadData Category = "bad_data"

	// Authentication: credentials were rejected or missing.
	Authentication Category = "authentication"

	// Outage: the upstream could not be reached or returned 5xx.
	Outage Category = "provider_outage"

	// NotFound: the referenced upstream resource does not exist.
	NotFound Category = "not_found"

	// Conflict: the resource already exists.
	Conflict Category = "conflict"

	// RateLimited: too many requests.
	RateLimited Category = "rate_limited"

	// Rejected: the upstream refused the request as invalid (4xx).
	Rejected Category = "rejected"

	Internal Category = "internal"
)

// Error wraps an upstream failure with its category.
type Error struct {
	Category   Category
	Provider   string
	Message    string
	Underlying error
	// Status is the upstream HTTP status when one was observed.
	Status int
}

func (e *Error) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("%s [%s]: %s: %v", e.Provider, e.Category, e.Message, e.Underlying)
	}
	return fmt.Sprintf("%s [%s]: %s", e.Provider, e.Category, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Underlying
}

// Is matches the infrastructure sentinels, so callers can test
// errors.Is(err, sentinel.ErrConflict) without knowing the provider.
func (e *Error) Is(target error) bool {
	switch target {
	case sentinel.ErrConflict:
		return e.Category == Conflict
	case sentinel.ErrNotFound:
		return e.Category == NotFound
	case sentinel.ErrUnavailable:
		return e.Category == Timeout || e.Category == Outage
	}
	return false
}

// Retryable reports whether repeating the call could succeed.
func (e *Error) Retryable() bool {
	return e.Category == Timeout || e.Category == Outage || e.Category == RateLimited
}

// New creates a categorised upstream error.
func New(category Category, provider, message string, underlying error) *Error {
	return &Error{
		Category:   category,
		Provider:   provider,
		Message:    message,
		Underlying: underlying,
	}
}

// CategoryOf extracts the category from err, treating context deadline errors
// as timeouts.
func CategoryOf(err error) Category {
	var ue *Error
	if errors.As(err, &ue) {
		return ue.Category
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return Timeout
	}
	return Internal
}

// IsRetryable checks whether err is worth retrying.
func IsRetryable(err error) bool {
	var ue *Error
	if errors.As(err, &ue) {
		return ue.Retryable()
	}
	return false
}

// CategoryForStatus maps an upstream HTTP status to a category.
func CategoryForStatus(status int) Category {
	switch {
	case status == http.StatusRequestTimeout || status == http.StatusGatewayTimeout:
		return Timeout
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return Authentication
	case status == http.StatusNotFound:
		return NotFound
	case status == http.StatusConflict:
		return Conflict
	case status == http.StatusTooManyRequests:
		return RateLimited
	case status >= 500:
		return Outage
	case status >= 400:
		return Rejected
	default:
		return Internal
	}
}

// FromHTTPStatus builds an Error for a non-success upstream response.
func FromHTTPStatus(provider string, status int, message string) *Error {
	e := New(CategoryForStatus(status), provider, message, nil)
	e.Status = status
	return e
}
