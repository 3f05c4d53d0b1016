package rest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"

	"pension-admin/internal/core/domain"
)

// ErrorResponse mirrors the backend's error envelope.
type ErrorResponse struct {
	Timestamp string            `json:"timestamp"`
	Status    int               `json:"status"`
	ErrorText string            `json:"error"`
	Message   string            `json:"message"`
	Path      string            `json:"path"`
	Errors    map[string]string `json:"errors,omitempty"`
}

// Error is the typed failure returned by every unsuccessful call. Kind is
// one of the domain error sentinels, so callers branch with errors.Is;
// Status is the HTTP status, or 0 when no response was received.
type Error struct {
	Kind    error
	Status  int
	Message string
	Fields  map[string]string
	Path    string
	cause   error
}

func (e *Error) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
	}
	if e.cause != nil {
		return fmt.Sprintf("%s (%v)", e.Message, e.cause)
	}
	return e.Message
}

func (e *Error) Unwrap() []error {
	if e.cause != nil {
		return []error{e.Kind, e.cause}
	}
	return []error{e.Kind}
}

// classify maps a failed response onto the error taxonomy.
//
// A 404 here can mean either "no such resource" or "no such route": the
// backend emits identical envelopes for both, so this layer cannot tell
// them apart. Service modules that have a safe broader call treat every
// 404 as a missing route and fall back; the rest surface it as not found.
func classify(status int, body []byte) *Error {
	var envelope ErrorResponse
	_ = json.Unmarshal(body, &envelope)

	apiErr := &Error{
		Status: status,
		Fields: envelope.Errors,
		Path:   envelope.Path,
	}

	switch status {
	case http.StatusUnauthorized:
		apiErr.Kind = domain.ErrAuthExpired
		apiErr.Message = "Session expired. Please login again."
	case http.StatusForbidden:
		apiErr.Kind = domain.ErrPermissionDenied
		apiErr.Message = "You do not have permission to perform this action."
	case http.StatusNotFound:
		apiErr.Kind = domain.ErrNotFound
		apiErr.Message = messageOr(envelope, "Resource not found.")
	case http.StatusUnprocessableEntity:
		apiErr.Kind = domain.ErrValidationFailed
		apiErr.Message = firstFieldError(envelope.Errors, messageOr(envelope, "Validation failed."))
	case http.StatusTooManyRequests:
		apiErr.Kind = domain.ErrRateLimited
		apiErr.Message = "Too many requests. Please try again later."
	case http.StatusInternalServerError:
		apiErr.Kind = domain.ErrServer
		apiErr.Message = "Server error. Please try again later."
	default:
		if status >= 500 {
			apiErr.Kind = domain.ErrServer
		} else {
			apiErr.Kind = domain.ErrRequestFailed
		}
		apiErr.Message = messageOr(envelope, "An error occurred. Please try again.")
	}

	return apiErr
}

// networkError represents a request that never produced a response.
func networkError(err error) *Error {
	return &Error{
		Kind:    domain.ErrNetwork,
		Message: "Network error. Please check your connection.",
		cause:   err,
	}
}

// buildError represents a request that failed before it could be sent.
func buildError(err error) *Error {
	return &Error{
		Kind:    domain.ErrRequestFailed,
		Message: "An unexpected error occurred.",
		cause:   err,
	}
}

func messageOr(envelope ErrorResponse, fallback string) string {
	if envelope.Message != "" {
		return envelope.Message
	}
	return fallback
}

// firstFieldError returns the first field-level validation message, by
// sorted field name so the choice is stable, or the fallback when the
// error map is empty.
func firstFieldError(fields map[string]string, fallback string) string {
	if len(fields) == 0 {
		return fallback
	}
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return fields[names[0]]
}
