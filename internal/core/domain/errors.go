package domain

import "errors"

// Common API error kinds. The REST client's response interceptor wraps every
// failed call in exactly one of these, so callers can branch with errors.Is
// instead of inspecting status codes.
var (
	ErrAuthExpired       = errors.New("authentication expired")
	ErrPermissionDenied  = errors.New("permission denied")
	ErrNotFound          = errors.New("resource not found")
	ErrValidationFailed  = errors.New("validation failed")
	ErrRateLimited       = errors.New("rate limited")
	ErrServer            = errors.New("server error")
	ErrNetwork           = errors.New("network unreachable")
	ErrRequestFailed     = errors.New("request could not be built")
	ErrNotImplemented    = errors.New("endpoint not yet implemented in backend")
	ErrUntrustedRedirect = errors.New("redirect host not in allow-list")
)
