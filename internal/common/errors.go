package common

import "errors"

// Sentinel errors shared by the host store surface. Callers match them with
// errors.Is; component-specific errors live in their own packages.
var (
	// Host store errors.
	ErrHostUnavailable = errors.New("host store unavailable")
	ErrQuotaExceeded   = errors.New("storage quota exceeded")
	ErrNotFound        = errors.New("not found")

	// Service-level errors.
	ErrInternal     = errors.New("internal error")
	ErrUnauthorized = errors.New("unauthorized")

	// Session token errors.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
