// Package common defines shared constants and sentinel errors used across
// the GophSpend client and the stub API server. Callers should use errors.Is
// to match these values.
package common

import "errors"

var (
	// Transport-level errors.
	ErrUnavailable = errors.New("server unavailable")

	// Server-reported errors.
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")

	// Local form/field validation, raised before any network call.
	ErrValidation = errors.New("validation error")

	// Session lifecycle errors.
	ErrSessionExpired = errors.New("session expired")

	// Server-side storage and token errors.
	ErrAlreadyExists = errors.New("already exists")
	ErrInvalidToken  = errors.New("invalid token")
	ErrTokenExpired  = errors.New("token expired")
	ErrInternal      = errors.New("internal error")
)
