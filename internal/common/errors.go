// Package common defines shared constants and sentinel errors used across
// StayHub layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Store-level errors.
	ErrNotFound   = errors.New("not found")
	ErrDuplicate  = errors.New("already exists")
	ErrValidation = errors.New("validation error")

	// Auth errors. ErrUnauthorized covers every token failure: missing,
	// malformed, expired, bad signature. ErrForbidden means the token was
	// valid but the role is insufficient.
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")

	// Service-level errors (generic/internal flow control).
	ErrInternal = errors.New("internal error")
)
