// Package common defines shared constants and sentinel errors used across
// the blog server layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound  = errors.New("not found")
	ErrorConflict  = errors.New("conflict")
	ErrorTransient = errors.New("store temporarily unavailable")

	// Service-level errors.
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorForbidden    = errors.New("forbidden")

	// Request validation errors.
	ErrorValidation = errors.New("validation error")
)
