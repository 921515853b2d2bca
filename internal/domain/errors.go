package domain

import "errors"

// Sentinel errors shared across services and handlers. Checked with
// errors.Is; wrapped with context at the call site.
var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrValidation   = errors.New("validation failed")
	ErrBanned       = errors.New("user is banned")
)
