package service

import "errors"

// Sentinel errors the controllers translate to HTTP statuses. Anything not
// wrapping one of these surfaces as a generic 500.
var (
	ErrNotFound   = errors.New("not found")
	ErrForbidden  = errors.New("forbidden")
	ErrConflict   = errors.New("conflict")
	ErrValidation = errors.New("validation failed")
)
