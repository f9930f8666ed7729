// Package common defines shared constants and sentinel errors used across
// CourseNotes components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Auth errors surfaced to the end user.
	ErrAccountExists      = errors.New("account with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")

	// Validation errors (empty required fields etc.).
	ErrValidation = errors.New("validation error")

	// Session token errors (invalid, malformed or expired marker).
	ErrInvalidToken = errors.New("invalid session token")

	// Repository-level errors.
	ErrNotFound = errors.New("not found")
)
