// Package common defines shared sentinel errors used across the wellkeeper
// stores and services. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Storage-level errors.
	ErrNotFound = errors.New("not found")

	// Validation errors for user-entered values.
	ErrValidation  = errors.New("validation error")
	ErrUnknownMood = errors.New("unknown mood")

	// Auth errors.
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
