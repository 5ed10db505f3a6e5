// Package service implements the operations behind the HTTP surface:
// identity, profile and document stores, the verification workflow
// and the employer queries. Every failure maps to exactly one of the
// sentinel errors below so handlers can translate without string
// matching.
package service

import "errors"

var (
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrProfileNotFound    = errors.New("candidate profile not found")
	ErrCandidateNotFound  = errors.New("candidate not found")
	ErrNotVerified        = errors.New("candidate is not verified")
	ErrValidation         = errors.New("invalid input")
	// ErrStoreUnavailable marks transient persistence failures, the
	// only kind a caller may retry
	ErrStoreUnavailable = errors.New("store unavailable")
)
