// Package common defines shared sentinel errors used across the FamVault
// layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// validation errors, reported before any I/O
	ErrMissingCredentials     = errors.New("missing credentials")
	ErrInvalidCredentialInput = errors.New("invalid credential input")
	ErrInvalidProfileInput    = errors.New("invalid profile input")

	// profile lookup errors
	ErrProfileNotFound = errors.New("profile not found")

	// session lifecycle errors
	ErrNotSignedIn = errors.New("not signed in")

	// store-level errors
	ErrPersistence = errors.New("persistence failure")
)
