// Package common defines shared sentinel errors used across taskmeet
// components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Identity errors.
	ErrorConflict     = errors.New("already exists")
	ErrorUnauthorized = errors.New("unauthorized")

	// Collection-store guard conditions (handled as silent no-ops by
	// callers, kept as sentinels so tests can assert on them).
	ErrNoActiveSession = errors.New("no active session")
)
