// Package service provides the application-level services: identity,
// assessment sessions, inference dispatch, and history persistence.
package service

import "errors"

// Common service errors - sentinel errors used across service implementations.
// Callers check for them with errors.Is; the API layer maps them to HTTP
// status codes.
var (
	// ErrInvalidCredentials indicates a failed login. Deliberately the same
	// for unknown usernames and wrong passwords, so usernames cannot be
	// enumerated through the login endpoint.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrSessionNotFound indicates the referenced assessment session does
	// not exist, typically because the user logged out.
	ErrSessionNotFound = errors.New("session not found")

	// ErrResultsIncomplete indicates a view that needs all three scores was
	// requested before every analysis had run in this session. Absent scores
	// are never substituted with fabricated values.
	ErrResultsIncomplete = errors.New("analysis not yet run for every metric")
)
