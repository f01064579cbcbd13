// Package domain defines the core business entities and errors.
package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// The specific errors below wrap it, so callers can match either the
	// class or the exact failure.
	ErrValidation = errors.New("validation failed")

	// ErrEmptyUsername is returned when a username is empty.
	ErrEmptyUsername = fmt.Errorf("%w: username cannot be empty", ErrValidation)

	// ErrEmptyPassword is returned when a password is empty.
	ErrEmptyPassword = fmt.Errorf("%w: password cannot be empty", ErrValidation)

	// ErrUnknownMetric is returned when a metric name does not identify
	// one of the three supported health metrics.
	ErrUnknownMetric = errors.New("unknown health metric")

	// ErrUnauthorized is returned when an operation is not permitted.
	ErrUnauthorized = errors.New("unauthorized operation")
)
