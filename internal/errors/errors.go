package errors

import (
	"errors"
	"fmt"
)

// Common error types for the embed server
var (
	// Request validation errors
	ErrMissingParameter = errors.New("missing required parameter")

	// Upstream identity-provider errors
	ErrUpstream = errors.New("upstream request failed")

	// Configuration errors
	ErrMissingSecret = errors.New("missing required secret")

	// General errors
	ErrNotFound = errors.New("not found")
	ErrInternal = errors.New("internal error")
)

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
