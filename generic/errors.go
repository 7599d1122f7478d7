/*
errors.go - Centralized error types

PURPOSE:
  All error types in one place for consistency and discoverability.
  The planner degrades gracefully almost everywhere; only malformed
  primitive inputs surface as errors.

ERROR CATEGORIES:
  1. Parse errors      - unparseable date strings (ParseError)
  2. Validation errors - negative leave balances
  3. Not found         - custom holiday lookups in the store

An infeasible plan is NOT an error. Strategies return the empty plan.

SEE ALSO:
  - planner/profile.go: raises ParseError and ErrNegativeBalance
  - api/handlers.go: maps client errors to HTTP 400
*/
package generic

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidDate is the sentinel behind every ParseError.
	ErrInvalidDate = errors.New("invalid date")

	// ErrNegativeBalance is returned when a leave balance below zero is supplied.
	ErrNegativeBalance = errors.New("leave balance must not be negative")

	// ErrHolidayNotFound is returned when a custom holiday ID does not exist.
	ErrHolidayNotFound = errors.New("holiday not found")
)

// =============================================================================
// STRUCTURED ERRORS
// =============================================================================

// ParseError reports a date string that could not be parsed.
type ParseError struct {
	Field string // payload key, empty when parsed outside a payload
	Value string
}

func (e *ParseError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid date %q (want YYYY-MM-DD)", e.Value)
	}
	return fmt.Sprintf("%s: invalid date %q (want YYYY-MM-DD)", e.Field, e.Value)
}

func (e *ParseError) Unwrap() error {
	return ErrInvalidDate
}

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError returns true if the error is due to invalid caller input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidDate) ||
		errors.Is(err, ErrNegativeBalance)
}

// IsNotFound returns true if the error indicates a missing resource.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrHolidayNotFound)
}
