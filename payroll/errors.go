/*
errors.go - Centralized error types for the payroll engine

PURPOSE:
  All engine error types in one place for consistency and discoverability.
  The engine performs no I/O; every error here signals invalid input that
  the caller should have validated or normalized first. Failing fast is
  deliberate - the alternative is NaN silently flowing into pay totals.

USAGE:
  Callers match with errors.Is/As:

    if errors.Is(err, payroll.ErrInvalidSettings) { ... }

    var serr *payroll.SettingsError
    if errors.As(err, &serr) { log.Print(serr.Field) }
*/
package payroll

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidClock is returned when a "HH:MM" time string cannot be parsed.
	ErrInvalidClock = errors.New("invalid clock time")

	// ErrInvalidDate is returned when a "YYYY-MM-DD" date string cannot be parsed.
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidSettings is returned when settings fail normalization.
	ErrInvalidSettings = errors.New("invalid settings")

	// ErrShiftNotFound is returned by shift stores for unknown IDs.
	ErrShiftNotFound = errors.New("shift not found")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// SettingsError reports which settings field failed validation and why.
type SettingsError struct {
	Field  string
	Reason string
}

func (e *SettingsError) Error() string {
	return fmt.Sprintf("invalid settings: %s: %s", e.Field, e.Reason)
}

func (e *SettingsError) Unwrap() error { return ErrInvalidSettings }
