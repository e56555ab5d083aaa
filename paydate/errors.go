/*
errors.go - Validation error taxonomy for paydate requests

PURPOSE:
  Every way a request can be rejected has its own sentinel so callers can
  tell which argument failed. Validation runs before any date is
  generated; a failed request never yields a partial result.

USAGE:
  dates, err := engine.CalculateNextPaydates("DAILY", "2014-01-01", 1)
  if errors.Is(err, paydate.ErrInvalidFrequencyKind) {
      ...
  }

  var verr *paydate.ValidationError
  if errors.As(err, &verr) {
      fmt.Println(verr.Field, verr.Reason)
  }

SEE ALSO:
  - request.go: produces these errors
  - api/handlers.go: maps them to HTTP 400 codes
*/
package paydate

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidFrequencyKind is returned when the frequency name is not
	// one of WEEKLY, BIWEEKLY or MONTHLY.
	ErrInvalidFrequencyKind = errors.New("invalid frequency kind")

	// ErrInvalidDateFormat is returned when a date is not a real calendar
	// date written as YYYY-MM-DD.
	ErrInvalidDateFormat = errors.New("invalid date format")

	// ErrInvalidCount is returned when the paydate count is non-numeric,
	// negative or above the caller's limit.
	ErrInvalidCount = errors.New("invalid count")

	// ErrInvalidAmount is returned when an annual gross amount cannot be
	// split into per-period amounts.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidUnit is returned for shift units other than day or month.
	ErrInvalidUnit = errors.New("invalid unit")
)

// =============================================================================
// STRUCTURED ERRORS
// =============================================================================

// ValidationError names the rejected argument and why.
type ValidationError struct {
	Field  string // e.g. "frequency", "first_paydate", "count"
	Value  string // offending input as received
	Reason string
	Err    error // one of the sentinels above
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s %q: %s", e.Err, e.Field, e.Value, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func invalid(sentinel error, field, value, reason string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Reason: reason, Err: sentinel}
}

// IsValidationError reports whether err came from input validation, as
// opposed to an infrastructure failure.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidFrequencyKind) ||
		errors.Is(err, ErrInvalidDateFormat) ||
		errors.Is(err, ErrInvalidCount) ||
		errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrInvalidUnit)
}

// Code returns a stable snake_case identifier for a validation error, or
// "" for anything else.
func Code(err error) string {
	switch {
	case errors.Is(err, ErrInvalidFrequencyKind):
		return "invalid_frequency_kind"
	case errors.Is(err, ErrInvalidDateFormat):
		return "invalid_date_format"
	case errors.Is(err, ErrInvalidCount):
		return "invalid_count"
	case errors.Is(err, ErrInvalidAmount):
		return "invalid_amount"
	case errors.Is(err, ErrInvalidUnit):
		return "invalid_unit"
	default:
		return ""
	}
}
