package ledger

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRange means a reporting range with a missing bound or
	// with end before start.
	ErrInvalidRange = errors.New("invalid date range")

	// ErrInvalidAmount means a raw amount that is negative or not numeric.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrAmbiguousCurrency means an unrecognized currency label on a
	// category that has no default currency.
	ErrAmbiguousCurrency = errors.New("ambiguous currency")
)

// RecordError describes a single source record that could not be
// classified. Such records are dropped from aggregation and surfaced as
// report diagnostics instead of aborting the build.
type RecordError struct {
	Category Category
	RecordID string
	Err      error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("%s record %s: %v", e.Category, e.RecordID, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}
