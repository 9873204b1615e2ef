// Package errs defines the closed set of error kinds used across icucore.
//
// Every fallible operation returns one of these sentinels, optionally
// wrapped with additional context via fmt.Errorf("%w: ...", errs.ErrX, ...).
// Callers compare with errors.Is; the field-carrying kinds additionally
// expose a typed wrapper so errors.As can recover the offending value.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrMarkerNotFound means no provider in the chain recognizes the marker.
	// Swallowed only by the forking provider while a sub-provider remains.
	ErrMarkerNotFound = errors.New("marker not found")

	// ErrIdentifierNotFound means the marker is known but no payload exists
	// for the requested identifier. Swallowed only by the fallback iterator
	// while a parent locale remains in the chain.
	ErrIdentifierNotFound = errors.New("identifier not found")

	// ErrInconsistentData means two payloads that must agree (e.g. by
	// checksum) disagree.
	ErrInconsistentData = errors.New("inconsistent data")

	// ErrInvalidPattern means a pattern failed structural validation.
	ErrInvalidPattern = errors.New("invalid pattern")

	// ErrInvalidPlaceholder means a placeholder-backend store is malformed.
	ErrInvalidPlaceholder = errors.New("invalid placeholder")

	// ErrMissingInputField means an input value required by a pattern field
	// was not supplied.
	ErrMissingInputField = errors.New("missing input field")

	// ErrInvalidMonthCode means a month code did not parse as M01..M12 or
	// M<nn>L.
	ErrInvalidMonthCode = errors.New("invalid month code")

	// ErrInvalidEra means an era code is not recognized by the calendar.
	ErrInvalidEra = errors.New("invalid era")

	// ErrInvalidCyclicYear means a cyclic year value fell outside its
	// calendar-defined range.
	ErrInvalidCyclicYear = errors.New("invalid cyclic year")

	// ErrUnsupportedLength means a FieldLength is not valid for its symbol.
	ErrUnsupportedLength = errors.New("unsupported field length")

	// ErrNamesNotLoaded means a names payload required to format a field
	// was not loaded.
	ErrNamesNotLoaded = errors.New("names not loaded")

	// ErrDecimalFormatterNotLoaded means a numeric field could not be
	// padded because no decimal formatter was loaded.
	ErrDecimalFormatterNotLoaded = errors.New("decimal formatter not loaded")

	// ErrChecksum means a marker's payloads do not share a single checksum,
	// or a loaded payload's checksum does not match its recorded value.
	ErrChecksum = errors.New("checksum mismatch")

	// ErrIO wraps an underlying I/O failure from a provider or exporter.
	ErrIO = errors.New("i/o error")
)

// MissingInputFieldError wraps ErrMissingInputField with the field name.
type MissingInputFieldError struct {
	Field string
}

func (e *MissingInputFieldError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingInputField, e.Field)
}

func (e *MissingInputFieldError) Unwrap() error { return ErrMissingInputField }

// InvalidCyclicYearError wraps ErrInvalidCyclicYear with the offending
// value and the calendar's maximum.
type InvalidCyclicYearError struct {
	Value int
	Max   int
}

func (e *InvalidCyclicYearError) Error() string {
	return fmt.Sprintf("%s: %d exceeds max %d", ErrInvalidCyclicYear, e.Value, e.Max)
}

func (e *InvalidCyclicYearError) Unwrap() error { return ErrInvalidCyclicYear }

// UnsupportedLengthError wraps ErrUnsupportedLength with the field symbol
// name that rejected it.
type UnsupportedLengthError struct {
	Field string
}

func (e *UnsupportedLengthError) Error() string {
	return fmt.Sprintf("%s: %s", ErrUnsupportedLength, e.Field)
}

func (e *UnsupportedLengthError) Unwrap() error { return ErrUnsupportedLength }

// NamesNotLoadedError wraps ErrNamesNotLoaded with the field symbol name
// whose names table was missing.
type NamesNotLoadedError struct {
	Field string
}

func (e *NamesNotLoadedError) Error() string {
	return fmt.Sprintf("%s: %s", ErrNamesNotLoaded, e.Field)
}

func (e *NamesNotLoadedError) Unwrap() error { return ErrNamesNotLoaded }
