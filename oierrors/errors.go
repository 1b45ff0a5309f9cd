// Package oierrors provides structured error types for the OIFITS merger.
//
// These types enable programmatic error handling via [errors.Is] and
// [errors.As]: a sentinel for a coarse category check, and a typed struct
// carrying category-specific fields for callers that need more than a
// yes/no answer.
package oierrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrInvalidArgument indicates a fatal, caller-facing argument error
	// (e.g. a nil or empty input collection passed to a Merge* entry point).
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrMissingReference indicates a data table referenced a metadata table
	// (INSNAME/ARRNAME/CORRNAME) that could not be resolved in the merged
	// output. This is recoverable: the merger logs it and degrades the row
	// or table per §7 of the merge design, it never surfaces as a returned
	// error.
	ErrMissingReference = errors.New("missing reference")

	// ErrEmptySelection indicates a nil SelectorResult. Recoverable: the
	// merger returns a file containing only a primary HDU.
	ErrEmptySelection = errors.New("empty selection")
)

// InvalidArgumentError is returned by the four public Merge* entry points
// when the input collection is missing or empty.
type InvalidArgumentError struct {
	// Message describes what was invalid.
	Message string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument: %s", e.Message)
}

// Is reports whether target matches this error type.
func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// MissingReferenceError describes a data table row or table dropped because
// one of its metadata references (INSNAME/ARRNAME/CORRNAME) did not resolve
// to a table in the merge output. It is never returned from a Merge* entry
// point; the merger itself reports missing references as merger.Warning
// values and log calls and does not construct this type.
type MissingReferenceError struct {
	// TableType is "wavelength", "array", or "corr".
	TableType string
	// Name is the unresolved reference name (INSNAME/ARRNAME/CORRNAME).
	Name string
	// DataTableIndex is the position of the offending data table within
	// SelectorResult.SortedOIDatas.
	DataTableIndex int
}

func (e *MissingReferenceError) Error() string {
	return fmt.Sprintf("missing reference: %s %q (data table #%d)", e.TableType, e.Name, e.DataTableIndex)
}

// Is reports whether target matches this error type.
func (e *MissingReferenceError) Is(target error) bool {
	return target == ErrMissingReference
}

// EmptySelectionError records that a Merge* entry point was invoked with a
// nil SelectorResult.
type EmptySelectionError struct{}

func (e *EmptySelectionError) Error() string {
	return "empty selection: selector result is nil, returning primary-HDU-only file"
}

// Is reports whether target matches this error type.
func (e *EmptySelectionError) Is(target error) bool {
	return target == ErrEmptySelection
}
