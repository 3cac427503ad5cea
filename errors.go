package orrery

import (
	"fmt"
)

// CatalogError is returned when the element table fails validation. It is
// fatal: the engine refuses to start on a malformed catalog.
type CatalogError struct {
	Body   string // offending body id, empty for table-level faults
	Reason string
}

// Error returns the error message for CatalogError.
func (e *CatalogError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("catalog: %s", e.Reason)
	}
	return fmt.Sprintf("catalog: body %q: %s", e.Body, e.Reason)
}

// FocusErrorReason defines the specific reason a focus operation was refused.
type FocusErrorReason string

const (
	ReasonNoFocus         FocusErrorReason = "no body focused"
	ReasonUnknownBody     FocusErrorReason = "body not in catalog"
	ReasonIndexOutOfRange FocusErrorReason = "moon index out of range"
)

// FocusError is returned when a focus or moon-selection request cannot be
// resolved. It is recoverable: the engine state is left unchanged and the
// request is a no-op.
type FocusError struct {
	Body   string           // body the request referred to
	Index  int              // requested moon index, when applicable
	Count  int              // available moon count, when applicable
	Reason FocusErrorReason
}

// Error returns the error message for FocusError.
func (e *FocusError) Error() string {
	if e.Reason == ReasonIndexOutOfRange {
		return fmt.Sprintf("focus: %s: index %d of %d moons around %q", e.Reason, e.Index, e.Count, e.Body)
	}
	if e.Body != "" {
		return fmt.Sprintf("focus: %s: %q", e.Reason, e.Body)
	}
	return fmt.Sprintf("focus: %s", e.Reason)
}
