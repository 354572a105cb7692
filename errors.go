// errors.go — construction and specialization failures for xgx-group core.
//
// All four are local, synchronous, immediately-surfaced failures: they
// propagate to the caller of New/Specialize and are never retried or
// recovered internally. The matcher itself is total and has no failure mode.
//
// Each failure is a concrete type with exported fields so callers can
// dispatch with errors.As and inspect programmatically; messages stay
// human-oriented.
package xgxgroup

import "fmt"

// InvalidSpecializationError reports a Specialize call with arguments that
// are not error kinds, or an attempt to specialize an already-specialized
// shape (specializations do not nest).
type InvalidSpecializationError struct {
	Shape  *Shape // shape the specialization was requested on
	Arg    any    // offending argument; nil when the shape itself is at fault
	Reason string
}

func (e *InvalidSpecializationError) Error() string {
	name := "shape"
	if e.Shape != nil {
		name = e.Shape.name
	}
	return fmt.Sprintf("invalid specialization of %s: %s", name, e.Reason)
}

// EmptySpecializationError reports construction through a specialized shape
// with zero member exceptions; a specialized shape requires at least one.
type EmptySpecializationError struct {
	Shape *Shape
}

func (e *EmptySpecializationError) Error() string {
	name := "shape"
	if e.Shape != nil {
		name = e.Shape.name
	}
	return fmt.Sprintf("specialization %s does not match empty exceptions", name)
}

// InvalidMemberError reports a supplied exception that is not a usable error
// value. With a []error signature the only such value is nil.
type InvalidMemberError struct {
	Index int // position of the offending member
}

func (e *InvalidMemberError) Error() string {
	return fmt.Sprintf("expected an error value at index %d, got nil", e.Index)
}

// SourceCountMismatchError reports sources and exceptions of different
// lengths.
type SourceCountMismatchError struct {
	Sources    int
	Exceptions int
}

func (e *SourceCountMismatchError) Error() string {
	return fmt.Sprintf("different number of sources (%d) and exceptions (%d)", e.Sources, e.Exceptions)
}

// Interface conformance guards.
var (
	_ error = (*InvalidSpecializationError)(nil)
	_ error = (*EmptySpecializationError)(nil)
	_ error = (*InvalidMemberError)(nil)
	_ error = (*SourceCountMismatchError)(nil)
)
