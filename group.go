// group.go — the grouped error value for xgx-group core.
//
// A GroupError aggregates errors raised "in parallel": a message, the ordered
// member errors, and one origin string per member. At construction it derives
// its own exact shape from its members' kinds, so structural matching works
// the first time it is caught.
//
// Immutability: message, members, sources, and shape never change after
// construction. The chaining metadata (cause, prior, suppress) is the one
// exception — an outer raise/catch layer attaches it after the fact.
//
// Interop:
//   - Unwrap() []error exposes members, so errors.Is/As traverse into them
//     exactly as they do for errors.Join.
//   - Is(target) recognizes *Shape targets, making errors.Is the catch
//     mechanism: errors.Is(err, shape) == Accepts(shape, err) for groups.
package xgxgroup

// Grouped is the root shape of the default grouped-error family. Most
// programs need no other family; NewBase starts an unrelated one.
var Grouped = NewBase("GroupedError")

// GroupError is an error that contains other errors. Construct via New or
// (*Shape).New; the zero value is not usable.
type GroupError struct {
	msg   string
	excs  []error
	srcs  []string
	shape *Shape

	// chaining metadata, attached by an outer layer after construction
	cause    error // explicit origin, "raised from"
	prior    error // error being handled when this one arose
	suppress bool  // when set, prior is omitted from diagnostics
}

// New builds a grouped error in the default Grouped family. sources must
// carry one origin description per exception, aligned by position.
func New(msg string, exceptions []error, sources []string) (*GroupError, error) {
	return Grouped.New(msg, exceptions, sources)
}

// New builds a grouped error through shape s.
//
// Through a root, the group's shape is derived from the members: the exact
// (non-inclusive) specialization over the set of each member's runtime kind.
// An empty group is permitted through a root and keeps the root as its shape.
//
// Through a specialized shape, the members are adopted as-is and at least one
// exception is required (*EmptySpecializationError otherwise).
//
// Every exception must be non-nil (*InvalidMemberError) and sources must
// align with exceptions (*SourceCountMismatchError). On failure no group is
// returned.
func (s *Shape) New(msg string, exceptions []error, sources []string) (*GroupError, error) {
	if s.Specialized() && len(exceptions) == 0 {
		return nil, &EmptySpecializationError{Shape: s}
	}
	for i, e := range exceptions {
		if e == nil {
			return nil, &InvalidMemberError{Index: i}
		}
	}
	if len(sources) != len(exceptions) {
		return nil, &SourceCountMismatchError{Sources: len(sources), Exceptions: len(exceptions)}
	}

	shape := s
	if !s.Specialized() && len(exceptions) > 0 {
		kinds := make([]*Kind, 0, len(exceptions))
		for _, e := range exceptions {
			kinds = append(kinds, KindOf(e))
		}
		shape = s.cache.getOrCreate(s, kinds, false)
	}

	excs := make([]error, len(exceptions))
	copy(excs, exceptions)
	srcs := make([]string, len(sources))
	copy(srcs, sources)
	return &GroupError{msg: msg, excs: excs, srcs: srcs, shape: shape}, nil
}

// Message returns the overall description.
func (g *GroupError) Message() string { return g.msg }

// Exceptions returns a defensive copy of the member errors, in order.
func (g *GroupError) Exceptions() []error {
	out := make([]error, len(g.excs))
	copy(out, g.excs)
	return out
}

// Sources returns a defensive copy of the per-member origin descriptions.
func (g *GroupError) Sources() []string {
	out := make([]string, len(g.srcs))
	copy(out, g.srcs)
	return out
}

// Shape returns the group's derived specialization shape.
func (g *GroupError) Shape() *Shape { return g.shape }

// Len returns the number of member errors.
func (g *GroupError) Len() int { return len(g.excs) }

// Unwrap exposes the members to stdlib traversal (errors.Is/As walk them
// pre-order, as with errors.Join).
func (g *GroupError) Unwrap() []error { return g.excs }

// Is implements the errors.Is target protocol for *Shape filters: the group
// matches when the filter shape structurally accepts its own shape.
func (g *GroupError) Is(target error) bool {
	if sh, ok := target.(*Shape); ok {
		return Matches(sh, g.shape)
	}
	return false
}

// -----------------------------------------------------------------------------
// Chaining metadata — attached by an outer raise/catch layer
// -----------------------------------------------------------------------------

// SetCause records the explicit origin of g ("raised from"). Setting a cause
// — even a nil one — suppresses the prior handling context in diagnostics,
// mirroring the usual raise-from convention; use SetSuppressPrior to override.
func (g *GroupError) SetCause(err error) {
	g.cause = err
	g.suppress = true
}

// Cause returns the explicit origin, or nil.
func (g *GroupError) Cause() error { return g.cause }

// SetPrior records the error that was being handled when g arose.
func (g *GroupError) SetPrior(err error) { g.prior = err }

// Prior returns the error that was being handled when g arose, or nil.
func (g *GroupError) Prior() error { return g.prior }

// SetSuppressPrior sets whether the prior handling context is omitted from
// diagnostics.
func (g *GroupError) SetSuppressPrior(v bool) { g.suppress = v }

// SuppressPrior reports whether the prior handling context is suppressed.
func (g *GroupError) SuppressPrior() bool { return g.suppress }

// Copy produces a new group with the same message, members, sources, and
// shape, and the same chaining metadata. The cause link is copied first (a
// side effect of SetCause is flipping the suppress flag), then the prior
// link, and the suppress flag is re-applied last so the copy reproduces the
// original's flag exactly whether or not a cause is present.
func (g *GroupError) Copy() *GroupError {
	n := &GroupError{
		msg:   g.msg,
		excs:  g.Exceptions(),
		srcs:  g.Sources(),
		shape: g.shape,
	}
	n.SetCause(g.cause)
	n.SetPrior(g.prior)
	n.SetSuppressPrior(g.suppress)
	return n
}
