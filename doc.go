// doc.go — package documentation for xgx-group
//
// Package xgxgroup provides a grouped-error container for errors raised "in
// parallel" (e.g., by concurrent subtasks), plus a structural matching engine
// that lets handlers catch a group by the *kinds* of errors it holds. It is
// designed to be:
//   - Interoperable with the stdlib (errors.Is/As, Unwrap() []error, fmt.Formatter)
//   - Policy-free (no logging/HTTP/retry rules in core)
//   - Ergonomic at catch sites (shapes are errors.Is targets)
//
// # Kinds
//
// Go has no nominal subtype relation over error types, so xgxgroup carries an
// explicit one: a Kind is a named error category with zero or more parent
// kinds, and Kind.Is is the reflexive-transitive subtype test. The package
// ships a small builtin hierarchy (KindLookup → KindNotFound, KindUnavailable
// → KindTimeout, ...); projects extend it freely with NewKind.
//
// Errors expose their kind via the Kinded interface; NewError and WithKind
// produce kind-tagged member errors. Foreign errors resolve to KindInternal.
//
// # Shapes
//
// A Shape identifies a catchable refinement of a grouped-error family: the
// family root plus a set of member kinds and an inclusive flag. Shapes are
// obtained by specializing a root:
//
//	lookupish, _ := xgxgroup.Grouped.Specialize(xgxgroup.KindLookup, xgxgroup.Others)
//
// The trailing Others marker makes the shape inclusive: the listed kinds must
// be present in a matched group, extra kinds are tolerated. Without it the
// match is exact — every member of the group must be accounted for.
//
// Matching is covariant: a group holding a KindNotFound member satisfies a
// shape requiring KindLookup, because KindNotFound.Is(KindLookup).
//
// Equal specialization requests return the identical *Shape (a weakly-held,
// per-root cache), so identity comparison short-circuits matching.
//
// # Groups
//
// New builds a GroupError from a message, the member errors, and one origin
// string per member. The group derives its own exact shape from its members
// at construction, so matching works the first time it is caught:
//
//	g, err := xgxgroup.New("startup failed",
//	    []error{errA, errB},
//	    []string{"worker 1", "worker 2"})
//
// # Catching
//
// Shapes implement error, and GroupError recognizes them in errors.Is, so the
// stdlib IS the catch mechanism:
//
//	if errors.Is(err, lookupish) {
//	    // err is (or wraps) a grouped error holding at least one lookup-ish member
//	}
//
// Dispatch layers that do not go through errors.Is can call Matches or
// Accepts directly.
//
// # Splitting
//
// Split partitions a group's members by kind into (matched, rest) sub-groups,
// preserving source alignment — useful to handle one class of failure and
// rethrow the remainder.
//
// # Formatting
//
//   - %v, %s → comma-joined member messages, in member order
//   - %+v    → the same, wrapped with the "GroupedError: " prefix
//   - %q     → quoted concise form
//
// Member errors created by NewError additionally render structured fields and
// an opt-in stack under %+v.
//
// # Concurrency
//
// Shapes and groups are immutable after construction (chaining metadata set
// by an outer raise/catch layer excepted). The specialization cache is safe
// for concurrent use; racing requests for a new shape still return one
// identical object.
package xgxgroup
