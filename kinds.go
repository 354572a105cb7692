// kinds.go — builtin kind hierarchy for xgx-group core.
//
// Intent:
//   - Provide a small set of widely useful categories, arranged so covariant
//     matching has something to bite on (e.g., not_found IS-A lookup).
//   - Keep semantics open-ended: no HTTP/status/retry policy in core.
//   - Allow projects to extend with their own kinds without a central registry.
//
// Conventions (documented, not enforced here):
//   - Kind names are lowercase snake_case ASCII.
//   - Extend by parenting onto the builtin tree (or start a new root) with
//     NewKind; the matcher treats builtin and project kinds identically.
package xgxgroup

// The builtin hierarchy. KindFailure is the root; every other builtin kind
// descends from it.
var (
	KindFailure = NewKind("failure")

	// Lookup family: an identified thing could not be resolved.
	KindLookup     = NewKind("lookup", KindFailure)
	KindNotFound   = NewKind("not_found", KindLookup)
	KindOutOfRange = NewKind("out_of_range", KindLookup)

	// Validation family.
	KindInvalid       = NewKind("invalid", KindFailure)
	KindUnprocessable = NewKind("unprocessable", KindInvalid)

	KindConflict = NewKind("conflict", KindFailure)

	// Availability / time.
	KindUnavailable = NewKind("unavailable", KindFailure)
	KindTimeout     = NewKind("timeout", KindUnavailable)

	// Internal / meta. Foreign errors without a kind resolve to KindInternal.
	KindInternal  = NewKind("internal", KindFailure)
	KindDefect    = NewKind("defect", KindInternal)
	KindInterrupt = NewKind("interrupt", KindFailure)
)

// allBuiltinKinds is the ordered set of kinds the core ships with.
// Unexported to avoid exposing mutable slice identity to callers.
// Order is stable (parents before children) to minimize churn in docs.
var allBuiltinKinds = []*Kind{
	KindFailure,
	KindLookup,
	KindNotFound,
	KindOutOfRange,
	KindInvalid,
	KindUnprocessable,
	KindConflict,
	KindUnavailable,
	KindTimeout,
	KindInternal,
	KindDefect,
	KindInterrupt,
}

// builtinKindSet provides O(1) membership checks for built-ins.
var builtinKindSet = map[*Kind]struct{}{
	KindFailure:       {},
	KindLookup:        {},
	KindNotFound:      {},
	KindOutOfRange:    {},
	KindInvalid:       {},
	KindUnprocessable: {},
	KindConflict:      {},
	KindUnavailable:   {},
	KindTimeout:       {},
	KindInternal:      {},
	KindDefect:        {},
	KindInterrupt:     {},
}

// BuiltinKinds returns a defensive copy of the builtin kinds in a stable order.
func BuiltinKinds() []*Kind {
	out := make([]*Kind, len(allBuiltinKinds))
	copy(out, allBuiltinKinds)
	return out
}

// IsBuiltin reports whether k is one of the builtin core kinds.
func (k *Kind) IsBuiltin() bool {
	_, ok := builtinKindSet[k]
	return ok
}
