// match.go — the structural matching predicate for xgx-group core.
//
// Scope:
//   - Matches answers "does filter-shape F accept value-shape V?". It is
//     total: well-formed shapes never make it fail.
//   - Accepts and HasKind are the errors.As-aware conveniences dispatch
//     layers use when they are handed plain error values.
//
// The two-directional check in Matches is the whole point of this package.
// A naive subset comparison breaks under covariance: one value member can
// satisfy several filter requirements at once (a not_found member satisfies
// both a not_found and a lookup requirement), and one requirement can be
// satisfied by several members. So "every requirement covered" and "every
// member accounted for" are verified independently, never by counting.
package xgxgroup

import "errors"

// Matches reports whether the filter shape accepts the value shape.
//
//  1. Identity → true (covers a root matching itself).
//  2. Different families → false.
//  3. An unspecialized filter accepts every shape of its family.
//  4. Every filter kind must be satisfied by some value kind that Is() it
//     (covariance: more specific value members satisfy general requirements).
//  5. Inclusive filters tolerate unmatched extra value members.
//  6. Exact filters additionally require every value kind to satisfy some
//     filter kind.
func Matches(filter, value *Shape) bool {
	if filter == value {
		return true
	}
	if filter == nil || value == nil {
		return false
	}
	if filter.root != value.root {
		return false
	}
	if !filter.Specialized() {
		return true
	}
	for _, r := range filter.members {
		satisfied := false
		for _, v := range value.members {
			if v.Is(r) {
				satisfied = true
				break
			}
		}
		if !satisfied {
			return false
		}
	}
	if filter.inclusive {
		return true
	}
	for _, v := range value.members {
		accounted := false
		for _, r := range filter.members {
			if v.Is(r) {
				accounted = true
				break
			}
		}
		if !accounted {
			return false
		}
	}
	return true
}

// Matches reports whether s, used as a filter, accepts the value shape.
func (s *Shape) Matches(value *Shape) bool { return Matches(s, value) }

// Accepts reports whether err is (or wraps) a grouped error whose shape the
// filter accepts. This is the predicate an external dispatch layer calls per
// candidate handler; errors.Is on a *Shape target reaches the same answer.
func Accepts(filter *Shape, err error) bool {
	if filter == nil || err == nil {
		return false
	}
	var g *GroupError
	if !errors.As(err, &g) {
		return false
	}
	return Matches(filter, g.shape)
}

// HasKind reports whether any leaf error reachable from err (groups and wrap
// chains included) has a kind satisfying the given kind.
func HasKind(err error, kind *Kind) bool {
	if err == nil || kind == nil {
		return false
	}
	found := false
	Walk(err, func(e error) bool {
		if kv, ok := e.(Kinded); ok && kv.KindVal().Is(kind) {
			found = true
			return false
		}
		return true
	})
	if found {
		return true
	}
	// Foreign leaves carry no Kinded; fall back to the KindOf classification
	// for the error itself.
	return KindOf(err).Is(kind)
}
