// shape.go — specialization shapes for xgx-group core.
//
// A Shape identifies a catchable refinement of a grouped-error family:
// the family root, a set of member kinds, and an inclusive flag. The root
// itself is a Shape with no members; it matches every group of its family.
//
// Scope (tiny core):
//   - NewBase creates a family root (owning that family's shape cache).
//   - Specialize is the subscript entry point: root → refined shape.
//   - Shapes are immutable and identity-cached: equal requests return the
//     identical *Shape, so matching can short-circuit on pointer equality.
//
// Interop:
//   - Shape implements error so it can serve as an errors.Is target; a
//     GroupError reports Is(shape) per the structural match in match.go.
package xgxgroup

import (
	"fmt"
	"strings"
)

// openMarker is the type of Others. Unexported so the only inclusive marker
// in existence is the one this package exports.
type openMarker struct{}

// Others marks a specialization as inclusive ("these kinds must be present,
// others are tolerated"). It may appear anywhere in the Specialize argument
// list; position is irrelevant.
var Others openMarker

// Shape is a (base, member-kind-set, inclusive-flag) triple. The zero value
// is not usable; obtain shapes from NewBase and Specialize.
type Shape struct {
	root      *Shape  // family identity; roots point to themselves
	members   []*Kind // deduplicated, creation-ordered; empty for roots
	inclusive bool
	name      string
	cache     *shapeCache // non-nil on roots only
}

// NewBase creates the root shape of a new grouped-error family. Shapes from
// different families never match each other.
func NewBase(name string) *Shape {
	s := &Shape{inclusive: true, name: name, cache: newShapeCache()}
	s.root = s
	return s
}

// Root returns the family root (the receiver itself for roots).
func (s *Shape) Root() *Shape { return s.root }

// Members returns a defensive copy of the member kinds. Empty for roots.
func (s *Shape) Members() []*Kind {
	if len(s.members) == 0 {
		return nil
	}
	out := make([]*Kind, len(s.members))
	copy(out, s.members)
	return out
}

// Inclusive reports whether the shape tolerates unmatched extra member kinds.
func (s *Shape) Inclusive() bool { return s.inclusive }

// Specialized reports whether s carries member kinds (i.e., is not a root).
func (s *Shape) Specialized() bool { return len(s.members) > 0 }

// Error implements error, making shapes usable as errors.Is targets.
func (s *Shape) Error() string { return s.name }

// String implements fmt.Stringer.
func (s *Shape) String() string { return s.name }

// Specialize returns the shape refining s with the given member kinds.
// Arguments must be *Kind values, optionally with Others to mark the shape
// inclusive. It fails with *InvalidSpecializationError when s is already
// specialized, when the argument list is empty, or when any argument is
// neither a *Kind nor Others. A lone Others returns s itself: the root
// already tolerates every member set.
//
// Equal requests (same kinds in any order, duplicates collapsed, same
// inclusive marker) return the identical *Shape.
func (s *Shape) Specialize(items ...any) (*Shape, error) {
	if s.Specialized() {
		return nil, &InvalidSpecializationError{Shape: s, Reason: "already specialized"}
	}
	if len(items) == 0 {
		return nil, &InvalidSpecializationError{Shape: s, Reason: "at least one error kind is required"}
	}
	inclusive := false
	kinds := make([]*Kind, 0, len(items))
	for _, it := range items {
		switch v := it.(type) {
		case openMarker:
			inclusive = true
		case *Kind:
			if v == nil {
				return nil, &InvalidSpecializationError{Shape: s, Arg: it, Reason: "expected an error kind, got a nil *Kind"}
			}
			kinds = append(kinds, v)
		default:
			return nil, &InvalidSpecializationError{
				Shape:  s,
				Arg:    it,
				Reason: fmt.Sprintf("expected an error kind or Others, not %T", it),
			}
		}
	}
	if len(kinds) == 0 {
		return s, nil
	}
	return s.cache.getOrCreate(s, kinds, inclusive), nil
}

// MustSpecialize is like Specialize but panics on failure. Intended for
// package-level shape variables and tests, where a bad specialization is a
// programming error rather than a runtime condition.
func (s *Shape) MustSpecialize(items ...any) *Shape {
	sp, err := s.Specialize(items...)
	if err != nil {
		panic(err)
	}
	return sp
}

// shapeName renders the canonical display name, e.g.
// "GroupedError[not_found, timeout, ...]".
func shapeName(root *Shape, members []*Kind, inclusive bool) string {
	sb := strings.Builder{}
	sb.WriteString(root.name)
	sb.WriteByte('[')
	for i, k := range members {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(k.name)
	}
	if inclusive {
		sb.WriteString(", ...")
	}
	sb.WriteByte(']')
	return sb.String()
}
