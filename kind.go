// kind.go — nominal error kinds and the subtype relation for xgx-group core.
//
// Design tenets:
//   - Explicit over ambient: Go has no subclass relation between error types,
//     so the hierarchy the matcher needs is carried as first-class values.
//   - Interop-first: kinds are resolved from arbitrary errors via errors.As,
//     so wrapping (including multi-%w and joins) is respected.
//   - Immutable: a Kind never changes after NewKind returns it; the hierarchy
//     is append-only and safe to share across goroutines.
//
// The parent sets form a multi-rooted DAG: NewKind only accepts kinds that
// already exist, so cycles cannot be constructed.
package xgxgroup

import (
	"errors"
	"sync/atomic"
)

// Kind is a nominal error category. Two kinds are the same category iff they
// are the same pointer; names are labels for rendering, not identity.
type Kind struct {
	id      uint64
	name    string
	parents []*Kind
}

// kindSeq hands out creation-ordered ids, used for canonical member-set keys.
var kindSeq atomic.Uint64

// NewKind creates a new kind with the given parents. Nil parents are ignored.
// Names SHOULD be lowercase snake_case for consistency across logs/rendering,
// but the core does not enforce it.
func NewKind(name string, parents ...*Kind) *Kind {
	ps := make([]*Kind, 0, len(parents))
	for _, p := range parents {
		if p != nil {
			ps = append(ps, p)
		}
	}
	return &Kind{id: kindSeq.Add(1), name: name, parents: ps}
}

// Name returns the kind's label.
func (k *Kind) Name() string { return k.name }

// String implements fmt.Stringer.
func (k *Kind) String() string { return k.name }

// Parents returns a defensive copy of the direct parent kinds.
func (k *Kind) Parents() []*Kind {
	if len(k.parents) == 0 {
		return nil
	}
	out := make([]*Kind, len(k.parents))
	copy(out, k.parents)
	return out
}

// Is reports whether k is other or a (transitive) descendant of other.
// This is the subtype-or-equal test the matcher builds on. Nil-safe.
func (k *Kind) Is(other *Kind) bool {
	if k == nil || other == nil {
		return false
	}
	if k == other {
		return true
	}
	for _, p := range k.parents {
		if p.Is(other) {
			return true
		}
	}
	return false
}

// Kinded is implemented by error values that carry a Kind. The getter is
// named KindVal to leave Kind free as a field or method name in user types.
type Kinded interface {
	KindVal() *Kind
}

// KindOf resolves the runtime kind of an error. It traverses wrap chains via
// errors.As; errors that never expose a kind resolve to KindInternal, the
// same classification the core gives any foreign error it adopts.
// KindOf(nil) is nil.
func KindOf(err error) *Kind {
	if err == nil {
		return nil
	}
	var kv Kinded
	if errors.As(err, &kv) {
		if k := kv.KindVal(); k != nil {
			return k
		}
	}
	return KindInternal
}
