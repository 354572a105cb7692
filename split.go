// split.go — partition a grouped error by member kind.
//
// Split is the complement of catching: handle one class of failure and keep
// the remainder alive as a group that still matches structurally. Sub-groups
// preserve the original message, member order, and source alignment, and
// carry over the chaining metadata.
package xgxgroup

import "errors"

// Split partitions err by kind into (matched, rest).
//
// For a grouped error, members whose runtime kind satisfies the given kind go
// to matched, the remainder to rest; each non-empty side is a new group with
// the original message, the selected members and their aligned sources, and
// the original chaining metadata. An empty side is nil, and a side selecting
// every member returns err itself (identity preserved).
//
// For a non-group error, Split degenerates to a kind test: (err, nil) when
// KindOf(err) satisfies kind, (nil, err) otherwise.
//
// Split(kind, nil) and Split(nil, err) are (nil, nil) and (nil, err).
func Split(kind *Kind, err error) (matched, rest error) {
	if err == nil {
		return nil, nil
	}
	if kind == nil {
		return nil, err
	}
	var g *GroupError
	if !errors.As(err, &g) {
		if KindOf(err).Is(kind) {
			return err, nil
		}
		return nil, err
	}

	var hit, miss []int
	for i, e := range g.excs {
		if KindOf(e).Is(kind) {
			hit = append(hit, i)
		} else {
			miss = append(miss, i)
		}
	}
	switch {
	case len(miss) == 0:
		return err, nil
	case len(hit) == 0:
		return nil, err
	}
	return g.subgroup(hit), g.subgroup(miss)
}

// subgroup builds a new group from the members at the given indices,
// re-deriving the exact shape for the narrowed member set and copying the
// chaining metadata under the same discipline as Copy.
func (g *GroupError) subgroup(idx []int) *GroupError {
	excs := make([]error, 0, len(idx))
	srcs := make([]string, 0, len(idx))
	kinds := make([]*Kind, 0, len(idx))
	for _, i := range idx {
		excs = append(excs, g.excs[i])
		srcs = append(srcs, g.srcs[i])
		kinds = append(kinds, KindOf(g.excs[i]))
	}
	root := g.shape.root
	n := &GroupError{
		msg:   g.msg,
		excs:  excs,
		srcs:  srcs,
		shape: root.cache.getOrCreate(root, kinds, false),
	}
	n.SetCause(g.cause)
	n.SetPrior(g.prior)
	n.SetSuppressPrior(g.suppress)
	return n
}
