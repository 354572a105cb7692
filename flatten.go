// flatten.go — traversal helpers over grouped and wrapped errors.
//
// GroupError exposes Unwrap() []error, as do errors.Join and multi-%w
// wrappers, while classic wrappers expose Unwrap() error. Correct traversal
// must handle both forms; these helpers do, so they work on arbitrary error
// trees, not just groups.
//
// Traversal semantics:
//   - Walk:    pre-order (visit, then expand children); fn returning false
//     stops the walk.
//   - Flatten: collects LEAVES only (nodes with no children) in DFS order.
//
// Cycle safety: nodes with comparable dynamic types are tracked in a seen
// set; a depth bound covers pathological non-comparable nodes. (Using every
// error as a map key directly would panic on non-comparable dynamic types.)
package xgxgroup

import "reflect"

type singleUnwrapper interface{ Unwrap() error }
type multiUnwrapper interface{ Unwrap() []error }

// walkMaxDepth bounds traversal of degenerate (cyclic, non-comparable) trees.
const walkMaxDepth = 256

// Walk visits err and every error reachable through Unwrap forms, pre-order.
// It stops early when fn returns false. Nil errors are skipped.
func Walk(err error, fn func(error) bool) {
	if err == nil || fn == nil {
		return
	}
	seen := make(map[error]struct{})
	walk(err, fn, seen, 0)
}

func walk(err error, fn func(error) bool, seen map[error]struct{}, depth int) bool {
	if err == nil || depth > walkMaxDepth {
		return true
	}
	if reflect.TypeOf(err).Comparable() {
		if _, dup := seen[err]; dup {
			return true
		}
		seen[err] = struct{}{}
	}
	if !fn(err) {
		return false
	}
	switch u := err.(type) {
	case multiUnwrapper:
		for _, child := range u.Unwrap() {
			if !walk(child, fn, seen, depth+1) {
				return false
			}
		}
	case singleUnwrapper:
		return walk(u.Unwrap(), fn, seen, depth+1)
	}
	return true
}

// Flatten returns the leaf errors of err's unwrap tree in DFS order. A leaf
// is a node with no unwrap children. Flatten(nil) is nil; an error with no
// children flattens to itself.
func Flatten(err error) []error {
	if err == nil {
		return nil
	}
	var leaves []error
	Walk(err, func(e error) bool {
		switch u := e.(type) {
		case multiUnwrapper:
			if len(u.Unwrap()) > 0 {
				return true
			}
		case singleUnwrapper:
			if u.Unwrap() != nil {
				return true
			}
		}
		leaves = append(leaves, e)
		return true
	})
	return leaves
}
