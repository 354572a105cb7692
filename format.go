// format.go — fmt.Formatter implementations for xgx-group.
//
// Behavior:
//
//	GroupError:
//	  %v, %s → comma-joined member messages, in member order
//	  %+v    → the same, wrapped with the fixed "GroupedError: " prefix
//	  %q     → quoted concise form
//
//	Member errors (NewError/WithKind):
//	  %v, %s → concise "kind: msg"
//	  %+v    → multi-line: kind + msg, fields, cause (recursively %+v), stack
//	  %q     → quoted concise form
//
// Rationale: core carries only fmt formatting — no logging/JSON policy.
// Field order is deterministic (insertion order via fields.go).
package xgxgroup

import (
	"fmt"
	"io"
	"strings"
)

// Error joins each member's own message, comma-separated, preserving member
// order. The group message is deliberately not part of this form; it remains
// available via Message and structured accessors.
func (g *GroupError) Error() string {
	if len(g.excs) == 0 {
		return g.shape.name
	}
	sb := strings.Builder{}
	for i, e := range g.excs {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(e.Error())
	}
	return sb.String()
}

// Format implements fmt.Formatter for GroupError.
func (g *GroupError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = io.WriteString(s, "GroupedError: ")
			_, _ = io.WriteString(s, g.Error())
			return
		}
		_, _ = io.WriteString(s, g.Error())
	case 's':
		_, _ = io.WriteString(s, g.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", g.Error())
	default:
		_, _ = io.WriteString(s, g.Error())
	}
}

// Format implements fmt.Formatter for member errors.
func (e *memberErr) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			e.formatVerbose(s)
			return
		}
		_, _ = io.WriteString(s, e.Error())
	case 's':
		_, _ = io.WriteString(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	default:
		_, _ = io.WriteString(s, e.Error())
	}
}

// formatVerbose writes the structured multi-line representation:
//
//	kind=<kind> msg="<message>"
//	ctx: key1=val1 key2=val2
//	cause: <recursively formatted with %+v>
//	stack:
//	  funcA file.go:123
func (e *memberErr) formatVerbose(w io.Writer) {
	_, _ = fmt.Fprintf(w, "kind=%s msg=%q", e.kind.name, e.msg)
	if len(e.ctx) > 0 {
		_, _ = io.WriteString(w, "\nctx:")
		for _, f := range e.ctx {
			if f.Key != "" {
				_, _ = fmt.Fprintf(w, " %s=%v", f.Key, f.Val)
			}
		}
	}
	if e.cause != nil {
		_, _ = fmt.Fprintf(w, "\ncause: %+v", e.cause)
	}
	if len(e.stk) > 0 {
		_, _ = io.WriteString(w, "\nstack:")
		for _, fr := range e.stk {
			_, _ = fmt.Fprintf(w, "\n  %s %s:%d", fr.Function, fr.File, fr.Line)
		}
	}
}
