// stack.go — opt-in stack capture for member errors.
//
// Uses runtime.Callers + runtime.CallersFrames so inlined frames resolve
// correctly. No global toggles: callers opt in via WithStack/WithStackSkip,
// typically at the collection point where a subtask's failure is adopted
// into a group.
package xgxgroup

import "runtime"

// Frame is a single call site in a captured stack.
type Frame struct {
	PC       uintptr
	File     string
	Line     int
	Function string // fully-qualified (pkg.Func or recv.method)
}

// Stack is a slice of Frames from most recent call outward.
type Stack []Frame

// stackMaxDepth bounds capture work on exceptional paths.
const stackMaxDepth = 64

// captureStack records up to stackMaxDepth frames, skipping 'skip' frames on
// top of the internal ones. The +3 accounts for runtime.Callers itself,
// captureStack, and the WithStackSkip method, so the first recorded frame is
// the user-visible call site.
func captureStack(skip int) Stack {
	pc := make([]uintptr, stackMaxDepth)
	n := runtime.Callers(skip+3, pc)
	if n == 0 {
		return nil
	}
	frames := runtime.CallersFrames(pc[:n])
	out := make(Stack, 0, n)
	for {
		fr, more := frames.Next()
		out = append(out, Frame{PC: fr.PC, File: fr.File, Line: fr.Line, Function: fr.Function})
		if !more {
			break
		}
	}
	return out
}
