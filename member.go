// member.go — kind-tagged member errors for xgx-group.
//
// Scope:
//   - Provide a native "recognized error value" for groups: an error that
//     carries its Kind, a message, structured fields, an optional cause, and
//     an opt-in stack.
//   - NON-MUTATING fluent methods: every builder returns a new value, so
//     shared member errors are safe without synchronization.
//   - Adopt foreign errors (WithKind/From) without adding policy.
//
// Interop: Unwrap() exposes the cause, so errors.Is/As traverse through
// adopted errors; KindOf resolves kinds across wrap chains the same way.
package xgxgroup

// Member is the fluent contract for kind-tagged member errors.
//
// All fluent methods return a NEW Member (copy-on-write) and never alter the
// receiver. Core intentionally has no logging/HTTP/JSON methods; adapters
// belong in separate modules.
type Member interface {
	error

	// KindVal returns the member's kind (never nil for package-built members).
	KindVal() *Kind

	// Ctx attaches a short contextual message and optional key-value fields.
	// The message is set once (only if currently empty); details belong in
	// fields, not in growing ": "-joined strings. Returns a NEW Member.
	Ctx(msg string, kv ...any) Member

	// With adds a single key-value field. Returns a NEW Member.
	With(key string, val any) Member

	// WithStack attaches a stack trace captured at the call site.
	WithStack() Member

	// WithStackSkip is like WithStack but skips additional call frames
	// (e.g., helper wrappers).
	WithStackSkip(skip int) Member

	// Context returns a shallow COPY of the fields as a map (copy-on-read);
	// duplicate keys are last-write-wins.
	Context() map[string]any

	// Unwrap returns the adopted cause, or nil.
	Unwrap() error
}

type memberErr struct {
	kind  *Kind
	msg   string
	ctx   fields
	cause error
	stk   Stack
}

// NewError creates a member error of the given kind with optional key-value
// fields. A nil kind falls back to KindInternal.
func NewError(kind *Kind, msg string, kv ...any) Member {
	if kind == nil {
		kind = KindInternal
	}
	return &memberErr{kind: kind, msg: msg, ctx: fieldsFromKV(kv...)}
}

// WithKind adopts an existing error under the given kind, keeping it
// reachable for errors.Is/As via Unwrap. A nil err yields a bare member of
// that kind.
func WithKind(err error, kind *Kind) Member {
	if kind == nil {
		kind = KindInternal
	}
	return &memberErr{kind: kind, ctx: emptyFields, cause: err}
}

// From converts any error into a Member without adding policy.
//   - nil → nil
//   - Member → returned as-is
//   - Kinded → adopted under its own kind
//   - other → adopted under KindInternal
func From(err error) Member {
	if err == nil {
		return nil
	}
	if m, ok := err.(Member); ok {
		return m
	}
	return WithKind(err, KindOf(err))
}

func (e *memberErr) Error() string {
	if e.msg != "" {
		return e.kind.name + ": " + e.msg
	}
	if e.cause != nil {
		return e.kind.name + ": " + e.cause.Error()
	}
	return e.kind.name
}

func (e *memberErr) KindVal() *Kind          { return e.kind }
func (e *memberErr) Unwrap() error           { return e.cause }
func (e *memberErr) Context() map[string]any { return fieldsToMap(e.ctx) }

func (e *memberErr) Ctx(msg string, kv ...any) Member {
	n := e.clone()
	if msg != "" && n.msg == "" {
		n.msg = msg
	}
	if len(kv) > 0 {
		n.ctx = fieldsCloneAppend(n.ctx, fieldsFromKV(kv...)...)
	}
	return n
}

func (e *memberErr) With(key string, val any) Member {
	n := e.clone()
	n.ctx = fieldsCloneAppend(n.ctx, Field{Key: key, Val: val})
	return n
}

func (e *memberErr) WithStack() Member {
	// skip=1 drops this method's own frame.
	return e.WithStackSkip(1)
}

func (e *memberErr) WithStackSkip(skip int) Member {
	n := e.clone()
	n.stk = captureStack(skip)
	return n
}

func (e *memberErr) clone() *memberErr {
	n := *e
	if len(e.ctx) > 0 {
		n.ctx = make(fields, len(e.ctx))
		copy(n.ctx, e.ctx)
	} else {
		n.ctx = emptyFields
	}
	// Stack is immutable once captured; shallow copy is fine.
	return &n
}

var (
	_ Member = (*memberErr)(nil)
	_ Kinded = (*memberErr)(nil)
)
