// fields.go — immutable structured context for member errors.
//
// Internal representation is an append-only []Field: Go map iteration order
// is unspecified, a slice preserves insertion order for deterministic
// rendering. Builders return NEW slices (copy-on-write); the public view is
// a copy-on-read map.
package xgxgroup

// Field is a single contextual key-value pair attached to a member error.
// Keys SHOULD be snake_case for consistency, but the core does not enforce it.
type Field struct {
	Key string
	Val any
}

type fields []Field

var emptyFields = make(fields, 0)

// fieldsCloneAppend returns a fresh slice holding dst followed by add.
// Always allocates a new backing array so published slices never alias.
func fieldsCloneAppend(dst fields, add ...Field) fields {
	if len(add) == 0 {
		if len(dst) == 0 {
			return emptyFields
		}
		out := make(fields, len(dst))
		copy(out, dst)
		return out
	}
	out := make(fields, len(dst)+len(add))
	copy(out, dst)
	copy(out[len(dst):], add)
	return out
}

// fieldsFromKV reads variadic arguments as (key, value) pairs, left to right.
// A non-string key drops the entire pair (key and its value) so subsequent
// pairs stay aligned; a trailing key with no value becomes (key, nil).
func fieldsFromKV(kv ...any) fields {
	if len(kv) == 0 {
		return emptyFields
	}
	out := make(fields, 0, len(kv)/2+1)
	for i := 0; i < len(kv); {
		k, ok := kv[i].(string)
		if !ok {
			if i+1 < len(kv) {
				i += 2
			} else {
				i++
			}
			continue
		}
		var v any
		if i+1 < len(kv) {
			v = kv[i+1]
			i += 2
		} else {
			i++
		}
		out = append(out, Field{Key: k, Val: v})
	}
	if len(out) == 0 {
		return emptyFields
	}
	return out
}

// fieldsToMap builds a NEW map from fs (copy-on-read); duplicate keys are
// last-write-wins.
func fieldsToMap(fs fields) map[string]any {
	if len(fs) == 0 {
		return nil
	}
	m := make(map[string]any, len(fs))
	for _, f := range fs {
		m[f.Key] = f.Val
	}
	return m
}
