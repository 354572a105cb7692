// registry.go — identity cache of realized specializations for xgx-group core.
//
// Invariants:
//   - Two equal requests (same root, same unordered member-kind set, same
//     inclusive flag) return the identical *Shape, enabling pointer-equality
//     fast paths in matching.
//   - Entries are weakly held: the cache never keeps a shape alive on its
//     own. Once nothing else references a shape, the runtime reclaims it and
//     a cleanup removes its entry.
//
// Concurrency:
//   - A mutex serializes the lookup-or-insert sequence, so racing requests
//     for a new shape still observe one object.
//   - Reclamation races are benign: a lookup that finds a dead entry (weak
//     Value() == nil) treats it as a miss; the cleanup only deletes entries
//     that are still dead at deletion time, never a live replacement.
package xgxgroup

import (
	"runtime"
	"sort"
	"strconv"
	"strings"
	"sync"
	"weak"
)

// shapeKey is the canonical cache key: creation-ordered kind ids plus the
// inclusive flag. Member order and duplicates never reach the key.
type shapeKey struct {
	ids       string
	inclusive bool
}

type shapeCache struct {
	mu      sync.Mutex
	entries map[shapeKey]weak.Pointer[Shape]
}

func newShapeCache() *shapeCache {
	return &shapeCache{entries: make(map[shapeKey]weak.Pointer[Shape])}
}

// normalizeKinds deduplicates and orders kinds by creation id, yielding the
// canonical member slice shared by the shape and its cache key.
func normalizeKinds(kinds []*Kind) []*Kind {
	seen := make(map[*Kind]struct{}, len(kinds))
	out := make([]*Kind, 0, len(kinds))
	for _, k := range kinds {
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	return out
}

func keyFor(members []*Kind, inclusive bool) shapeKey {
	sb := strings.Builder{}
	for i, k := range members {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatUint(k.id, 10))
	}
	return shapeKey{ids: sb.String(), inclusive: inclusive}
}

// getOrCreate returns the cached shape for (root, kinds, inclusive), building
// and inserting it on a miss. kinds must be non-empty; callers resolve the
// empty set to the root itself.
func (c *shapeCache) getOrCreate(root *Shape, kinds []*Kind, inclusive bool) *Shape {
	members := normalizeKinds(kinds)
	key := keyFor(members, inclusive)

	c.mu.Lock()
	defer c.mu.Unlock()
	if wp, ok := c.entries[key]; ok {
		if s := wp.Value(); s != nil {
			return s
		}
		// Dead entry whose cleanup has not run yet: treat as a miss and let
		// the new insert supersede it.
	}
	s := &Shape{
		root:      root,
		members:   members,
		inclusive: inclusive,
		name:      shapeName(root, members, inclusive),
	}
	c.entries[key] = weak.Make(s)
	runtime.AddCleanup(s, c.evict, key)
	return s
}

// evict removes the entry for a reclaimed shape. A live shape may already
// occupy the slot again (reclaim raced a re-create); only dead entries go.
func (c *shapeCache) evict(key shapeKey) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if wp, ok := c.entries[key]; ok && wp.Value() == nil {
		delete(c.entries, key)
	}
}

// size reports the current number of cache entries (live or pending cleanup).
// Test hook.
func (c *shapeCache) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
