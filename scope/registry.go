package scope

import mapset "github.com/deckarep/golang-set/v2"

// registry keeps watchers in traversal order, oldest first. Entries removed
// while a walk is running stay in place as tombstones until the walk ends,
// so the cursor never skips or repeats a live watcher.
type registry struct {
	entries    []*watcher
	live       mapset.Set[*watcher]
	walking    int
	tombstones int
}

func newRegistry() *registry {
	return &registry{
		live: mapset.NewThreadUnsafeSet[*watcher](),
	}
}

func (r *registry) add(w *watcher) {
	r.entries = append(r.entries, w)
	r.live.Add(w)
}

func (r *registry) remove(w *watcher) bool {
	if !r.live.Contains(w) {
		return false
	}
	r.live.Remove(w)
	w.removed = true
	r.tombstones++
	r.compact()
	return true
}

func (r *registry) len() int {
	return r.live.Cardinality()
}

// walk visits live watchers until fn returns false. Watchers added during
// the walk are visited before it ends.
func (r *registry) walk(fn func(w *watcher) bool) {
	r.walking++
	defer func() {
		r.walking--
		r.compact()
	}()

	for i := 0; i < len(r.entries); i++ {
		w := r.entries[i]
		if w.removed {
			continue
		}
		if !fn(w) {
			return
		}
	}
}

func (r *registry) compact() {
	if r.walking > 0 || r.tombstones == 0 {
		return
	}
	kept := r.entries[:0]
	for _, w := range r.entries {
		if !w.removed {
			kept = append(kept, w)
		}
	}
	for i := len(kept); i < len(r.entries); i++ {
		r.entries[i] = nil
	}
	r.entries = kept
	r.tombstones = 0
}
