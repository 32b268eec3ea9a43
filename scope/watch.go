package scope

import "fmt"

// WatchFunc samples a value from the scope. It may panic; Digest recovers.
type WatchFunc func(s *Scope) any

// ListenerFunc is called with the new and previous samples whenever a watch
// changes. On the first change oldValue equals newValue.
type ListenerFunc func(newValue, oldValue any, s *Scope) error

type watcher struct {
	scope    *Scope
	name     string
	fn       WatchFunc
	listener ListenerFunc
	valueEq  bool

	last    any
	sampled bool
	removed bool
}

type WatchOption func(*watcher)

// ByValue compares samples structurally and keeps a deep copy as baseline.
func ByValue() WatchOption {
	return func(w *watcher) {
		w.valueEq = true
	}
}

func Named(name string) WatchOption {
	return func(w *watcher) {
		w.name = name
	}
}

// Handle identifies a registered watch. The zero Handle is valid and
// unwatching it does nothing.
type Handle struct {
	w *watcher
}

func (h Handle) Name() string {
	if h.w == nil {
		return ""
	}
	return h.w.name
}

func (s *Scope) Watch(fn WatchFunc, listener ListenerFunc, opts ...WatchOption) Handle {
	if fn == nil {
		fn = func(*Scope) any { return nil }
	}
	s.nextID++
	w := &watcher{
		scope:    s,
		name:     fmt.Sprintf("watch#%d", s.nextID),
		fn:       fn,
		listener: listener,
	}
	for _, opt := range opts {
		opt(w)
	}
	s.watchers.add(w)
	s.lastDirty = nil
	return Handle{w: w}
}

// WatchValue is Watch with typed samples. A sample that is not a T reaches
// the listener as the zero T.
func WatchValue[T any](
	s *Scope,
	fn func(s *Scope) T,
	listener func(newValue, oldValue T, s *Scope) error,
	opts ...WatchOption,
) Handle {
	var l ListenerFunc
	if listener != nil {
		l = func(newValue, oldValue any, s *Scope) error {
			n, _ := newValue.(T)
			o, _ := oldValue.(T)
			return listener(n, o, s)
		}
	}
	var wfn WatchFunc
	if fn != nil {
		wfn = func(s *Scope) any { return fn(s) }
	}
	return s.Watch(wfn, l, opts...)
}

// Unwatch removes the watch behind h and reports whether this call removed
// it. Calling it again, or with a handle from another scope, is a no-op.
func (s *Scope) Unwatch(h Handle) bool {
	w := h.w
	if w == nil || w.scope != s {
		return false
	}
	if !s.watchers.remove(w) {
		return false
	}
	s.lastDirty = nil
	return true
}

func (s *Scope) WatchCount() int {
	return s.watchers.len()
}

func (w *watcher) sample() (v any, err error) {
	err = contain(func() error {
		v = w.fn(w.scope)
		return nil
	})
	return v, err
}

func (w *watcher) notify(newValue, oldValue any) error {
	if w.listener == nil {
		return nil
	}
	return contain(func() error {
		return w.listener(newValue, oldValue, w.scope)
	})
}
