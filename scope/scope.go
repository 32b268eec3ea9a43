// Package scope implements dirty-checking change detection over a shared
// key/value container. Watches sample derived values from the Scope and
// Digest re-evaluates them until nothing changes.
package scope

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/petermattis/goid"
)

// TTL is the number of extra passes Digest runs before giving up.
const TTL = 10

type OnErrorFunc func(err *WatchError)

type Scope struct {
	values    map[string]any
	watchers  *registry
	lastDirty *watcher
	nextID    int

	digesting bool

	logger  *slog.Logger
	onError OnErrorFunc
}

type Option func(*Scope)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Scope) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithOnError routes watch and listener failures to fn instead of the logger.
func WithOnError(fn OnErrorFunc) Option {
	return func(s *Scope) {
		s.onError = fn
	}
}

func New(opts ...Option) *Scope {
	s := &Scope{
		values:   map[string]any{},
		watchers: newRegistry(),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Scope) Get(key string) any {
	return s.values[key]
}

func (s *Scope) Lookup(key string) (v any, ok bool) {
	v, ok = s.values[key]
	return
}

func (s *Scope) Set(key string, v any) {
	s.values[key] = v
}

func (s *Scope) Delete(key string) {
	delete(s.values, key)
}

// Value returns the value stored under key, or the zero T when it is
// missing or holds another type.
func Value[T any](s *Scope, key string) T {
	t, _ := s.values[key].(T)
	return t
}

// Apply runs fn and then digests, even when fn fails.
func (s *Scope) Apply(fn func(s *Scope) error) error {
	var err error
	if fn != nil {
		err = contain(func() error { return fn(s) })
	}
	return errors.Join(err, s.Digest())
}

func (s *Scope) beginDigest() error {
	if s.digesting {
		return fmt.Errorf("%w: called from goroutine %d", ErrDigestInProgress, goid.Get())
	}
	s.digesting = true
	return nil
}

func (s *Scope) endDigest() {
	s.digesting = false
}

func (s *Scope) report(w *watcher, phase Phase, err error) {
	werr := &WatchError{Watch: w.name, Phase: phase, Err: err}
	if s.onError != nil {
		s.onError(werr)
		return
	}
	s.logger.Error("watch failed", "watch", w.name, "phase", phase.String(), "err", err)
}
