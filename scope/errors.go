package scope

import (
	"errors"
	"fmt"
)

var (
	ErrNonConvergence   = errors.New("digest did not converge")
	ErrDigestInProgress = errors.New("digest already in progress")
)

// NonConvergenceError is returned by Digest when watches keep changing
// after TTL extra passes.
type NonConvergenceError struct {
	TTL int
	// Watch is the last watch that changed before Digest gave up.
	Watch string
}

func (e *NonConvergenceError) Error() string {
	return fmt.Sprintf("%d digest iterations reached", e.TTL)
}

func (e *NonConvergenceError) Unwrap() error {
	return ErrNonConvergence
}

type Phase uint8

const (
	PhaseWatch Phase = iota
	PhaseListener
)

func (p Phase) String() string {
	switch p {
	case PhaseWatch:
		return "watch"
	case PhaseListener:
		return "listener"
	default:
		return fmt.Sprintf("phase(%d)", uint8(p))
	}
}

// WatchError wraps a failure raised by a watch function or its listener.
// Digest reports these and keeps going.
type WatchError struct {
	Watch string
	Phase Phase
	Err   error
}

func (e *WatchError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Watch, e.Phase, e.Err)
}

func (e *WatchError) Unwrap() error {
	return e.Err
}

// contain runs fn, turning a panic into an error.
func contain(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if rerr, ok := r.(error); ok {
				err = fmt.Errorf("panic: %w", rerr)
			} else {
				err = fmt.Errorf("panic: %v", r)
			}
		}
	}()
	return fn()
}
