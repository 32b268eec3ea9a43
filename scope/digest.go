package scope

// Digest runs passes over every watch until one pass sees no change. It
// gives up with a *NonConvergenceError when the TTL extra passes are used
// up and watches are still changing.
func (s *Scope) Digest() error {
	if err := s.beginDigest(); err != nil {
		return err
	}
	defer s.endDigest()

	ttl := TTL
	s.lastDirty = nil
	for passes := 1; ; passes++ {
		if !s.digestOnce() {
			s.logger.Debug("digest settled", "passes", passes, "watches", s.watchers.len())
			return nil
		}
		if ttl == 0 {
			err := &NonConvergenceError{TTL: TTL}
			if s.lastDirty != nil {
				err.Watch = s.lastDirty.name
			}
			return err
		}
		ttl--
	}
}

func (s *Scope) digestOnce() (dirty bool) {
	s.watchers.walk(func(w *watcher) bool {
		newValue, err := w.sample()
		if err != nil {
			s.report(w, PhaseWatch, err)
			return true
		}

		if !w.sampled || !s.areEqual(w, newValue, w.last) {
			oldValue := w.last
			if !w.sampled {
				oldValue = newValue
			}
			s.lastDirty = w
			w.last = s.baseline(w, newValue)
			w.sampled = true
			if err := w.notify(newValue, oldValue); err != nil {
				s.report(w, PhaseListener, err)
			}
			dirty = true
			return true
		}

		// Every watch since the last change was clean; nothing left can change.
		if s.lastDirty == w {
			return false
		}
		return true
	})
	return dirty
}

func (s *Scope) areEqual(w *watcher, newValue, oldValue any) bool {
	var equal bool
	err := contain(func() error {
		if w.valueEq {
			equal = deepEqual(newValue, oldValue)
		} else {
			equal = sameValue(newValue, oldValue)
		}
		return nil
	})
	if err != nil {
		s.report(w, PhaseWatch, err)
		return true
	}
	return equal
}

func (s *Scope) baseline(w *watcher, v any) any {
	if !w.valueEq {
		return v
	}
	c, err := deepCopy(v)
	if err != nil {
		s.logger.Warn("storing live value as baseline", "watch", w.name, "err", err)
		return v
	}
	return c
}
