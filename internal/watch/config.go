package watch

import "time"

// DefaultDebounce is how long Watcher waits after the last event for a
// path before invoking its change callback.
const DefaultDebounce = 200 * time.Millisecond

// Option customizes a Watcher before Run starts it. As with graphgen's
// generator options, Option constructors never panic and ignore
// invalid input rather than half-configure the watcher.
type Option func(w *Watcher)

// WithDebounce overrides DefaultDebounce. A non-positive duration is a
// no-op.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithOnError sets the callback invoked for errors the underlying
// fsnotify watcher reports out-of-band (not file-content errors — the
// caller's onChange handles those). A nil fn is a no-op.
func WithOnError(fn func(error)) Option {
	return func(w *Watcher) {
		if fn != nil {
			w.onError = fn
		}
	}
}
