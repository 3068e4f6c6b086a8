package watch

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher watches a single directory for created or written files and
// calls onChange once per path after events on it go quiet for
// debounce.
type Watcher struct {
	dir      string
	onChange func(path string)
	onError  func(error)
	debounce time.Duration
}

// New builds a Watcher over dir. onChange is required. It runs on the
// debounce timer's goroutine (time.AfterFunc), not on Run's, so calls
// for different paths can overlap, and so can two calls for the same
// path when a new event arrives while an earlier call is still running.
func New(dir string, onChange func(path string), opts ...Option) *Watcher {
	w := &Watcher{
		dir:      dir,
		onChange: onChange,
		onError:  func(err error) { zap.L().Warn("watch: fsnotify error", zap.Error(err)) },
		debounce: DefaultDebounce,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run blocks watching w.dir until ctx is cancelled or the underlying
// fsnotify watcher fails to start.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: creating fsnotify watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(w.dir); err != nil {
		return fmt.Errorf("watch: watching %s: %w", w.dir, err)
	}

	var mu sync.Mutex
	timers := make(map[string]*time.Timer)

	fire := func(path string) {
		mu.Lock()
		defer mu.Unlock()
		if t, ok := timers[path]; ok {
			t.Stop()
		}
		timers[path] = time.AfterFunc(w.debounce, func() { w.onChange(path) })
	}

	for {
		select {
		case <-ctx.Done():
			mu.Lock()
			for _, t := range timers {
				t.Stop()
			}
			mu.Unlock()
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				fire(event.Name)
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.onError(err)
		}
	}
}
