package watch_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openrouteengine/compass/internal/watch"
)

func TestWatcher_FiresOnChangeForWrittenFile(t *testing.T) {
	dir := t.TempDir()

	var mu sync.Mutex
	var changed []string
	onChange := func(path string) {
		mu.Lock()
		changed = append(changed, path)
		mu.Unlock()
	}

	w := watch.New(dir, onChange, watch.WithDebounce(10*time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	path := filepath.Join(dir, "query.yaml")
	require.NoError(t, os.WriteFile(path, []byte("origin_vertex: 0\n"), 0o644))

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(changed) == 1 && changed[0] == path
	}, time.Second, 10*time.Millisecond)

	cancel()
	<-done
}
