package config

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherRelevant(t *testing.T) {
	home := withHome(t)
	ws := t.TempDir()

	w, err := NewWatcher(ws)
	require.NoError(t, err)

	assert.True(t, w.Relevant(filepath.Join(home, ".webpreview", ConfigFileName)))
	assert.True(t, w.Relevant(filepath.Join(ws, WorkspaceFileName)))
	assert.False(t, w.Relevant(filepath.Join(home, ".webpreview", StateFileName)))
	assert.False(t, w.Relevant(filepath.Join(ws, "package.json")))
}

func TestWatcherReportsWorkspaceChange(t *testing.T) {
	home := withHome(t)
	require.NoError(t, os.MkdirAll(filepath.Join(home, ".webpreview"), 0755))
	ws := t.TempDir()

	w, err := NewWatcher(ws)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	got := make(chan Settings, 4)
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx, func(s Settings) { got <- s }) }()

	// Give the watcher time to register before writing.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(ws, WorkspaceFileName), []byte("url: http://localhost:4000\n"), 0644))

	select {
	case s := <-got:
		assert.Equal(t, "http://localhost:4000", s.URL)
	case <-time.After(3 * time.Second):
		t.Fatal("no reload after workspace write")
	}

	cancel()
	assert.NoError(t, <-done)
}

func TestWatcherCoalescesBurstOfWrites(t *testing.T) {
	home := withHome(t)
	require.NoError(t, os.MkdirAll(filepath.Join(home, ".webpreview"), 0755))
	ws := t.TempDir()

	w, err := NewWatcher(ws)
	require.NoError(t, err)
	w.delay = 100 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	var last atomic.Value
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func(s Settings) {
			last.Store(s.URL)
			calls.Add(1)
		})
	}()

	time.Sleep(100 * time.Millisecond)
	path := filepath.Join(ws, WorkspaceFileName)
	for _, port := range []string{"4001", "4002", "4003"} {
		require.NoError(t, os.WriteFile(path, []byte("url: http://localhost:"+port+"\n"), 0644))
		time.Sleep(10 * time.Millisecond)
	}

	assert.Eventually(t, func() bool { return calls.Load() == 1 }, 3*time.Second, 10*time.Millisecond)
	time.Sleep(250 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load(), "one reload per burst")
	assert.Equal(t, "http://localhost:4003", last.Load())

	cancel()
	assert.NoError(t, <-done)
}

func TestWatcherIgnoresUnrelatedFiles(t *testing.T) {
	home := withHome(t)
	require.NoError(t, os.MkdirAll(filepath.Join(home, ".webpreview"), 0755))
	ws := t.TempDir()

	w, err := NewWatcher(ws)
	require.NoError(t, err)
	w.delay = 20 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx, func(Settings) { calls.Add(1) }) }()

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(ws, "package.json"), []byte("{}"), 0644))
	time.Sleep(150 * time.Millisecond)
	assert.Zero(t, calls.Load())

	cancel()
	assert.NoError(t, <-done)
}
