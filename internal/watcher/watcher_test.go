package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// ============================================================================
// Debouncer Tests
// ============================================================================

func TestDebouncer_CoalescesRapidTriggers(t *testing.T) {
	d := NewDebouncer(50 * time.Millisecond)

	var callCount atomic.Int32
	for i := 0; i < 10; i++ {
		d.Trigger(func() {
			callCount.Add(1)
		})
		time.Sleep(5 * time.Millisecond)
	}

	assert.Eventually(t, func() bool { return callCount.Load() == 1 }, time.Second, 10*time.Millisecond)
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(1), callCount.Load())
}

func TestDebouncer_Cancel(t *testing.T) {
	d := NewDebouncer(50 * time.Millisecond)

	var called atomic.Bool
	d.Trigger(func() {
		called.Store(true)
	})
	d.Cancel()

	time.Sleep(100 * time.Millisecond)
	assert.False(t, called.Load(), "callback should not run after cancel")
}

func TestDebouncer_DefaultDuration(t *testing.T) {
	assert.Equal(t, DefaultDebounceDuration, NewDebouncer(0).Duration())
	assert.Equal(t, DefaultDebounceDuration, NewDebouncer(-time.Second).Duration())
}

// ============================================================================
// Watcher Tests
// ============================================================================

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestWatcher_DetectsFileChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cards.yaml")
	writeFile(t, path, "cards: []\n")

	w, err := NewWatcher(path, WithDebounceDuration(30*time.Millisecond))
	require.NoError(t, err)
	require.NoError(t, w.Start())
	defer w.Stop()

	writeFile(t, path, "cards:\n  - name: Ada\n")

	select {
	case <-w.Changed():
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for change notification")
	}
}

func TestWatcher_ReportsRemoval(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cards.yaml")
	writeFile(t, path, "cards: []\n")

	errs := make(chan error, 4)
	w, err := NewWatcher(path, WithOnError(func(err error) {
		select {
		case errs <- err:
		default:
		}
	}))
	require.NoError(t, err)
	require.NoError(t, w.Start())
	defer w.Stop()

	require.NoError(t, os.Remove(path))

	select {
	case err := <-errs:
		assert.ErrorIs(t, err, ErrFileRemoved)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for removal error")
	}
}

func TestWatcher_EmptyPath(t *testing.T) {
	_, err := NewWatcher("")
	assert.ErrorIs(t, err, ErrEmptyPath)
}

func TestWatcher_IgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cards.yaml")
	writeFile(t, path, "cards: []\n")

	w, err := NewWatcher(path, WithDebounceDuration(20*time.Millisecond))
	require.NoError(t, err)
	require.NoError(t, w.Start())
	defer w.Stop()

	writeFile(t, filepath.Join(dir, "other.yaml"), "x: 1\n")

	select {
	case <-w.Changed():
		t.Fatal("sibling write must not notify")
	case <-time.After(150 * time.Millisecond):
	}
}

func TestWatcher_StartTwice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cards.yaml")
	writeFile(t, path, "")

	w, err := NewWatcher(path)
	require.NoError(t, err)
	require.NoError(t, w.Start())
	defer w.Stop()

	assert.ErrorIs(t, w.Start(), ErrAlreadyStarted)
	assert.True(t, w.IsStarted())
}

func TestWatcher_StopIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cards.yaml")
	writeFile(t, path, "")

	w, err := NewWatcher(path)
	require.NoError(t, err)
	require.NoError(t, w.Start())

	w.Stop()
	w.Stop()
	assert.False(t, w.IsStarted())
}

func TestWatcher_PathIsAbsolute(t *testing.T) {
	w, err := NewWatcher("cards.yaml")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(w.Path()))
}

func TestWatcher_MissingDirectory(t *testing.T) {
	w, err := NewWatcher(filepath.Join(t.TempDir(), "nope", "cards.yaml"))
	require.NoError(t, err)
	assert.Error(t, w.Start())
	assert.False(t, w.IsStarted())
}

func TestWatcher_RunStopsWithContext(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cards.yaml")
	writeFile(t, path, "")

	w, err := NewWatcher(path, WithDebounceDuration(20*time.Millisecond))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	calls := make(chan struct{}, 4)
	errCh := make(chan error, 1)
	go func() {
		errCh <- w.Run(ctx, func() { calls <- struct{}{} })
	}()

	require.Eventually(t, w.IsStarted, time.Second, 5*time.Millisecond)
	writeFile(t, path, "cards: []\n")

	select {
	case <-calls:
	case <-time.After(2 * time.Second):
		t.Fatal("Run never invoked the callback")
	}

	cancel()
	require.NoError(t, <-errCh)
	assert.False(t, w.IsStarted())
}
