package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for the file watcher:
// - A write to a watched extension fires the callback after the debounce
// - Rapid consecutive writes coalesce into a single callback
// - Files with unwatched extensions are ignored
// - Files in directories created after Start are picked up
// - Stop is idempotent

func collectChanges(t *testing.T, root string) (*Watcher, chan []string) {
	t.Helper()

	w, err := New(root, []string{".c", ".h"}, 50*time.Millisecond)
	require.NoError(t, err)
	t.Cleanup(func() { w.Stop() })

	changes := make(chan []string, 10)
	w.Start(context.Background(), func(files []string) {
		changes <- files
	})
	return w, changes
}

func waitForChanges(t *testing.T, changes chan []string) []string {
	t.Helper()
	select {
	case files := <-changes:
		return files
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for watcher callback")
		return nil
	}
}

func TestWatcher_FiresOnWrite(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	_, changes := collectChanges(t, root)

	path := filepath.Join(root, "main.c")
	require.NoError(t, os.WriteFile(path, []byte("int x;\n"), 0o644))

	files := waitForChanges(t, changes)
	assert.Contains(t, files, path)
}

func TestWatcher_CoalescesRapidWrites(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	_, changes := collectChanges(t, root)

	a := filepath.Join(root, "a.c")
	b := filepath.Join(root, "b.h")
	require.NoError(t, os.WriteFile(a, []byte("int a;\n"), 0o644))
	require.NoError(t, os.WriteFile(b, []byte("int b;\n"), 0o644))

	files := waitForChanges(t, changes)
	assert.ElementsMatch(t, []string{a, b}, files)
}

func TestWatcher_IgnoresOtherExtensions(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	_, changes := collectChanges(t, root)

	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.txt"), []byte("x"), 0o644))

	select {
	case files := <-changes:
		t.Fatalf("unexpected callback for %v", files)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcher_WatchesNewDirectories(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	_, changes := collectChanges(t, root)

	sub := filepath.Join(root, "src")
	require.NoError(t, os.Mkdir(sub, 0o755))
	// Give the watcher a moment to register the new directory.
	time.Sleep(100 * time.Millisecond)

	path := filepath.Join(sub, "util.c")
	require.NoError(t, os.WriteFile(path, []byte("int u;\n"), 0o644))

	files := waitForChanges(t, changes)
	assert.Contains(t, files, path)
}

func TestWatcher_StopIdempotent(t *testing.T) {
	t.Parallel()

	w, _ := collectChanges(t, t.TempDir())
	require.NoError(t, w.Stop())
	require.NoError(t, w.Stop())
}
