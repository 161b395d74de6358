package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tagfold/tagfold/internal/vfs"
)

// waitFor drains the subscription until an event matching kind and path
// arrives, or the timeout expires.
func waitFor(t *testing.T, sub *Subscription, kind EventKind, path string) {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case batch, ok := <-sub.Events():
			if !ok {
				t.Fatalf("event stream closed while waiting for %s %s", kind, path)
			}
			require.Len(t, batch, 1, "emission must be a single-element batch")
			if batch[0].Kind == kind && batch[0].Path == path {
				return
			}
		case <-deadline:
			t.Fatalf("timed out waiting for %s %s", kind, path)
		}
	}
}

func newSubscription(t *testing.T, opts ...Option) (*Subscription, string) {
	t.Helper()
	dir := t.TempDir()
	sub, err := Subscribe(dir, vfs.New(nil), nil, opts...)
	require.NoError(t, err)
	t.Cleanup(func() { sub.Close() })
	return sub, dir
}

func TestSubscriptionLifecycle(t *testing.T) {
	sub, dir := newSubscription(t)
	path := filepath.Join(dir, "doc.v1.txt")

	require.NoError(t, os.WriteFile(path, []byte("one"), 0o644))
	waitFor(t, sub, Created, path)

	require.NoError(t, os.WriteFile(path, []byte("two"), 0o644))
	waitFor(t, sub, Changed, path)

	require.NoError(t, os.Remove(path))
	waitFor(t, sub, Deleted, path)
}

func TestRenameTranslatesByExistence(t *testing.T) {
	sub, dir := newSubscription(t)
	oldPath := filepath.Join(dir, "a.tag.txt")
	newPath := filepath.Join(dir, "b.tag.txt")

	require.NoError(t, os.WriteFile(oldPath, []byte("x"), 0o644))
	waitFor(t, sub, Created, oldPath)

	require.NoError(t, os.Rename(oldPath, newPath))
	waitFor(t, sub, Deleted, oldPath)
	waitFor(t, sub, Created, newPath)
}

// TestExcludesAreInert asserts exclude patterns are accepted in the
// configuration surface without filtering the stream.
func TestExcludesAreInert(t *testing.T) {
	sub, dir := newSubscription(t, WithExcludes("**/*.txt", "*"))
	path := filepath.Join(dir, "excluded.tag.txt")

	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	waitFor(t, sub, Created, path)
}

// TestRecursiveExtension asserts directories created after subscription
// are brought under watch.
func TestRecursiveExtension(t *testing.T) {
	sub, dir := newSubscription(t)
	subdir := filepath.Join(dir, "nested")

	require.NoError(t, os.Mkdir(subdir, 0o755))
	waitFor(t, sub, Created, subdir)

	// Give the watcher a beat to register the new directory.
	time.Sleep(100 * time.Millisecond)

	path := filepath.Join(subdir, "deep.tag.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	waitFor(t, sub, Created, path)
}

func TestCloseIsTerminal(t *testing.T) {
	sub, dir := newSubscription(t)

	require.NoError(t, sub.Close())
	assert.NoError(t, sub.Close(), "close must be safe to repeat")

	// Mutations after teardown never surface.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "late.tag.txt"), []byte("x"), 0o644))

	deadline := time.After(500 * time.Millisecond)
	for {
		select {
		case _, ok := <-sub.Events():
			if !ok {
				return // stream drained and closed
			}
		case <-deadline:
			t.Fatal("event stream did not close after teardown")
		}
	}
}

func TestSubscriptionIdentity(t *testing.T) {
	a, _ := newSubscription(t)
	b, _ := newSubscription(t)

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
}
