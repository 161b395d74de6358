package tree

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tagfold/tagfold/internal/vfs"
)

func newTestBuilder(t *testing.T, files ...string) (*Builder, string) {
	t.Helper()
	dir := t.TempDir()
	for _, name := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(name), 0o644))
	}
	return NewBuilder(vfs.New(nil), NewFileRoot(dir), nil), dir
}

func tagsOf(nodes []Node) []string {
	var tags []string
	for _, n := range nodes {
		tags = append(tags, n.(TagGroup).Tag)
	}
	return tags
}

func pathsOf(nodes []Node) []string {
	var paths []string
	for _, n := range nodes {
		paths = append(paths, filepath.Base(n.Location()))
	}
	return paths
}

// TestTopLevelScenario covers the end-to-end grouping contract: two
// tagged reports and one untagged file yield four deduplicated groups.
func TestTopLevelScenario(t *testing.T) {
	b, dir := newTestBuilder(t, "report.v1.final.csv", "report.v2.draft.csv", "notes.txt")
	ctx := context.Background()

	nodes, err := b.Children(ctx, nil)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"v1", "final", "v2", "draft"}, tagsOf(nodes))
	for _, n := range nodes {
		group := n.(TagGroup)
		assert.Equal(t, dir, group.Location())
		assert.Equal(t, vfs.KindDirectory, group.Kind())
	}

	v1, err := b.Children(ctx, TagGroup{Tag: "v1", Root: dir})
	require.NoError(t, err)
	assert.Equal(t, []string{"report.v1.final.csv"}, pathsOf(v1))

	draft, err := b.Children(ctx, TagGroup{Tag: "draft", Root: dir})
	require.NoError(t, err)
	assert.Equal(t, []string{"report.v2.draft.csv"}, pathsOf(draft))
}

// TestTagDeduplication asserts duplicate tags across files collapse to
// a single group.
func TestTagDeduplication(t *testing.T) {
	b, _ := newTestBuilder(t, "one.shared.txt", "two.shared.txt", "three.shared.other.txt")

	nodes, err := b.Children(context.Background(), nil)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"shared", "other"}, tagsOf(nodes))
}

// TestSubstringMatching asserts group membership is a substring match,
// not an exact-segment match.
func TestSubstringMatching(t *testing.T) {
	b, dir := newTestBuilder(t, "a.x.txt", "axy.b.txt", "unrelated.txt")

	nodes, err := b.Children(context.Background(), TagGroup{Tag: "x", Root: dir})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a.x.txt", "axy.b.txt"}, pathsOf(nodes))
}

// TestChildOrderReversed asserts child-query results come back in the
// reverse of the directory listing order.
func TestChildOrderReversed(t *testing.T) {
	b, dir := newTestBuilder(t, "a.tag.txt", "b.tag.txt", "c.tag.txt")

	nodes, err := b.Children(context.Background(), TagGroup{Tag: "tag", Root: dir})
	require.NoError(t, err)
	// os.ReadDir returns lexicographic order, so emitted order is its reverse.
	assert.Equal(t, []string{"c.tag.txt", "b.tag.txt", "a.tag.txt"}, pathsOf(nodes))
}

func TestFileNodeKinds(t *testing.T) {
	b, dir := newTestBuilder(t, "doc.v1.txt")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "v1-archive"), 0o755))

	nodes, err := b.Children(context.Background(), TagGroup{Tag: "v1", Root: dir})
	require.NoError(t, err)
	require.Len(t, nodes, 2)

	kinds := map[string]vfs.Kind{}
	for _, n := range nodes {
		kinds[filepath.Base(n.Location())] = n.Kind()
	}
	assert.Equal(t, vfs.KindFile, kinds["doc.v1.txt"])
	assert.Equal(t, vfs.KindDirectory, kinds["v1-archive"])
}

// TestNonLocalRootEmpty asserts a non-file-scheme root yields an empty
// tree rather than an error.
func TestNonLocalRootEmpty(t *testing.T) {
	b := NewBuilder(vfs.New(nil), Root{Scheme: "sftp", Path: "/remote"}, nil)

	nodes, err := b.Children(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, nodes)
}

// TestLeafHasNoChildren asserts a file node selector yields nothing.
func TestLeafHasNoChildren(t *testing.T) {
	b, dir := newTestBuilder(t, "doc.v1.txt")

	nodes, err := b.Children(context.Background(), FileNode{Path: filepath.Join(dir, "doc.v1.txt"), FileKind: vfs.KindFile})
	require.NoError(t, err)
	assert.Empty(t, nodes)
}

// TestMissingRootPropagates asserts a listing failure surfaces as a
// classified error with no partial results.
func TestMissingRootPropagates(t *testing.T) {
	b := NewBuilder(vfs.New(nil), NewFileRoot(filepath.Join(t.TempDir(), "gone")), nil)

	nodes, err := b.Children(context.Background(), nil)
	assert.True(t, vfs.IsNotFound(err))
	assert.Nil(t, nodes)
}

// TestCancelledQuery asserts a cancelled context aborts the query with
// the Cancelled classification.
func TestCancelledQuery(t *testing.T) {
	b, _ := newTestBuilder(t, "doc.v1.txt")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := b.Children(ctx, nil)
	assert.True(t, vfs.IsCancelled(err))
}
