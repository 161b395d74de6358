package tree

import (
	"context"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/tagfold/tagfold/internal/logging"
	"github.com/tagfold/tagfold/internal/vfs"
)

// SchemeFile is the only root scheme the builder derives a tree from.
const SchemeFile = "file"

// Root is an explicit handle to the directory the virtual tree is
// derived from. Non-local roots are tolerated but yield an empty tree.
type Root struct {
	Scheme string
	Path   string
}

// NewFileRoot returns a local-filesystem root for the given directory.
func NewFileRoot(path string) Root {
	return Root{Scheme: SchemeFile, Path: filepath.Clean(path)}
}

// IsLocal reports whether the root uses the local-filesystem scheme.
func (r Root) IsLocal() bool {
	return r.Scheme == "" || r.Scheme == SchemeFile
}

// Builder derives the two-level tag hierarchy from the root's flat
// listing. The tag set is recomputed on every top-level query and never
// persisted.
type Builder struct {
	fs     *vfs.FS
	root   Root
	logger *logging.Logger
}

// NewBuilder creates a builder over an explicit root handle.
func NewBuilder(fsys *vfs.FS, root Root, logger *logging.Logger) *Builder {
	if logger == nil {
		logger = logging.NewDefault()
	}
	return &Builder{fs: fsys, root: root, logger: logger.Named("tree")}
}

// Root returns the builder's root handle.
func (b *Builder) Root() Root { return b.root }

// Children answers the host's tree query. A nil selector yields the
// first-level tag groups; a TagGroup selector yields its matching file
// entries; a FileNode is a leaf and yields nothing.
func (b *Builder) Children(ctx context.Context, selected Node) ([]Node, error) {
	if !b.root.IsLocal() {
		b.logger.Debug("non-local root, returning empty tree", zap.String("scheme", b.root.Scheme))
		return nil, nil
	}
	switch n := selected.(type) {
	case nil:
		return b.tagGroups(ctx)
	case TagGroup:
		return b.groupEntries(ctx, n.Tag)
	default:
		return nil, nil
	}
}

// tagGroups lists the root's immediate children, stats them all, and
// returns the deduplicated union of their tag tokens as synthetic
// directory entries.
func (b *Builder) tagGroups(ctx context.Context) ([]Node, error) {
	names, err := b.fs.ReadDir(ctx, b.root.Path)
	if err != nil {
		return nil, err
	}
	if _, err := b.statAll(ctx, names); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var groups []Node
	for _, name := range names {
		for _, tag := range Tags(name) {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			groups = append(groups, TagGroup{Tag: tag, Root: b.root.Path})
		}
	}
	return groups, nil
}

// groupEntries lists the root's children again and builds a file entry
// for every child whose name contains the tag as a substring. Matches
// are prepended, so the emitted order is the reverse of the listing
// order.
func (b *Builder) groupEntries(ctx context.Context, tag string) ([]Node, error) {
	names, err := b.fs.ReadDir(ctx, b.root.Path)
	if err != nil {
		return nil, err
	}

	var entries []Node
	for _, name := range names {
		if !strings.Contains(name, tag) {
			continue
		}
		path := filepath.Join(b.root.Path, name)
		info, err := b.fs.Stat(ctx, path)
		if err != nil {
			return nil, err
		}
		entries = append([]Node{FileNode{Path: path, FileKind: info.Kind}}, entries...)
	}
	return entries, nil
}

// statAll stats every child concurrently and returns the results in
// listing order. A single failure fails the whole collection; no
// partial results are kept.
func (b *Builder) statAll(ctx context.Context, names []string) ([]*vfs.StatInfo, error) {
	infos := make([]*vfs.StatInfo, len(names))
	errs := make([]error, len(names))

	var wg sync.WaitGroup
	for i, name := range names {
		wg.Add(1)
		go func(i int, name string) {
			defer wg.Done()
			infos[i], errs[i] = b.fs.Stat(ctx, filepath.Join(b.root.Path, name))
		}(i, name)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return infos, nil
}
