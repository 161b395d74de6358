package tree

import "github.com/tagfold/tagfold/internal/vfs"

// Node is a virtual tree entry: either a synthetic TagGroup grouping
// node or a FileNode backed by a real filesystem object. Consumers
// resolve the variant with a type switch.
type Node interface {
	// Location is an absolute filesystem path. For a TagGroup it is the
	// root directory the group was derived from, not a real directory
	// of its own.
	Location() string
	// Kind reflects the real object's type for a FileNode and is always
	// Directory for a TagGroup.
	Kind() vfs.Kind

	node()
}

// TagGroup is a first-level synthetic entry representing one tag value.
type TagGroup struct {
	Tag  string
	Root string
}

func (g TagGroup) Location() string { return g.Root }
func (g TagGroup) Kind() vfs.Kind   { return vfs.KindDirectory }
func (g TagGroup) node()            {}

// FileNode is a second-level entry for a real filesystem object.
type FileNode struct {
	Path     string
	FileKind vfs.Kind
}

func (f FileNode) Location() string { return f.Path }
func (f FileNode) Kind() vfs.Kind   { return f.FileKind }
func (f FileNode) node()            {}
