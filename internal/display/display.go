// Package display maps virtual tree nodes to renderable items for a
// generic tree-rendering host.
package display

import (
	"path/filepath"

	"github.com/tagfold/tagfold/internal/tree"
	"github.com/tagfold/tagfold/internal/vfs"
)

// Collapsible is a node's expand/collapse affordance.
type Collapsible string

const (
	// None marks a leaf without an expansion affordance.
	None Collapsible = "none"
	// Collapsed marks an expandable node rendered closed by default.
	Collapsed Collapsible = "collapsed"
)

// Command is an action binding the host can invoke for an item.
type Command struct {
	Action string `json:"action"`
	Title  string `json:"title"`
	Path   string `json:"path"`
}

// Item is the renderable representation of a tree node.
type Item struct {
	Label       string      `json:"label"`
	Collapsible Collapsible `json:"collapsible"`
	Command     *Command    `json:"command,omitempty"`
}

// Adapt maps a node to its renderable item. Tag groups are labeled by
// their tag; file nodes by the first dot-segment of their filename.
// Only File-kind leaves carry the open-document binding.
func Adapt(node tree.Node) Item {
	switch n := node.(type) {
	case tree.TagGroup:
		return Item{Label: n.Tag, Collapsible: Collapsed}
	case tree.FileNode:
		item := Item{
			Label:       tree.BaseLabel(filepath.Base(n.Path)),
			Collapsible: collapsibleFor(n.FileKind),
		}
		if n.FileKind == vfs.KindFile {
			item.Command = &Command{
				Action: "open",
				Title:  "Open File",
				Path:   n.Path,
			}
		}
		return item
	default:
		return Item{Collapsible: None}
	}
}

func collapsibleFor(kind vfs.Kind) Collapsible {
	if kind == vfs.KindDirectory {
		return Collapsed
	}
	return None
}

// AdaptAll maps a node slice preserving order.
func AdaptAll(nodes []tree.Node) []Item {
	items := make([]Item, len(nodes))
	for i, node := range nodes {
		items[i] = Adapt(node)
	}
	return items
}
