package vfs

import "io/fs"

// Kind identifies the type of a filesystem object.
type Kind string

const (
	KindFile      Kind = "file"
	KindDirectory Kind = "directory"
	KindSymlink   Kind = "symlink"
	KindUnknown   Kind = "unknown"
)

// StatInfo is a read-only projection of filesystem metadata, constructed
// fresh on every stat query and never cached.
type StatInfo struct {
	Kind        Kind  `json:"kind"`
	IsFile      bool  `json:"is_file"`
	IsDirectory bool  `json:"is_directory"`
	IsSymlink   bool  `json:"is_symlink"`
	Size        int64 `json:"size"`
	// Created and Modified are epoch milliseconds.
	Created  int64 `json:"created"`
	Modified int64 `json:"modified"`
}

// KindOf derives the object kind from a file mode.
func KindOf(mode fs.FileMode) Kind {
	switch {
	case mode.IsRegular():
		return KindFile
	case mode.IsDir():
		return KindDirectory
	case mode&fs.ModeSymlink != 0:
		return KindSymlink
	default:
		return KindUnknown
	}
}

func newStatInfo(info fs.FileInfo) *StatInfo {
	mode := info.Mode()
	kind := KindOf(mode)
	created, modified := fileTimes(info)
	return &StatInfo{
		Kind:        kind,
		IsFile:      kind == KindFile,
		IsDirectory: kind == KindDirectory,
		IsSymlink:   kind == KindSymlink,
		Size:        info.Size(),
		Created:     created,
		Modified:    modified,
	}
}
