//go:build !linux && !darwin

package vfs

import "io/fs"

// fileTimes falls back to the modification time on platforms without an
// accessible creation timestamp.
func fileTimes(info fs.FileInfo) (int64, int64) {
	modified := info.ModTime().UnixMilli()
	return modified, modified
}
