package vfs

import (
	"io/fs"
	"syscall"
)

// fileTimes returns (created, modified) as epoch milliseconds using the
// true birth time available on darwin.
func fileTimes(info fs.FileInfo) (int64, int64) {
	modified := info.ModTime().UnixMilli()
	if st, ok := info.Sys().(*syscall.Stat_t); ok {
		created := int64(st.Birthtimespec.Sec)*1000 + int64(st.Birthtimespec.Nsec)/1_000_000
		return created, modified
	}
	return modified, modified
}
