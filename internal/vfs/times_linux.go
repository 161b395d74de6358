package vfs

import (
	"io/fs"
	"syscall"
)

// fileTimes returns (created, modified) as epoch milliseconds. Linux has
// no portable birth time through os.FileInfo, so the inode change time
// stands in for creation.
func fileTimes(info fs.FileInfo) (int64, int64) {
	modified := info.ModTime().UnixMilli()
	if st, ok := info.Sys().(*syscall.Stat_t); ok {
		created := int64(st.Ctim.Sec)*1000 + int64(st.Ctim.Nsec)/1_000_000
		return created, modified
	}
	return modified, modified
}
