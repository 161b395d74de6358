// Package vfs provides filesystem access with a closed error taxonomy.
//
// Every operation takes a context and returns either a result or an
// *Error carrying one of the classified kinds (NotFound, IsADirectory,
// AlreadyExists, NoPermission, Cancelled); unrecognized failures pass
// through unmodified. Filenames returned from the filesystem are
// renormalized to precomposed Unicode form on platforms that hand back
// decomposed names.
//
// Operations are attempted exactly once; there is no retry logic and no
// in-process locking. Concurrent access to overlapping paths relies on
// the underlying filesystem's own consistency guarantees.
package vfs
