package vfs

import (
	"context"
	"os"

	"go.uber.org/zap"

	"github.com/tagfold/tagfold/internal/logging"
)

// FS performs filesystem operations with classified errors.
type FS struct {
	logger *logging.Logger
}

// New creates a filesystem accessor.
func New(logger *logging.Logger) *FS {
	if logger == nil {
		logger = logging.NewDefault()
	}
	return &FS{logger: logger}
}

// ReadDir lists the immediate children of a directory, in directory
// order, with filenames renormalized to precomposed form.
func (f *FS) ReadDir(ctx context.Context, path string) ([]string, error) {
	if err := checkCancelled(ctx, path); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, Classify(path, err)
	}
	names := make([]string, len(entries))
	for i, entry := range entries {
		names[i] = entry.Name()
	}
	return NormalizeNames(names), nil
}

// Stat returns fresh metadata for the object at path.
func (f *FS) Stat(ctx context.Context, path string) (*StatInfo, error) {
	if err := checkCancelled(ctx, path); err != nil {
		return nil, err
	}
	info, err := os.Lstat(path)
	if err != nil {
		return nil, Classify(path, err)
	}
	return newStatInfo(info), nil
}

// ReadFile reads the entire contents of a file.
func (f *FS) ReadFile(ctx context.Context, path string) ([]byte, error) {
	if err := checkCancelled(ctx, path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, Classify(path, err)
	}
	return data, nil
}

// WriteFile writes data to a file, replacing any existing contents.
func (f *FS) WriteFile(ctx context.Context, path string, data []byte) error {
	if err := checkCancelled(ctx, path); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return Classify(path, err)
	}
	return nil
}

// Remove deletes a file or empty directory.
func (f *FS) Remove(ctx context.Context, path string) error {
	if err := checkCancelled(ctx, path); err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		return Classify(path, err)
	}
	return nil
}

// RemoveAll deletes a path and any children it contains.
func (f *FS) RemoveAll(ctx context.Context, path string) error {
	if err := checkCancelled(ctx, path); err != nil {
		return err
	}
	if err := os.RemoveAll(path); err != nil {
		return Classify(path, err)
	}
	return nil
}

// MkdirAll creates a directory along with any missing parents.
func (f *FS) MkdirAll(ctx context.Context, path string) error {
	if err := checkCancelled(ctx, path); err != nil {
		return err
	}
	if err := os.MkdirAll(path, 0o755); err != nil {
		return Classify(path, err)
	}
	return nil
}

// Rename moves a file or directory to a new path.
func (f *FS) Rename(ctx context.Context, oldPath, newPath string) error {
	if err := checkCancelled(ctx, oldPath); err != nil {
		return err
	}
	if err := os.Rename(oldPath, newPath); err != nil {
		return Classify(oldPath, err)
	}
	return nil
}

// Exists reports whether a path exists. It never fails: a missing path
// resolves to false, and unexpected stat errors are logged and treated
// as absence.
func (f *FS) Exists(ctx context.Context, path string) bool {
	if err := checkCancelled(ctx, path); err != nil {
		return false
	}
	_, err := os.Lstat(path)
	if err == nil {
		return true
	}
	if !os.IsNotExist(err) {
		f.logger.Debug("existence check failed", zap.String("path", path), zap.Error(err))
	}
	return false
}
