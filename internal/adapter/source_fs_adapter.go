// Package adapter contains the infrastructure adapters of the class index
// pipeline: filesystem, worker processes, parsing and artifact storage.
package adapter

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	m "classidx.dev/pkg/classidx/internal/model"
)

// SourceFSAdapter abstracts filesystem-specific operations that the domain layer
// relies on. It hides direct `os` access so the pipeline can be tested without
// touching the disk.
//
//nolint:interfacebloat // A richer interface keeps pipeline logic decoupled from os/fs.
type SourceFSAdapter interface {
	// Walk traverses root in lexical order, calling fn for every entry.
	Walk(ctx context.Context, root m.Path, fn FilepathWalkFunc) error

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(ctx context.Context, path m.Path) ([]byte, error)

	// FileInfo returns metadata for a path.
	FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error)

	// Exists reports whether path currently exists.
	Exists(ctx context.Context, path m.Path) bool

	// CreateTempDir creates a temporary directory for worker job files.
	CreateTempDir(ctx context.Context, pattern string) (m.Path, error)

	// RemoveAll removes a directory and all its contents.
	RemoveAll(ctx context.Context, path m.Path) error

	// WriteFile writes content to a file with the given permissions.
	WriteFile(ctx context.Context, path m.Path, content []byte, perm os.FileMode) error

	// AtomicWriteFile writes content to a temporary file next to path and
	// renames it over path, so readers never observe a partial file.
	AtomicWriteFile(ctx context.Context, path m.Path, content []byte, perm os.FileMode) error

	// PrepareDirectory checks that path can be written and creates its parent
	// directory when missing.
	PrepareDirectory(ctx context.Context, path m.Path) error

	// AbsPath returns an absolute, cleaned version of path.
	AbsPath(ctx context.Context, path m.Path) (m.Path, error)

	// JoinPath joins path elements into a single path.
	JoinPath(ctx context.Context, elem ...string) m.Path
}

// FilepathWalkFunc mirrors the callback shape used by filepath.WalkDir. It is
// defined here to avoid leaking the standard-library type directly into the
// domain layer.
type FilepathWalkFunc func(path string, entry fs.DirEntry, err error) error

// FileNotWritableError reports that a file, or the closest existing directory
// that would contain it, is not writable.
type FileNotWritableError struct {
	Path  m.Path
	IsDir bool
}

func (e *FileNotWritableError) Error() string {
	kind := "File"
	if e.IsDir {
		kind = "Directory"
	}

	return fmt.Sprintf("file system error: %s '%s' is not writable", kind, e.Path)
}

// LocalSourceFSAdapter is the os-backed SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Walk iterates over entries under root in lexical order.
func (a *LocalSourceFSAdapter) Walk(ctx context.Context, root m.Path, fn FilepathWalkFunc) error {
	return filepath.WalkDir(string(root), func(path string, entry fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		return fn(path, entry, err)
	})
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(ctx context.Context, path m.Path) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// #nosec G304 - path comes from the configured source roots
	return os.ReadFile(string(path))
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return os.Stat(string(path))
}

// Exists reports whether path exists.
func (a *LocalSourceFSAdapter) Exists(_ context.Context, path m.Path) bool {
	_, err := os.Stat(string(path))

	return err == nil
}

// CreateTempDir creates a temporary directory.
func (a *LocalSourceFSAdapter) CreateTempDir(ctx context.Context, pattern string) (m.Path, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	tmpDir, err := os.MkdirTemp("", pattern)
	if err != nil {
		return "", err
	}

	return m.Path(tmpDir), nil
}

// RemoveAll removes a directory and all its contents.
func (a *LocalSourceFSAdapter) RemoveAll(_ context.Context, path m.Path) error {
	return os.RemoveAll(string(path))
}

// WriteFile writes content to a file with the given permissions.
func (a *LocalSourceFSAdapter) WriteFile(ctx context.Context, path m.Path, content []byte, perm os.FileMode) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return os.WriteFile(string(path), content, perm)
}

// AtomicWriteFile writes into a temp file in the destination directory, syncs
// it, then renames it over the destination.
func (a *LocalSourceFSAdapter) AtomicWriteFile(ctx context.Context, path m.Path, content []byte, perm os.FileMode) error {
	if err := a.PrepareDirectory(ctx, path); err != nil {
		return err
	}

	dir := filepath.Dir(string(path))

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(string(path))+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	tmpName := tmp.Name()
	cleanup := func() {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}

	if _, err := tmp.Write(content); err != nil {
		cleanup()
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := tmp.Sync(); err != nil {
		cleanup()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}

	if err := tmp.Chmod(perm); err != nil {
		cleanup()
		return fmt.Errorf("failed to chmod temp file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := ctx.Err(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}

	if err := os.Rename(tmpName, string(path)); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}

	return nil
}

// PrepareDirectory fails with FileNotWritableError when path, or the closest
// existing ancestor, is not writable, then creates the parent directory.
func (a *LocalSourceFSAdapter) PrepareDirectory(ctx context.Context, path m.Path) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := detectWriteIssues(string(path)); err != nil {
		return err
	}

	dir := filepath.Dir(string(path))
	if err := os.MkdirAll(dir, 0o775); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	return nil
}

// AbsPath returns the absolute path.
func (a *LocalSourceFSAdapter) AbsPath(_ context.Context, path m.Path) (m.Path, error) {
	abs, err := filepath.Abs(string(path))
	if err != nil {
		return "", err
	}

	return m.Path(abs), nil
}

// JoinPath joins path elements into a single path.
func (a *LocalSourceFSAdapter) JoinPath(_ context.Context, elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}

// detectWriteIssues walks up from path to the first existing entry and checks
// that it is writable.
func detectWriteIssues(path string) error {
	current := filepath.Clean(path)

	for {
		info, err := os.Stat(current)
		if err == nil {
			if !writable(current, info) {
				return &FileNotWritableError{Path: m.Path(current), IsDir: info.IsDir()}
			}

			return nil
		}

		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to stat %s: %w", current, err)
		}

		parent := filepath.Dir(current)
		if parent == current {
			return nil
		}

		current = parent
	}
}

func writable(path string, info os.FileInfo) bool {
	if info.IsDir() {
		probe, err := os.CreateTemp(path, ".classidx-probe-*")
		if err != nil {
			return false
		}

		name := probe.Name()
		_ = probe.Close()
		_ = os.Remove(name)

		return true
	}

	f, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return false
	}

	_ = f.Close()

	return true
}
