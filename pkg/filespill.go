// Package pkg provides utilities for classidx.
package pkg

import (
	"encoding/gob"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// ErrCommitted is returned when a spill is written to after Commit.
var ErrCommitted = errors.New("filespill already committed")

// FileSpill is a generic append-only record file for items of type T. Items
// are gob encoded into a temporary file that only becomes visible at its
// destination on Commit.
type FileSpill[T any] interface {
	Len() uint64
	Path() string
	Append(item T) error
	AppendBatch(items []T) error
	// Commit syncs the spill and renames it over dest.
	Commit(dest string) error
	// Close releases the spill. An uncommitted spill is removed.
	Close() error
}

type fileSpillImpl[T any] struct {
	path      string
	file      *os.File
	encoder   *gob.Encoder
	mu        sync.Mutex
	length    uint64
	committed bool
}

// Append implements FileSpill.
func (f *fileSpillImpl[T]) Append(item T) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.committed {
		return ErrCommitted
	}

	if err := f.encoder.Encode(item); err != nil {
		slog.Error("failed to encode item", "path", f.path, "index", f.length, "error", err)
		return fmt.Errorf("failed to encode item: %w", err)
	}

	f.length++

	return nil
}

// Path implements FileSpill.
func (f *fileSpillImpl[T]) Path() string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.path
}

// AppendBatch implements FileSpill.
func (f *fileSpillImpl[T]) AppendBatch(items []T) error {
	for _, item := range items {
		if err := f.Append(item); err != nil {
			return err
		}
	}

	return nil
}

// Len implements FileSpill.
func (f *fileSpillImpl[T]) Len() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.length
}

// Commit implements FileSpill.
func (f *fileSpillImpl[T]) Commit(dest string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.committed {
		return ErrCommitted
	}

	if err := f.file.Sync(); err != nil {
		slog.Error("failed to sync filespill", "path", f.path, "error", err)
		return fmt.Errorf("failed to sync %s: %w", f.path, err)
	}

	if err := f.file.Close(); err != nil {
		slog.Error("failed to close filespill", "path", f.path, "error", err)
		return fmt.Errorf("failed to close %s: %w", f.path, err)
	}

	f.file = nil

	if err := os.Rename(f.path, dest); err != nil {
		slog.Error("failed to commit filespill", "path", f.path, "dest", dest, "error", err)
		_ = os.Remove(f.path)

		return fmt.Errorf("failed to rename %s to %s: %w", f.path, dest, err)
	}

	slog.Debug("committed filespill", "path", dest, "length", f.length)

	f.path = dest
	f.committed = true

	return nil
}

// Close implements FileSpill.
func (f *fileSpillImpl[T]) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.file != nil {
		if err := f.file.Close(); err != nil {
			slog.Error("failed to close file", "path", f.path, "error", err)
			return err
		}

		f.file = nil
	}

	if !f.committed {
		if err := os.Remove(f.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to remove %s: %w", f.path, err)
		}
	}

	return nil
}

// NewFileSpill creates a new FileSpill for items of type T in dir. Creating
// the spill in the directory of its eventual destination keeps Commit a
// same-filesystem rename. An empty dir uses the system temp directory.
func NewFileSpill[T any](dir string) (FileSpill[T], error) {
	if dir == "" {
		dir = filepath.Join(os.TempDir(), "filespill")
	}

	if err := os.MkdirAll(dir, 0o775); err != nil {
		slog.Error("failed to create spill directory", "path", dir, "error", err)
		return nil, fmt.Errorf("failed to create spill directory: %w", err)
	}

	file, err := os.CreateTemp(dir, ".spill-*.gob")
	if err != nil {
		slog.Error("failed to create temp file", "path", dir, "error", err)
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}

	return &fileSpillImpl[T]{
		path:    file.Name(),
		file:    file,
		encoder: gob.NewEncoder(file),
	}, nil
}

// ReadFileSpill decodes every item of a committed spill at path, in order.
// A missing or empty file holds no items. It returns the number of items
// passed to fn.
func ReadFileSpill[T any](path string, fn func(index uint64, item T) error) (uint64, error) {
	// #nosec G304 - path is a configured cache location
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, nil
		}

		return 0, fmt.Errorf("failed to open %s: %w", path, err)
	}

	defer func() {
		if err := file.Close(); err != nil {
			slog.Error("failed to close file", "path", path, "error", err)
		}
	}()

	decoder := gob.NewDecoder(file)

	var count uint64

	for {
		var item T

		err := decoder.Decode(&item)
		if errors.Is(err, io.EOF) {
			return count, nil
		}

		if err != nil {
			return count, fmt.Errorf("failed to decode item at index %d: %w", count, err)
		}

		if err := fn(count, item); err != nil {
			return count, err
		}

		count++
	}
}
