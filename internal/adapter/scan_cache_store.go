package adapter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	m "classidx.dev/pkg/classidx/internal/model"
	"classidx.dev/pkg/classidx/pkg"
)

// ScanCacheSchema is stamped on every persisted record. Records carrying a
// different schema invalidate the whole cache.
const ScanCacheSchema = 1

var errSchemaMismatch = errors.New("scan cache schema mismatch")

type scanCacheRecord struct {
	Schema int
	File   string
	Mtime  int64
	Symbol string
}

// ScanCacheStore loads and persists the scan cache.
type ScanCacheStore interface {
	// LoadScanCache returns the cache stored at path. A missing, empty,
	// unreadable or outdated cache file yields an empty cache.
	LoadScanCache(ctx context.Context, path m.Path) (*m.ScanCache, error)
	// SaveScanCache atomically replaces the cache stored at path.
	SaveScanCache(ctx context.Context, path m.Path, cache *m.ScanCache) error
}

// GobScanCacheStore stores the scan cache as a gob record file.
type GobScanCacheStore struct {
	fs SourceFSAdapter
}

// NewGobScanCacheStore constructs a GobScanCacheStore.
func NewGobScanCacheStore(fs SourceFSAdapter) *GobScanCacheStore {
	return &GobScanCacheStore{fs: fs}
}

// LoadScanCache implements ScanCacheStore.
func (s *GobScanCacheStore) LoadScanCache(ctx context.Context, path m.Path) (*m.ScanCache, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var entries []m.ScanCacheEntry

	_, err := pkg.ReadFileSpill(string(path), func(_ uint64, record scanCacheRecord) error {
		if record.Schema != ScanCacheSchema {
			return fmt.Errorf("%w: got %d, want %d", errSchemaMismatch, record.Schema, ScanCacheSchema)
		}

		entries = append(entries, m.ScanCacheEntry{
			File:   m.Path(record.File),
			Mtime:  record.Mtime,
			Symbol: record.Symbol,
		})

		return nil
	})
	if err != nil {
		slog.Warn("Ignoring scan cache", "path", path, "error", err)
		return m.NewScanCache(), nil
	}

	slog.Debug("Loaded scan cache", "path", path, "entries", len(entries))

	return m.NewScanCacheFromEntries(entries), nil
}

// SaveScanCache implements ScanCacheStore.
func (s *GobScanCacheStore) SaveScanCache(ctx context.Context, path m.Path, cache *m.ScanCache) error {
	if err := s.fs.PrepareDirectory(ctx, path); err != nil {
		return err
	}

	spill, err := pkg.NewFileSpill[scanCacheRecord](filepath.Dir(string(path)))
	if err != nil {
		return fmt.Errorf("failed to create scan cache file: %w", err)
	}

	defer func() {
		if err := spill.Close(); err != nil {
			slog.Error("Failed to close scan cache file", "path", spill.Path(), "error", err)
		}
	}()

	entries := cache.Entries()
	records := make([]scanCacheRecord, 0, len(entries))

	for _, entry := range entries {
		records = append(records, scanCacheRecord{
			Schema: ScanCacheSchema,
			File:   string(entry.File),
			Mtime:  entry.Mtime,
			Symbol: entry.Symbol,
		})
	}

	if err := spill.AppendBatch(records); err != nil {
		return fmt.Errorf("failed to write scan cache: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if err := spill.Commit(string(path)); err != nil {
		return fmt.Errorf("failed to write scan cache: %w", err)
	}

	return nil
}
