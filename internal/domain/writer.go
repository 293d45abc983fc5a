package domain

import (
	"context"
	"fmt"
	"log/slog"

	"classidx.dev/pkg/classidx/internal/adapter"
	m "classidx.dev/pkg/classidx/internal/model"
)

// ArtifactPaths locates the persisted artifacts. An empty Cache disables
// writing the scan cache.
type ArtifactPaths struct {
	ClassIndex m.Path
	Hierarchy  m.Path
	Cache      m.Path
}

// WriteRequest carries everything one build persists.
type WriteRequest struct {
	Valid     *m.CandidateIndex
	Errors    map[string]string
	Hierarchy m.HierarchyIndex
	Cache     *m.ScanCache
}

// WriteResult reports, per artifact path, whether it was replaced.
type WriteResult struct {
	Artifacts    map[m.Path]adapter.WriteStatus
	CacheEntries int
}

// IndexWriter persists the build artifacts.
type IndexWriter interface {
	Write(ctx context.Context, req WriteRequest) (WriteResult, error)
}

type indexWriter struct {
	fs        adapter.SourceFSAdapter
	artifacts adapter.ArtifactStore
	caches    adapter.ScanCacheStore
	paths     ArtifactPaths
}

// NewIndexWriter constructs an IndexWriter.
func NewIndexWriter(
	fs adapter.SourceFSAdapter,
	artifacts adapter.ArtifactStore,
	caches adapter.ScanCacheStore,
	paths ArtifactPaths,
) IndexWriter {
	return &indexWriter{
		fs:        fs,
		artifacts: artifacts,
		caches:    caches,
		paths:     paths,
	}
}

// Write checks every target is writable and encodes both artifacts before
// replacing any of them, so a permission or encoding problem leaves all
// previous artifacts untouched.
func (w *indexWriter) Write(ctx context.Context, req WriteRequest) (WriteResult, error) {
	result := WriteResult{Artifacts: make(map[m.Path]adapter.WriteStatus)}

	for _, path := range []m.Path{w.paths.ClassIndex, w.paths.Hierarchy, w.paths.Cache} {
		if path == "" {
			continue
		}

		if err := w.fs.PrepareDirectory(ctx, path); err != nil {
			slog.Error("Failed to prepare artifact", "path", path, "error", err)
			return result, err
		}
	}

	classIndex, err := w.artifacts.EncodeClassIndex(m.NewClassIndex(m.ValidationOutcome{Valid: req.Valid, Errors: req.Errors}))
	if err != nil {
		slog.Error("Failed to encode class index", "error", err)
		return result, err
	}

	hierarchy, err := w.artifacts.EncodeHierarchy(req.Hierarchy)
	if err != nil {
		slog.Error("Failed to encode hierarchy", "error", err)
		return result, err
	}

	// The class index goes last: a reader never sees a new class map next to
	// a stale hierarchy.
	status, err := w.artifacts.Save(ctx, w.paths.Hierarchy, hierarchy)
	if err != nil {
		slog.Error("Failed to save hierarchy", "path", w.paths.Hierarchy, "error", err)
		return result, fmt.Errorf("failed to save hierarchy: %w", err)
	}

	result.Artifacts[w.paths.Hierarchy] = status

	status, err = w.artifacts.Save(ctx, w.paths.ClassIndex, classIndex)
	if err != nil {
		slog.Error("Failed to save class index", "path", w.paths.ClassIndex, "error", err)
		return result, fmt.Errorf("failed to save class index: %w", err)
	}

	result.Artifacts[w.paths.ClassIndex] = status

	if w.paths.Cache == "" || req.Cache == nil {
		return result, nil
	}

	cache := req.Cache.Retain(func(file m.Path) bool {
		return w.fs.Exists(ctx, file)
	})

	if err := w.caches.SaveScanCache(ctx, w.paths.Cache, cache); err != nil {
		slog.Error("Failed to save scan cache", "path", w.paths.Cache, "error", err)
		return result, fmt.Errorf("failed to save scan cache: %w", err)
	}

	result.CacheEntries = cache.Len()

	return result, nil
}
