package domain

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"sort"
	"time"

	"classidx.dev/pkg/classidx/internal/adapter"
	"classidx.dev/pkg/classidx/internal/controller"
	m "classidx.dev/pkg/classidx/internal/model"
)

// BuildArgs contains the arguments of one index build.
type BuildArgs struct {
	Roots []m.SourceRoot
	// UseCache reuses the persisted scan cache for files whose mtime did not
	// change.
	UseCache bool
	// Diff reports class map changes against the previous class index.
	Diff bool
}

// Workflow runs the index build pipeline: scan, validate, extract, write.
type Workflow interface {
	Build(ctx context.Context, args BuildArgs) (m.BuildResult, error)
}

type workflow struct {
	adapter.ArtifactStore
	adapter.ScanCacheStore
	controller.UI
	DirectoryScanner
	IsolatedValidator
	HierarchyExtractor
	IndexWriter

	paths ArtifactPaths
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	artifactStore adapter.ArtifactStore,
	scanCacheStore adapter.ScanCacheStore,
	ui controller.UI,
	scanner DirectoryScanner,
	validator IsolatedValidator,
	extractor HierarchyExtractor,
	writer IndexWriter,
	paths ArtifactPaths,
) Workflow {
	return &workflow{
		ArtifactStore:      artifactStore,
		ScanCacheStore:     scanCacheStore,
		UI:                 ui,
		DirectoryScanner:   scanner,
		IsolatedValidator:  validator,
		HierarchyExtractor: extractor,
		IndexWriter:        writer,
		paths:              paths,
	}
}

// Build runs the pipeline once. Artifacts are only replaced after every
// earlier stage succeeded, so a failed or cancelled build leaves the previous
// artifacts in place.
func (w *workflow) Build(ctx context.Context, args BuildArgs) (m.BuildResult, error) {
	var result m.BuildResult

	if IsRunning(ctx) {
		slog.Warn("Refusing nested build")
		return result, ErrReentrant
	}

	ctx = WithRunState(ctx)

	if err := w.Start(ctx); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return result, err
	}

	defer w.Close(ctx)

	previous, hasPrevious := w.previousIndex(ctx)

	cache, err := w.loadCache(ctx, args)
	if err != nil {
		return result, err
	}

	var scan ScanResult

	err = w.stage(ctx, &result, m.StageScan, func() error {
		scan, err = w.Scan(ctx, args.Roots, cache)
		return err
	})
	if err != nil {
		return result, err
	}

	result.Scan = scan.Summary()
	result.Collisions = scan.Collisions
	w.DisplayScanSummary(ctx, result.Scan)

	var outcome m.ValidationOutcome

	err = w.stage(ctx, &result, m.StageValidate, func() error {
		outcome, err = w.Validate(ctx, scan.Candidates, func(progress m.ValidationProgress) {
			w.DisplayValidationProgress(ctx, progress)
		})
		return err
	})
	if err != nil {
		return result, err
	}

	result.Valid = outcome.Valid.Len()
	result.Errors = outcome.Errors
	result.Passes = outcome.Passes
	result.WorkerRuns = outcome.WorkerRuns

	var hierarchy m.HierarchyIndex

	err = w.stage(ctx, &result, m.StageHierarchy, func() error {
		hierarchy, err = w.Extract(ctx, outcome.Valid)
		return err
	})
	if err != nil {
		return result, err
	}

	result.Hierarchy = len(hierarchy)

	var written WriteResult

	err = w.stage(ctx, &result, m.StageWrite, func() error {
		written, err = w.Write(ctx, WriteRequest{
			Valid:     outcome.Valid,
			Errors:    outcome.Errors,
			Hierarchy: hierarchy,
			Cache:     scan.Cache,
		})
		return err
	})
	if err != nil {
		return result, err
	}

	result.Artifacts = make(map[m.Path]string, len(written.Artifacts))
	for path, status := range written.Artifacts {
		result.Artifacts[path] = status.String()
	}

	current := m.NewClassIndex(outcome)

	if hasPrevious {
		result.NewlyExcluded = m.NewlyExcluded(previous, current)

		if args.Diff {
			result.Changes = m.CompareClassIndexes(previous, current)
			w.DisplayChanges(ctx, result.Changes)
		}
	} else {
		result.NewlyExcluded = sortedKeys(outcome.Errors)
	}

	slog.Info("Build finished",
		"valid", result.Valid,
		"excluded", len(result.Errors),
		"newly_excluded", len(result.NewlyExcluded),
		"passes", result.Passes,
		"worker_runs", result.WorkerRuns)

	w.DisplayBuildResult(ctx, result)

	return result, nil
}

func (w *workflow) stage(ctx context.Context, result *m.BuildResult, stage m.Stage, run func() error) error {
	w.DisplayStage(ctx, stage)

	start := time.Now()
	err := run()
	elapsed := time.Since(start)

	result.Timings = append(result.Timings, m.StageTiming{Stage: stage, Duration: elapsed})
	slog.Info("Stage finished", "stage", stage, "duration", elapsed, "ok", err == nil)

	if err != nil {
		slog.Error("Build stage failed", "stage", stage, "error", err)
		w.DisplayFailure(ctx, stage, err)

		return fmt.Errorf("%s: %w", stage, err)
	}

	return nil
}

// previousIndex loads the class index of the last successful build.
func (w *workflow) previousIndex(ctx context.Context) (m.ClassIndex, bool) {
	if w.paths.ClassIndex == "" {
		return m.ClassIndex{}, false
	}

	index, err := w.LoadClassIndex(ctx, w.paths.ClassIndex)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, adapter.ErrUnreadableFormat) {
			slog.Debug("No previous class index", "path", w.paths.ClassIndex)
		} else {
			slog.Warn("Cannot read previous class index", "path", w.paths.ClassIndex, "error", err)
		}

		return m.ClassIndex{}, false
	}

	return index, true
}

func (w *workflow) loadCache(ctx context.Context, args BuildArgs) (*m.ScanCache, error) {
	if !args.UseCache || w.paths.Cache == "" {
		return m.NewScanCache(), nil
	}

	cache, err := w.LoadScanCache(ctx, w.paths.Cache)
	if err != nil {
		slog.Error("Failed to load scan cache", "path", w.paths.Cache, "error", err)
		return nil, fmt.Errorf("load scan cache: %w", err)
	}

	return cache, nil
}

func sortedKeys(values map[string]string) []string {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}
