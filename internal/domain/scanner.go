package domain

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"classidx.dev/pkg/classidx/internal/adapter"
	m "classidx.dev/pkg/classidx/internal/model"
)

// ScanResult is the candidate index produced by a scan along with the cache
// to persist for the next run.
type ScanResult struct {
	Candidates *m.CandidateIndex
	Cache      *m.ScanCache
	Parsed     int
	Reused     int
	Collisions []m.Collision
	// Warnings lists unreadable roots and files. They never abort a scan.
	Warnings []error
}

// Summary condenses the result for display.
func (r ScanResult) Summary() m.ScanSummary {
	return m.ScanSummary{
		Candidates: r.Candidates.Len(),
		Parsed:     r.Parsed,
		Reused:     r.Reused,
		Collisions: len(r.Collisions),
		Warnings:   len(r.Warnings),
	}
}

// DirectoryScanner discovers symbol declarations under source roots.
type DirectoryScanner interface {
	// Scan walks roots in order. Files whose mtime matches cache are not
	// parsed again. The first declaration of a symbol wins.
	Scan(ctx context.Context, roots []m.SourceRoot, cache *m.ScanCache) (ScanResult, error)
}

type directoryScanner struct {
	fs     adapter.SourceFSAdapter
	parser adapter.DeclarationParser
}

// NewDirectoryScanner constructs a DirectoryScanner.
func NewDirectoryScanner(fs adapter.SourceFSAdapter, parser adapter.DeclarationParser) DirectoryScanner {
	return &directoryScanner{fs: fs, parser: parser}
}

type scanState struct {
	result ScanResult
	cache  *m.ScanCache
	// resolved holds the declarations of every file seen in this scan, so a
	// later root can offer a file again without reading it.
	resolved map[m.Path]resolvedFile
	// claimed marks files from which a root took at least one symbol.
	claimed map[m.Path]bool
}

type resolvedFile struct {
	mtime   int64
	symbols []string
}

func (s *directoryScanner) Scan(ctx context.Context, roots []m.SourceRoot, cache *m.ScanCache) (ScanResult, error) {
	state := &scanState{
		result: ScanResult{
			Candidates: m.NewCandidateIndex(),
			Cache:      m.NewScanCache(),
		},
		cache:    cache,
		resolved: make(map[m.Path]resolvedFile),
		claimed:  make(map[m.Path]bool),
	}

	for _, root := range roots {
		if err := s.scanRoot(ctx, state, root); err != nil {
			return state.result, err
		}
	}

	return state.result, nil
}

func (s *directoryScanner) scanRoot(ctx context.Context, state *scanState, root m.SourceRoot) error {
	filter, err := adapter.NewRootFilter(root)
	if err != nil {
		slog.Error("Failed to compile root filters", "root", root.Dir, "error", err)
		return err
	}

	dir, err := s.fs.AbsPath(ctx, root.Dir)
	if err != nil {
		state.warn(fmt.Errorf("source root %s: %w", root.Dir, err))
		return nil
	}

	info, err := s.fs.FileInfo(ctx, dir)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		state.warn(fmt.Errorf("source root %s is not readable: %w", dir, err))

		return nil
	}

	if !info.IsDir() {
		state.warn(fmt.Errorf("source root %s is not a directory", dir))
		return nil
	}

	err = s.fs.Walk(ctx, dir, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			state.warn(fmt.Errorf("cannot read %s: %w", path, walkErr))
			return nil
		}

		if entry.IsDir() || !filter.Match(path) {
			return nil
		}

		file := m.Path(path)
		if state.claimed[file] {
			return nil
		}

		return s.scanFile(ctx, state, root, file)
	})
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}

		state.warn(fmt.Errorf("source root %s: %w", dir, err))
	}

	return nil
}

// scanFile offers the declarations of file to root. A file whose symbols the
// root does not own stays available to the roots that follow.
func (s *directoryScanner) scanFile(ctx context.Context, state *scanState, root m.SourceRoot, file m.Path) error {
	resolved, ok := state.resolved[file]
	if !ok {
		var err error

		resolved, ok, err = s.resolveFile(ctx, state, file)
		if err != nil || !ok {
			return err
		}
	}

	for _, symbol := range resolved.symbols {
		if !root.Owns(symbol) {
			continue
		}

		state.claimed[file] = true

		entry := m.CandidateEntry{Symbol: symbol, File: file, Mtime: resolved.mtime}
		if state.result.Candidates.Add(entry) {
			continue
		}

		kept, _ := state.result.Candidates.Get(symbol)
		collision := m.Collision{Symbol: symbol, Kept: kept.File, Dropped: file}
		state.result.Collisions = append(state.result.Collisions, collision)

		slog.Debug("Duplicate symbol dropped", "symbol", symbol, "kept", kept.File, "dropped", file)
	}

	return nil
}

// resolveFile returns the declarations of file from the cache or the parser
// and records them for the next run. ok is false when the file was skipped
// with a warning.
func (s *directoryScanner) resolveFile(ctx context.Context, state *scanState, file m.Path) (resolvedFile, bool, error) {
	info, err := s.fs.FileInfo(ctx, file)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return resolvedFile{}, false, ctxErr
		}

		state.warn(fmt.Errorf("cannot stat %s: %w", file, err))

		return resolvedFile{}, false, nil
	}

	mtime := info.ModTime().UnixNano()

	symbols, cached := state.cache.Lookup(file, mtime)
	if cached {
		state.result.Reused++
	} else {
		content, err := s.fs.ReadFile(ctx, file)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return resolvedFile{}, false, ctxErr
			}

			state.warn(fmt.Errorf("cannot read %s: %w", file, err))

			return resolvedFile{}, false, nil
		}

		symbols, err = s.parser.Declarations(ctx, file, content)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return resolvedFile{}, false, ctxErr
			}

			state.warn(fmt.Errorf("cannot parse %s: %w", file, err))

			return resolvedFile{}, false, nil
		}

		state.result.Parsed++
	}

	state.result.Cache.Record(file, mtime, symbols)

	resolved := resolvedFile{mtime: mtime, symbols: symbols}
	state.resolved[file] = resolved

	return resolved, true, nil
}

func (st *scanState) warn(err error) {
	slog.Warn("Scan warning", "error", err)
	st.result.Warnings = append(st.result.Warnings, err)
}
