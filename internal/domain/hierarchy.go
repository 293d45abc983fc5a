package domain

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"

	"classidx.dev/pkg/classidx/internal/adapter"
	m "classidx.dev/pkg/classidx/internal/model"
)

const hierarchyStage = string(m.StageHierarchy)

// HierarchyExtractor reads supertypes and interfaces of validated symbols.
type HierarchyExtractor interface {
	Extract(ctx context.Context, valid *m.CandidateIndex) (m.HierarchyIndex, error)
}

type hierarchyExtractor struct {
	fs     adapter.SourceFSAdapter
	runner adapter.WorkerRunnerAdapter
	jobs   adapter.WorkerJobBuilder
}

// NewHierarchyExtractor constructs a HierarchyExtractor.
func NewHierarchyExtractor(fs adapter.SourceFSAdapter, runner adapter.WorkerRunnerAdapter, jobs adapter.WorkerJobBuilder) HierarchyExtractor {
	return &hierarchyExtractor{fs: fs, runner: runner, jobs: jobs}
}

type hierarchyPayload map[string]struct {
	Parents    []string `json:"parents"`
	Interfaces []string `json:"interfaces"`
}

// Extract runs a single reflection worker over every valid symbol. Any
// diagnostic from the worker is fatal since valid symbols are known to load.
func (h *hierarchyExtractor) Extract(ctx context.Context, valid *m.CandidateIndex) (m.HierarchyIndex, error) {
	index := make(m.HierarchyIndex, valid.Len())
	if valid.Len() == 0 {
		return index, nil
	}

	workspace, err := h.fs.CreateTempDir(ctx, "classidx-hierarchy-*")
	if err != nil {
		slog.Error("Failed to create hierarchy workspace", "error", err)
		return nil, &InfrastructureError{Stage: hierarchyStage, Err: err}
	}

	defer func() {
		if err := h.fs.RemoveAll(context.WithoutCancel(ctx), workspace); err != nil {
			slog.Error("Failed to remove hierarchy workspace", "path", workspace, "error", err)
		}
	}()

	if err := h.jobs.Prepare(ctx, workspace); err != nil {
		return nil, &InfrastructureError{Stage: hierarchyStage, Err: err}
	}

	const name = "reflect"

	symbols := valid.Symbols()

	job, err := h.jobs.Build(ctx, workspace, name, adapter.ReflectScript, adapter.WorkerPayload{
		ClassMap: valid.ClassMap(),
		Symbols:  symbols,
	})
	if err != nil {
		return nil, &InfrastructureError{Stage: hierarchyStage, Worker: name, Err: err}
	}

	output, err := h.runner.Run(ctx, job)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}

		slog.Error("Failed to run hierarchy worker", "error", err)

		return nil, &InfrastructureError{Stage: hierarchyStage, Worker: name, Detail: string(output.Stderr), Err: err}
	}

	if err := checkHierarchyOutput(output, job); err != nil {
		slog.Error("Hierarchy worker failed", "exit_code", output.ExitCode, "timed_out", output.TimedOut, "error", err)
		return nil, &InfrastructureError{Stage: hierarchyStage, Worker: name, Detail: diagnostic(output), Err: err}
	}

	var payload hierarchyPayload
	if err := json.Unmarshal(output.Stdout, &payload); err != nil {
		slog.Error("Failed to decode hierarchy payload", "error", err)
		return nil, &InfrastructureError{Stage: hierarchyStage, Worker: name, Detail: string(output.Stdout), Err: err}
	}

	for _, symbol := range symbols {
		entry, ok := payload[symbol]
		if !ok {
			return nil, &InfrastructureError{
				Stage:  hierarchyStage,
				Worker: name,
				Detail: string(output.Stdout),
				Err:    fmt.Errorf("payload has no entry for %q", symbol),
			}
		}

		index[symbol] = m.HierarchyRecord{
			Symbol:     symbol,
			Supertypes: append([]string{}, entry.Parents...),
			Interfaces: sortedUnique(entry.Interfaces),
		}
	}

	return index, nil
}

func checkHierarchyOutput(output m.WorkerOutput, job m.WorkerJob) error {
	switch {
	case output.TimedOut:
		return fmt.Errorf("%w: timed out after %s", ErrWorkerFailed, job.Timeout)
	case len(bytes.TrimSpace(output.Stderr)) > 0:
		return fmt.Errorf("%w: wrote to stderr", ErrWorkerFailed)
	case output.ExitCode != 0:
		return fmt.Errorf("%w: exit code %d", ErrWorkerFailed, output.ExitCode)
	}

	return nil
}

func diagnostic(output m.WorkerOutput) string {
	if len(bytes.TrimSpace(output.Stderr)) > 0 {
		return string(output.Stderr)
	}

	return string(output.Stdout)
}

func sortedUnique(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]bool, len(values))

	for _, value := range values {
		if !seen[value] {
			seen[value] = true
			out = append(out, value)
		}
	}

	sort.Strings(out)

	return out
}
