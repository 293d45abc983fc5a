package domain

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"classidx.dev/pkg/classidx/internal/adapter"
	m "classidx.dev/pkg/classidx/internal/model"
)

const validateStage = string(m.StageValidate)

// ValidatorConfig tunes how validation work is spread over workers.
type ValidatorConfig struct {
	// Parallel bounds the number of concurrent workers (0 = 1).
	Parallel int
	// BatchSize splits a pass into batches of that many symbols (0 = one batch).
	BatchSize int
	// MaxPasses bounds the fixed-point loop (0 = candidate count + 1).
	MaxPasses int
}

// ProgressFunc receives validation progress. It may be called concurrently.
type ProgressFunc func(m.ValidationProgress)

// IsolatedValidator confirms which candidates load without a fatal error.
type IsolatedValidator interface {
	// Validate repeats passes over the remaining candidates, excluding the
	// failing ones, until a pass excludes nothing. onProgress may be nil.
	Validate(ctx context.Context, candidates *m.CandidateIndex, onProgress ProgressFunc) (m.ValidationOutcome, error)
}

type isolatedValidator struct {
	fs     adapter.SourceFSAdapter
	runner adapter.WorkerRunnerAdapter
	jobs   adapter.WorkerJobBuilder
	config ValidatorConfig
}

// NewIsolatedValidator constructs an IsolatedValidator running workers built
// by jobs through runner.
func NewIsolatedValidator(
	fs adapter.SourceFSAdapter,
	runner adapter.WorkerRunnerAdapter,
	jobs adapter.WorkerJobBuilder,
	config ValidatorConfig,
) IsolatedValidator {
	return &isolatedValidator{
		fs:     fs,
		runner: runner,
		jobs:   jobs,
		config: config,
	}
}

// validation holds the state of one Validate call.
type validation struct {
	*isolatedValidator
	workspace  m.Path
	onProgress ProgressFunc

	mu          sync.Mutex
	workerRuns  int
	currentPass int
	attempted   int
	total       int
	excluded    int
}

func (v *isolatedValidator) Validate(ctx context.Context, candidates *m.CandidateIndex, onProgress ProgressFunc) (m.ValidationOutcome, error) {
	outcome := m.ValidationOutcome{
		Valid:  m.NewCandidateIndex(),
		Errors: make(map[string]string),
	}

	if candidates.Len() == 0 {
		return outcome, nil
	}

	workspace, err := v.fs.CreateTempDir(ctx, "classidx-validate-*")
	if err != nil {
		slog.Error("Failed to create validation workspace", "error", err)
		return outcome, &InfrastructureError{Stage: validateStage, Err: err}
	}

	defer func() {
		if err := v.fs.RemoveAll(context.WithoutCancel(ctx), workspace); err != nil {
			slog.Error("Failed to remove validation workspace", "path", workspace, "error", err)
		}
	}()

	if err := v.jobs.Prepare(ctx, workspace); err != nil {
		slog.Error("Failed to prepare validation workspace", "path", workspace, "error", err)
		return outcome, &InfrastructureError{Stage: validateStage, Err: err}
	}

	maxPasses := v.config.MaxPasses
	if maxPasses <= 0 {
		maxPasses = candidates.Len() + 1
	}

	run := &validation{isolatedValidator: v, workspace: workspace, onProgress: onProgress}
	current := candidates

	for {
		if outcome.Passes == maxPasses {
			outcome.WorkerRuns = run.workerRuns
			return outcome, &InfrastructureError{
				Stage:  validateStage,
				Detail: fmt.Sprintf("%d symbols still failing after %d passes", len(outcome.Errors), maxPasses),
				Err:    ErrNoFixedPoint,
			}
		}

		outcome.Passes++

		failures, err := run.pass(ctx, outcome.Passes, current)
		if err != nil {
			outcome.WorkerRuns = run.workerRuns
			return outcome, err
		}

		slog.Debug("Validation pass finished", "pass", outcome.Passes, "symbols", current.Len(), "excluded", len(failures))

		if len(failures) == 0 {
			break
		}

		for symbol, detail := range failures {
			outcome.Errors[symbol] = detail
		}

		current = current.Without(failures)
	}

	outcome.Valid = current
	outcome.WorkerRuns = run.workerRuns

	return outcome, nil
}

// pass attempts every symbol of current once and returns the failures.
func (r *validation) pass(ctx context.Context, pass int, current *m.CandidateIndex) (map[string]string, error) {
	symbols := current.Symbols()
	classMap := current.ClassMap()

	r.mu.Lock()
	r.currentPass, r.attempted, r.total = pass, 0, len(symbols)
	r.mu.Unlock()

	failures := make(map[string]string)

	var failuresMutex sync.Mutex

	group, groupCtx := errgroup.WithContext(ctx)

	parallel := r.config.Parallel
	if parallel <= 0 {
		parallel = 1
	}

	group.SetLimit(parallel)

	for index, batch := range splitBatches(symbols, r.config.BatchSize) {
		group.Go(func() error {
			batchFailures, err := r.batch(groupCtx, pass, index, classMap, batch)
			if err != nil {
				return err
			}

			failuresMutex.Lock()
			for symbol, detail := range batchFailures {
				failures[symbol] = detail
			}
			failuresMutex.Unlock()

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}

		return nil, err
	}

	return failures, nil
}

// batch runs workers over symbols until each one was decided, starting a
// fresh worker after every failure.
func (r *validation) batch(ctx context.Context, pass, index int, classMap map[string]m.Path, symbols []string) (map[string]string, error) {
	failures := make(map[string]string)
	remaining := symbols

	for attempt := 1; len(remaining) > 0; attempt++ {
		name := fmt.Sprintf("validate-p%d-b%d-r%d", pass, index, attempt)

		result, err := r.runWorker(ctx, name, classMap, remaining)
		if err != nil {
			return nil, err
		}

		if result.Failed != "" {
			failures[result.Failed] = result.Detail
			slog.Debug("Symbol failed to load", "symbol", result.Failed, "worker", name, "detail", result.Detail)
		}

		remaining = remaining[result.Attempted():]

		r.report(result.Attempted(), result.Failed != "")
	}

	return failures, nil
}

func (r *validation) runWorker(ctx context.Context, name string, classMap map[string]m.Path, symbols []string) (StreamResult, error) {
	job, err := r.jobs.Build(ctx, r.workspace, name, adapter.ValidateScript, adapter.WorkerPayload{
		ClassMap: classMap,
		Symbols:  symbols,
	})
	if err != nil {
		slog.Error("Failed to build validation job", "worker", name, "error", err)
		return StreamResult{}, &InfrastructureError{Stage: validateStage, Worker: name, Err: err}
	}

	r.mu.Lock()
	r.workerRuns++
	r.mu.Unlock()

	output, err := r.runner.Run(ctx, job)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return StreamResult{}, ctxErr
		}

		slog.Error("Failed to run validation worker", "worker", name, "error", err)

		return StreamResult{}, &InfrastructureError{Stage: validateStage, Worker: name, Detail: string(output.Stdout), Err: err}
	}

	result, err := ParseValidationStream(output, symbols, job.Timeout)
	if err != nil {
		slog.Error("Failed to parse validation output", "worker", name, "exit_code", output.ExitCode, "error", err)
		return result, &InfrastructureError{Stage: validateStage, Worker: name, Detail: string(output.Stdout), Err: err}
	}

	if result.Attempted() == 0 {
		slog.Error("Validation worker made no progress", "worker", name, "exit_code", output.ExitCode, "timed_out", output.TimedOut)
		return result, &InfrastructureError{Stage: validateStage, Worker: name, Detail: string(output.Stdout), Err: ErrNoProgress}
	}

	return result, nil
}

func (r *validation) report(attempted int, failed bool) {
	if r.onProgress == nil {
		return
	}

	r.mu.Lock()
	r.attempted += attempted

	if failed {
		r.excluded++
	}

	progress := m.ValidationProgress{
		Pass:       r.currentPass,
		Attempted:  r.attempted,
		Total:      r.total,
		Excluded:   r.excluded,
		WorkerRuns: r.workerRuns,
	}
	r.mu.Unlock()

	r.onProgress(progress)
}

func splitBatches(symbols []string, size int) [][]string {
	if size <= 0 || size >= len(symbols) {
		return [][]string{symbols}
	}

	batches := make([][]string, 0, (len(symbols)+size-1)/size)
	for start := 0; start < len(symbols); start += size {
		end := min(start+size, len(symbols))
		batches = append(batches, symbols[start:end])
	}

	return batches
}
