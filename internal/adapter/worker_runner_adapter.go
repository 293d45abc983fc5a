package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"time"

	m "classidx.dev/pkg/classidx/internal/model"
)

// RunningEnvVar is set in the environment of every worker so tooling started
// from inside a worker can detect that an index build is already in progress.
const RunningEnvVar = "CLASSIDX_RUNNING"

// defaultWaitDelay bounds how long Run waits for output pipes held open by
// grandchildren after the worker itself exited or was killed.
const defaultWaitDelay = 5 * time.Second

// ErrWorkerLaunch is returned when a worker process could not be started.
var ErrWorkerLaunch = errors.New("worker failed to start")

// WorkerRunnerAdapter runs disposable worker processes.
type WorkerRunnerAdapter interface {
	// Run starts the worker described by job and blocks until it exited and
	// its output was fully drained. A non-zero exit status is not an error;
	// an error means the worker could not be started or ctx was cancelled.
	Run(ctx context.Context, job m.WorkerJob) (m.WorkerOutput, error)
}

// LocalWorkerRunnerAdapter provides a concrete implementation using os/exec.
type LocalWorkerRunnerAdapter struct {
	waitDelay time.Duration
}

// NewLocalWorkerRunnerAdapter constructs a LocalWorkerRunnerAdapter.
func NewLocalWorkerRunnerAdapter() *LocalWorkerRunnerAdapter {
	return &LocalWorkerRunnerAdapter{
		waitDelay: defaultWaitDelay,
	}
}

// Run executes job.Command, capturing stdout and stderr.
func (a *LocalWorkerRunnerAdapter) Run(ctx context.Context, job m.WorkerJob) (m.WorkerOutput, error) {
	if len(job.Command) == 0 {
		return m.WorkerOutput{}, fmt.Errorf("%w: %s: empty command", ErrWorkerLaunch, job.Name)
	}

	if err := ctx.Err(); err != nil {
		return m.WorkerOutput{}, err
	}

	runCtx := ctx
	if job.Timeout > 0 {
		var cancel context.CancelFunc

		runCtx, cancel = context.WithTimeout(ctx, job.Timeout)
		defer cancel()
	}

	// #nosec G204 - the worker command line comes from configuration
	cmd := exec.CommandContext(runCtx, job.Command[0], job.Command[1:]...)
	cmd.Env = append(os.Environ(), RunningEnvVar+"=1")
	cmd.Env = append(cmd.Env, job.Env...)
	cmd.WaitDelay = a.waitDelay

	if job.Dir != "" {
		cmd.Dir = string(job.Dir)
	}

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	if job.MergeStderr {
		cmd.Stderr = &stdout
	} else {
		cmd.Stderr = &stderr
	}

	slog.Debug("Starting worker", "worker", job.Name, "command", job.Command[0], "args", len(job.Command)-1)

	start := time.Now()
	err := cmd.Run()

	output := m.WorkerOutput{
		Stdout:   stdout.Bytes(),
		Stderr:   stderr.Bytes(),
		ExitCode: -1,
		Duration: time.Since(start),
	}

	if cmd.ProcessState != nil {
		output.ExitCode = cmd.ProcessState.ExitCode()
	}

	if ctx.Err() != nil {
		slog.Warn("Worker interrupted", "worker", job.Name, "error", ctx.Err())
		return output, ctx.Err()
	}

	if runCtx.Err() != nil {
		output.TimedOut = true
		slog.Warn("Worker timed out", "worker", job.Name, "timeout", job.Timeout)

		return output, nil
	}

	if errors.Is(err, exec.ErrWaitDelay) {
		slog.Warn("Worker left output pipes open", "worker", job.Name)
		return output, nil
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			slog.Debug("Worker exited with non-zero status", "worker", job.Name, "exitCode", output.ExitCode)
			return output, nil
		}

		slog.Error("Failed to start worker", "worker", job.Name, "error", err)

		return output, fmt.Errorf("%w: %s: %w", ErrWorkerLaunch, job.Name, err)
	}

	slog.Debug("Worker finished", "worker", job.Name, "duration", output.Duration)

	return output, nil
}
