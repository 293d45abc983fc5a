package controller

import (
	"context"
	"fmt"
	"sync"

	"github.com/spf13/cobra"

	m "classidx.dev/pkg/classidx/internal/model"
)

// SimpleUI implements UI using cobra Command's output stream.
type SimpleUI struct {
	cmd *cobra.Command
	mu  sync.Mutex
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context) error {
	return ctx.Err()
}

// Close finalizes the UI.
func (s *SimpleUI) Close(_ context.Context) {}

// DisplayStage announces a stage.
func (s *SimpleUI) DisplayStage(ctx context.Context, stage m.Stage) {
	if ctx.Err() != nil {
		return
	}

	s.printf("==> %s\n", stage)
}

// DisplayScanSummary prints the scan counters.
func (s *SimpleUI) DisplayScanSummary(ctx context.Context, summary m.ScanSummary) {
	if ctx.Err() != nil {
		return
	}

	s.printf("%s", renderScanSummary(summary))
}

// DisplayValidationProgress prints one line per finished pass.
func (s *SimpleUI) DisplayValidationProgress(ctx context.Context, progress m.ValidationProgress) {
	if ctx.Err() != nil || progress.Attempted < progress.Total {
		return
	}

	s.printf("Pass %d: %d symbols checked, %d excluded, %d worker runs\n",
		progress.Pass, progress.Total, progress.Excluded, progress.WorkerRuns)
}

// DisplayChanges prints class map changes as a unified diff.
func (s *SimpleUI) DisplayChanges(ctx context.Context, changes []m.ClassMapChange) {
	if ctx.Err() != nil {
		return
	}

	diff, err := renderChanges(changes)
	if err != nil {
		s.printf("cannot render changes: %v\n", err)
		return
	}

	s.printf("%s", diff)
}

// DisplayBuildResult prints the summary tables.
func (s *SimpleUI) DisplayBuildResult(_ context.Context, result m.BuildResult) {
	s.printf("\n%s", renderBuildResult(result))
}

// DisplayFailure prints a fatal error and the worker diagnostic it carries.
func (s *SimpleUI) DisplayFailure(_ context.Context, stage m.Stage, err error) {
	s.printf("%s", renderFailure(stage, err))
}

// DisplayClassIndex prints a persisted class index.
func (s *SimpleUI) DisplayClassIndex(_ context.Context, path m.Path, index m.ClassIndex) {
	s.printf("%s", renderClassIndex(path, index))
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
