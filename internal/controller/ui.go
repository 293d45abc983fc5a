// Package controller provides output adapters for displaying class index builds.
package controller

import (
	"context"
	"errors"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "classidx.dev/pkg/classidx/internal/model"
)

// UI defines the interface for reporting a build to the user.
// Implementations can use different output methods (simple text, TUI, etc).
// Display methods may be called from several goroutines.
type UI interface {
	Start(ctx context.Context) error
	Close(ctx context.Context)
	DisplayStage(ctx context.Context, stage m.Stage)
	DisplayScanSummary(ctx context.Context, summary m.ScanSummary)
	DisplayValidationProgress(ctx context.Context, progress m.ValidationProgress)
	DisplayChanges(ctx context.Context, changes []m.ClassMapChange)
	DisplayBuildResult(ctx context.Context, result m.BuildResult)
	DisplayFailure(ctx context.Context, stage m.Stage, err error)
	DisplayClassIndex(ctx context.Context, path m.Path, index m.ClassIndex)
}

// NewUI returns the interactive TUI when tty is set and the line based
// SimpleUI otherwise.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is an interactive terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}

// diagnoser is implemented by errors carrying raw worker output.
type diagnoser interface {
	Diagnostic() string
}

func errorDiagnostic(err error) string {
	var d diagnoser
	if errors.As(err, &d) {
		return d.Diagnostic()
	}

	return ""
}
