package controller

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "classidx.dev/pkg/classidx/internal/model"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	doneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	failedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	pendingStyle = lipgloss.NewStyle().Faint(true)
	detailStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).PaddingLeft(4)
)

// TUI implements UI using Bubble Tea for a live stage list. Summaries are
// printed once the program has exited.
type TUI struct {
	output io.Writer

	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
	final   strings.Builder
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the Bubble Tea program.
func (t *TUI) Start(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.program = tea.NewProgram(
		newBuildModel(),
		tea.WithOutput(t.output),
		tea.WithInput(nil),
		tea.WithoutSignalHandler(),
	)
	t.done = make(chan struct{})

	go func(program *tea.Program, done chan struct{}) {
		defer close(done)

		if _, err := program.Run(); err != nil {
			slog.Error("TUI program stopped", "error", err)
		}
	}(t.program, t.done)

	return nil
}

// Close stops the program and prints the buffered summaries.
func (t *TUI) Close(_ context.Context) {
	t.mu.Lock()
	program, done := t.program, t.done
	t.program = nil
	t.mu.Unlock()

	if program != nil {
		program.Send(doneMsg{})
		<-done
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	_, _ = fmt.Fprint(t.output, t.final.String())
	t.final.Reset()
}

// DisplayStage marks stage as running.
func (t *TUI) DisplayStage(_ context.Context, stage m.Stage) {
	t.send(stageMsg{stage: stage})
}

// DisplayScanSummary shows the scan counters below the scan stage.
func (t *TUI) DisplayScanSummary(_ context.Context, summary m.ScanSummary) {
	t.send(scanMsg{summary: summary})
}

// DisplayValidationProgress updates the validation progress bar.
func (t *TUI) DisplayValidationProgress(_ context.Context, p m.ValidationProgress) {
	t.send(progressMsg{progress: p})
}

// DisplayChanges queues the class map diff.
func (t *TUI) DisplayChanges(_ context.Context, changes []m.ClassMapChange) {
	diff, err := renderChanges(changes)
	if err != nil {
		diff = fmt.Sprintf("cannot render changes: %v\n", err)
	}

	t.print(diff)
}

// DisplayBuildResult queues the summary tables.
func (t *TUI) DisplayBuildResult(_ context.Context, result m.BuildResult) {
	t.print("\n" + renderBuildResult(result))
}

// DisplayFailure marks stage as failed and queues the diagnostic.
func (t *TUI) DisplayFailure(_ context.Context, stage m.Stage, err error) {
	t.send(failureMsg{stage: stage})
	t.print(renderFailure(stage, err))
}

// DisplayClassIndex prints a persisted class index.
func (t *TUI) DisplayClassIndex(_ context.Context, path m.Path, index m.ClassIndex) {
	t.print(titleStyle.Render("Class index") + "\n" + renderClassIndex(path, index))
}

func (t *TUI) send(msg tea.Msg) {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program != nil {
		program.Send(msg)
	}
}

// print buffers text while the program runs and writes it directly otherwise.
func (t *TUI) print(text string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.program != nil {
		t.final.WriteString(text)
		return
	}

	_, _ = fmt.Fprint(t.output, text)
}

type (
	stageMsg    struct{ stage m.Stage }
	scanMsg     struct{ summary m.ScanSummary }
	progressMsg struct{ progress m.ValidationProgress }
	failureMsg  struct{ stage m.Stage }
	doneMsg     struct{}
)

type stageState int

const (
	statePending stageState = iota
	stateRunning
	stateDone
	stateFailed
)

// buildModel represents the Bubble Tea model for a running build.
type buildModel struct {
	spinner    spinner.Model
	progress   progress.Model
	stages     []m.Stage
	states     map[m.Stage]stageState
	scan       *m.ScanSummary
	validation *m.ValidationProgress
	quitting   bool
}

func newBuildModel() buildModel {
	states := make(map[m.Stage]stageState, len(m.Stages))
	for _, stage := range m.Stages {
		states[stage] = statePending
	}

	return buildModel{
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot)),
		progress: progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
		stages:   m.Stages,
		states:   states,
	}
}

func (bm buildModel) Init() tea.Cmd {
	return bm.spinner.Tick
}

func (bm buildModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stageMsg:
		bm.finishRunning()
		bm.states[msg.stage] = stateRunning

		return bm, nil

	case scanMsg:
		summary := msg.summary
		bm.scan = &summary

		return bm, nil

	case progressMsg:
		current := msg.progress
		bm.validation = &current

		return bm, nil

	case failureMsg:
		bm.states[msg.stage] = stateFailed

		return bm, nil

	case doneMsg:
		bm.finishRunning()
		bm.quitting = true

		return bm, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd

		bm.spinner, cmd = bm.spinner.Update(msg)

		return bm, cmd
	}

	return bm, nil
}

func (bm buildModel) finishRunning() {
	for stage, state := range bm.states {
		if state == stateRunning {
			bm.states[stage] = stateDone
		}
	}
}

func (bm buildModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("classidx build"))
	b.WriteString("\n\n")

	for _, stage := range bm.stages {
		switch bm.states[stage] {
		case stateRunning:
			b.WriteString(bm.spinner.View() + " " + string(stage))
		case stateDone:
			b.WriteString(doneStyle.Render("✓ " + string(stage)))
		case stateFailed:
			b.WriteString(failedStyle.Render("✗ " + string(stage)))
		default:
			b.WriteString(pendingStyle.Render("· " + string(stage)))
		}

		b.WriteString("\n")
		bm.writeStageDetail(&b, stage)
	}

	return b.String()
}

func (bm buildModel) writeStageDetail(b *strings.Builder, stage m.Stage) {
	switch {
	case stage == m.StageScan && bm.scan != nil:
		b.WriteString(detailStyle.Render(fmt.Sprintf("%d candidates, %d parsed, %d cached",
			bm.scan.Candidates, bm.scan.Parsed, bm.scan.Reused)))
		b.WriteString("\n")
	case stage == m.StageValidate && bm.validation != nil && bm.validation.Total > 0:
		p := bm.validation
		percent := float64(p.Attempted) / float64(p.Total)

		b.WriteString(detailStyle.Render(fmt.Sprintf("pass %d  %s  %d/%d  excluded %d",
			p.Pass, bm.progress.ViewAs(percent), p.Attempted, p.Total, p.Excluded)))
		b.WriteString("\n")
	}
}
