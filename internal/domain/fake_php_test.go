package domain_test

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"classidx.dev/pkg/classidx/internal/adapter"
	"classidx.dev/pkg/classidx/internal/domain"
	m "classidx.dev/pkg/classidx/internal/model"
)

// fakeClass describes how a symbol behaves when its file is included by
// fakePHP. The zero value is a class that loads cleanly.
type fakeClass struct {
	parent     string
	interfaces []string
	// requires are autoloaded while the file is included.
	requires []string
	// fatal kills the process while the file is included.
	fatal string
	// throws raises an exception while the file is included.
	throws string
	// notice is printed when the symbol itself is probed.
	notice string
	// poisons makes a later declaration of that symbol fatal in the same
	// process.
	poisons string
	hang    bool
}

type fakeRun struct {
	Script  string
	Symbols []string
}

// fakePHP is a WorkerRunnerAdapter that reads the job files written by the
// real job builder and answers like the embedded worker scripts would.
type fakePHP struct {
	classes map[string]fakeClass

	noStartup         bool
	crashAfterStartup bool
	reflectStderr     string
	reflectOmits      string

	mu   sync.Mutex
	runs []fakeRun
}

func (f *fakePHP) Run(ctx context.Context, job m.WorkerJob) (m.WorkerOutput, error) {
	if err := ctx.Err(); err != nil {
		return m.WorkerOutput{}, err
	}

	if len(job.Command) < 2 {
		return m.WorkerOutput{}, fmt.Errorf("%w: %s", adapter.ErrWorkerLaunch, job.Name)
	}

	script := filepath.Base(job.Command[len(job.Command)-2])

	content, err := os.ReadFile(job.Command[len(job.Command)-1])
	if err != nil {
		return m.WorkerOutput{}, err
	}

	var payload adapter.WorkerPayload
	if err := json.Unmarshal(content, &payload); err != nil {
		return m.WorkerOutput{}, err
	}

	f.mu.Lock()
	f.runs = append(f.runs, fakeRun{Script: script, Symbols: payload.Symbols})
	f.mu.Unlock()

	proc := &fakeProcess{
		php:      f,
		classMap: payload.ClassMap,
		loaded:   make(map[string]bool),
		poisoned: make(map[string]bool),
	}

	if script == string(adapter.ReflectScript) {
		return proc.reflect(payload.Symbols), nil
	}

	return proc.validate(payload.Symbols, job.Timeout), nil
}

func (f *fakePHP) Runs() []fakeRun {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]fakeRun(nil), f.runs...)
}

type fakeFailure struct {
	message string
	fatal   bool
	hang    bool
}

type fakeProcess struct {
	php      *fakePHP
	classMap map[string]m.Path
	loaded   map[string]bool
	poisoned map[string]bool
}

func (p *fakeProcess) load(symbol string) *fakeFailure {
	if p.loaded[symbol] {
		return nil
	}

	file, ok := p.classMap[symbol]
	if !ok {
		return &fakeFailure{message: fmt.Sprintf("Error: Class \"%s\" not found in /app/loader.php:12", symbol)}
	}

	class := p.php.classes[symbol]

	switch {
	case class.hang:
		return &fakeFailure{hang: true}
	case class.fatal != "":
		return &fakeFailure{fatal: true, message: fmt.Sprintf("PHP Fatal error:  %s in %s on line 3", class.fatal, file)}
	case p.poisoned[symbol]:
		return &fakeFailure{fatal: true, message: fmt.Sprintf(
			"PHP Fatal error:  Cannot declare class %s, because the name is already in use in %s on line 3", symbol, file)}
	}

	if class.poisons != "" {
		p.poisoned[class.poisons] = true
	}

	if class.throws != "" {
		return &fakeFailure{message: fmt.Sprintf("RuntimeException: %s in %s:3", class.throws, file)}
	}

	deps := append([]string{}, class.requires...)
	if class.parent != "" {
		deps = append(deps, class.parent)
	}

	for _, dep := range deps {
		if failure := p.load(dep); failure != nil {
			return failure
		}
	}

	p.loaded[symbol] = true

	return nil
}

func (p *fakeProcess) validate(symbols []string, timeout time.Duration) m.WorkerOutput {
	if p.php.noStartup {
		return m.WorkerOutput{Stdout: []byte("Could not open input file: validate.php\n"), ExitCode: 1}
	}

	var out strings.Builder

	out.WriteString("FDSFZEREZ_STARTUP\n")

	if p.php.crashAfterStartup {
		return m.WorkerOutput{Stdout: []byte(out.String()), ExitCode: 139}
	}

	for _, symbol := range symbols {
		out.WriteString("X4EVDX4SEVX5_BEFOREINCLUDE\n" + symbol + "\n")

		if notice := p.php.classes[symbol].notice; notice != "" && !p.loaded[symbol] {
			out.WriteString(notice + "\n")
		}

		failure := p.load(symbol)

		switch {
		case failure == nil:
			out.WriteString("DSQRZREZRZER__AFTERINCLUDE\n")
		case failure.hang:
			return m.WorkerOutput{Stdout: []byte(out.String()), ExitCode: -1, TimedOut: true, Duration: timeout}
		case failure.fatal:
			out.WriteString(failure.message + "\n")
			return m.WorkerOutput{Stdout: []byte(out.String()), ExitCode: 255}
		default:
			out.WriteString(failure.message + "\n")
		}
	}

	out.WriteString("SQDSG4FDSE3234JK_ENDFILE\n")

	return m.WorkerOutput{Stdout: []byte(out.String())}
}

func (p *fakeProcess) reflect(symbols []string) m.WorkerOutput {
	type record struct {
		Parents    []string `json:"parents"`
		Interfaces []string `json:"interfaces"`
	}

	records := make(map[string]record, len(symbols))

	for _, symbol := range symbols {
		if failure := p.load(symbol); failure != nil {
			return m.WorkerOutput{Stderr: []byte(failure.message + "\n"), ExitCode: 255}
		}

		if symbol == p.php.reflectOmits {
			continue
		}

		rec := record{Parents: []string{}}
		rec.Interfaces = append(rec.Interfaces, p.php.classes[symbol].interfaces...)

		for parent := p.php.classes[symbol].parent; parent != ""; parent = p.php.classes[parent].parent {
			rec.Parents = append(rec.Parents, parent)
			rec.Interfaces = append(rec.Interfaces, p.php.classes[parent].interfaces...)
		}

		records[symbol] = rec
	}

	stdout, _ := json.Marshal(records)

	return m.WorkerOutput{Stdout: stdout, Stderr: []byte(p.php.reflectStderr)}
}

func newCandidates(symbols ...string) *m.CandidateIndex {
	index := m.NewCandidateIndex()
	for i, symbol := range symbols {
		index.Add(m.CandidateEntry{
			Symbol: symbol,
			File:   m.Path("/src/" + strings.ReplaceAll(symbol, `\`, "/") + ".php"),
			Mtime:  int64(1_700_000_000 + i),
		})
	}

	return index
}

func newTestJobBuilder(fs adapter.SourceFSAdapter) adapter.WorkerJobBuilder {
	return adapter.NewPHPWorkerJobBuilder(fs, adapter.PHPWorkerConfig{Timeout: time.Second})
}

func newTestValidator(php *fakePHP, config domain.ValidatorConfig) domain.IsolatedValidator {
	fs := adapter.NewLocalSourceFSAdapter()
	return domain.NewIsolatedValidator(fs, php, newTestJobBuilder(fs), config)
}

func newTestExtractor(php *fakePHP) domain.HierarchyExtractor {
	fs := adapter.NewLocalSourceFSAdapter()
	return domain.NewHierarchyExtractor(fs, php, newTestJobBuilder(fs))
}

func writePHP(t *testing.T, path, source string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}

	if err := os.WriteFile(path, []byte(source), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
