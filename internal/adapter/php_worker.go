package adapter

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"time"

	m "classidx.dev/pkg/classidx/internal/model"
)

// WorkerScript names one of the embedded worker scripts.
type WorkerScript string

const (
	// ValidateScript probes symbols and speaks the sentinel protocol.
	ValidateScript WorkerScript = "validate.php"
	// ReflectScript prints the hierarchy payload as JSON.
	ReflectScript WorkerScript = "reflect.php"
)

// DefaultPHPBinary is the interpreter used when none is configured.
const DefaultPHPBinary = "php"

//go:embed worker/validate.php
var validateScript []byte

//go:embed worker/reflect.php
var reflectScript []byte

var workerScripts = map[WorkerScript][]byte{
	ValidateScript: validateScript,
	ReflectScript:  reflectScript,
}

// DefaultPHPArgs returns the ini overrides passed to every worker.
func DefaultPHPArgs() []string {
	return []string{
		"-d", "xdebug.mode=off",
		"-d", "display_errors=stdout",
		"-d", "opcache.revalidate_freq=0",
	}
}

// WorkerPayload is the job file handed to a worker script.
type WorkerPayload struct {
	Bootstrap string            `json:"bootstrap"`
	ClassMap  map[string]m.Path `json:"classMap"`
	Symbols   []string          `json:"symbols"`
}

// PHPWorkerConfig configures the PHP interpreter used for workers.
type PHPWorkerConfig struct {
	Binary string
	// Args are passed before the script path.
	Args []string
	// Bootstrap is an optional file required before probing, typically the
	// project's own autoloader.
	Bootstrap m.Path
	Timeout   time.Duration
}

// WorkerJobBuilder turns a payload into a runnable worker job.
type WorkerJobBuilder interface {
	// Prepare installs the worker scripts into workspace.
	Prepare(ctx context.Context, workspace m.Path) error
	// Build writes the payload into workspace and returns the job running
	// script over it.
	Build(ctx context.Context, workspace m.Path, name string, script WorkerScript, payload WorkerPayload) (m.WorkerJob, error)
}

// PHPWorkerJobBuilder builds jobs for the PHP CLI.
type PHPWorkerJobBuilder struct {
	fs     SourceFSAdapter
	config PHPWorkerConfig
}

// NewPHPWorkerJobBuilder constructs a PHPWorkerJobBuilder.
func NewPHPWorkerJobBuilder(fs SourceFSAdapter, config PHPWorkerConfig) *PHPWorkerJobBuilder {
	if config.Binary == "" {
		config.Binary = DefaultPHPBinary
	}

	if config.Args == nil {
		config.Args = DefaultPHPArgs()
	}

	return &PHPWorkerJobBuilder{fs: fs, config: config}
}

// Prepare implements WorkerJobBuilder.
func (b *PHPWorkerJobBuilder) Prepare(ctx context.Context, workspace m.Path) error {
	for script, content := range workerScripts {
		path := b.fs.JoinPath(ctx, string(workspace), string(script))
		if err := b.fs.WriteFile(ctx, path, content, 0o600); err != nil {
			return fmt.Errorf("failed to install %s: %w", script, err)
		}
	}

	return nil
}

// Build implements WorkerJobBuilder.
func (b *PHPWorkerJobBuilder) Build(ctx context.Context, workspace m.Path, name string, script WorkerScript, payload WorkerPayload) (m.WorkerJob, error) {
	if _, ok := workerScripts[script]; !ok {
		return m.WorkerJob{}, fmt.Errorf("unknown worker script %q", script)
	}

	if payload.Bootstrap == "" {
		payload.Bootstrap = string(b.config.Bootstrap)
	}

	if payload.ClassMap == nil {
		payload.ClassMap = map[string]m.Path{}
	}

	content, err := json.Marshal(payload)
	if err != nil {
		return m.WorkerJob{}, fmt.Errorf("failed to encode job %s: %w", name, err)
	}

	jobFile := b.fs.JoinPath(ctx, string(workspace), name+".json")
	if err := b.fs.WriteFile(ctx, jobFile, content, 0o600); err != nil {
		return m.WorkerJob{}, fmt.Errorf("failed to write job %s: %w", name, err)
	}

	command := make([]string, 0, len(b.config.Args)+4)
	command = append(command, b.config.Binary)
	command = append(command, b.config.Args...)

	// Errors must not leak into the JSON payload on stdout.
	if script == ReflectScript {
		command = append(command, "-d", "display_errors=stderr")
	}

	command = append(command,
		string(b.fs.JoinPath(ctx, string(workspace), string(script))),
		string(jobFile),
	)

	return m.WorkerJob{
		Name:        name,
		Command:     command,
		Timeout:     b.config.Timeout,
		MergeStderr: script == ValidateScript,
	}, nil
}
