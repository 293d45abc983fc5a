package model

import "time"

// WorkerJob describes one disposable worker process invocation.
type WorkerJob struct {
	// Name identifies the invocation in logs and errors (e.g. "validate#3").
	Name string
	// Command is the executable followed by its arguments.
	Command []string
	// Env is appended to the inherited environment.
	Env []string
	// Dir is the working directory (empty = current).
	Dir Path
	// Timeout kills the worker when exceeded (0 = no timeout).
	Timeout time.Duration
	// MergeStderr interleaves stderr into Stdout, like a shell 2>&1.
	MergeStderr bool
}

// WorkerOutput is what a finished worker left behind.
type WorkerOutput struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
	TimedOut bool
	Duration time.Duration
}
