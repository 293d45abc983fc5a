package domain

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrReentrant is returned by Build when called from inside a running build.
	ErrReentrant = errors.New("class index build already in progress")
	// ErrMissingStartup means a worker never printed its startup token.
	ErrMissingStartup = errors.New("worker did not start")
	// ErrProtocol means a worker printed something the protocol does not allow.
	ErrProtocol = errors.New("worker protocol violation")
	// ErrNoProgress means a worker run attempted no symbol at all.
	ErrNoProgress = errors.New("worker made no progress")
	// ErrNoFixedPoint means validation kept excluding symbols past the pass limit.
	ErrNoFixedPoint = errors.New("validation did not reach a fixed point")
	// ErrWorkerFailed means a worker exited abnormally where it must not.
	ErrWorkerFailed = errors.New("worker failed")
)

// InfrastructureError is a fatal failure of the build machinery, as opposed to
// a symbol that fails to load. Detail holds the raw worker diagnostic.
type InfrastructureError struct {
	Stage  string
	Worker string
	Detail string
	Err    error
}

func (e *InfrastructureError) Error() string {
	msg := e.Stage + ": infrastructure failure"
	if e.Worker != "" {
		msg += fmt.Sprintf(" in worker %s", e.Worker)
	}

	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// Diagnostic returns the raw worker output attached to the failure.
func (e *InfrastructureError) Diagnostic() string {
	return e.Detail
}

// IsInfrastructure reports whether err is or wraps an InfrastructureError.
func IsInfrastructure(err error) bool {
	var infraErr *InfrastructureError

	return errors.As(err, &infraErr)
}

type runStateKey struct{}

// WithRunState marks ctx as belonging to a running build.
func WithRunState(ctx context.Context) context.Context {
	return context.WithValue(ctx, runStateKey{}, true)
}

// IsRunning reports whether ctx belongs to a running build.
func IsRunning(ctx context.Context) bool {
	running, _ := ctx.Value(runStateKey{}).(bool)

	return running
}
