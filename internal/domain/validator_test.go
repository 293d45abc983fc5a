package domain_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"classidx.dev/pkg/classidx/internal/domain"
	m "classidx.dev/pkg/classidx/internal/model"
)

func TestIsolatedValidator_Validate(t *testing.T) {
	t.Run("clean candidates validate in a single pass", func(t *testing.T) {
		php := &fakePHP{}
		validator := newTestValidator(php, domain.ValidatorConfig{})
		candidates := newCandidates(`Acme\A`, `Acme\B`, `Acme\C`)

		outcome, err := validator.Validate(context.Background(), candidates, nil)
		require.NoError(t, err)

		assert.Equal(t, candidates.ClassMap(), outcome.Valid.ClassMap())
		assert.Equal(t, candidates.Symbols(), outcome.Valid.Symbols())
		assert.Empty(t, outcome.Errors)
		assert.Equal(t, 1, outcome.Passes)
		assert.Equal(t, 1, outcome.WorkerRuns)
	})

	t.Run("fatal symbol is excluded and the rest is retried", func(t *testing.T) {
		php := &fakePHP{classes: map[string]fakeClass{
			"B": {fatal: "syntax error, unexpected token \"}\""},
		}}
		validator := newTestValidator(php, domain.ValidatorConfig{})

		outcome, err := validator.Validate(context.Background(), newCandidates("A", "B", "C"), nil)
		require.NoError(t, err)

		assert.Equal(t, map[string]m.Path{"A": "/src/A.php", "C": "/src/C.php"}, outcome.Valid.ClassMap())
		require.Contains(t, outcome.Errors, "B")
		assert.Len(t, outcome.Errors, 1)
		assert.Contains(t, outcome.Errors["B"], "syntax error")
		assert.Contains(t, outcome.Errors["B"], "/src/B.php")
		assert.Equal(t, 2, outcome.Passes)
		assert.Equal(t, 3, outcome.WorkerRuns)

		runs := php.Runs()
		require.Len(t, runs, 3)
		assert.Equal(t, []string{"A", "B", "C"}, runs[0].Symbols)
		assert.Equal(t, []string{"C"}, runs[1].Symbols)
		assert.Equal(t, []string{"A", "C"}, runs[2].Symbols)
	})

	t.Run("symbol broken only by a preceding failure stays valid", func(t *testing.T) {
		php := &fakePHP{classes: map[string]fakeClass{
			"A": {poisons: "B", throws: "boot failed"},
		}}
		validator := newTestValidator(php, domain.ValidatorConfig{})

		outcome, err := validator.Validate(context.Background(), newCandidates("A", "B", "C"), nil)
		require.NoError(t, err)

		assert.Equal(t, []string{"B", "C"}, outcome.Valid.Symbols())
		assert.Equal(t, map[string]string{"A": "RuntimeException: boot failed in /src/A.php:3"}, outcome.Errors)

		runs := php.Runs()
		require.GreaterOrEqual(t, len(runs), 2)
		assert.Equal(t, []string{"B", "C"}, runs[1].Symbols, "symbols after a failure run in a fresh worker")
	})

	t.Run("dependents of excluded symbols fail in a later pass", func(t *testing.T) {
		php := &fakePHP{classes: map[string]fakeClass{
			"B": {notice: "Deprecated: B is deprecated, use A instead"},
			"C": {requires: []string{"B"}},
		}}
		validator := newTestValidator(php, domain.ValidatorConfig{})

		outcome, err := validator.Validate(context.Background(), newCandidates("A", "B", "C"), nil)
		require.NoError(t, err)

		assert.Equal(t, []string{"A"}, outcome.Valid.Symbols())
		assert.Equal(t, "Deprecated: B is deprecated, use A instead", outcome.Errors["B"])
		assert.Contains(t, outcome.Errors["C"], `Class "B" not found`)
		assert.Equal(t, 3, outcome.Passes)
	})

	t.Run("exceeding max passes is an infrastructure error", func(t *testing.T) {
		php := &fakePHP{classes: map[string]fakeClass{
			"B": {notice: "Deprecated: B is deprecated"},
			"C": {requires: []string{"B"}},
		}}
		validator := newTestValidator(php, domain.ValidatorConfig{MaxPasses: 2})

		_, err := validator.Validate(context.Background(), newCandidates("A", "B", "C"), nil)
		require.Error(t, err)

		assert.ErrorIs(t, err, domain.ErrNoFixedPoint)
		assert.True(t, domain.IsInfrastructure(err))
	})

	t.Run("batches run in parallel and merge their failures", func(t *testing.T) {
		symbols := make([]string, 10)
		for i := range symbols {
			symbols[i] = fmt.Sprintf("S%02d", i)
		}

		php := &fakePHP{classes: map[string]fakeClass{
			"S03": {fatal: "Cannot redeclare helper()"},
			"S07": {fatal: "Allowed memory size exhausted"},
		}}
		validator := newTestValidator(php, domain.ValidatorConfig{Parallel: 4, BatchSize: 3})

		var (
			mu     sync.Mutex
			events []m.ValidationProgress
		)

		outcome, err := validator.Validate(context.Background(), newCandidates(symbols...), func(progress m.ValidationProgress) {
			mu.Lock()
			defer mu.Unlock()
			events = append(events, progress)
		})
		require.NoError(t, err)

		assert.Equal(t, 8, outcome.Valid.Len())
		assert.Len(t, outcome.Errors, 2)
		assert.Contains(t, outcome.Errors, "S03")
		assert.Contains(t, outcome.Errors, "S07")
		assert.Equal(t, 2, outcome.Passes)
		assert.Equal(t, 9, outcome.WorkerRuns)

		var finishedFirstPass bool
		for _, event := range events {
			if event.Pass == 1 && event.Attempted == 10 && event.Total == 10 {
				finishedFirstPass = true
			}
		}
		assert.True(t, finishedFirstPass, "progress reports the whole first pass: %+v", events)
	})

	t.Run("progress counts attempts per pass and exclusions overall", func(t *testing.T) {
		php := &fakePHP{classes: map[string]fakeClass{"B": {fatal: "boom"}}}
		validator := newTestValidator(php, domain.ValidatorConfig{})

		var events []m.ValidationProgress

		_, err := validator.Validate(context.Background(), newCandidates("A", "B", "C"), func(progress m.ValidationProgress) {
			events = append(events, progress)
		})
		require.NoError(t, err)

		assert.Equal(t, []m.ValidationProgress{
			{Pass: 1, Attempted: 2, Total: 3, Excluded: 1, WorkerRuns: 1},
			{Pass: 1, Attempted: 3, Total: 3, Excluded: 1, WorkerRuns: 2},
			{Pass: 2, Attempted: 2, Total: 2, Excluded: 1, WorkerRuns: 3},
		}, events)
	})

	t.Run("timed out symbol is excluded with the timeout", func(t *testing.T) {
		php := &fakePHP{classes: map[string]fakeClass{"B": {hang: true}}}
		validator := newTestValidator(php, domain.ValidatorConfig{})

		outcome, err := validator.Validate(context.Background(), newCandidates("A", "B", "C"), nil)
		require.NoError(t, err)

		assert.Equal(t, []string{"A", "C"}, outcome.Valid.Symbols())
		assert.Equal(t, "worker timed out after 1s", outcome.Errors["B"])
	})

	t.Run("missing startup line is an infrastructure error", func(t *testing.T) {
		php := &fakePHP{noStartup: true}
		validator := newTestValidator(php, domain.ValidatorConfig{})

		_, err := validator.Validate(context.Background(), newCandidates("A"), nil)
		require.Error(t, err)

		assert.ErrorIs(t, err, domain.ErrMissingStartup)

		var infra *domain.InfrastructureError
		require.True(t, errors.As(err, &infra))
		assert.Equal(t, "validate-p1-b0-r1", infra.Worker)
		assert.Contains(t, infra.Diagnostic(), "Could not open input file")
	})

	t.Run("worker deciding nothing is an infrastructure error", func(t *testing.T) {
		php := &fakePHP{crashAfterStartup: true}
		validator := newTestValidator(php, domain.ValidatorConfig{})

		_, err := validator.Validate(context.Background(), newCandidates("A", "B"), nil)

		assert.ErrorIs(t, err, domain.ErrNoProgress)
		assert.True(t, domain.IsInfrastructure(err))
	})

	t.Run("empty candidates spawn no worker", func(t *testing.T) {
		php := &fakePHP{}
		validator := newTestValidator(php, domain.ValidatorConfig{})

		outcome, err := validator.Validate(context.Background(), m.NewCandidateIndex(), nil)
		require.NoError(t, err)

		assert.Equal(t, 0, outcome.Valid.Len())
		assert.Empty(t, outcome.Errors)
		assert.Empty(t, php.Runs())
	})

	t.Run("cancelled context stops validation", func(t *testing.T) {
		php := &fakePHP{}
		validator := newTestValidator(php, domain.ValidatorConfig{})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := validator.Validate(ctx, newCandidates("A"), nil)

		assert.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, php.Runs())
	})
}
