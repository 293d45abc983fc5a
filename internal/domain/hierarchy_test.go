package domain_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"classidx.dev/pkg/classidx/internal/adapter"
	adaptermocks "classidx.dev/pkg/classidx/internal/adapter/mocks"
	"classidx.dev/pkg/classidx/internal/domain"
	m "classidx.dev/pkg/classidx/internal/model"
)

func hierarchyWorld() map[string]fakeClass {
	return map[string]fakeClass{
		`Acme\Model`:  {interfaces: []string{"Stringable", "JsonSerializable"}},
		`Acme\Entity`: {parent: `Acme\Model`, interfaces: []string{"Countable", "Stringable"}},
		`Acme\User`:   {parent: `Acme\Entity`, interfaces: []string{"Countable"}},
	}
}

func TestHierarchyExtractor_Extract(t *testing.T) {
	t.Run("records supertypes nearest first and sorted interfaces", func(t *testing.T) {
		php := &fakePHP{classes: hierarchyWorld()}
		extractor := newTestExtractor(php)

		index, err := extractor.Extract(context.Background(), newCandidates(`Acme\User`, `Acme\Entity`, `Acme\Model`))
		require.NoError(t, err)

		require.Len(t, index, 3)
		assert.Equal(t, m.HierarchyRecord{
			Symbol:     `Acme\User`,
			Supertypes: []string{`Acme\Entity`, `Acme\Model`},
			Interfaces: []string{"Countable", "JsonSerializable", "Stringable"},
		}, index[`Acme\User`])
		assert.Empty(t, index[`Acme\Model`].Supertypes)
		assert.Equal(t, []string{"JsonSerializable", "Stringable"}, index[`Acme\Model`].Interfaces)

		runs := php.Runs()
		require.Len(t, runs, 1)
		assert.Equal(t, "reflect.php", runs[0].Script)
	})

	t.Run("repeated extraction yields identical records", func(t *testing.T) {
		php := &fakePHP{classes: hierarchyWorld()}
		extractor := newTestExtractor(php)
		valid := newCandidates(`Acme\User`, `Acme\Entity`, `Acme\Model`)

		first, err := extractor.Extract(context.Background(), valid)
		require.NoError(t, err)

		second, err := extractor.Extract(context.Background(), valid)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("empty index spawns no worker", func(t *testing.T) {
		php := &fakePHP{}
		extractor := newTestExtractor(php)

		index, err := extractor.Extract(context.Background(), m.NewCandidateIndex())
		require.NoError(t, err)

		assert.Empty(t, index)
		assert.Empty(t, php.Runs())
	})

	t.Run("stderr output is fatal", func(t *testing.T) {
		php := &fakePHP{classes: hierarchyWorld(), reflectStderr: "PHP Warning:  Undefined array key 3\n"}
		extractor := newTestExtractor(php)

		_, err := extractor.Extract(context.Background(), newCandidates(`Acme\Model`))
		require.Error(t, err)

		assert.ErrorIs(t, err, domain.ErrWorkerFailed)
		assert.True(t, domain.IsInfrastructure(err))
		assert.Contains(t, err.Error(), "hierarchy")
	})

	t.Run("crashing worker is fatal", func(t *testing.T) {
		php := &fakePHP{classes: map[string]fakeClass{"Broken": {fatal: "Class Base not found"}}}
		extractor := newTestExtractor(php)

		_, err := extractor.Extract(context.Background(), newCandidates("Broken"))

		assert.ErrorIs(t, err, domain.ErrWorkerFailed)
	})

	t.Run("payload missing a symbol is fatal", func(t *testing.T) {
		php := &fakePHP{classes: hierarchyWorld(), reflectOmits: `Acme\Entity`}
		extractor := newTestExtractor(php)

		_, err := extractor.Extract(context.Background(), newCandidates(`Acme\User`, `Acme\Entity`, `Acme\Model`))
		require.Error(t, err)

		assert.True(t, domain.IsInfrastructure(err))
		assert.Contains(t, err.Error(), `Acme\\Entity`)
	})
}

func TestHierarchyExtractor_RunnerFailures(t *testing.T) {
	newExtractor := func(runner adapter.WorkerRunnerAdapter) domain.HierarchyExtractor {
		fs := adapter.NewLocalSourceFSAdapter()
		return domain.NewHierarchyExtractor(fs, runner, newTestJobBuilder(fs))
	}

	t.Run("launch failure is an infrastructure error", func(t *testing.T) {
		launchErr := errors.New("exec: \"php\": executable file not found in $PATH")

		runner := adaptermocks.NewMockWorkerRunnerAdapter(t)
		runner.EXPECT().Run(mock.Anything, mock.Anything).
			Return(m.WorkerOutput{Stderr: []byte("no interpreter")}, launchErr).Once()

		_, err := newExtractor(runner).Extract(context.Background(), newCandidates(`Acme\Model`))
		require.Error(t, err)

		var infra *domain.InfrastructureError
		require.ErrorAs(t, err, &infra)
		assert.Equal(t, "reflect", infra.Worker)
		assert.Equal(t, "no interpreter", infra.Detail)
		assert.ErrorIs(t, err, launchErr)
	})

	t.Run("cancellation wins over the runner error", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())

		runner := adaptermocks.NewMockWorkerRunnerAdapter(t)
		runner.EXPECT().Run(mock.Anything, mock.Anything).
			RunAndReturn(func(context.Context, m.WorkerJob) (m.WorkerOutput, error) {
				cancel()
				return m.WorkerOutput{}, errors.New("signal: killed")
			}).Once()

		_, err := newExtractor(runner).Extract(ctx, newCandidates(`Acme\Model`))

		assert.ErrorIs(t, err, context.Canceled)
		assert.False(t, domain.IsInfrastructure(err))
	})
}
