package domain_test

import (
	"context"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"classidx.dev/pkg/classidx/internal/adapter"
	"classidx.dev/pkg/classidx/internal/domain"
	m "classidx.dev/pkg/classidx/internal/model"
)

// requirePHP skips the test unless a PHP 8.1+ interpreter is on PATH.
func requirePHP(t *testing.T) string {
	t.Helper()

	binary, err := exec.LookPath(adapter.DefaultPHPBinary)
	if err != nil {
		t.Skip("php not found in PATH")
	}

	if err := exec.Command(binary, "-r", "exit(PHP_VERSION_ID >= 80100 ? 0 : 1);").Run(); err != nil {
		t.Skip("php 8.1 or newer is required for enums")
	}

	return binary
}

func TestPHPWorkers_ExampleProject(t *testing.T) {
	binary := requirePHP(t)

	fs := adapter.NewLocalSourceFSAdapter()
	runner := adapter.NewLocalWorkerRunnerAdapter()
	jobs := adapter.NewPHPWorkerJobBuilder(fs, adapter.PHPWorkerConfig{Binary: binary, Timeout: 30 * time.Second})

	scanner := domain.NewDirectoryScanner(fs, adapter.NewTreeSitterDeclarationParser())
	scan, err := scanner.Scan(context.Background(), []m.SourceRoot{
		{Dir: m.Path(filepath.Join("..", "..", "examples", "acme", "src")), Prefix: `Acme\`},
	}, m.NewScanCache())
	require.NoError(t, err)
	require.Equal(t, 7, scan.Candidates.Len())

	validator := domain.NewIsolatedValidator(fs, runner, jobs, domain.ValidatorConfig{Parallel: 2, BatchSize: 3})

	outcome, err := validator.Validate(context.Background(), scan.Candidates, nil)
	require.NoError(t, err)

	require.Contains(t, outcome.Errors, `Acme\Broken\LegacyGateway`)
	assert.Contains(t, outcome.Errors[`Acme\Broken\LegacyGateway`], `Vendor\Soap\Client`)
	assert.Len(t, outcome.Errors, 1)
	assert.Equal(t, 6, outcome.Valid.Len())

	_, ok := outcome.Valid.Get(`Acme\Model\User`)
	assert.True(t, ok)

	extractor := domain.NewHierarchyExtractor(fs, runner, jobs)

	hierarchy, err := extractor.Extract(context.Background(), outcome.Valid)
	require.NoError(t, err)

	require.Contains(t, hierarchy, `Acme\Model\User`)
	assert.Equal(t, []string{`Acme\Model\Entity`}, hierarchy[`Acme\Model\User`].Supertypes)
	assert.Equal(t, []string{"JsonSerializable"}, hierarchy[`Acme\Model\User`].Interfaces)
	assert.Empty(t, hierarchy[`Acme\Model\Entity`].Supertypes)
	assert.Len(t, hierarchy, 6)
}

func TestPHPWorkers_SyntaxErrorIsExcluded(t *testing.T) {
	binary := requirePHP(t)

	root := t.TempDir()
	writePHP(t, filepath.Join(root, "A.php"), "<?php\nclass A {}\n")
	writePHP(t, filepath.Join(root, "B.php"), "<?php\nclass B {\n    public function f() {\n        return 1;\n")
	writePHP(t, filepath.Join(root, "C.php"), "<?php\nclass C extends A {}\n")

	fs := adapter.NewLocalSourceFSAdapter()
	runner := adapter.NewLocalWorkerRunnerAdapter()
	jobs := adapter.NewPHPWorkerJobBuilder(fs, adapter.PHPWorkerConfig{Binary: binary, Timeout: 30 * time.Second})

	scan, err := domain.NewDirectoryScanner(fs, adapter.NewTreeSitterDeclarationParser()).
		Scan(context.Background(), []m.SourceRoot{{Dir: m.Path(root)}}, nil)
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C"}, scan.Candidates.Symbols())

	outcome, err := domain.NewIsolatedValidator(fs, runner, jobs, domain.ValidatorConfig{}).
		Validate(context.Background(), scan.Candidates, nil)
	require.NoError(t, err)

	assert.Equal(t, map[string]m.Path{
		"A": m.Path(filepath.Join(root, "A.php")),
		"C": m.Path(filepath.Join(root, "C.php")),
	}, outcome.Valid.ClassMap())
	require.Contains(t, outcome.Errors, "B")
	assert.Contains(t, outcome.Errors["B"], "syntax error")
}
