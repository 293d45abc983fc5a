package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"classidx.dev/pkg/classidx/internal/adapter"
	m "classidx.dev/pkg/classidx/internal/model"
)

func writeClassIndex(t *testing.T, path string, format adapter.ArtifactFormat) {
	t.Helper()

	store := adapter.NewFileArtifactStore(adapter.NewLocalSourceFSAdapter(), format)
	content, err := store.EncodeClassIndex(m.ClassIndex{
		ClassMap: map[string]m.Path{"Acme\\Foo": "/src/Foo.php"},
		Errors:   map[string]string{"Acme\\Broken": "PHP Fatal error:  Class \"Missing\" not found\nStack trace"},
	})
	require.NoError(t, err)

	_, err = store.Save(context.Background(), m.Path(path), content)
	require.NoError(t, err)
}

func executeShow(t *testing.T, args ...string) (string, error) {
	t.Helper()

	out := &bytes.Buffer{}

	cmd := newRootCmd()
	configureRootFlags(cmd)
	cmd.AddCommand(newShowCmd())
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"show"}, args...))

	err := cmd.Execute()

	return out.String(), err
}

func TestShowCmd_ReadsIndexFromOutputDir(t *testing.T) {
	t.Chdir(t.TempDir())

	dir := t.TempDir()
	writeClassIndex(t, filepath.Join(dir, "classmap.json"), adapter.FormatJSON)

	output, err := executeShow(t, "-o", dir)
	require.NoError(t, err)

	assert.Contains(t, output, "classmap.json: 1 symbols, 1 excluded")
	assert.Contains(t, output, "Acme\\Broken")
	assert.NotContains(t, output, "Stack trace")
}

func TestShowCmd_ExplicitPathAndFormat(t *testing.T) {
	t.Chdir(t.TempDir())

	path := filepath.Join(t.TempDir(), "index.yaml")
	writeClassIndex(t, path, adapter.FormatYAML)

	output, err := executeShow(t, "--format", "yaml", path)
	require.NoError(t, err)

	assert.Contains(t, output, "index.yaml: 1 symbols, 1 excluded")
}

func TestShowCmd_MissingIndex(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := executeShow(t, filepath.Join(t.TempDir(), "classmap.json"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read class index")
}

func TestShowCmd_PHPIndexCannotBeRead(t *testing.T) {
	t.Chdir(t.TempDir())

	path := filepath.Join(t.TempDir(), "classmap.php")
	writeClassIndex(t, path, adapter.FormatPHP)

	_, err := executeShow(t, "--format", "php", path)

	assert.ErrorIs(t, err, adapter.ErrUnreadableFormat)
}

func TestShowCmd_RejectsExtraArgs(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := executeShow(t, "a.json", "b.json")

	require.Error(t, err)
}
