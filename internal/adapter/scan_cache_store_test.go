package adapter

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "classidx.dev/pkg/classidx/internal/model"
	"classidx.dev/pkg/classidx/pkg"
)

func TestGobScanCacheStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewGobScanCacheStore(NewLocalSourceFSAdapter())
	path := m.Path(filepath.Join(t.TempDir(), "cache", "scan.gob"))

	cache := m.NewScanCache()
	cache.Record("/src/A.php", 100, []string{`Acme\A`})
	cache.Record("/src/helpers.php", 200, nil)

	require.NoError(t, store.SaveScanCache(ctx, path, cache))

	loaded, err := store.LoadScanCache(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, cache.Entries(), loaded.Entries())

	symbols, ok := loaded.Lookup("/src/helpers.php", 200)
	require.True(t, ok)
	assert.Empty(t, symbols)
}

func TestGobScanCacheStore_MissingAndEmpty(t *testing.T) {
	ctx := context.Background()
	store := NewGobScanCacheStore(NewLocalSourceFSAdapter())
	dir := t.TempDir()

	missing, err := store.LoadScanCache(ctx, m.Path(filepath.Join(dir, "missing.gob")))
	require.NoError(t, err)
	assert.Equal(t, 0, missing.Len())

	emptyPath := filepath.Join(dir, "empty.gob")
	require.NoError(t, os.WriteFile(emptyPath, nil, 0o644))

	empty, err := store.LoadScanCache(ctx, m.Path(emptyPath))
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Len())
}

func TestGobScanCacheStore_SchemaMismatchIgnoresCache(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, "scan.gob")

	spill, err := pkg.NewFileSpill[scanCacheRecord](dir)
	require.NoError(t, err)
	require.NoError(t, spill.Append(scanCacheRecord{Schema: ScanCacheSchema, File: "/src/A.php", Mtime: 1, Symbol: "A"}))
	require.NoError(t, spill.Append(scanCacheRecord{Schema: ScanCacheSchema + 1, File: "/src/B.php", Mtime: 1, Symbol: "B"}))
	require.NoError(t, spill.Commit(path))
	require.NoError(t, spill.Close())

	store := NewGobScanCacheStore(NewLocalSourceFSAdapter())
	loaded, err := store.LoadScanCache(ctx, m.Path(path))
	require.NoError(t, err)
	assert.Equal(t, 0, loaded.Len())
}

func TestGobScanCacheStore_CorruptFileIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scan.gob")
	require.NoError(t, os.WriteFile(path, []byte("garbage"), 0o644))

	store := NewGobScanCacheStore(NewLocalSourceFSAdapter())
	loaded, err := store.LoadScanCache(context.Background(), m.Path(path))
	require.NoError(t, err)
	assert.Equal(t, 0, loaded.Len())
}

func TestGobScanCacheStore_CancelledSaveKeepsPrevious(t *testing.T) {
	store := NewGobScanCacheStore(NewLocalSourceFSAdapter())
	path := m.Path(filepath.Join(t.TempDir(), "scan.gob"))

	previous := m.NewScanCache()
	previous.Record("/src/A.php", 1, []string{"A"})
	require.NoError(t, store.SaveScanCache(context.Background(), path, previous))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	next := m.NewScanCache()
	next.Record("/src/B.php", 2, []string{"B"})
	require.Error(t, store.SaveScanCache(ctx, path, next))

	loaded, err := store.LoadScanCache(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, previous.Entries(), loaded.Entries())
}
