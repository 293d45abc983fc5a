package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanCache_LookupRequiresSameMtime(t *testing.T) {
	cache := NewScanCache()
	cache.Record("a.php", 10, []string{"A", "AHelper"})

	symbols, ok := cache.Lookup("a.php", 10)
	require.True(t, ok)
	assert.Equal(t, []string{"A", "AHelper"}, symbols)

	_, ok = cache.Lookup("a.php", 11)
	assert.False(t, ok)

	_, ok = cache.Lookup("missing.php", 10)
	assert.False(t, ok)
}

func TestScanCache_EntriesRoundTrip(t *testing.T) {
	cache := NewScanCache()
	cache.Record("b.php", 2, []string{"B"})
	cache.Record("a.php", 1, []string{"A1", "A2"})
	cache.Record("empty.php", 3, nil)

	entries := cache.Entries()
	assert.Equal(t, []ScanCacheEntry{
		{File: "a.php", Mtime: 1, Symbol: "A1"},
		{File: "a.php", Mtime: 1, Symbol: "A2"},
		{File: "b.php", Mtime: 2, Symbol: "B"},
		{File: "empty.php", Mtime: 3},
	}, entries)

	restored := NewScanCacheFromEntries(entries)
	assert.Equal(t, entries, restored.Entries())

	symbols, ok := restored.Lookup("empty.php", 3)
	require.True(t, ok, "files without symbols are still cached")
	assert.Empty(t, symbols)
}

func TestScanCache_Retain(t *testing.T) {
	cache := NewScanCache()
	cache.Record("keep.php", 1, []string{"K"})
	cache.Record("gone.php", 1, []string{"G"})

	kept := cache.Retain(func(p Path) bool { return p == "keep.php" })
	assert.Equal(t, 1, kept.Len())
	assert.Equal(t, 2, cache.Len())
}
