package model

import "sort"

// ScanCacheEntry records the symbol a file declared at a given mtime. A file
// declaring no symbol is stored with an empty Symbol; a file declaring several
// symbols is stored as several entries.
type ScanCacheEntry struct {
	File   Path
	Mtime  int64
	Symbol string
}

type cachedFile struct {
	mtime   int64
	symbols []string
}

// ScanCache is the cross-run record of previously parsed files.
type ScanCache struct {
	files map[Path]cachedFile
}

// NewScanCache creates an empty cache.
func NewScanCache() *ScanCache {
	return &ScanCache{files: make(map[Path]cachedFile)}
}

// NewScanCacheFromEntries groups persisted entries by file.
func NewScanCacheFromEntries(entries []ScanCacheEntry) *ScanCache {
	cache := NewScanCache()

	for _, entry := range entries {
		file := cache.files[entry.File]
		if file.mtime != entry.Mtime {
			file = cachedFile{mtime: entry.Mtime}
		}

		if entry.Symbol != "" {
			file.symbols = append(file.symbols, entry.Symbol)
		}

		cache.files[entry.File] = file
	}

	return cache
}

// Lookup returns the cached symbols for file when the recorded mtime matches.
func (c *ScanCache) Lookup(file Path, mtime int64) ([]string, bool) {
	if c == nil {
		return nil, false
	}

	cached, ok := c.files[file]
	if !ok || cached.mtime != mtime {
		return nil, false
	}

	out := make([]string, len(cached.symbols))
	copy(out, cached.symbols)

	return out, true
}

// Record stores the symbols parsed from file at mtime.
func (c *ScanCache) Record(file Path, mtime int64, symbols []string) {
	if c.files == nil {
		c.files = make(map[Path]cachedFile)
	}

	stored := make([]string, len(symbols))
	copy(stored, symbols)
	c.files[file] = cachedFile{mtime: mtime, symbols: stored}
}

// Len returns the number of files in the cache.
func (c *ScanCache) Len() int {
	if c == nil {
		return 0
	}

	return len(c.files)
}

// Retain returns a copy holding only the files for which keep returns true.
func (c *ScanCache) Retain(keep func(Path) bool) *ScanCache {
	out := NewScanCache()
	if c == nil {
		return out
	}

	for file, cached := range c.files {
		if keep(file) {
			out.files[file] = cached
		}
	}

	return out
}

// Entries flattens the cache into persisted entries sorted by file path.
func (c *ScanCache) Entries() []ScanCacheEntry {
	if c == nil {
		return nil
	}

	files := make([]Path, 0, len(c.files))
	for file := range c.files {
		files = append(files, file)
	}

	sort.Slice(files, func(i, j int) bool { return files[i] < files[j] })

	var entries []ScanCacheEntry

	for _, file := range files {
		cached := c.files[file]
		if len(cached.symbols) == 0 {
			entries = append(entries, ScanCacheEntry{File: file, Mtime: cached.mtime})
			continue
		}

		for _, symbol := range cached.symbols {
			entries = append(entries, ScanCacheEntry{File: file, Mtime: cached.mtime, Symbol: symbol})
		}
	}

	return entries
}
