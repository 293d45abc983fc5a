package model

// CandidateEntry is a symbol discovered by the scanner together with the file
// declaring it and the file modification time at discovery.
type CandidateEntry struct {
	Symbol string
	File   Path
	Mtime  int64
}

// CandidateIndex is an insertion-ordered symbol -> entry map. The first entry
// added for a symbol wins.
type CandidateIndex struct {
	order   []string
	entries map[string]CandidateEntry
}

// NewCandidateIndex creates an empty index.
func NewCandidateIndex() *CandidateIndex {
	return &CandidateIndex{entries: make(map[string]CandidateEntry)}
}

// Add inserts entry unless its symbol is already present. It returns false when
// the symbol was already claimed.
func (ci *CandidateIndex) Add(entry CandidateEntry) bool {
	if ci.entries == nil {
		ci.entries = make(map[string]CandidateEntry)
	}

	if _, exists := ci.entries[entry.Symbol]; exists {
		return false
	}

	ci.entries[entry.Symbol] = entry
	ci.order = append(ci.order, entry.Symbol)

	return true
}

// Get returns the entry for symbol.
func (ci *CandidateIndex) Get(symbol string) (CandidateEntry, bool) {
	if ci == nil {
		return CandidateEntry{}, false
	}

	entry, ok := ci.entries[symbol]

	return entry, ok
}

// Len returns the number of symbols.
func (ci *CandidateIndex) Len() int {
	if ci == nil {
		return 0
	}

	return len(ci.order)
}

// Symbols returns the symbols in discovery order.
func (ci *CandidateIndex) Symbols() []string {
	if ci == nil {
		return nil
	}

	out := make([]string, len(ci.order))
	copy(out, ci.order)

	return out
}

// Entries returns the entries in discovery order.
func (ci *CandidateIndex) Entries() []CandidateEntry {
	if ci == nil {
		return nil
	}

	out := make([]CandidateEntry, 0, len(ci.order))
	for _, symbol := range ci.order {
		out = append(out, ci.entries[symbol])
	}

	return out
}

// Without returns a new index without the symbols present in excluded.
func (ci *CandidateIndex) Without(excluded map[string]string) *CandidateIndex {
	out := NewCandidateIndex()

	for _, entry := range ci.Entries() {
		if _, drop := excluded[entry.Symbol]; drop {
			continue
		}

		out.Add(entry)
	}

	return out
}

// ClassMap returns the symbol -> file view used by autoloaders and workers.
func (ci *CandidateIndex) ClassMap() map[string]Path {
	out := make(map[string]Path, ci.Len())

	for _, entry := range ci.Entries() {
		out[entry.Symbol] = entry.File
	}

	return out
}
