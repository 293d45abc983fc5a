package model

// ValidationOutcome partitions a candidate index into symbols that load cleanly
// and symbols that failed, with the captured failure text.
type ValidationOutcome struct {
	Valid  *CandidateIndex
	Errors map[string]string
	// Passes is the number of full passes the fixed-point loop needed.
	Passes int
	// WorkerRuns is the number of worker processes spawned.
	WorkerRuns int
}

// HierarchyRecord describes the ancestry of one symbol.
type HierarchyRecord struct {
	Symbol string `json:"-" yaml:"-"`
	// Supertypes lists parent classes nearest first.
	Supertypes []string `json:"supertypes" yaml:"supertypes"`
	// Interfaces lists implemented interfaces, sorted and unique.
	Interfaces []string `json:"interfaces" yaml:"interfaces"`
}

// HierarchyIndex maps a symbol to its hierarchy record.
type HierarchyIndex map[string]HierarchyRecord

// ClassIndex is the artifact read by autoloaders.
type ClassIndex struct {
	ClassMap map[string]Path   `json:"classMap" yaml:"classMap"`
	Errors   map[string]string `json:"errors" yaml:"errors"`
}

// NewClassIndex builds the artifact view of a validation outcome.
func NewClassIndex(outcome ValidationOutcome) ClassIndex {
	errs := make(map[string]string, len(outcome.Errors))
	for symbol, detail := range outcome.Errors {
		errs[symbol] = detail
	}

	return ClassIndex{
		ClassMap: outcome.Valid.ClassMap(),
		Errors:   errs,
	}
}
