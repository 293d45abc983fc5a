package model

import (
	"sort"
	"time"
)

// Stage names a step of the index build.
type Stage string

// Build stages in execution order.
const (
	StageScan      Stage = "scan"
	StageValidate  Stage = "validate"
	StageHierarchy Stage = "hierarchy"
	StageWrite     Stage = "write"
)

// Stages lists the build stages in execution order.
var Stages = []Stage{StageScan, StageValidate, StageHierarchy, StageWrite}

// Collision records a symbol declared more than once. The first declaration
// is kept.
type Collision struct {
	Symbol  string
	Kept    Path
	Dropped Path
}

// ScanSummary describes the scan stage outcome.
type ScanSummary struct {
	Candidates int
	Parsed     int
	Reused     int
	Collisions int
	Warnings   int
}

// ValidationProgress is reported after every validation worker run.
type ValidationProgress struct {
	Pass       int
	Attempted  int
	Total      int
	Excluded   int
	WorkerRuns int
}

// StageTiming is the wall time spent in one stage.
type StageTiming struct {
	Stage    Stage
	Duration time.Duration
}

// ChangeKind classifies a class map difference.
type ChangeKind string

// Class map change kinds.
const (
	ChangeAdded    ChangeKind = "added"
	ChangeRemoved  ChangeKind = "removed"
	ChangeMoved    ChangeKind = "moved"
	ChangeExcluded ChangeKind = "excluded"
)

// ClassMapChange is one difference between two class indexes.
type ClassMapChange struct {
	Kind   ChangeKind
	Symbol string
	Before Path
	After  Path
	Detail string
}

// CompareClassIndexes lists the differences from previous to current, sorted
// by symbol. A symbol that moved from the class map to the errors is reported
// once, as excluded.
func CompareClassIndexes(previous, current ClassIndex) []ClassMapChange {
	var changes []ClassMapChange

	for symbol, file := range current.ClassMap {
		before, existed := previous.ClassMap[symbol]

		switch {
		case !existed:
			changes = append(changes, ClassMapChange{Kind: ChangeAdded, Symbol: symbol, After: file})
		case before != file:
			changes = append(changes, ClassMapChange{Kind: ChangeMoved, Symbol: symbol, Before: before, After: file})
		}
	}

	for symbol, file := range previous.ClassMap {
		if _, kept := current.ClassMap[symbol]; kept {
			continue
		}

		if detail, failed := current.Errors[symbol]; failed {
			changes = append(changes, ClassMapChange{Kind: ChangeExcluded, Symbol: symbol, Before: file, Detail: detail})
			continue
		}

		changes = append(changes, ClassMapChange{Kind: ChangeRemoved, Symbol: symbol, Before: file})
	}

	sort.Slice(changes, func(i, j int) bool { return changes[i].Symbol < changes[j].Symbol })

	return changes
}

// NewlyExcluded returns the symbols failing in current that previous did not
// already report as failing, sorted.
func NewlyExcluded(previous, current ClassIndex) []string {
	var symbols []string

	for symbol := range current.Errors {
		if _, known := previous.Errors[symbol]; !known {
			symbols = append(symbols, symbol)
		}
	}

	sort.Strings(symbols)

	return symbols
}

// BuildResult summarizes a completed build.
type BuildResult struct {
	Scan          ScanSummary
	Valid         int
	Errors        map[string]string
	NewlyExcluded []string
	Collisions    []Collision
	Passes        int
	WorkerRuns    int
	Hierarchy     int
	// Artifacts maps an artifact path to "written" or "unchanged".
	Artifacts map[Path]string
	Changes   []ClassMapChange
	Timings   []StageTiming
}
