package adapter

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/dlclark/regexp2"

	m "classidx.dev/pkg/classidx/internal/model"
)

const (
	// DefaultIncludePattern keeps PHP sources.
	DefaultIncludePattern = `\.(php|inc|hh)$`
	// DefaultExcludePattern drops *Test.php files but keeps a file named Test.php.
	DefaultExcludePattern = `(?<!/)Test\.php$`

	filterMatchTimeout = time.Second
)

// RootFilter decides which files of a source root are scanned. Patterns use
// Perl-style syntax (lookbehind included), the dialect package manifests are
// written in, and are matched against the slash-separated path.
type RootFilter struct {
	include *regexp2.Regexp
	exclude *regexp2.Regexp
}

// NewRootFilter compiles the filters of root. An empty Include falls back to
// DefaultIncludePattern; an empty Exclude excludes nothing.
func NewRootFilter(root m.SourceRoot) (*RootFilter, error) {
	includePattern := root.Include
	if includePattern == "" {
		includePattern = DefaultIncludePattern
	}

	include, err := compileFilter(includePattern)
	if err != nil {
		return nil, fmt.Errorf("invalid include pattern for root %s: %w", root.Dir, err)
	}

	filter := &RootFilter{include: include}

	if root.Exclude != "" {
		exclude, err := compileFilter(root.Exclude)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern for root %s: %w", root.Dir, err)
		}

		filter.exclude = exclude
	}

	return filter, nil
}

func compileFilter(pattern string) (*regexp2.Regexp, error) {
	re, err := regexp2.Compile(pattern, regexp2.None)
	if err != nil {
		return nil, err
	}

	re.MatchTimeout = filterMatchTimeout

	return re, nil
}

// Match reports whether path passes the include filter and not the exclude
// filter. A pattern that times out counts as not matching.
func (f *RootFilter) Match(path string) bool {
	slashed := filepath.ToSlash(path)

	included, err := f.include.MatchString(slashed)
	if err != nil || !included {
		return false
	}

	if f.exclude == nil {
		return true
	}

	excluded, err := f.exclude.MatchString(slashed)
	if err != nil {
		return false
	}

	return !excluded
}
