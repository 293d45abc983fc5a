// Package model defines the data structures shared by the class index pipeline.
package model

import "strings"

// Path represents a file system path.
type Path string

// String returns the path as a plain string.
func (p Path) String() string {
	return string(p)
}

// SourceRoot is a directory scanned for symbol declarations.
type SourceRoot struct {
	// Dir is the directory to walk.
	Dir Path `mapstructure:"dir" yaml:"dir"`
	// Prefix restricts the root to symbols in this namespace (empty = any).
	Prefix string `mapstructure:"prefix" yaml:"prefix,omitempty"`
	// Include is the filename filter; files not matching it are ignored.
	Include string `mapstructure:"include" yaml:"include,omitempty"`
	// Exclude drops files matching it even when Include matched.
	Exclude string `mapstructure:"exclude" yaml:"exclude,omitempty"`
}

// Owns reports whether a symbol satisfies the root namespace prefix.
func (r SourceRoot) Owns(symbol string) bool {
	if r.Prefix == "" {
		return true
	}

	return strings.HasPrefix(symbol, strings.TrimPrefix(r.Prefix, `\`))
}
