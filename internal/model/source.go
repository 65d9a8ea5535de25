// Package model defines the data structures shared by the scanner, the
// coverage analyzer and the adapters.
package model

// Path represents a file system path.
type Path string

// SourceUnit is one file's worth of raw text submitted to the scanner.
// ID is used for provenance and grouping only, it is never parsed.
type SourceUnit struct {
	ID   string
	Hash string
	Text string
}

// SkippedUnit records a source file or document that could not be decoded
// or read. Skips are reported, never raised.
type SkippedUnit struct {
	ID     string
	Reason string
}

// UnitSignatures holds the normalized declaration signatures scanned from a
// single source unit, in order of appearance. Hash is the content hash of
// the unit the signatures were scanned from.
type UnitSignatures struct {
	Unit       string
	Namespace  string
	Hash       string
	Signatures []string
}

// Area groups source units in the API index by path prefix.
type Area struct {
	Prefix string `mapstructure:"prefix" yaml:"prefix"`
	Name   string `mapstructure:"name" yaml:"name"`
}

// DefaultArea is used for units that match no configured area prefix.
const DefaultArea = "Other"
