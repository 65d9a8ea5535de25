package model

import "time"

// CoverageSummary holds aggregate counts from the coverage phase.
type CoverageSummary struct {
	Total      int `yaml:"total"`
	Covered    int `yaml:"covered"`
	NotCovered int `yaml:"notCovered"`
}

// CoverageReport is the result of matching API entries against a
// documentation corpus.
type CoverageReport struct {
	GeneratedAt       time.Time       `yaml:"generatedAt"`
	Index             Path            `yaml:"index,omitempty"`
	Output            Path            `yaml:"output,omitempty"`
	References        Path            `yaml:"references"`
	Documents         []Path          `yaml:"documents"`
	CorpusFingerprint string          `yaml:"corpusFingerprint"`
	Summary           CoverageSummary `yaml:"summary"`
	Uncovered         []APIEntry      `yaml:"uncovered"`
}

// UncoveredBySource groups uncovered entries by source unit, keeping the
// original entry order inside each group.
func (r CoverageReport) UncoveredBySource() map[string][]APIEntry {
	groups := make(map[string][]APIEntry)
	for _, entry := range r.Uncovered {
		groups[entry.SourceUnit] = append(groups[entry.SourceUnit], entry)
	}

	return groups
}

// IndexSummary describes a generated API index.
type IndexSummary struct {
	Output     Path
	Repository string
	Files      int
	Units      int
	Signatures int
	Skipped    []SkippedUnit
	Diff       string
	// Replaced is set when an earlier index existed at Output. Changed,
	// Removed and Unchanged are only meaningful then.
	Replaced  bool
	Changed   []string
	Removed   []string
	Unchanged int
}
