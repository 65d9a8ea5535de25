package model

// Kind is the coarse syntactic category assigned to a signature.
type Kind string

// Available kinds.
const (
	KindType     Kind = "type"
	KindDelegate Kind = "delegate"
	KindEvent    Kind = "event"
	KindIndexer  Kind = "indexer"
	KindOperator Kind = "operator"
	KindMethod   Kind = "method"
	KindMember   Kind = "member"
	KindUnknown  Kind = "unknown"
)

// APIEntry is one public API signature extracted from a source unit.
// Container is set only for non-type kinds and names the most recently
// classified type in the same unit.
type APIEntry struct {
	SourceUnit string `yaml:"source"`
	Signature  string `yaml:"signature"`
	Kind       Kind   `yaml:"kind"`
	Symbol     string `yaml:"symbol"`
	Container  string `yaml:"container,omitempty"`
}
