package model

// ControlType is a class or record type that derives, directly or through
// other scanned types, from one of the control root types.
type ControlType struct {
	Name        string
	Namespace   string
	Source      string
	Assembly    string
	Declaration string
	Abstract    bool
	// Bases holds the short names of the declared base types, sorted.
	Bases []string
	// Members holds the public member signatures declared on the type, in
	// order of appearance across every partial declaration.
	Members []string
}

// FullName returns the namespace-qualified type name.
func (c ControlType) FullName() string {
	if c.Namespace == "" {
		return c.Name
	}

	return c.Namespace + "." + c.Name
}

// ControlsSummary describes a generated set of control reference pages.
type ControlsSummary struct {
	Output     Path
	Repository string
	Files      int
	Types      int
	Controls   int
	Written    []Path
	Skipped    []SkippedUnit
}
