package scanner

import (
	"regexp"
	"strings"
)

// TypeScope is one currently open type declaration. EntryDepth is the brace
// depth measured after the scope's opening brace is counted.
type TypeScope struct {
	Name       string
	Kind       string
	IsPublic   bool
	EntryDepth int
}

var typeDeclRe = regexp.MustCompile(
	`^\s*(?:(public|internal|private|protected)\s+)?(?:(?:internal|protected|private)\s+)?` +
		`(?:(?:new|unsafe|abstract|sealed|static|partial|readonly|ref|file)\s+)*` +
		`(class|interface|struct|enum|record(?:\s+(?:class|struct))?)\s+([A-Za-z_][A-Za-z0-9_` + "`" + `]*)`,
)

// typeDecl is a type declaration recognized on a single line.
type typeDecl struct {
	access string
	kind   string
	name   string
}

func matchTypeDecl(line string) (typeDecl, bool) {
	m := typeDeclRe.FindStringSubmatch(line)
	if m == nil {
		return typeDecl{}, false
	}

	return typeDecl{access: m[1], kind: strings.Fields(m[2])[0], name: m[3]}, true
}

// DeclaredType reports the kind and name of the type declared at the start
// of line. Record kinds are reported as "record".
func DeclaredType(line string) (kind, name string, ok bool) {
	decl, ok := matchTypeDecl(line)

	return decl.kind, decl.name, ok
}

// public reports whether the declared type is visible given its enclosing
// scopes. Visibility is the AND of the whole chain.
func (d typeDecl) public(scopes []TypeScope) bool {
	parentPublic := true
	if len(scopes) > 0 {
		parentPublic = scopes[len(scopes)-1].IsPublic
	}

	return d.access == "public" && parentPublic
}

// innermost returns the active scope, if any.
func innermost(scopes []TypeScope) (TypeScope, bool) {
	if len(scopes) == 0 {
		return TypeScope{}, false
	}

	return scopes[len(scopes)-1], true
}

// popClosed drops every scope whose body has been left.
func popClosed(scopes []TypeScope, depth int) []TypeScope {
	for len(scopes) > 0 && depth < scopes[len(scopes)-1].EntryDepth {
		scopes = scopes[:len(scopes)-1]
	}

	return scopes
}
