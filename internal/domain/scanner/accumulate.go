package scanner

import (
	"regexp"
	"strings"
)

var publicStartRe = regexp.MustCompile(`^\s*public\s+`)

// NormalizeWhitespace collapses every run of whitespace to a single space and
// trims both ends.
func NormalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// terminated reports whether an accumulated declaration is complete.
func terminated(sig string) bool {
	return strings.ContainsAny(sig, ";{") || strings.Contains(sig, "=>")
}

// startsMember reports whether line opens a new member declaration of a
// public type.
func startsMember(line string, scopes []TypeScope, depth int, isTypeDecl bool) bool {
	scope, ok := innermost(scopes)
	if !ok || !scope.IsPublic || depth != scope.EntryDepth || isTypeDecl {
		return false
	}

	if strings.HasPrefix(strings.TrimLeft(line, " \t"), "public:") {
		return false
	}

	return publicStartRe.MatchString(line)
}

// accumulate appends line to the pending declaration, or starts a new one.
// It returns the pending text and whether the declaration is now complete.
func accumulate(pending, line string) (string, bool) {
	if pending != "" {
		line = pending + " " + line
	}

	sig := NormalizeWhitespace(line)

	return sig, terminated(sig)
}
