package scanner

import (
	"regexp"
	"strings"

	m "github.com/mouse-blink/docgap/internal/model"
)

var namespaceRe = regexp.MustCompile(`^\s*namespace\s+([A-Za-z_][A-Za-z0-9_.]*)\s*[;{]?`)

// pendingType is a type declaration still waiting for its opening brace.
type pendingType struct {
	name     string
	kind     string
	isPublic bool
}

// State is threaded through the lines of one source unit. The zero value is
// the initial state.
type State struct {
	InBlockComment bool
	BraceDepth     int
	Scopes         []TypeScope
	Namespace      string

	pendingType *pendingType
	pendingDecl string
}

// Step consumes one raw line and returns the next state together with any
// signatures completed on this line, appended to out.
func (s State) Step(raw string, out []string) (State, []string) {
	line, inBlock := StripComments(raw, s.InBlockComment)
	s.InBlockComment = inBlock

	if strings.TrimSpace(line) == "" {
		return s, out
	}

	if ns := namespaceRe.FindStringSubmatch(line); ns != nil {
		s.Namespace = ns[1]
	}

	counting := BlankLiterals(line)
	opens := strings.Count(counting, "{")

	if s.pendingType != nil && opens > 0 {
		s.Scopes = append(s.Scopes, TypeScope{
			Name:       s.pendingType.name,
			Kind:       s.pendingType.kind,
			IsPublic:   s.pendingType.isPublic,
			EntryDepth: s.BraceDepth + 1,
		})
		s.pendingType = nil
	}

	decl, isTypeDecl := typeDecl{}, false
	if s.pendingType == nil {
		decl, isTypeDecl = matchTypeDecl(line)
	}

	if isTypeDecl {
		public := decl.public(s.Scopes)
		if public {
			out = append(out, NormalizeWhitespace(line))
		}

		switch {
		case opens > 0:
			s.Scopes = append(s.Scopes, TypeScope{
				Name:       decl.name,
				Kind:       decl.kind,
				IsPublic:   public,
				EntryDepth: s.BraceDepth + 1,
			})
		case !strings.Contains(counting, ";"):
			s.pendingType = &pendingType{name: decl.name, kind: decl.kind, isPublic: public}
		}
	}

	if s.pendingDecl != "" || startsMember(line, s.Scopes, s.BraceDepth, isTypeDecl) {
		sig, done := accumulate(s.pendingDecl, line)
		if done {
			out = append(out, sig)
			sig = ""
		}

		s.pendingDecl = sig
	}

	s.BraceDepth += opens - strings.Count(counting, "}")
	if s.BraceDepth < 0 {
		s.BraceDepth = 0
	}

	s.Scopes = popClosed(s.Scopes, s.BraceDepth)

	return s, out
}

// Finish flushes a declaration left pending at the end of the unit.
func (s State) Finish(out []string) []string {
	if s.pendingDecl != "" {
		out = append(out, NormalizeWhitespace(s.pendingDecl))
	}

	return out
}

// Scan runs the state machine over every line of text.
func Scan(text string) (namespace string, signatures []string) {
	var s State

	for _, line := range SplitLines(text) {
		s, signatures = s.Step(line, signatures)
	}

	return s.Namespace, s.Finish(signatures)
}

// ScanUnit scans a source unit and labels the result with its identifier.
func ScanUnit(unit m.SourceUnit) m.UnitSignatures {
	namespace, signatures := Scan(unit.Text)

	return m.UnitSignatures{
		Unit:       unit.ID,
		Namespace:  namespace,
		Hash:       unit.Hash,
		Signatures: signatures,
	}
}

// SplitLines splits text on LF, CRLF and lone CR line endings.
func SplitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.TrimSuffix(text, "\n")

	if text == "" {
		return nil
	}

	return strings.Split(text, "\n")
}
