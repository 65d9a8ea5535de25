// Package classify assigns a kind and a canonical symbol to a normalized
// declaration signature. Cases are tried in a fixed order and the first match
// wins; the specific shapes come before the generic method and member
// fallbacks because those would mis-tokenize them.
package classify

import (
	"regexp"
	"strings"

	m "github.com/mouse-blink/docgap/internal/model"
)

// IndexerSymbol is the fixed symbol for every indexer.
const IndexerSymbol = "this[]"

var (
	typeDeclRe = regexp.MustCompile(
		`^public\s+(?:(?:new|unsafe|abstract|sealed|static|partial|readonly|ref|file)\s+)*` +
			`(?:class|interface|struct|enum|record(?:\s+(?:class|struct))?)\s+([A-Za-z_][A-Za-z0-9_` + "`" + `.]*)`,
	)
	delegateRe = regexp.MustCompile(
		`^public\s+(?:(?:new|unsafe|static|partial|readonly|ref)\s+)*delegate\s+[^(]*\b([A-Za-z_][A-Za-z0-9_]*)\s*(?:<[^()]*>)?\s*\(`,
	)
	eventRe = regexp.MustCompile(
		`^public\s+(?:(?:new|static|virtual|override|abstract|sealed|unsafe)\s+)*event\s+.+?\b([A-Za-z_][A-Za-z0-9_]*)\s*(?:[;=]|\{)`,
	)
	indexerRe  = regexp.MustCompile(`\bthis\s*\[`)
	operatorRe = regexp.MustCompile(`\boperator(?:\s+([^\s(]+)|([^\sA-Za-z0-9_(][^\s(]*))`)
)

// Classify returns the kind and symbol of signature. It is total: input that
// matches no case yields KindUnknown and an empty symbol.
func Classify(signature string) (m.Kind, string) {
	sig := strings.Join(strings.Fields(signature), " ")

	if match := typeDeclRe.FindStringSubmatch(sig); match != nil {
		return m.KindType, NormalizeSymbol(match[1])
	}

	if match := delegateRe.FindStringSubmatch(sig); match != nil {
		return m.KindDelegate, NormalizeSymbol(match[1])
	}

	if match := eventRe.FindStringSubmatch(sig); match != nil {
		return m.KindEvent, NormalizeSymbol(match[1])
	}

	if indexerRe.MatchString(sig) {
		return m.KindIndexer, IndexerSymbol
	}

	if match := operatorRe.FindStringSubmatch(sig); match != nil {
		if match[1] != "" {
			return m.KindOperator, match[1]
		}

		return m.KindOperator, match[2]
	}

	head, isMethod := splitHead(sig)

	symbol := NormalizeSymbol(lastToken(trimGenericSuffix(head)))
	if symbol == "" {
		return m.KindUnknown, ""
	}

	if isMethod {
		return m.KindMethod, symbol
	}

	return m.KindMember, symbol
}

// modifiers can precede a parenthesized tuple type.
var modifiers = map[string]struct{}{
	"public": {}, "protected": {}, "internal": {}, "private": {}, "static": {},
	"readonly": {}, "virtual": {}, "override": {}, "abstract": {}, "sealed": {},
	"async": {}, "unsafe": {}, "new": {}, "extern": {}, "partial": {}, "ref": {},
	"const": {}, "volatile": {}, "required": {},
}

// splitHead finds the end of the declared name. A parameter list opening at
// the top level makes the signature method-shaped; otherwise the head ends at
// the first top-level '{', '=', '=>' or ';'. Parentheses inside generic
// argument lists and tuple types are skipped.
func splitHead(sig string) (string, bool) {
	angle, paren := 0, 0

	for i := 0; i < len(sig); i++ {
		switch c := sig[i]; c {
		case '<':
			angle++
		case '>':
			if angle > 0 && (i == 0 || sig[i-1] != '=') {
				angle--
			}
		case '(':
			if angle == 0 && paren == 0 && opensParameters(sig[:i]) {
				return sig[:i], true
			}

			paren++
		case ')':
			if paren > 0 {
				paren--
			}
		case '{', ';', '=':
			if angle == 0 && paren == 0 {
				return sig[:i], false
			}
		}
	}

	return sig, false
}

// opensParameters reports whether a '(' following prefix starts a parameter
// list rather than a tuple type.
func opensParameters(prefix string) bool {
	if prefix == "" {
		return false
	}

	last := prefix[len(prefix)-1]
	if isIdentByte(last) || last == '>' {
		return true
	}

	fields := strings.Fields(prefix)
	if len(fields) == 0 {
		return false
	}

	_, isModifier := modifiers[fields[len(fields)-1]]

	return !isModifier
}

// trimGenericSuffix removes a balanced generic argument list at the end of
// head, so "Register<TOwner, TArgs>" becomes "Register".
func trimGenericSuffix(head string) string {
	head = strings.TrimSpace(head)
	if !strings.HasSuffix(head, ">") {
		return head
	}

	depth := 0
	for i := len(head) - 1; i >= 0; i-- {
		switch head[i] {
		case '>':
			depth++
		case '<':
			depth--
			if depth == 0 {
				return strings.TrimSpace(head[:i])
			}
		}
	}

	return head
}

func lastToken(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}

	return fields[len(fields)-1]
}

func isIdentByte(c byte) bool {
	return c == '_' || c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}
