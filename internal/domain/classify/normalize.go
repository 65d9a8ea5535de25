package classify

import (
	"regexp"
	"strings"
)

var aritySuffixRe = regexp.MustCompile("`\\d+$")

// NormalizeSymbol canonicalizes a raw identifier token: trailing separator and
// brace punctuation is stripped, qualification is dropped, generic argument
// lists and arity suffixes are removed. It is idempotent.
func NormalizeSymbol(token string) string {
	for {
		next := normalizeOnce(token)
		if next == token {
			return next
		}

		token = next
	}
}

func normalizeOnce(token string) string {
	name := strings.TrimRight(strings.TrimSpace(token), ",;:{}")

	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}

	if i := strings.Index(name, "<"); i >= 0 {
		name = name[:i]
	}

	return strings.TrimSpace(aritySuffixRe.ReplaceAllString(name, ""))
}
