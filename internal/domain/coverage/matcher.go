// Package coverage decides whether extracted API entries are referenced by a
// documentation corpus. Matching policy depends on the entry kind: weak kinds
// need qualification or a code span unless the name is long and capitalized.
package coverage

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	lru "github.com/hashicorp/golang-lru/v2"

	m "github.com/mouse-blink/docgap/internal/model"
)

const (
	patternCacheSize = 4096

	// Plain-token fallback for members is reserved for names at least this long.
	minDistinctiveLength = 8

	wordBefore = `(?:^|[^A-Za-z0-9_])`
	wordAfter  = `(?:$|[^A-Za-z0-9_])`
)

// Matcher evaluates entries against one immutable corpus. It is safe for
// concurrent use.
type Matcher struct {
	corpus   string
	patterns *lru.Cache[string, *regexp.Regexp]
}

// NewMatcher creates a Matcher over corpus.
func NewMatcher(corpus string) *Matcher {
	patterns, err := lru.New[string, *regexp.Regexp](patternCacheSize)
	if err != nil {
		panic(err) // only returned for a non-positive size
	}

	return &Matcher{corpus: corpus, patterns: patterns}
}

// IsCovered reports whether entry is referenced by corpus.
func IsCovered(entry m.APIEntry, corpus string) bool {
	return NewMatcher(corpus).IsCovered(entry)
}

// IsCovered reports whether entry is referenced by the matcher's corpus.
func (mt *Matcher) IsCovered(entry m.APIEntry) bool {
	if entry.Symbol == "" {
		return false
	}

	switch entry.Kind {
	case m.KindType:
		return mt.hasCodeSpan(entry.Symbol) || mt.hasToken(entry.Symbol)

	case m.KindIndexer:
		return strings.Contains(mt.corpus, "this[")

	case m.KindOperator:
		phrase := "operator " + entry.Symbol

		return mt.hasCodeSpan(phrase) || mt.hasToken(phrase)

	case m.KindMethod, m.KindDelegate:
		if entry.Container != "" && mt.hasQualified(entry.Container, entry.Symbol) {
			return true
		}

		return mt.hasMethodCall(entry.Symbol) || mt.hasCodeSpan(entry.Symbol)
	}

	if entry.Container != "" && mt.hasQualified(entry.Container, entry.Symbol) {
		return true
	}

	if mt.hasCodeSpan(entry.Symbol) {
		return true
	}

	if isDistinctive(entry.Symbol) {
		return mt.hasToken(entry.Symbol)
	}

	return false
}

func (mt *Matcher) hasCodeSpan(text string) bool {
	return strings.Contains(mt.corpus, "`"+text+"`")
}

// hasToken matches token not adjacent to identifier characters.
func (mt *Matcher) hasToken(token string) bool {
	return mt.match(wordBefore + regexp.QuoteMeta(token) + wordAfter)
}

// hasQualified matches "container.symbol", tolerating spaces around the dot.
func (mt *Matcher) hasQualified(container, symbol string) bool {
	return mt.match(wordBefore + regexp.QuoteMeta(container) + `\s*\.\s*` + regexp.QuoteMeta(symbol) + wordAfter)
}

// hasMethodCall matches the symbol followed by optional generic arguments and
// an opening call parenthesis.
func (mt *Matcher) hasMethodCall(symbol string) bool {
	return mt.match(wordBefore + regexp.QuoteMeta(symbol) + `\s*(?:<[^>\n]+>)?\s*\(`)
}

func (mt *Matcher) match(pattern string) bool {
	re, ok := mt.patterns.Get(pattern)
	if !ok {
		re = regexp.MustCompile(pattern)
		mt.patterns.Add(pattern, re)
	}

	return re.MatchString(mt.corpus)
}

func isDistinctive(symbol string) bool {
	first, _ := utf8.DecodeRuneInString(symbol)

	return utf8.RuneCountInString(symbol) >= minDistinctiveLength && unicode.IsUpper(first)
}
