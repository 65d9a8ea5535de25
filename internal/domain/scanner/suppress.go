// Package scanner turns raw C#-like source text into normalized public
// declaration signatures. It is a line-oriented state machine, not a parser:
// comments are stripped, literals are blanked for brace counting, enclosing
// type scopes are tracked by brace depth and member declarations are
// accumulated until they terminate.
package scanner

import "strings"

// StripComments removes line and block comments from line. inBlock reports
// whether the line starts inside a block comment; the returned flag reports
// whether the next line does. A line that ends inside a block comment yields
// nothing, including any text before the comment opened.
//
// String literals are not recognized here, so a "//" inside a literal
// truncates the line.
func StripComments(line string, inBlock bool) (string, bool) {
	var out strings.Builder

	i := 0
	for i < len(line) {
		if inBlock {
			end := strings.Index(line[i:], "*/")
			if end < 0 {
				return "", true
			}

			i += end + 2
			inBlock = false

			continue
		}

		if strings.HasPrefix(line[i:], "/*") {
			inBlock = true
			i += 2

			continue
		}

		if strings.HasPrefix(line[i:], "//") {
			break
		}

		out.WriteByte(line[i])
		i++
	}

	return out.String(), inBlock
}

// BlankLiterals replaces the contents of every terminated double-quoted or
// single-quoted literal with an empty literal of the same kind. A backslash
// escapes the following character. Unterminated literals are kept verbatim.
// The result is only used for brace counting.
func BlankLiterals(line string) string {
	if !strings.ContainsAny(line, `"'`) {
		return line
	}

	var out strings.Builder

	out.Grow(len(line))

	i := 0
	for i < len(line) {
		c := line[i]
		if c != '"' && c != '\'' {
			out.WriteByte(c)
			i++

			continue
		}

		end := closingQuote(line, i+1, c)
		if end < 0 {
			out.WriteByte(c)
			i++

			continue
		}

		out.WriteByte(c)
		out.WriteByte(c)
		i = end + 1
	}

	return out.String()
}

func closingQuote(line string, from int, quote byte) int {
	for j := from; j < len(line); j++ {
		switch line[j] {
		case '\\':
			j++
		case quote:
			return j
		}
	}

	return -1
}
