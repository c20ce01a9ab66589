package lexer

import (
	"strings"

	"github.com/dlclark/regexp2"

	"github.com/kolkov/fpat/internal/token"
)

// classChain translates the body of a character class, in priority order.
var classChain = []*Translator{
	newTranslator(token.CLASS_STRING, `['"]`, parseClassString),
	newTranslator(token.CLASS_SLASH, `/(?<c>[wWdDsStrn])(?![A-Za-z])`, parseClassSlash),
	newTranslator(token.INSIDE, `/(?<name>[a-z]+)(?![A-Za-z])`, parseInside),
	newTranslator(token.RAW_CHAR, "[^\\sA-Za-z'\"/`\\[\\]]", parseRawChar),
	newTranslator(token.NAMED_CLASS, `(?<name>[A-Za-z]+)(?![A-Za-z])`, parseNamedClass),
	newTranslator(token.CLASS_MARKER, "`(?<name>[a-z]+)`", parseClassMarker),
	newTranslator(token.CLASS_END, `\]`, parseClassEnd),
}

// parseClass handles [...], -[...] and /[...]. The body is translated by
// the class sub-chain until the closing bracket.
func parseClass(src string, start, end int, _ *regexp2.Match) (string, int, bool) {
	negated := src[start] == '-'
	grouped := src[start] == '/'

	var body strings.Builder
	pos := end
	for {
		pos += leadingSpace(src[pos:])
		if pos >= len(src) {
			return "", 0, false
		}
		f, ok := translateClassMember(src, &pos)
		if !ok {
			return "", 0, false
		}
		if f.Kind == token.CLASS_END {
			break
		}
		body.WriteString(f.Text)
	}
	if body.Len() == 0 {
		return "", 0, false
	}

	text := "[" + body.String() + "]"
	if negated {
		text = "[^" + body.String() + "]"
	}
	return group(text, grouped), pos, true
}

func translateClassMember(src string, pos *int) (token.Fragment, bool) {
	for _, t := range classChain {
		if f, ok := t.Translate(src, pos); ok {
			return f, true
		}
	}
	return token.Fragment{}, false
}

func parseClassString(src string, start, _ int, _ *regexp2.Match) (string, int, bool) {
	lit, next, ok := scanQuoted(src, start)
	if !ok {
		return "", 0, false
	}
	return escapeClass(lit), next, true
}

func parseClassSlash(_ string, _, end int, m *regexp2.Match) (string, int, bool) {
	return `\` + groupText(m, "c"), end, true
}

func parseInside(_ string, _, end int, m *regexp2.Match) (string, int, bool) {
	set, ok := shorthandSets[groupText(m, "name")]
	return set, end, ok
}

func parseRawChar(src string, start, end int, _ *regexp2.Match) (string, int, bool) {
	ch := src[start:end]
	if ch == `\` || ch == "^" {
		return `\` + ch, end, true
	}
	return ch, end, true
}

// parseNamedClass translates a bareword class name. A lone letter stands
// for itself.
func parseNamedClass(_ string, _, end int, m *regexp2.Match) (string, int, bool) {
	name := groupText(m, "name")
	if set, ok := namedClasses[name]; ok {
		return set, end, true
	}
	return name, end, len(name) == 1
}

func parseClassMarker(_ string, _, end int, m *regexp2.Match) (string, int, bool) {
	ch, ok := markers[groupText(m, "name")]
	if !ok {
		return "", 0, false
	}
	return escapeClass(ch), end, true
}

func parseClassEnd(_ string, _, end int, _ *regexp2.Match) (string, int, bool) {
	return "", end, true
}
