package lexer

import (
	"strings"

	"github.com/dlclark/regexp2"

	"github.com/kolkov/fpat/internal/token"
)

// topChain is the fixed priority order of the top-level translators.
// String and comment translators come before the class and identifier
// translators so that their bodies are never split by a shorter prefix.
var topChain = []*Translator{
	newTranslator(token.COMMENT, `/\*`, parseComment),
	newTranslator(token.QUOTED, `/?['"]`, parseQuoted),
	newTranslator(token.NAMED_GROUP, `/\((?<name>[A-Za-z_][A-Za-z0-9_]*)`, parseNamedGroup),
	newTranslator(token.NAMED_BACKREF, `/<(?<name>[A-Za-z_][A-Za-z0-9_]*)>`, parseNamedBackref),
	newTranslator(token.BACKREF, `/(?<num>[0-9]+)`, parseBackref),
	newTranslator(token.REMAINDER, `/?@`, parseRemainder),
	newTranslator(token.CLASS, `[-/]?\[`, parseClass),
	newTranslator(token.SPAN_BREAK, `/?-?\{`, parseSpanBreak),
	newTranslator(token.SLASH_CLASS, `/(?<c>[wWdDsSbBtTrRnNaAzZ])(?![A-Za-z])`, parseSlashClass),
	newTranslator(token.OUTSIDE, `(?<neg>-)?/(?<name>[a-z]+)(?![A-Za-z])`, parseOutside),
	newTranslator(token.QUOTE_MARKER, "`(?<name>[a-z]+)`", parseMarker),
	newTranslator(token.QUANTIFIER, `(?<min>[0-9]*)(?<pct>%)?(?<max>[0-9]*)`, parseQuantifier),
	newTranslator(token.GROUP, `(?<neg>-)?\((?<op>[:!&<>]|~(?<flags>[A-Za-z-]+):)?`, parseGroup),
	newTranslator(token.PASSTHROUGH, `[*?.+,|^$(){}0-9]`, parsePassthrough),
}

var slashClasses = map[string]string{
	"w": `\w`, "W": `\W`,
	"d": `\d`, "D": `\D`,
	"s": `\s`, "S": `\S`,
	"b": `\b`, "B": `\B`,
	"t": `\t`, "T": `[^\t]`,
	"r": `\r`, "R": `[^\r]`,
	"n": `\n`, "N": `[^\n]`,
	"a": `\a`, "A": `\A`,
	"z": `\z`, "Z": `\Z`,
}

var groupOpeners = map[string]string{
	"":  "(",
	":": "(?:",
	"!": "(?>",
	"&": "(?(",
	"<": "(?<=",
	">": "(?=",
}

var negatedLookarounds = map[string]string{
	"<": "(?<!",
	">": "(?!",
}

func groupText(m *regexp2.Match, name string) string {
	g := m.GroupByName(name)
	if g == nil || len(g.Captures) == 0 {
		return ""
	}
	return g.String()
}

func parseComment(src string, start, end int, _ *regexp2.Match) (string, int, bool) {
	i := strings.Index(src[end:], "*/")
	if i < 0 {
		return "", 0, false
	}
	body := strings.TrimSpace(src[end : end+i])
	body = strings.NewReplacer("(", "", ")", "").Replace(body)
	return "(?#" + body + ")", end + i + 2, true
}

func parseQuoted(src string, start, _ int, _ *regexp2.Match) (string, int, bool) {
	grouped := src[start] == '/'
	i := start
	if grouped {
		i++
	}
	lit, next, ok := scanQuoted(src, i)
	if !ok {
		return "", 0, false
	}
	return group(escapeLiteral(lit), grouped), next, true
}

func parseNamedGroup(_ string, _, end int, m *regexp2.Match) (string, int, bool) {
	return "(?<" + groupText(m, "name") + ">", end, true
}

func parseNamedBackref(_ string, _, end int, m *regexp2.Match) (string, int, bool) {
	return `\k<` + groupText(m, "name") + ">", end, true
}

func parseBackref(_ string, _, end int, m *regexp2.Match) (string, int, bool) {
	num := groupText(m, "num")
	if len(num) > 1 {
		return `\k<` + num + ">", end, true
	}
	return `\` + num, end, true
}

func parseRemainder(src string, start, end int, _ *regexp2.Match) (string, int, bool) {
	return group(".*$", src[start] == '/'), end, true
}

func parseSpanBreak(src string, start, end int, _ *regexp2.Match) (string, int, bool) {
	head := src[start:end]
	grouped := strings.HasPrefix(head, "/")
	negated := strings.Contains(head, "-")

	var sb strings.Builder
	i := end
	for ; i < len(src) && src[i] != '}'; i++ {
		if src[i] == '/' && i+1 < len(src) {
			i++
		}
		sb.WriteByte(src[i])
	}
	if i >= len(src) || sb.Len() == 0 {
		return "", 0, false
	}

	set := escapeClass(sb.String())
	text := "[" + set + "]+"
	if negated {
		text = "[^" + set + "]*?"
	}
	return group(text, grouped), i + 1, true
}

func parseSlashClass(_ string, _, end int, m *regexp2.Match) (string, int, bool) {
	text, ok := slashClasses[groupText(m, "c")]
	return text, end, ok
}

func parseOutside(_ string, _, end int, m *regexp2.Match) (string, int, bool) {
	set, ok := shorthandSets[groupText(m, "name")]
	if !ok {
		return "", 0, false
	}
	if groupText(m, "neg") != "" {
		return "[^" + set + "]", end, true
	}
	return "[" + set + "]", end, true
}

func parseMarker(_ string, _, end int, m *regexp2.Match) (string, int, bool) {
	ch, ok := markers[groupText(m, "name")]
	if !ok {
		return "", 0, false
	}
	return escapeLiteral(ch), end, true
}

func parseQuantifier(_ string, _, end int, m *regexp2.Match) (string, int, bool) {
	lo, hi := groupText(m, "min"), groupText(m, "max")
	if groupText(m, "pct") == "" {
		if lo == "" || hi != "" {
			return "", 0, false
		}
		return "{" + lo + "}", end, true
	}
	switch {
	case lo == "" && hi == "":
		return "", 0, false
	case lo == "":
		lo = "0"
	}
	return "{" + lo + "," + hi + "}", end, true
}

func parseGroup(_ string, _, end int, m *regexp2.Match) (string, int, bool) {
	op := groupText(m, "op")
	if groupText(m, "neg") != "" {
		text, ok := negatedLookarounds[op]
		return text, end, ok
	}
	if flags := groupText(m, "flags"); flags != "" {
		return "(?" + flags + ":", end, true
	}
	text, ok := groupOpeners[op]
	return text, end, ok
}

func parsePassthrough(src string, start, end int, _ *regexp2.Match) (string, int, bool) {
	return src[start:end], end, true
}
