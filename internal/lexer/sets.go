package lexer

import "strings"

// Character lists usable inside a bracket expression. The outside shorthand
// wraps them in brackets; the inside shorthand emits them as they are.
var shorthandSets = map[string]string{
	"alpha":      `a-zA-Z`,
	"alphanum":   `a-zA-Z0-9`,
	"digit":      `0-9`,
	"uppercase":  `A-Z`,
	"u":          `A-Z`,
	"lowercase":  `a-z`,
	"l":          `a-z`,
	"hex":        `0-9a-fA-F`,
	"h":          `0-9a-fA-F`,
	"punct":      punctSet,
	"p":          punctSet,
	"crlf":       `\r\n`,
	"cr":         `\r`,
	"lf":         `\n`,
	"vowel":      `aeiouAEIOU`,
	"lvowel":     `aeiou`,
	"uvowel":     `AEIOU`,
	"consonant":  `b-df-hj-np-tv-zB-DF-HJ-NP-TV-Z`,
	"lconsonant": `b-df-hj-np-tv-z`,
	"uconsonant": `B-DF-HJ-NP-TV-Z`,
	"real":       `\-+.0-9`,
	"r":          `\-+.0-9`,
	"space":      spaceSet,
	"word":       `a-zA-Z0-9_`,
}

// Bareword classes valid inside [...].
var namedClasses = map[string]string{
	"alpha":  `a-zA-Z`,
	"digit":  `0-9`,
	"alnum":  `a-zA-Z0-9`,
	"blank":  ` \t`,
	"cntrl":  `\x00-\x1F\x7F`,
	"graph":  `!-~`,
	"lower":  `a-z`,
	"upper":  `A-Z`,
	"print":  ` -~`,
	"punct":  punctSet,
	"space":  spaceSet,
	"xdigit": `0-9A-Fa-f`,
	"lcon":   `b-df-hj-np-tv-z`,
	"ucon":   `B-DF-HJ-NP-TV-Z`,
	"lvow":   `aeiou`,
	"uvow":   `AEIOU`,
	"squote": `'`,
	"dquote": `"`,
	"quote":  `'"`,
}

// Backtick identifiers naming a single character.
var markers = map[string]string{
	"quote": `"`,
	"apos":  `'`,
	"tick":  "`",
	"space": " ",
	"tab":   "\t",
}

const (
	punctSet = "!-/:-@\\[-`{-~"
	spaceSet = ` \t\r\n\f\v`
)

// escapeLiteral escapes text for use outside a character class.
func escapeLiteral(s string) string {
	return escapeWith(s, `\.+*?()|[]{}^$`)
}

// escapeClass escapes text for use inside a character class.
func escapeClass(s string) string {
	return escapeWith(s, `\][^-`)
}

func escapeWith(s, special string) string {
	if !strings.ContainsAny(s, special) {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s) + 8)
	for _, r := range s {
		if strings.ContainsRune(special, r) {
			sb.WriteByte('\\')
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// scanQuoted reads a quoted body starting at the opening quote src[i].
// A '/' takes the next byte literally. It returns the unescaped body and
// the offset past the closing quote.
func scanQuoted(src string, i int) (string, int, bool) {
	if i >= len(src) || (src[i] != '\'' && src[i] != '"') {
		return "", 0, false
	}
	quote := src[i]
	var sb strings.Builder
	for i++; i < len(src); i++ {
		switch c := src[i]; {
		case c == '/' && i+1 < len(src):
			i++
			sb.WriteByte(src[i])
		case c == quote:
			return sb.String(), i + 1, true
		default:
			sb.WriteByte(c)
		}
	}
	return "", 0, false
}

func group(text string, grouped bool) string {
	if grouped {
		return "(" + text + ")"
	}
	return text
}
