package fpat

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Outcome classifies the result of a replacement.
type Outcome uint8

const (
	// NoMatch means the pattern did not match the input.
	NoMatch Outcome = iota
	// NoChange means the pattern matched but no edit was made.
	NoChange
	// Replaced means at least one edit was made and rendered.
	Replaced
	// Fault means matching or rendering failed; see Replacement.Err.
	Fault
)

var outcomeNames = [...]string{
	NoMatch:  "no match",
	NoChange: "no change",
	Replaced: "replaced",
	Fault:    "fault",
}

func (o Outcome) String() string {
	if int(o) < len(outcomeNames) {
		return outcomeNames[o]
	}
	return fmt.Sprintf("Outcome(%d)", o)
}

// Replacement is the result of a replace operation. Text holds the
// rendered input only when Outcome is Replaced.
type Replacement struct {
	Outcome Outcome
	Text    string
	Err     error
}

func fault(err error) Replacement {
	return Replacement{Outcome: Fault, Err: err}
}

func (p *Pattern) render(r *MatchResult) Replacement {
	if !r.Edited() {
		return Replacement{Outcome: NoChange}
	}
	out, err := r.Render()
	if err != nil {
		return fault(&ReplaceError{Pattern: p.text, Err: err})
	}
	return Replacement{Outcome: Replaced, Text: out}
}

// Replace matches input and calls fn for every participating group of
// every match, group 0 included, with the group's current text. The
// replacements fn returns are applied in one pass; they must address
// disjoint windows.
func (p *Pattern) Replace(input string, fn func(match, group int, text string) (string, bool)) Replacement {
	r, err := p.Match(input)
	if err != nil {
		return fault(err)
	}
	if r == nil {
		return Replacement{Outcome: NoMatch}
	}
	r.EditGroups(false, func(m *Match, g Group, text string) (string, bool) {
		return fn(m.Ordinal, g.Ordinal, text)
	})
	return p.render(r)
}

// ReplaceGroups matches input and calls fn with the texts of groups 1..n
// of the first match. fn returns a list of the same length; every entry
// that differs from the current text replaces its group.
func (p *Pattern) ReplaceGroups(input string, fn func(groups []string) ([]string, bool)) Replacement {
	r, err := p.Match(input)
	if err != nil {
		return fault(err)
	}
	if r == nil {
		return Replacement{Outcome: NoMatch}
	}

	m := r.Match(0)
	texts := make([]string, len(m.Groups)-1)
	for i := range texts {
		texts[i] = r.Text(0, i+1)
	}
	repl, ok := fn(append([]string(nil), texts...))
	if !ok {
		return Replacement{Outcome: NoChange}
	}
	if len(repl) != len(texts) {
		return fault(&ReplaceError{
			Pattern: p.text,
			Err:     fmt.Errorf("got %d replacement groups, want %d", len(repl), len(texts)),
		})
	}
	for i, s := range repl {
		if s == texts[i] || !m.Groups[i+1].Success {
			continue
		}
		r.SetText(0, i+1, s)
	}
	return p.render(r)
}

// ReplaceTemplate replaces every match with template expanded against it.
// In template, $N and ${N} stand for group N, ${name} for a named group
// and $$ for a literal dollar sign. A group that did not participate
// expands to "".
func (p *Pattern) ReplaceTemplate(input, template string) Replacement {
	r, err := p.Match(input)
	if err != nil {
		return fault(err)
	}
	if r == nil {
		return Replacement{Outcome: NoMatch}
	}
	for _, m := range r.Matches() {
		s, err := r.Expand(m.Ordinal, template)
		if err != nil {
			return fault(&ReplaceError{Pattern: p.text, Err: err})
		}
		r.SetValue(m.Ordinal, s)
	}
	return p.render(r)
}

var errTemplate = errors.New("invalid template")

// Expand expands template against match m as ReplaceTemplate does.
// Unknown groups are reported as errors.
func (r *MatchResult) Expand(m int, template string) (string, error) {
	match := r.Match(m)
	var sb strings.Builder
	for i := 0; i < len(template); i++ {
		c := template[i]
		if c != '$' || i+1 == len(template) {
			sb.WriteByte(c)
			continue
		}

		var ref string
		switch next := template[i+1]; {
		case next == '$':
			sb.WriteByte('$')
			i++
			continue
		case next == '{':
			end := strings.IndexByte(template[i+2:], '}')
			if end < 0 {
				return "", fmt.Errorf("%w: unterminated ${ at offset %d", errTemplate, i)
			}
			ref = template[i+2 : i+2+end]
			i += end + 2
		case next >= '0' && next <= '9':
			j := i + 1
			for j < len(template) && template[j] >= '0' && template[j] <= '9' {
				j++
			}
			ref = template[i+1 : j]
			i = j - 1
		default:
			sb.WriteByte(c)
			continue
		}

		g, ok := r.Index(ref)
		if !ok {
			n, err := strconv.Atoi(ref)
			if err != nil || n < 0 || n >= len(match.Groups) {
				return "", fmt.Errorf("%w: unknown group %q", errTemplate, ref)
			}
			g = n
		}
		sb.WriteString(r.Text(m, g))
	}
	return sb.String(), nil
}
