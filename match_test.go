package fpat_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kolkov/fpat"
)

func mustMatch(t *testing.T, p *fpat.Pattern, input string) *fpat.MatchResult {
	t.Helper()
	r, err := p.Match(input)
	require.NoError(t, err)
	require.NotNil(t, r, "expected a match of %q in %q", p.Text(), input)
	return r
}

func TestShorthandExamples(t *testing.T) {
	env := fpat.NewEnv(nil)

	digits := env.MustCompile(`^ /d+ $; f`)
	r := mustMatch(t, digits, "12345")
	assert.Equal(t, "12345", r.Value(0))
	r, err := digits.Match("12a45")
	require.NoError(t, err)
	assert.Nil(t, r)

	notABC := env.MustCompile(`-[ 'abc' ]`)
	ok, err := notABC.IsMatch("d")
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = notABC.IsMatch("a")
	require.NoError(t, err)
	assert.False(t, ok)

	words := env.MustCompile(`/w 3%5`)
	r = mustMatch(t, words, "abcdef")
	assert.Equal(t, 1, r.Len())
	assert.Equal(t, "abcde", r.Value(0))
	whole := env.MustCompile(`^ /w 3%5 $`)
	ok, err = whole.IsMatch("abcdef")
	require.NoError(t, err)
	assert.False(t, ok)
	ok, err = whole.IsMatch("abc")
	require.NoError(t, err)
	assert.True(t, ok)

	year := env.MustCompile(`/(year /d1%4)`)
	r = mustMatch(t, year, "2024")
	assert.Equal(t, "2024", r.TextByName(0, "year"))
}

func TestGroups(t *testing.T) {
	p := fpat.NewEnv(nil).MustCompile(`/(key /w+) '=' /(val /w+)`)
	require.Equal(t, `(?<key>\w+)=(?<val>\w+)`, p.Text())

	r := mustMatch(t, p, "a=1, bb=22")
	require.Equal(t, 2, r.Len())
	assert.Equal(t, "a=1, bb=22", r.Input())
	assert.Same(t, p, r.Pattern())

	m := r.Match(1)
	assert.Equal(t, 1, m.Ordinal)
	assert.Equal(t, 5, m.Index)
	assert.Equal(t, 5, m.Length)
	assert.Equal(t, "bb=22", m.Text)
	assert.Equal(t, fpat.Group{Index: 5, Length: 2, Text: "bb", Ordinal: 1, Success: true}, m.Groups[1])
	assert.Equal(t, fpat.Group{Index: 8, Length: 2, Text: "22", Ordinal: 2, Success: true}, r.GroupByName(1, "val"))
	assert.Equal(t, 10, r.Group(1, 2).End())

	assert.Equal(t, []string{"key", "val"}, r.Names())
	assert.Equal(t, "", r.Name(0))
	assert.Equal(t, "key", r.Name(1))
	i, ok := r.Index("val")
	assert.True(t, ok)
	assert.Equal(t, 2, i)
	_, ok = r.Index("nope")
	assert.False(t, ok)
}

func TestEditKeepsSiblingOffsets(t *testing.T) {
	p := fpat.NewEnv(nil).MustCompile(`/(key /w+) '=' /(val /w+)`)
	r := mustMatch(t, p, "a=1, bb=22")
	before := r.Group(0, 2)

	r.SetTextByName(0, "key", "alpha")
	assert.Equal(t, "alpha", r.TextByName(0, "key"))
	assert.Equal(t, before, r.Group(0, 2))
	assert.Equal(t, "1", r.Text(0, 2))
	// Group values keep the text seen at match time.
	assert.Equal(t, "a", r.Group(0, 1).Text)

	r.SetText(1, 2, "twenty-two")
	assert.True(t, r.Edited())
	out, err := r.Render()
	require.NoError(t, err)
	assert.Equal(t, "alpha=1, bb=twenty-two", out)
}

func TestOverlappingEditsFail(t *testing.T) {
	p := fpat.NewEnv(nil).MustCompile(`/(key /w+) '=' /(val /w+)`)
	r := mustMatch(t, p, "a=1")
	r.SetValue(0, "x")
	r.SetText(0, 1, "y")
	_, err := r.Render()
	assert.ErrorIs(t, err, fpat.ErrOverlap)

	r.Reset()
	assert.False(t, r.Edited())
	assert.Equal(t, "a", r.Text(0, 1))
	r.SetText(0, 1, "y")
	out, err := r.Render()
	require.NoError(t, err)
	assert.Equal(t, "y=1", out)
}

func TestUnmatchedGroup(t *testing.T) {
	p := fpat.NewEnv(nil).MustCompile(`('a') | ('b')`)
	require.Equal(t, `(a)|(b)`, p.Text())

	r := mustMatch(t, p, "b")
	g := r.Group(0, 1)
	assert.False(t, g.Success)
	assert.Equal(t, -1, g.Index)
	assert.Equal(t, "", r.Text(0, 1))
	assert.True(t, r.Group(0, 2).Success)
	assert.Empty(t, r.Names())
	assert.Panics(t, func() { r.SetText(0, 1, "x") })

	var seen []int
	r.EditGroups(true, func(m *fpat.Match, g fpat.Group, text string) (string, bool) {
		seen = append(seen, g.Ordinal)
		return "", false
	})
	assert.Equal(t, []int{2}, seen)
}

func TestByteOffsets(t *testing.T) {
	p := fpat.NewEnv(nil).MustCompile(`'w' /S+`)
	r := mustMatch(t, p, "héllo wörld")
	m := r.Match(0)
	assert.Equal(t, 7, m.Index)
	assert.Equal(t, 6, m.Length)
	assert.Equal(t, "wörld", m.Text)

	r.SetValue(0, "welt")
	out, err := r.Render()
	require.NoError(t, err)
	assert.Equal(t, "héllo welt", out)
}

func TestEditMatches(t *testing.T) {
	p := fpat.NewEnv(nil).MustCompile(`/d+`)
	r := mustMatch(t, p, "a1b22c333")
	n := r.EditMatches(func(m *fpat.Match, text string) (string, bool) {
		if m.Ordinal == 1 {
			return "", false
		}
		return "[" + text + "]", true
	})
	assert.Equal(t, 2, n)
	out, err := r.Render()
	require.NoError(t, err)
	assert.Equal(t, "a[1]b22c[333]", out)
}

func TestEditGroups(t *testing.T) {
	p := fpat.NewEnv(nil).MustCompile(`/(key /w+) '=' /(val /w+)`)
	r := mustMatch(t, p, "a=b; c=d")
	n := r.EditGroups(true, func(m *fpat.Match, g fpat.Group, text string) (string, bool) {
		return strings.ToUpper(text), true
	})
	assert.Equal(t, 4, n)
	out, err := r.Render()
	require.NoError(t, err)
	assert.Equal(t, "A=B; C=D", out)
}

func TestRenderWithoutEdits(t *testing.T) {
	r := mustMatch(t, fpat.NewEnv(nil).MustCompile(`/d`), "x1")
	assert.False(t, r.Edited())
	out, err := r.Render()
	require.NoError(t, err)
	assert.Equal(t, "x1", out)
}

func TestAccessorsPanic(t *testing.T) {
	r := mustMatch(t, fpat.NewEnv(nil).MustCompile(`/(n /d)`), "1")
	assert.Panics(t, func() { r.Match(1) })
	assert.Panics(t, func() { r.Match(-1) })
	assert.Panics(t, func() { r.Group(0, 2) })
	assert.Panics(t, func() { r.GroupByName(0, "missing") })
	assert.Panics(t, func() { r.TextByName(0, "missing") })
	assert.Panics(t, func() { r.SetTextByName(0, "missing", "x") })
	assert.Panics(t, func() { r.Name(5) })
	assert.NotPanics(t, func() { r.TextByName(0, "n") })
}
