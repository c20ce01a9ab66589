package fpat_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kolkov/fpat"
)

func TestNextLine(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"mixed terminators", "a\r\nb\rc\nd", []string{"a", "b", "c", "d"}},
		{"trailing terminator", "a\n", []string{"a"}},
		{"blank lines", "\n\nx", []string{"", "", "x"}},
		{"empty", "", nil},
		{"cr then lf line", "a\r\n\nb", []string{"a", "", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := fpat.NewSource(tt.text)
			var got []string
			for {
				line, ok := s.NextLine()
				if !ok {
					break
				}
				got = append(got, line)
			}
			assert.Equal(t, tt.want, got)
			assert.True(t, s.AtEnd())
			assert.Equal(t, 0, s.Len())
		})
	}
}

func TestPeek(t *testing.T) {
	s := fpat.NewSource("first\nsecond\n")

	line, ok := s.PeekNextLine()
	require.True(t, ok)
	assert.Equal(t, "first", line)
	assert.Equal(t, 0, s.Index())

	assert.True(t, s.AdvanceToPeek())
	assert.Equal(t, 6, s.Index())
	assert.Equal(t, "second\n", s.Current())
	assert.False(t, s.AdvanceToPeek(), "a peek is consumed once")

	_, ok = s.PeekNextLine()
	require.True(t, ok)
	s.Advance(1)
	assert.False(t, s.AdvanceToPeek(), "advancing discards the peek")
	assert.Equal(t, "econd\n", s.Current())
}

func TestAdvance(t *testing.T) {
	s := fpat.NewSource("abc")
	s.Advance(2)
	assert.Equal(t, "c", s.Current())
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, "abc", s.Text())
	assert.Panics(t, func() { s.Advance(2) })
	assert.Panics(t, func() { s.Advance(-1) })
}

func TestGoTo(t *testing.T) {
	p := fpat.NewEnv(nil).MustCompile(`^ 'bar'`)
	s := fpat.NewSource("x=1\nfoo\nbar baz\nqux")

	line, ok, err := s.GoTo(p)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "bar baz", line)
	assert.Equal(t, "qux", s.Current())

	_, ok, err = s.GoTo(p)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.True(t, s.AtEnd())
}

func TestGoToFault(t *testing.T) {
	p := fpat.NewEnv(nil).MustCompile(`[; u`)
	s := fpat.NewSource("a\nb")
	_, _, err := s.GoTo(p)
	assert.Error(t, err)
	assert.Equal(t, 0, s.Index())
}

func TestBookmarks(t *testing.T) {
	s := fpat.NewSourceLines("one\ntwo\nthree")
	assert.False(t, s.GoToBookmark(), "empty stack pops nothing")

	s.Bookmark()
	s.NextLine()
	s.Bookmark()
	s.NextLine()
	assert.Equal(t, 2, s.Bookmarks())

	require.True(t, s.GoToBookmark())
	assert.Equal(t, "two\nthree", s.Current())
	require.True(t, s.GoToBookmark())
	assert.Equal(t, 0, s.Index())
	assert.False(t, s.GoToBookmark())
	assert.Equal(t, 0, s.Index())
}

func TestLineSequences(t *testing.T) {
	s := fpat.NewSourceLines("h1\nh2\n\nbody1\nbody2\nEND\ntail")

	header := slices.Collect(s.While(func(l string) bool { return l != "" }))
	assert.Equal(t, []string{"h1", "h2"}, header)
	assert.Equal(t, "\nbody1\nbody2\nEND\ntail", s.Current())

	s.NextLine()
	body := slices.Collect(s.Until(func(l string) bool { return l == "END" }))
	assert.Equal(t, []string{"body1", "body2"}, body)

	rest := slices.Collect(s.Lines())
	assert.Equal(t, []string{"END", "tail"}, rest)
	assert.True(t, s.AtEnd())
}

func TestLinesStopEarly(t *testing.T) {
	s := fpat.NewSourceLines("a\nb\nc")
	for line := range s.Lines() {
		if line == "b" {
			break
		}
	}
	assert.Equal(t, "c", s.Current())
}
