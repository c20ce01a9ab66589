package engine

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		in      string
		want    Kind
		wantErr bool
	}{
		{"", Backtrack, false},
		{"backtrack", Backtrack, false},
		{"Regexp2", Backtrack, false},
		{"linear", Linear, false},
		{" coregex ", Linear, false},
		{"pcre", Backtrack, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseKind(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
	assert.Equal(t, "Kind(9)", Kind(9).String())
}

func TestCompileError(t *testing.T) {
	for _, kind := range []Kind{Backtrack, Linear} {
		t.Run(kind.String(), func(t *testing.T) {
			_, err := Compile("(abc", Options{}, kind)
			require.Error(t, err)

			var ce *CompileError
			require.True(t, errors.As(err, &ce))
			assert.Equal(t, "(abc", ce.Text)
			assert.Equal(t, kind, ce.Kind)
			assert.NotNil(t, errors.Unwrap(err))
		})
	}
}

func TestMustCompilePanics(t *testing.T) {
	assert.Panics(t, func() { MustCompile("[", Options{}, Backtrack) })
}

func TestFindAll(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		input   string
		want    [][]Span
	}{
		{"digits", `[0-9]+`, "a1b23c456d", [][]Span{{{1, 2}}, {{3, 5}}, {{6, 9}}}},
		{"none", `xyz`, "hello world", nil},
		{"groups", `(\w)(\d)`, "a1 b2", [][]Span{
			{{0, 2}, {0, 1}, {1, 2}},
			{{3, 5}, {3, 4}, {4, 5}},
		}},
		{"unmatched group", `(a)|(b)`, "b", [][]Span{{{0, 1}, {-1, -1}, {0, 1}}}},
		{"multibyte", `w\S+`, "héllo wörld", [][]Span{{{7, 13}}}},
	}

	for _, kind := range []Kind{Backtrack, Linear} {
		for _, tt := range tests {
			t.Run(kind.String()+"/"+tt.name, func(t *testing.T) {
				re := MustCompile(tt.pattern, Options{}, kind)
				got, err := re.FindAll(tt.input)
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			})
		}
	}
}

func TestOptions(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		opts    Options
		input   string
		want    bool
	}{
		{"case sensitive", `abc`, Options{}, "ABC", false},
		{"ignore case", `abc`, Options{IgnoreCase: true}, "ABC", true},
		{"single line", `^b`, Options{}, "a\nb", false},
		{"multiline", `^b`, Options{Multiline: true}, "a\nb", true},
	}

	for _, kind := range []Kind{Backtrack, Linear} {
		for _, tt := range tests {
			t.Run(kind.String()+"/"+tt.name, func(t *testing.T) {
				re := MustCompile(tt.pattern, tt.opts, kind)
				assert.Equal(t, tt.opts, re.Options())
				assert.Equal(t, tt.pattern, re.Text())
				got, err := re.MatchString(tt.input)
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			})
		}
	}
	assert.Equal(t, "im", Options{IgnoreCase: true, Multiline: true}.String())
}

func TestGroupNames(t *testing.T) {
	re := MustCompile(`(?<year>\d{4})-(\d{2})`, Options{}, Backtrack)
	// Named groups are numbered after unnamed ones.
	assert.Equal(t, []string{"0", "1", "year"}, re.GroupNames())

	re = MustCompile(`(?P<year>\d{4})-(\d{2})`, Options{}, Linear)
	assert.Equal(t, []string{"", "year", ""}, re.GroupNames())
}

func TestBacktrackConstructs(t *testing.T) {
	tests := []struct {
		pattern string
		input   string
		want    bool
	}{
		{`(?<=a)b`, "ab", true},
		{`(?<!a)b`, "ab", false},
		{`(\w)\1`, "xx", true},
		{`(?<c>\w)\k<c>`, "xy", false},
		{`(?>a+)b`, "aab", true},
		{`a(?#note)b`, "ab", true},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			got, err := MustCompile(tt.pattern, Options{}, Backtrack).MatchString(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCache(t *testing.T) {
	c := NewCache(2, nil)
	assert.Equal(t, 0, c.Len())

	key := Key{Text: `\d+`}
	re1, err := c.Get(key)
	require.NoError(t, err)
	re2, err := c.Get(key)
	require.NoError(t, err)
	assert.Same(t, re1, re2)

	other, err := c.Get(Key{Text: `\d+`, Options: Options{IgnoreCase: true}})
	require.NoError(t, err)
	assert.NotSame(t, re1, other)
	assert.Equal(t, 2, c.Len())

	_, err = c.Get(Key{Text: `\d+`, Kind: Linear})
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())

	c.Clear()
	assert.Equal(t, 0, c.Len())
}

func TestCacheDoesNotKeepFailures(t *testing.T) {
	c := NewCache(0, nil)
	_, err := c.Get(Key{Text: "("})
	require.Error(t, err)
	assert.Equal(t, 0, c.Len())
}

func TestCacheConcurrency(t *testing.T) {
	c := NewCache(0, nil)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := Key{Text: fmt.Sprintf("p%d", n%10)}
			re, err := c.Get(key)
			if assert.NoError(t, err) {
				assert.Equal(t, key.Text, re.Text())
			}
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 10, c.Len())
}

func BenchmarkFindAll(b *testing.B) {
	input := "The quick brown fox jumps over the lazy dog 12345 times"
	for _, kind := range []Kind{Backtrack, Linear} {
		re := MustCompile(`\w+`, Options{}, kind)
		b.Run(kind.String(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = re.FindAll(input)
			}
		})
	}
}
