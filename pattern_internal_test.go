package fpat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEqualPatternsShareEngine(t *testing.T) {
	env := NewEnv(nil)
	a := env.MustCompile(`/d+; i`)
	b := env.MustCompile(`\d+; ui`)
	require.True(t, a.text == b.text && a.opts == b.opts)

	ra, err := a.regex()
	require.NoError(t, err)
	rb, err := b.regex()
	require.NoError(t, err)
	assert.Same(t, ra, rb)

	rc, err := a.WithIgnoreCase(false).regex()
	require.NoError(t, err)
	assert.NotSame(t, ra, rc)
}

func TestSplitFlags(t *testing.T) {
	tests := []struct {
		raw, body, flags string
	}{
		{`abc`, `abc`, ``},
		{`abc; i`, `abc`, `i`},
		{`abc; iMf `, `abc`, `iMf`},
		{`a; b; u`, `a; b`, `u`},
		{`a; x`, `a; x`, ``},
		{`a; `, `a; `, ``},
		{`a;i`, `a;i`, ``},
	}
	for _, tt := range tests {
		body, flags := splitFlags(tt.raw)
		assert.Equal(t, tt.body, body, tt.raw)
		assert.Equal(t, tt.flags, flags, tt.raw)
	}
}
