package heuristic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for brace matching:
// - Simple balanced body returns the inclusive { ... } substring
// - Nested braces are tracked to the matching outer close
// - Unbalanced input returns errUnbalanced
// - Offset not pointing at '{' is an error
// - Text after the matching close brace is excluded

func TestMatchBraces_Simple(t *testing.T) {
	t.Parallel()

	text := "int f() { return 1; } int g();"
	start := 8
	require.Equal(t, byte('{'), text[start])

	body, err := matchBraces(text, start)
	require.NoError(t, err)
	assert.Equal(t, "{ return 1; }", body)
}

func TestMatchBraces_Nested(t *testing.T) {
	t.Parallel()

	text := "{ if (x) { y(); } else { z(); } } tail"
	body, err := matchBraces(text, 0)
	require.NoError(t, err)
	assert.Equal(t, "{ if (x) { y(); } else { z(); } }", body)
}

func TestMatchBraces_Unbalanced(t *testing.T) {
	t.Parallel()

	_, err := matchBraces("{ never closed", 0)
	assert.ErrorIs(t, err, errUnbalanced)
}

func TestMatchBraces_NotAnOpeningBrace(t *testing.T) {
	t.Parallel()

	_, err := matchBraces("int x;", 0)
	assert.Error(t, err)

	_, err = matchBraces("{}", 5)
	assert.Error(t, err)
}
