package heuristic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvp-joe/csift/internal/extract"
)

// Test Plan for argument splitting:
// - Empty text and "void" yield an empty (non-nil) slice
// - Simple comma-separated parameters split in order
// - Commas inside parentheses do not split: a function-pointer
//   parameter stays one argument
// - Pointer parameters keep the star on the name side of the split
// - A single-token parameter is all type with an empty name
// - Raw always preserves the trimmed original parameter text

func TestSplitArgs_EmptyAndVoid(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "   ", "void", " void "} {
		args := SplitArgs(input)
		require.NotNil(t, args, "input %q", input)
		assert.Empty(t, args, "input %q", input)
	}
}

func TestSplitArgs_Simple(t *testing.T) {
	t.Parallel()

	args := SplitArgs("int a, char b")
	require.Len(t, args, 2)
	assert.Equal(t, extract.Argument{Raw: "int a", Type: "int", Name: "a"}, args[0])
	assert.Equal(t, extract.Argument{Raw: "char b", Type: "char", Name: "b"}, args[1])
}

func TestSplitArgs_FunctionPointerParameter(t *testing.T) {
	t.Parallel()

	// The comma inside the function-pointer's own parameter list is at
	// parenthesis depth one and must not split the outer list.
	args := SplitArgs("int a, int (*cb)(int, int)")
	require.Len(t, args, 2)
	assert.Equal(t, "int a", args[0].Raw)
	assert.Equal(t, "int (*cb)(int, int)", args[1].Raw)
}

func TestSplitArgs_PointerParameter(t *testing.T) {
	t.Parallel()

	// The naive last-token split leaves the star attached to the name.
	args := SplitArgs("const char *name")
	require.Len(t, args, 1)
	assert.Equal(t, "const char *name", args[0].Raw)
	assert.Equal(t, "const char", args[0].Type)
	assert.Equal(t, "*name", args[0].Name)
}

func TestSplitArgs_UnnamedParameter(t *testing.T) {
	t.Parallel()

	args := SplitArgs("int")
	require.Len(t, args, 1)
	assert.Equal(t, "int", args[0].Type)
	assert.Equal(t, "", args[0].Name)
}
