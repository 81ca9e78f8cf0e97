package heuristic

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvp-joe/csift/internal/extract"
)

// Test Plan for fixture extraction:
// - calc.h: two value-carrying macros (the bare include guard is not an
//   object-like "name value" define), one enum, one struct, three
//   prototypes with "no body"
// - calc.c: three definitions; calls inside bodies do not produce extra
//   prototype records because the names are already seen

func loadFixture(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", "..", "testdata", "code", "c", name))
	require.NoError(t, err)
	return data
}

func TestEngine_HeaderFixture(t *testing.T) {
	t.Parallel()

	summary, err := NewEngine().Extract(loadFixture(t, "calc.h"))
	require.NoError(t, err)

	require.Len(t, summary.Macros, 2)
	assert.Equal(t, "CALC_MAX", summary.Macros[0].Name)
	assert.Equal(t, "CALC_MIN", summary.Macros[1].Name)

	require.Len(t, summary.Types, 2)
	assert.Equal(t, "CalcOp", *summary.Types[0].TypedefName)
	assert.Equal(t, []string{"OP_ADD", "OP_SUB"}, summary.Types[0].Members)
	assert.Equal(t, "CalcInput", *summary.Types[1].TypedefName)
	assert.Equal(t, []string{"lhs", "rhs", "op"}, summary.Types[1].Members)

	require.Len(t, summary.Functions, 3)
	for _, fn := range summary.Functions {
		assert.Equal(t, extract.NoBody, fn.Body)
	}
	assert.Equal(t, "calc_apply", summary.Functions[0].Name)

	assert.Equal(t, extract.Counts{Macros: 2, Structs: 1, Enums: 1, Functions: 3}, summary.Counts)
}

func TestEngine_SourceFixture(t *testing.T) {
	t.Parallel()

	summary, err := NewEngine().Extract(loadFixture(t, "calc.c"))
	require.NoError(t, err)

	assert.Empty(t, summary.Macros)
	assert.Empty(t, summary.Types)

	require.Len(t, summary.Functions, 3)
	names := []string{summary.Functions[0].Name, summary.Functions[1].Name, summary.Functions[2].Name}
	assert.Equal(t, []string{"calc_add", "calc_sub", "calc_apply"}, names)
	for _, fn := range summary.Functions {
		assert.NotEqual(t, extract.NoBody, fn.Body)
	}
}
