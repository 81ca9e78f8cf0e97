package precise

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvp-joe/csift/internal/extract"
)

// Test Plan for the tree-sitter strategy:
// - Object-like and function-like macros are both extracted
// - typedef struct/enum produce typed records with member order
// - Tagged specifiers outside a typedef are captured with the tag name
// - Function definitions carry bodies; prototypes carry the sentinel
// - Definition wins over a preceding or following prototype
// - Pointer return types fold the star back into the type text
// - Function-pointer parameters recover the inner identifier
// - Syntax errors fail extraction (the orchestrator handles fallback)
// - Empty source yields empty, non-nil collections

func TestPrecise_Macros(t *testing.T) {
	t.Parallel()

	src := []byte("#define MAX 100\n#define SQR(x) ((x) * (x))\n")
	summary, err := NewStrategy().Extract(src)
	require.NoError(t, err)

	require.Len(t, summary.Macros, 2)
	assert.Equal(t, "MAX", summary.Macros[0].Name)
	assert.Equal(t, "100", summary.Macros[0].Value)
	assert.Equal(t, "SQR", summary.Macros[1].Name)
	assert.Contains(t, summary.Macros[1].Value, "(x)")
}

func TestPrecise_TypedefStruct(t *testing.T) {
	t.Parallel()

	src := []byte(`typedef struct {
    int x;
    int y;
    char *label;
} Point;
`)
	summary, err := NewStrategy().Extract(src)
	require.NoError(t, err)

	require.Len(t, summary.Types, 1)
	typ := summary.Types[0]
	require.NotNil(t, typ.TypedefName)
	assert.Equal(t, "Point", *typ.TypedefName)
	assert.Equal(t, extract.KindStruct, typ.Kind)
	assert.Equal(t, []string{"x", "y", "label"}, typ.Members)
	assert.Equal(t, 3, typ.NumMembers)
}

func TestPrecise_TypedefEnum(t *testing.T) {
	t.Parallel()

	src := []byte("typedef enum { RED = 1, GREEN, BLUE } Color;\n")
	summary, err := NewStrategy().Extract(src)
	require.NoError(t, err)

	require.Len(t, summary.Types, 1)
	typ := summary.Types[0]
	require.NotNil(t, typ.TypedefName)
	assert.Equal(t, "Color", *typ.TypedefName)
	assert.Equal(t, extract.KindEnum, typ.Kind)
	assert.Equal(t, []string{"RED", "GREEN", "BLUE"}, typ.Members)
}

func TestPrecise_TaggedStructWithoutTypedef(t *testing.T) {
	t.Parallel()

	src := []byte("struct point { int x; int y; };\n")
	summary, err := NewStrategy().Extract(src)
	require.NoError(t, err)

	require.Len(t, summary.Types, 1)
	typ := summary.Types[0]
	require.NotNil(t, typ.TypedefName)
	assert.Equal(t, "point", *typ.TypedefName)
	assert.Equal(t, []string{"x", "y"}, typ.Members)
}

func TestPrecise_ForwardDeclarationIgnored(t *testing.T) {
	t.Parallel()

	src := []byte("struct node;\ntypedef struct node Node;\n")
	summary, err := NewStrategy().Extract(src)
	require.NoError(t, err)

	assert.Empty(t, summary.Types)
}

func TestPrecise_FunctionDefinition(t *testing.T) {
	t.Parallel()

	src := []byte(`int add(int a, int b) {
    return a + b;
}
`)
	summary, err := NewStrategy().Extract(src)
	require.NoError(t, err)

	require.Len(t, summary.Functions, 1)
	fn := summary.Functions[0]
	assert.Equal(t, "add", fn.Name)
	assert.Equal(t, "int", fn.ReturnType)
	assert.Equal(t, 2, fn.NumArgs)
	require.Len(t, fn.Args, 2)
	assert.Equal(t, "a", fn.Args[0].Name)
	assert.Equal(t, "int", fn.Args[0].Type)
	assert.Contains(t, fn.Body, "return a + b;")
}

func TestPrecise_Prototype(t *testing.T) {
	t.Parallel()

	src := []byte("void reset(void);\n")
	summary, err := NewStrategy().Extract(src)
	require.NoError(t, err)

	require.Len(t, summary.Functions, 1)
	fn := summary.Functions[0]
	assert.Equal(t, "reset", fn.Name)
	assert.Equal(t, 0, fn.NumArgs)
	assert.Equal(t, extract.NoBody, fn.Body)
}

func TestPrecise_DefinitionWinsOverPrototype(t *testing.T) {
	t.Parallel()

	src := []byte(`int add(int a, int b);

int add(int a, int b) {
    return a + b;
}
`)
	summary, err := NewStrategy().Extract(src)
	require.NoError(t, err)

	require.Len(t, summary.Functions, 1)
	assert.NotEqual(t, extract.NoBody, summary.Functions[0].Body)
	assert.Equal(t, 1, summary.Counts.Functions)
}

func TestPrecise_PointerReturnType(t *testing.T) {
	t.Parallel()

	src := []byte("char *dup(const char *s);\n")
	summary, err := NewStrategy().Extract(src)
	require.NoError(t, err)

	require.Len(t, summary.Functions, 1)
	assert.Equal(t, "dup", summary.Functions[0].Name)
	assert.Equal(t, "char*", summary.Functions[0].ReturnType)
}

func TestPrecise_FunctionPointerParameter(t *testing.T) {
	t.Parallel()

	src := []byte("void on_each(int n, int (*cb)(int, int));\n")
	summary, err := NewStrategy().Extract(src)
	require.NoError(t, err)

	require.Len(t, summary.Functions, 1)
	fn := summary.Functions[0]
	require.Len(t, fn.Args, 2)
	assert.Equal(t, "n", fn.Args[0].Name)
	assert.Equal(t, "cb", fn.Args[1].Name)
}

func TestPrecise_SyntaxErrorFails(t *testing.T) {
	t.Parallel()

	_, err := NewStrategy().Extract([]byte("int broken( {{{\n"))
	assert.Error(t, err)
}

func TestPrecise_EmptySource(t *testing.T) {
	t.Parallel()

	summary, err := NewStrategy().Extract([]byte("\n"))
	require.NoError(t, err)

	assert.NotNil(t, summary.Macros)
	assert.NotNil(t, summary.Types)
	assert.NotNil(t, summary.Functions)
	assert.Equal(t, extract.Counts{}, summary.Counts)
}
