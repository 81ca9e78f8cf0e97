package precise

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvp-joe/csift/internal/extract"
)

// Test Plan for the function set:
// - Prototype then definition: one record, definition content, original slot
// - Definition then prototype: prototype is ignored
// - Duplicate definitions: first wins
// - Duplicate prototypes: first wins
// - Output preserves first-appearance order across names

func def(name string) extract.Function {
	return extract.Function{Name: name, Body: "{ }"}
}

func proto(name string) extract.Function {
	return extract.Function{Name: name, Body: extract.NoBody}
}

func TestFunctionSet_DefinitionReplacesPrototypeInPlace(t *testing.T) {
	t.Parallel()

	fs := newFunctionSet()
	fs.addPrototype(proto("a"))
	fs.addPrototype(proto("b"))
	fs.addDefinition(def("a"))

	out := fs.ordered()
	require.Len(t, out, 2)
	assert.Equal(t, "a", out[0].Name)
	assert.Equal(t, "{ }", out[0].Body)
	assert.Equal(t, "b", out[1].Name)
}

func TestFunctionSet_PrototypeAfterDefinitionIgnored(t *testing.T) {
	t.Parallel()

	fs := newFunctionSet()
	fs.addDefinition(def("a"))
	fs.addPrototype(proto("a"))

	out := fs.ordered()
	require.Len(t, out, 1)
	assert.Equal(t, "{ }", out[0].Body)
}

func TestFunctionSet_FirstDefinitionWins(t *testing.T) {
	t.Parallel()

	first := def("a")
	first.ReturnType = "int"
	second := def("a")
	second.ReturnType = "long"

	fs := newFunctionSet()
	fs.addDefinition(first)
	fs.addDefinition(second)

	out := fs.ordered()
	require.Len(t, out, 1)
	assert.Equal(t, "int", out[0].ReturnType)
}

func TestFunctionSet_Order(t *testing.T) {
	t.Parallel()

	fs := newFunctionSet()
	fs.addPrototype(proto("c"))
	fs.addDefinition(def("a"))
	fs.addPrototype(proto("b"))

	out := fs.ordered()
	require.Len(t, out, 3)
	assert.Equal(t, []string{"c", "a", "b"}, []string{out[0].Name, out[1].Name, out[2].Name})
}
