// Package heuristic implements the regex/scan based extraction engine.
//
// The engine recognizes C-like syntactic shapes with pattern matching and
// manual scanning only: no preprocessor, no grammar. It handles nesting
// where it matters (parentheses inside argument lists, braces inside
// function bodies) and degrades per-construct on malformed input. Known
// approximations — comment markers inside string literals, single-level
// enum/struct bodies, naive declarator splits — are documented on the
// relevant functions and preserved deliberately.
package heuristic

import "github.com/mvp-joe/csift/internal/extract"

// Engine is the heuristic extraction strategy. The zero value is ready to
// use; it holds no state across invocations.
type Engine struct{}

// NewEngine returns the heuristic extraction engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Extract summarizes raw C source. It never fails: malformed constructs are
// dropped individually and every record that is emitted matched completely.
func (e *Engine) Extract(source []byte) (*extract.Summary, error) {
	src := StripComments(string(source))

	macros := extractMacros(src)

	types := extractEnums(src)
	types = append(types, extractStructs(src)...)

	functions := extractFunctions(src)

	// Empty collections serialize as [] rather than null.
	if macros == nil {
		macros = []extract.Macro{}
	}
	if types == nil {
		types = []extract.Type{}
	}

	return &extract.Summary{
		Macros:    macros,
		Types:     types,
		Functions: functions,
		Counts:    extract.CountsFor(macros, types, functions),
	}, nil
}
