// Package extract defines the record schema produced by every extraction
// strategy and the orchestrator that selects between them.
package extract

import "fmt"

// Strategy names reported in Summary.Strategy.
const (
	StrategyPrecise   = "precise"
	StrategyHeuristic = "heuristic"
)

// NoBody is the sentinel body for functions that only have a prototype.
const NoBody = "no body"

// Kind values for Type records.
const (
	KindStruct = "struct"
	KindEnum   = "enum"
)

// Macro is a single #define with its replacement value.
type Macro struct {
	Name    string `json:"name"`
	Value   string `json:"value"`
	Comment string `json:"comment"`
}

// Type is a typedef'd struct or enum with its member names in
// declaration order. TypedefName is nil for anonymous types.
type Type struct {
	TypedefName *string  `json:"typedef_name"`
	Kind        string   `json:"kind"`
	NumMembers  int      `json:"num_members"`
	Members     []string `json:"members"`
	Comment     string   `json:"comment"`
}

// Argument is one parameter of a function. Name is empty for unnamed or
// abstract parameters (e.g. a bare "int" in a prototype).
type Argument struct {
	Raw  string `json:"raw"`
	Type string `json:"type"`
	Name string `json:"name"`
}

// Function is a function definition or prototype. Body holds the full
// balanced brace-delimited text for definitions, or NoBody for prototypes.
type Function struct {
	Name       string     `json:"name"`
	ReturnType string     `json:"return_type"`
	NumArgs    int        `json:"num_args"`
	Args       []Argument `json:"args"`
	Body       string     `json:"body"`
	Comment    string     `json:"comment"`
}

// Counts aggregates collection sizes. It is always derived from the
// collections via CountsFor, never populated independently.
type Counts struct {
	Macros    int `json:"macros"`
	Structs   int `json:"structs"`
	Enums     int `json:"enums"`
	Functions int `json:"functions"`
}

// Summary is the complete structural summary of one translation unit.
// Strategy records which engine produced it, for diagnostics only.
type Summary struct {
	Macros    []Macro    `json:"macros"`
	Types     []Type     `json:"types"`
	Functions []Function `json:"functions"`
	Counts    Counts     `json:"counts"`
	Strategy  string     `json:"strategy"`
}

// CountsFor derives the aggregate counts from the given collections.
func CountsFor(macros []Macro, types []Type, functions []Function) Counts {
	c := Counts{
		Macros:    len(macros),
		Functions: len(functions),
	}
	for _, t := range types {
		switch t.Kind {
		case KindStruct:
			c.Structs++
		case KindEnum:
			c.Enums++
		}
	}
	return c
}

// MacroComment builds the human-readable description for a macro record.
func MacroComment(name, value string) string {
	return fmt.Sprintf("MACROS = macro defined with name %s and value %s", name, value)
}

// TypeComment builds the human-readable description for a type record.
// name should be "<anon>" for anonymous types.
func TypeComment(name string, numMembers int) string {
	return fmt.Sprintf("STRUCT & ENUM = defined with name %s and have %d members", name, numMembers)
}

// FunctionComment builds the human-readable description for a function record.
func FunctionComment(name string, numArgs int, returnType string) string {
	return fmt.Sprintf("API = Function with name %s having %d arguments with return type %s", name, numArgs, returnType)
}
