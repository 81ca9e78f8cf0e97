package heuristic

import (
	"strings"

	"github.com/mvp-joe/csift/internal/extract"
)

// SplitArgs splits the raw text between a function's parentheses into
// ordered (type, name) pairs. Commas are only significant at parenthesis
// depth zero, so a function-pointer parameter such as "int (*cb)(int, int)"
// stays a single argument. Empty input or a sole "void" yields no arguments.
func SplitArgs(argText string) []extract.Argument {
	argText = strings.TrimSpace(argText)
	if argText == "" || strings.EqualFold(argText, "void") {
		return []extract.Argument{}
	}

	var tokens []string
	depth := 0
	var current strings.Builder
	for _, c := range argText {
		if c == ',' && depth == 0 {
			tokens = append(tokens, strings.TrimSpace(current.String()))
			current.Reset()
			continue
		}
		current.WriteRune(c)
		switch c {
		case '(':
			depth++
		case ')':
			depth--
		}
	}
	if tok := strings.TrimSpace(current.String()); tok != "" {
		tokens = append(tokens, tok)
	}

	args := make([]extract.Argument, 0, len(tokens))
	for _, tok := range tokens {
		typ, name := splitTypeName(tok)
		args = append(args, extract.Argument{Raw: tok, Type: typ, Name: name})
	}
	return args
}

// splitTypeName takes the trailing whitespace-delimited token as the
// parameter name and everything before it as the type. A token with no
// internal whitespace is all type (unnamed or abstract parameter).
func splitTypeName(arg string) (typ, name string) {
	idx := strings.LastIndex(arg, " ")
	if idx < 0 {
		return arg, ""
	}
	return strings.TrimSpace(arg[:idx]), strings.TrimSpace(arg[idx+1:])
}
