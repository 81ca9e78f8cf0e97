package heuristic

import (
	"regexp"
	"strings"

	"github.com/mvp-joe/csift/internal/extract"
)

// Both patterns share the same head shape: type-like tokens, the function
// name, and a parenthesized argument list. Definitions are terminated by
// '{' and prototypes by ';'.
var (
	funcDefRe   = regexp.MustCompile(`(?s)([A-Za-z_][\w \*\(\)]+?)\s+([A-Za-z_]\w*)\s*\((.*?)\)\s*\{`)
	funcProtoRe = regexp.MustCompile(`(?s)([A-Za-z_][\w \*\(\)]+?)\s+([A-Za-z_]\w*)\s*\((.*?)\)\s*;`)
)

// extractFunctions finds function definitions and prototypes in
// comment-stripped source. For a given name at most one record is emitted:
// a definition always wins over a prototype, and the first occurrence wins
// between records of the same rank. Seen names are tracked in one ordered
// pass so precedence does not depend on scan order between the two shapes.
func extractFunctions(src string) []extract.Function {
	order := make([]string, 0)
	byName := make(map[string]extract.Function)

	// Definitions first: the body is recovered by balanced-brace scanning
	// from the '{' that terminated the match. An unterminated body skips
	// just that candidate.
	for _, m := range funcDefRe.FindAllStringSubmatchIndex(src, -1) {
		ret := normalizeSpace(src[m[2]:m[3]])
		name := src[m[4]:m[5]]
		argText := src[m[6]:m[7]]

		body, err := matchBraces(src, m[1]-1)
		if err != nil {
			continue
		}

		if _, seen := byName[name]; seen {
			continue
		}

		args := SplitArgs(argText)
		byName[name] = extract.Function{
			Name:       name,
			ReturnType: ret,
			NumArgs:    len(args),
			Args:       args,
			Body:       strings.TrimSpace(body),
			Comment:    extract.FunctionComment(name, len(args), ret),
		}
		order = append(order, name)
	}

	// Prototypes: any name already recorded (as a definition, or as an
	// earlier prototype) is skipped.
	for _, m := range funcProtoRe.FindAllStringSubmatch(src, -1) {
		name := m[2]
		if _, seen := byName[name]; seen {
			continue
		}

		ret := normalizeSpace(m[1])
		args := SplitArgs(m[3])
		byName[name] = extract.Function{
			Name:       name,
			ReturnType: ret,
			NumArgs:    len(args),
			Args:       args,
			Body:       extract.NoBody,
			Comment:    extract.FunctionComment(name, len(args), ret),
		}
		order = append(order, name)
	}

	functions := make([]extract.Function, 0, len(order))
	for _, name := range order {
		functions = append(functions, byName[name])
	}
	return functions
}

// normalizeSpace collapses runs of whitespace to single spaces.
func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
