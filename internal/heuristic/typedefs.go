package heuristic

import (
	"regexp"
	"strings"

	"github.com/mvp-joe/csift/internal/extract"
)

// Both patterns capture a single-level body only: the non-greedy capture
// stops at the first '}', so a body containing a nested brace pair is not
// matched at all. Nested anonymous types are a hard non-goal; such
// constructs are dropped without failing the parse.
var (
	enumRe   = regexp.MustCompile(`(?s)typedef\s+enum\s*(?:\w*\s*)?\{(.*?)\}\s*([A-Za-z_]\w*)\s*;`)
	structRe = regexp.MustCompile(`(?s)typedef\s+struct\s*(?:[A-Za-z_]\w*\s*)?\{(.*?)\}\s*([A-Za-z_]\w*)\s*;`)
)

// extractEnums finds typedef enum blocks. Each non-blank body line yields
// one enumerator: the text before the first '=' (explicit values are
// discarded), stripped of trailing commas and whitespace.
func extractEnums(src string) []extract.Type {
	var types []extract.Type
	for _, m := range enumRe.FindAllStringSubmatch(src, -1) {
		body, name := m[1], m[2]
		if strings.Contains(body, "{") {
			// The capture stopped at a nested close brace, so this is
			// a truncated body. Reject the record; keep going.
			continue
		}

		var members []string
		for _, line := range strings.Split(body, "\n") {
			member, _, _ := strings.Cut(line, "=")
			member = strings.Trim(strings.TrimSpace(member), ",")
			if member != "" {
				members = append(members, member)
			}
		}

		typedefName := name
		types = append(types, extract.Type{
			TypedefName: &typedefName,
			Kind:        extract.KindEnum,
			NumMembers:  len(members),
			Members:     members,
			Comment:     extract.TypeComment(name, len(members)),
		})
	}
	return types
}

// extractStructs finds typedef struct blocks. Member names come from a
// naive declarator split: for each body line containing a ';', the name is
// the last whitespace-delimited token before it. Pointer and array syntax
// bound tightly to the identifier can misattribute the name for complex
// declarators; that is a documented limitation of the heuristic engine.
func extractStructs(src string) []extract.Type {
	var types []extract.Type
	for _, m := range structRe.FindAllStringSubmatch(src, -1) {
		body, name := m[1], m[2]
		if strings.Contains(body, "{") {
			continue
		}

		var members []string
		for _, line := range strings.Split(body, "\n") {
			line = strings.TrimSpace(line)
			if line == "" || strings.HasPrefix(line, "//") {
				continue
			}
			decl, _, found := strings.Cut(line, ";")
			if !found {
				continue
			}
			decl = strings.TrimSpace(decl)
			if decl == "" {
				continue
			}
			fields := strings.Fields(decl)
			members = append(members, fields[len(fields)-1])
		}

		typedefName := name
		types = append(types, extract.Type{
			TypedefName: &typedefName,
			Kind:        extract.KindStruct,
			NumMembers:  len(members),
			Members:     members,
			Comment:     extract.TypeComment(name, len(members)),
		})
	}
	return types
}
