package heuristic

import (
	"regexp"

	"github.com/mvp-joe/csift/internal/extract"
)

// Single physical line: #define NAME value. Line-continued macros are
// deliberately not recognized.
var macroRe = regexp.MustCompile(`(?m)^[ \t]*#[ \t]*define[ \t]+([A-Za-z_]\w*)[ \t]+(.*?)[ \t]*$`)

// extractMacros finds single-line #define statements in comment-stripped
// source, in order of appearance.
func extractMacros(src string) []extract.Macro {
	var macros []extract.Macro
	for _, m := range macroRe.FindAllStringSubmatch(src, -1) {
		name, value := m[1], m[2]
		macros = append(macros, extract.Macro{
			Name:    name,
			Value:   value,
			Comment: extract.MacroComment(name, value),
		})
	}
	return macros
}
