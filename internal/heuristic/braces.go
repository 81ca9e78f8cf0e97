package heuristic

import (
	"errors"
	"fmt"
)

// errUnbalanced reports a brace-delimited body that never closes. The
// affected construct is skipped; extraction of other constructs continues.
var errUnbalanced = errors.New("unbalanced braces")

// matchBraces returns the balanced substring of text starting at the opening
// brace at index start, through the matching closing brace inclusive.
// start must point at a '{'.
func matchBraces(text string, start int) (string, error) {
	if start < 0 || start >= len(text) || text[start] != '{' {
		return "", fmt.Errorf("no opening brace at offset %d", start)
	}

	depth := 0
	for i := start; i < len(text); i++ {
		switch text[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], nil
			}
		}
	}
	return "", errUnbalanced
}
