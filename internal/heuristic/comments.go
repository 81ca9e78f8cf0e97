package heuristic

import "regexp"

var (
	blockCommentRe = regexp.MustCompile(`(?s)/\*.*?\*/`)
	lineCommentRe  = regexp.MustCompile(`(?m)//.*?$`)
)

// StripComments removes C-style /* ... */ and // ... comments.
// Block comments are removed first so a line comment cannot hide a block
// terminator. Comment-like sequences inside string or character literals
// are not protected; this is a known approximation of the heuristic engine,
// not something callers should rely on being fixed.
func StripComments(source string) string {
	noBlock := blockCommentRe.ReplaceAllString(source, "")
	return lineCommentRe.ReplaceAllString(noBlock, "")
}
