// Package verify cross-checks a summary against simple regex counts taken
// directly from the source file. The file-side counts are approximations
// meant to surface gross mismatches; they are diagnostic only and never
// affect the extraction result.
package verify

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/mvp-joe/csift/internal/extract"
	"github.com/mvp-joe/csift/internal/heuristic"
)

var (
	typedefEnumRe   = regexp.MustCompile(`typedef\s+enum\s*\{`)
	taggedEnumRe    = regexp.MustCompile(`enum\s+[A-Za-z_]\w*\s*\{`)
	typedefStructRe = regexp.MustCompile(`typedef\s+struct\s*\{`)
	taggedStructRe  = regexp.MustCompile(`typedef\s+struct\s+[A-Za-z_]\w*\s*\{`)
	funcDefRe       = regexp.MustCompile(`\)\s*\{`)
	funcProtoRe     = regexp.MustCompile(`\)\s*;`)
)

// FileCounts are regex-derived construct counts for one source file.
type FileCounts struct {
	Macros    int
	Structs   int
	Enums     int
	Functions int
}

// CountSource computes approximate construct counts from raw source text.
func CountSource(source string) FileCounts {
	src := heuristic.StripComments(source)

	var counts FileCounts
	for _, line := range strings.Split(src, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "#define") {
			counts.Macros++
		}
	}

	counts.Enums = len(typedefEnumRe.FindAllString(src, -1)) +
		len(taggedEnumRe.FindAllString(src, -1))
	counts.Structs = len(typedefStructRe.FindAllString(src, -1)) +
		len(taggedStructRe.FindAllString(src, -1))

	// Definitions close with ") {" and prototypes with ");". Both counts
	// over-match (casts, function pointers), which is why the comparison
	// is only advisory.
	counts.Functions = len(funcDefRe.FindAllString(src, -1)) +
		len(funcProtoRe.FindAllString(src, -1))

	return counts
}

// Report writes a comparison table between file-side counts and the counts
// carried by an extraction summary.
func Report(w io.Writer, file FileCounts, summary extract.Counts) {
	fmt.Fprintln(w, "=== Verification ===")
	fmt.Fprintf(w, "Macros   : file=%d  json=%d\n", file.Macros, summary.Macros)
	fmt.Fprintf(w, "Structs  : file~=%d  json=%d\n", file.Structs, summary.Structs)
	fmt.Fprintf(w, "Enums    : file~=%d  json=%d\n", file.Enums, summary.Enums)
	fmt.Fprintf(w, "Functions: file~=%d  json=%d\n", file.Functions, summary.Functions)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Note: file-side counts are heuristic approximations (regex) to help detect mismatches.")
}
