package scan

import (
	"crypto/sha256"
	"encoding/hex"
	"log"
	"os"
	"regexp"

	"github.com/mvp-joe/csift/internal/extract"
)

var localIncludeRe = regexp.MustCompile(`(?m)^\s*#\s*include\s*"([^"]+)"`)

// Result is the outcome of scanning a single file. Skipped results carry no
// summary: the stored one is still current for the file's content hash.
type Result struct {
	Path     string
	Hash     string
	Summary  *extract.Summary
	Includes []string // quoted #include targets, as written
	Skipped  bool
}

// SeenFunc reports whether a file with the given content hash has already
// been stored, allowing the scanner to skip unchanged files.
type SeenFunc func(path, hash string) bool

// Scanner extracts summaries for a batch of files.
type Scanner struct {
	extractor *extract.Extractor
	seen      SeenFunc       // may be nil: every file is processed
	onFile    func(path string) // progress callback, may be nil
}

// NewScanner creates a scanner over the given orchestrator.
func NewScanner(extractor *extract.Extractor, seen SeenFunc, onFile func(path string)) *Scanner {
	return &Scanner{extractor: extractor, seen: seen, onFile: onFile}
}

// Run processes the files in order. Unreadable files are logged and
// dropped; a broken file never aborts the batch.
func (s *Scanner) Run(files []string) []Result {
	results := make([]Result, 0, len(files))

	for _, path := range files {
		if s.onFile != nil {
			s.onFile(path)
		}

		source, err := os.ReadFile(path)
		if err != nil {
			log.Printf("skipping %s: %v", path, err)
			continue
		}
		hash := hashBytes(source)

		if s.seen != nil && s.seen(path, hash) {
			results = append(results, Result{Path: path, Hash: hash, Skipped: true})
			continue
		}

		summary, err := s.extractor.ExtractSource(source)
		if err != nil {
			log.Printf("skipping %s: %v", path, err)
			continue
		}

		results = append(results, Result{
			Path:     path,
			Hash:     hash,
			Summary:  summary,
			Includes: localIncludes(source),
		})
	}

	return results
}

// localIncludes lists the quoted include targets of a source file, in
// order. Angle-bracket includes are system headers and not part of the
// include graph.
func localIncludes(source []byte) []string {
	var includes []string
	for _, m := range localIncludeRe.FindAllSubmatch(source, -1) {
		includes = append(includes, string(m[1]))
	}
	return includes
}

// hashBytes returns the hex SHA-256 of the given content.
func hashBytes(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}
