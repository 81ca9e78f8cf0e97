package extract

import (
	"fmt"
	"log"
	"os"
)

// Strategy produces a Summary from raw C source text. Implementations must
// be deterministic: identical input yields identical records.
type Strategy interface {
	Extract(source []byte) (*Summary, error)
}

// Extractor selects between a precise strategy and the heuristic fallback.
// The precise strategy is injected so callers (and tests) can simulate its
// absence by passing nil.
type Extractor struct {
	precise   Strategy
	heuristic Strategy
	verbose   bool
}

// NewExtractor creates an orchestrator over the given strategies.
// precise may be nil, in which case every extraction uses the heuristic
// engine. heuristic must not be nil.
func NewExtractor(precise, heuristic Strategy) *Extractor {
	return &Extractor{
		precise:   precise,
		heuristic: heuristic,
	}
}

// SetVerbose enables a diagnostic log line when the precise strategy fails
// and extraction degrades to the heuristic engine.
func (e *Extractor) SetVerbose(verbose bool) {
	e.verbose = verbose
}

// ExtractSource summarizes the given source text. The precise strategy is
// consulted first when present; any failure there degrades silently to the
// heuristic engine. The returned Summary reports which strategy ran.
func (e *Extractor) ExtractSource(source []byte) (*Summary, error) {
	if e.precise != nil {
		summary, err := e.precise.Extract(source)
		if err == nil {
			summary.Strategy = StrategyPrecise
			return summary, nil
		}
		if e.verbose {
			log.Printf("precise extraction failed, falling back to heuristic engine: %v", err)
		}
	}

	summary, err := e.heuristic.Extract(source)
	if err != nil {
		return nil, err
	}
	summary.Strategy = StrategyHeuristic
	return summary, nil
}

// ExtractFile reads and summarizes a file. A read failure is the only
// process-fatal error: no partial output is produced.
func (e *Extractor) ExtractFile(path string) (*Summary, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return e.ExtractSource(source)
}
