// Package search maintains a bleve full-text index over extracted
// entities (macros, types, functions) so scanned codebases can be queried
// by name or detail text.
package search

import (
	"fmt"
	"os"
	"strings"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/mapping"

	"github.com/mvp-joe/csift/internal/extract"
)

// Hit is one search result.
type Hit struct {
	Name   string  `json:"name"`
	Kind   string  `json:"kind"` // "macro", "struct", "enum", "function"
	File   string  `json:"file"`
	Detail string  `json:"detail"`
	Score  float64 `json:"score"`
}

// Index wraps the bleve entity index.
type Index struct {
	index bleve.Index
}

// Open opens the index at path, creating it if missing. An empty path
// opens an in-memory index (used by tests and one-shot queries).
func Open(path string) (*Index, error) {
	if path == "" {
		index, err := bleve.NewMemOnly(buildMapping())
		if err != nil {
			return nil, fmt.Errorf("failed to create in-memory index: %w", err)
		}
		return &Index{index: index}, nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		index, err := bleve.New(path, buildMapping())
		if err != nil {
			return nil, fmt.Errorf("failed to create index at %s: %w", path, err)
		}
		return &Index{index: index}, nil
	}

	index, err := bleve.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open index at %s: %w", path, err)
	}
	return &Index{index: index}, nil
}

// Close releases the index.
func (ix *Index) Close() error {
	return ix.index.Close()
}

// buildMapping creates the index mapping for entity documents.
func buildMapping() *mapping.IndexMappingImpl {
	indexMapping := bleve.NewIndexMapping()

	nameMapping := bleve.NewTextFieldMapping()
	nameMapping.Analyzer = "standard"
	nameMapping.Store = true

	kindMapping := bleve.NewTextFieldMapping()
	kindMapping.Analyzer = "keyword"
	kindMapping.Store = true

	fileMapping := bleve.NewTextFieldMapping()
	fileMapping.Analyzer = "standard"
	fileMapping.Store = true

	detailMapping := bleve.NewTextFieldMapping()
	detailMapping.Analyzer = "standard"
	detailMapping.Store = true

	docMapping := bleve.NewDocumentMapping()
	docMapping.AddFieldMappingsAt("name", nameMapping)
	docMapping.AddFieldMappingsAt("kind", kindMapping)
	docMapping.AddFieldMappingsAt("file", fileMapping)
	docMapping.AddFieldMappingsAt("detail", detailMapping)

	indexMapping.DefaultMapping = docMapping
	return indexMapping
}

// IndexSummary (re)indexes every entity of one file's summary. Existing
// documents for the file are replaced by id, so re-scanning a changed file
// updates rather than duplicates.
func (ix *Index) IndexSummary(file string, summary *extract.Summary) error {
	batch := ix.index.NewBatch()

	for _, m := range summary.Macros {
		doc := map[string]interface{}{
			"name":   m.Name,
			"kind":   "macro",
			"file":   file,
			"detail": m.Value,
		}
		if err := batch.Index(docID(file, "macro", m.Name), doc); err != nil {
			return fmt.Errorf("failed to index macro %s: %w", m.Name, err)
		}
	}

	for _, t := range summary.Types {
		name := "<anon>"
		if t.TypedefName != nil {
			name = *t.TypedefName
		}
		doc := map[string]interface{}{
			"name":   name,
			"kind":   t.Kind,
			"file":   file,
			"detail": strings.Join(t.Members, " "),
		}
		if err := batch.Index(docID(file, t.Kind, name), doc); err != nil {
			return fmt.Errorf("failed to index type %s: %w", name, err)
		}
	}

	for _, fn := range summary.Functions {
		doc := map[string]interface{}{
			"name":   fn.Name,
			"kind":   "function",
			"file":   file,
			"detail": fn.ReturnType,
		}
		if err := batch.Index(docID(file, "function", fn.Name), doc); err != nil {
			return fmt.Errorf("failed to index function %s: %w", fn.Name, err)
		}
	}

	if batch.Size() == 0 {
		return nil
	}
	return ix.index.Batch(batch)
}

// Search runs a bleve query-string query and returns up to limit hits.
func (ix *Index) Search(queryStr string, limit int) ([]Hit, error) {
	if limit <= 0 {
		limit = 15
	}

	q := bleve.NewQueryStringQuery(queryStr)
	req := bleve.NewSearchRequestOptions(q, limit, 0, false)
	req.Fields = []string{"name", "kind", "file", "detail"}

	res, err := ix.index.Search(req)
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}

	hits := make([]Hit, 0, len(res.Hits))
	for _, h := range res.Hits {
		name, _ := h.Fields["name"].(string)
		kind, _ := h.Fields["kind"].(string)
		file, _ := h.Fields["file"].(string)
		detail, _ := h.Fields["detail"].(string)
		hits = append(hits, Hit{
			Name:   name,
			Kind:   kind,
			File:   file,
			Detail: detail,
			Score:  h.Score,
		})
	}
	return hits, nil
}

func docID(file, kind, name string) string {
	return file + "#" + kind + "#" + name
}
