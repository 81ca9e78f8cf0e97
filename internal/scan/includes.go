package scan

import (
	"errors"
	"path/filepath"

	"github.com/dominikbraun/graph"
)

// IncludeGraph is the directed graph of quoted #include relationships
// between scanned files.
type IncludeGraph struct {
	g graph.Graph[string, string]
}

// GraphStats summarizes an include graph.
type GraphStats struct {
	Files  int
	Edges  int
	Cycles [][]string // include cycles, one slice of paths per cycle
}

// BuildIncludeGraph builds the include graph for a set of scan results.
// Include targets are resolved relative to the including file's directory;
// includes that don't resolve to a scanned file are outside the graph.
func BuildIncludeGraph(results []Result) (*IncludeGraph, error) {
	g := graph.New(graph.StringHash, graph.Directed())

	scanned := make(map[string]bool, len(results))
	for _, r := range results {
		if err := g.AddVertex(r.Path); err != nil && !errors.Is(err, graph.ErrVertexAlreadyExists) {
			return nil, err
		}
		scanned[r.Path] = true
	}

	for _, r := range results {
		dir := filepath.Dir(r.Path)
		for _, inc := range r.Includes {
			target := filepath.Clean(filepath.Join(dir, inc))
			if !scanned[target] || target == r.Path {
				continue
			}
			err := g.AddEdge(r.Path, target)
			if err != nil && !errors.Is(err, graph.ErrEdgeAlreadyExists) {
				return nil, err
			}
		}
	}

	return &IncludeGraph{g: g}, nil
}

// Stats computes file/edge counts and include cycles. Cycles are the
// strongly connected components with more than one member.
func (ig *IncludeGraph) Stats() (*GraphStats, error) {
	order, err := ig.g.Order()
	if err != nil {
		return nil, err
	}
	size, err := ig.g.Size()
	if err != nil {
		return nil, err
	}

	sccs, err := graph.StronglyConnectedComponents(ig.g)
	if err != nil {
		return nil, err
	}

	var cycles [][]string
	for _, scc := range sccs {
		if len(scc) > 1 {
			cycles = append(cycles, scc)
		}
	}

	return &GraphStats{Files: order, Edges: size, Cycles: cycles}, nil
}

// Edges returns the (source, target) include pairs of the graph.
func (ig *IncludeGraph) Edges() ([][2]string, error) {
	edges, err := ig.g.Edges()
	if err != nil {
		return nil, err
	}
	pairs := make([][2]string, 0, len(edges))
	for _, e := range edges {
		pairs = append(pairs, [2]string{e.Source, e.Target})
	}
	return pairs, nil
}
