package scan

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for the include graph:
// - Edges only connect files that were both scanned
// - Include targets resolve relative to the including file's directory
// - Self-includes and unscanned targets are ignored
// - Stats reports file and edge counts
// - A mutual include pair is reported as a cycle

func result(path string, includes ...string) Result {
	return Result{Path: path, Includes: includes}
}

func TestBuildIncludeGraph_Edges(t *testing.T) {
	t.Parallel()

	main := filepath.Join("src", "main.c")
	util := filepath.Join("src", "util.h")
	results := []Result{
		result(main, "util.h", "missing.h"),
		result(util),
	}

	ig, err := BuildIncludeGraph(results)
	require.NoError(t, err)

	edges, err := ig.Edges()
	require.NoError(t, err)
	require.Len(t, edges, 1)
	assert.Equal(t, main, edges[0][0])
	assert.Equal(t, util, edges[0][1])
}

func TestBuildIncludeGraph_RelativeResolution(t *testing.T) {
	t.Parallel()

	main := filepath.Join("src", "main.c")
	shared := filepath.Join("include", "shared.h")
	results := []Result{
		result(main, "../include/shared.h"),
		result(shared),
	}

	ig, err := BuildIncludeGraph(results)
	require.NoError(t, err)

	stats, err := ig.Stats()
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Files)
	assert.Equal(t, 1, stats.Edges)
	assert.Empty(t, stats.Cycles)
}

func TestBuildIncludeGraph_CycleDetection(t *testing.T) {
	t.Parallel()

	a := "a.h"
	b := "b.h"
	results := []Result{
		result(a, "b.h"),
		result(b, "a.h"),
	}

	ig, err := BuildIncludeGraph(results)
	require.NoError(t, err)

	stats, err := ig.Stats()
	require.NoError(t, err)
	require.Len(t, stats.Cycles, 1)
	assert.ElementsMatch(t, []string{a, b}, stats.Cycles[0])
}

func TestBuildIncludeGraph_IgnoresSelfInclude(t *testing.T) {
	t.Parallel()

	results := []Result{result("a.h", "a.h")}

	ig, err := BuildIncludeGraph(results)
	require.NoError(t, err)

	stats, err := ig.Stats()
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Files)
	assert.Equal(t, 0, stats.Edges)
}
