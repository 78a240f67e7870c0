// SPDX-License-Identifier: MIT
// Package: latmax/bipartite
//
// Package bipartite provides the weighted bipartite graph G = (S, T; W) the
// graph objectives are defined over: S is the left side (facilities,
// advertising channels; the lattice ground set), T the right side
// (customers), and every edge s–t carries a non-negative float weight
// (service value, influence probability).
//
// Vertices on each side are dense indices 0..|S|-1 and 0..|T|-1; loaders
// keep the mapping back to external labels. Edges are stored twice, as
// adjacency from S and from T, so both "customers of s" and "channels
// reaching t" are O(deg) queries.
//
// The graph is safe for concurrent readers; a single RWMutex guards edges
// and adjacency.
//
// Errors:
//
//	ErrBadSize           – a side has negative size.
//	ErrVertexOutOfRange  – edge endpoint outside its side.
//	ErrDuplicateEdge     – the s–t edge already exists.
//	ErrBadWeight         – weight is negative, NaN, or infinite.
package bipartite

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"sync"
)

// Sentinel errors for bipartite graph operations.
var (
	// ErrBadSize indicates a negative partition size.
	ErrBadSize = errors.New("bipartite: partition size must be non-negative")

	// ErrVertexOutOfRange indicates an edge endpoint outside its partition.
	ErrVertexOutOfRange = errors.New("bipartite: vertex out of range")

	// ErrDuplicateEdge indicates an attempt to add an s–t edge twice.
	ErrDuplicateEdge = errors.New("bipartite: duplicate edge")

	// ErrBadWeight indicates a negative or non-finite edge weight.
	ErrBadWeight = errors.New("bipartite: weight must be finite and non-negative")
)

// Edge is a weighted connection between left vertex S and right vertex T.
type Edge struct {
	S      int
	T      int
	Weight float64
}

// Graph is a weighted bipartite graph with dense integer vertex indices.
type Graph struct {
	mu sync.RWMutex

	left  int
	right int

	// fromLeft[s] and fromRight[t] hold the same edges, keyed by either side.
	fromLeft  [][]Edge
	fromRight [][]Edge
	weights   map[[2]int]float64
}

// NewGraph creates an edgeless bipartite graph with the given side sizes.
func NewGraph(left, right int) (*Graph, error) {
	if left < 0 || right < 0 {
		return nil, fmt.Errorf("%w: left=%d right=%d", ErrBadSize, left, right)
	}

	return &Graph{
		left:      left,
		right:     right,
		fromLeft:  make([][]Edge, left),
		fromRight: make([][]Edge, right),
		weights:   make(map[[2]int]float64),
	}, nil
}

// Left returns |S|.
func (g *Graph) Left() int { return g.left }

// Right returns |T|.
func (g *Graph) Right() int { return g.right }

// AddEdge inserts the edge s–t with weight w.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(s, t int, w float64) error {
	if s < 0 || s >= g.left {
		return fmt.Errorf("%w: left %d not in [0,%d)", ErrVertexOutOfRange, s, g.left)
	}
	if t < 0 || t >= g.right {
		return fmt.Errorf("%w: right %d not in [0,%d)", ErrVertexOutOfRange, t, g.right)
	}
	if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
		return fmt.Errorf("%w: %d–%d weight=%v", ErrBadWeight, s, t, w)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	key := [2]int{s, t}
	if _, ok := g.weights[key]; ok {
		return fmt.Errorf("%w: %d–%d", ErrDuplicateEdge, s, t)
	}
	e := Edge{S: s, T: t, Weight: w}
	g.weights[key] = w
	g.fromLeft[s] = append(g.fromLeft[s], e)
	g.fromRight[t] = append(g.fromRight[t], e)

	return nil
}

// Weight returns the weight of s–t and whether the edge exists.
func (g *Graph) Weight(s, t int) (float64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	w, ok := g.weights[[2]int{s, t}]

	return w, ok
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.weights)
}

// LeftEdges returns a copy of the edges incident to left vertex s.
func (g *Graph) LeftEdges(s int) []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if s < 0 || s >= g.left {
		return nil
	}

	return append([]Edge(nil), g.fromLeft[s]...)
}

// RightEdges returns a copy of the edges incident to right vertex t.
func (g *Graph) RightEdges(t int) []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if t < 0 || t >= g.right {
		return nil
	}

	return append([]Edge(nil), g.fromRight[t]...)
}

// Edges returns all edges sorted by (S, T).
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	out := make([]Edge, 0, len(g.weights))
	for _, es := range g.fromLeft {
		out = append(out, es...)
	}
	g.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].S != out[j].S {
			return out[i].S < out[j].S
		}
		return out[i].T < out[j].T
	})

	return out
}
