// SPDX-License-Identifier: MIT
// Package: latmax/bipartite
//
// random.go — random bipartite graphs.
//
// Contract:
//   • left ≥ 1 and right ≥ 1 (else ErrBadSize).
//   • 0 ≤ p ≤ 1 (else ErrBadProbability).
//   • An rng is required when 0 < p < 1, or when p > 0 with a custom
//     weightFn (else ErrNeedRandSource).
//   • Trials run in stable order: s asc, then t asc; each pair is kept with
//     probability p and then weighted by weightFn.
//
// Determinism: a fixed seed gives the same graph.

package bipartite

import (
	"errors"
	"fmt"
)

var (
	// ErrBadProbability indicates an edge probability outside [0,1].
	ErrBadProbability = errors.New("bipartite: probability out of range")

	// ErrNeedRandSource indicates a stochastic construction without an rng.
	ErrNeedRandSource = errors.New("bipartite: rng is required")
)

// Random samples a bipartite graph with independent edge probability p.
// Complexity: O(left·right) trials.
func Random(left, right int, p float64, opts ...Option) (*Graph, error) {
	if left < 1 || right < 1 {
		return nil, fmt.Errorf("Random: left=%d right=%d: %w", left, right, ErrBadSize)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("Random: p=%.6f: %w", p, ErrBadProbability)
	}

	cfg := newConfig(opts...)
	if cfg.rng == nil && p > 0 && (p < 1 || cfg.customWeight) {
		return nil, fmt.Errorf("Random: %w", ErrNeedRandSource)
	}

	g, err := NewGraph(left, right)
	if err != nil {
		return nil, err
	}

	for s := 0; s < left; s++ {
		for t := 0; t < right; t++ {
			if p < 1 && (p == 0 || cfg.rng.Float64() >= p) {
				continue
			}
			w := cfg.weightFn(cfg.rng)
			if err = g.AddEdge(s, t, w); err != nil {
				return nil, fmt.Errorf("Random: AddEdge(%d,%d): %w", s, t, err)
			}
		}
	}

	return g, nil
}
