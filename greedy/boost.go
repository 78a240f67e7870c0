// SPDX-License-Identifier: MIT
// Package: latmax/greedy
//
// boost.go — SGL-II: multi-unit ("boost") steps.

package greedy

import (
	"math/rand"

	"github.com/katalvlaran/latmax/lattice"
	"github.com/katalvlaran/latmax/objective"
	"github.com/katalvlaran/latmax/sampling"
)

// BoostState runs the multi-unit greedy.
//
// Each Step draws s coordinates with replacement from the unsaturated ones
// (duplicates collapse), evaluates f(x + k·1_e) for every sampled e and every
// k ∈ [1, min(B[e]−x[e], r−sum(x))], and applies the best (e, k) if its value
// is at least f(x). Otherwise the step is the k = 0 no-op. The loop runs while
// sum(x) < r and fewer than r steps were taken, so it may stop short of r.
//
// Oracle calls: 1 + at most r·s·max_e B[e].
type BoostState struct {
	state
	t int
}

// NewBoost validates the instance and evaluates f(0).
func NewBoost(rng *rand.Rand, f objective.Oracle, r int, opts ...Option) (*BoostState, error) {
	st, err := newState(rng, f, r, opts)
	if err != nil {
		return nil, err
	}
	a := &BoostState{state: st}
	if err = a.start(); err != nil {
		return nil, err
	}

	return a, nil
}

// Iterations returns the number of steps taken.
func (a *BoostState) Iterations() int { return a.t }

// Step performs one boost iteration.
func (a *BoostState) Step() error {
	if a.done {
		return nil
	}

	q := sampling.WithReplacement(a.rng, sampling.Unsaturated(a.x, a.caps), a.s)
	if len(q) == 0 {
		a.done = true
		return nil
	}

	var (
		bestX lattice.Vector
		bestV float64
		bestK int
	)
	for _, e := range q {
		for k, kMax := 1, a.kMax(e); k <= kMax; k++ {
			cand := a.x.With(e, k)
			v, err := a.f.Value(cand)
			if err != nil {
				return err
			}
			if bestX == nil || v > bestV {
				bestX, bestV, bestK = cand, v, k
			}
		}
	}

	a.t++
	if bestK >= 1 && bestV >= a.value {
		a.apply(bestX, bestV, bestK)
	}
	if a.norm >= a.r || a.t >= a.r {
		a.done = true
	}

	return nil
}

// Boost runs SGL-II to completion and returns (x, f(x)) with sum(x) ≤ r.
func Boost(rng *rand.Rand, f objective.Oracle, r int, opts ...Option) (lattice.Vector, float64, error) {
	a, err := NewBoost(rng, f, r, opts...)
	if err != nil {
		return nil, 0, err
	}

	return drain(a)
}
