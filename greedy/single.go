// SPDX-License-Identifier: MIT
// Package: latmax/greedy
//
// single.go — SGL-I: one unit per step.

package greedy

import (
	"math/rand"

	"github.com/katalvlaran/latmax/lattice"
	"github.com/katalvlaran/latmax/objective"
	"github.com/katalvlaran/latmax/sampling"
)

// SingleUnitState runs the single-unit StochasticGreedy generalization.
//
// Each Step draws Q ⊆ {e : x[e] < B[e]} of size min(s, |·|) without
// replacement and sets x ← x + 1_e for e = argmax_{e∈Q} f(x + 1_e), the first
// sampled coordinate winning ties. The run ends after exactly r steps.
//
// Oracle calls: 1 + at most r·s.
type SingleUnitState struct {
	state
}

// NewSingleUnit validates the instance and evaluates f(0).
func NewSingleUnit(rng *rand.Rand, f objective.Oracle, r int, opts ...Option) (*SingleUnitState, error) {
	st, err := newState(rng, f, r, opts)
	if err != nil {
		return nil, err
	}
	a := &SingleUnitState{state: st}
	if err = a.start(); err != nil {
		return nil, err
	}

	return a, nil
}

// Step adds one unit to the best sampled coordinate.
func (a *SingleUnitState) Step() error {
	if a.done {
		return nil
	}

	q := sampling.WithoutReplacement(a.rng, sampling.Unsaturated(a.x, a.caps), a.s)
	if len(q) == 0 {
		// unreachable while r ≤ sum(B); treated as completion
		a.done = true
		return nil
	}

	var (
		bestX lattice.Vector
		bestV float64
	)
	for _, e := range q {
		cand := a.x.With(e, 1)
		v, err := a.f.Value(cand)
		if err != nil {
			return err
		}
		if bestX == nil || v > bestV {
			bestX, bestV = cand, v
		}
	}

	a.apply(bestX, bestV, 1)
	if a.norm == a.r {
		a.done = true
	}

	return nil
}

// SingleUnit runs SGL-I to completion and returns (x, f(x)) with sum(x) = r.
func SingleUnit(rng *rand.Rand, f objective.Oracle, r int, opts ...Option) (lattice.Vector, float64, error) {
	a, err := NewSingleUnit(rng, f, r, opts...)
	if err != nil {
		return nil, 0, err
	}

	return drain(a)
}
