// SPDX-License-Identifier: MIT
// Package: latmax/greedy
//
// lai.go — Lai-DR: randomized rounding of the best unit-gain allocation.

package greedy

import (
	"math/rand"
	"sort"

	"github.com/katalvlaran/latmax/lattice"
	"github.com/katalvlaran/latmax/objective"
	"github.com/katalvlaran/latmax/sampling"
)

// LaiDRState runs the Lai-DR algorithm for DR-submodular monotone functions.
//
// Each Step computes the unit gains g_e = f(x + 1_e) − f(x) of every
// unsaturated coordinate and the allocation
//
//	m = argmax Σ m_e·g_e  s.t.  sum(m) ≤ r,  0 ≤ m ≤ B − x,
//
// then adds 1_e with e drawn with probability m_e/‖m‖₁. With unit weights the
// allocation is exact when units go to the largest positive gains first,
// lower index first on ties. The run ends after r steps, or earlier once no
// coordinate has a positive gain (m = 0).
//
// Oracle calls: 1 + at most r·n. ε is not used.
type LaiDRState struct {
	state
}

// unitGain is one coordinate's candidate step.
type unitGain struct {
	e    int
	gain float64
	x    lattice.Vector
	v    float64
}

// NewLaiDR validates the instance and evaluates f(0). Options are accepted
// for signature parity with the other variants.
func NewLaiDR(rng *rand.Rand, f objective.Oracle, r int, opts ...Option) (*LaiDRState, error) {
	st, err := newState(rng, f, r, opts)
	if err != nil {
		return nil, err
	}
	a := &LaiDRState{state: st}
	if err = a.start(); err != nil {
		return nil, err
	}

	return a, nil
}

// Step adds one unit to a coordinate drawn from the current allocation.
func (a *LaiDRState) Step() error {
	if a.done {
		return nil
	}

	var gains []unitGain
	for _, e := range sampling.Unsaturated(a.x, a.caps) {
		cand := a.x.With(e, 1)
		v, err := a.f.Value(cand)
		if err != nil {
			return err
		}
		if d := v - a.value; d > 0 {
			gains = append(gains, unitGain{e: e, gain: d, x: cand, v: v})
		}
	}
	if len(gains) == 0 {
		a.done = true
		return nil
	}

	m, total := a.allocate(gains)
	pick := a.rng.Intn(total)
	for i, k := range m {
		if pick < k {
			a.apply(gains[i].x, gains[i].v, 1)
			break
		}
		pick -= k
	}
	if a.norm == a.r {
		a.done = true
	}

	return nil
}

// allocate reorders gains by decreasing gain and hands out at most r units,
// each coordinate receiving up to B[e] − x[e]. total ≥ 1 since r ≥ 1 and
// every listed coordinate is unsaturated.
func (a *LaiDRState) allocate(gains []unitGain) ([]int, int) {
	sort.SliceStable(gains, func(i, j int) bool { return gains[i].gain > gains[j].gain })

	m := make([]int, len(gains))
	left, total := a.r, 0
	for i, g := range gains {
		if left == 0 {
			break
		}
		k := min(a.caps[g.e]-a.x[g.e], left)
		m[i] = k
		left -= k
		total += k
	}

	return m, total
}

// LaiDR runs Lai-DR to completion and returns (x, f(x)) with sum(x) ≤ r.
func LaiDR(rng *rand.Rand, f objective.Oracle, r int, opts ...Option) (lattice.Vector, float64, error) {
	a, err := NewLaiDR(rng, f, r, opts...)
	if err != nil {
		return nil, 0, err
	}

	return drain(a)
}
