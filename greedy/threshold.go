// SPDX-License-Identifier: MIT
// Package: latmax/greedy
//
// threshold.go — SGL-III: linear-time threshold decay.

package greedy

import (
	"math/rand"

	"github.com/katalvlaran/latmax/lattice"
	"github.com/katalvlaran/latmax/objective"
	"github.com/katalvlaran/latmax/sampling"
	"github.com/katalvlaran/latmax/search"
)

// ThresholdDecayState runs the threshold-decay greedy.
//
// θ starts at d = max_e f(1_e) − f(0) and never drops below (ε/r)·d. A round
// samples Q of size min(s, #unsaturated) without replacement; every e ∈ Q in
// turn receives the largest k ≤ min(B[e]−x[e], r−sum(x)) with
// f(x + k·1_e) − f(x) ≥ k·θ (binary search against the current x), applied
// when it does not decrease f. After the round θ ← max(θ·(1−ε), (ε/r)·d).
// Rounds continue while sum(x) < r, until one full round has run at the
// floor (ε/r)·d, which bounds the number of rounds by ⌈log(ε/r)/log(1−ε)⌉+1.
//
// One Step processes one sampled coordinate, so an interrupted run loses at
// most one binary search.
type ThresholdDecayState struct {
	state

	theta float64
	stop  float64
	queue []int
	t     int
}

// NewThresholdDecay validates the instance and computes the initial θ, which
// costs 1 + #{e : B[e] ≥ 1} oracle calls.
func NewThresholdDecay(rng *rand.Rand, f objective.Oracle, r int, opts ...Option) (*ThresholdDecayState, error) {
	st, err := newState(rng, f, r, opts)
	if err != nil {
		return nil, err
	}
	a := &ThresholdDecayState{state: st}
	if a.done {
		if err = a.start(); err != nil {
			return nil, err
		}
		return a, nil
	}

	d, base, err := objective.BestUnitGain(f, st.caps, false)
	if err != nil {
		return nil, err
	}
	a.value = base
	if d <= 0 {
		// no unit increment gains anything: θ would never admit progress
		a.done = true
		return a, nil
	}
	a.theta = d
	a.stop = (a.eps / float64(r)) * d

	return a, nil
}

// Theta returns the current threshold θ.
func (a *ThresholdDecayState) Theta() float64 { return a.theta }

// Rounds returns the number of completed sampling rounds.
func (a *ThresholdDecayState) Rounds() int { return a.t }

// Step processes the next sampled coordinate, opening a new round first when
// the previous one is exhausted.
func (a *ThresholdDecayState) Step() error {
	if a.done {
		return nil
	}

	if len(a.queue) == 0 {
		a.queue = sampling.WithoutReplacement(a.rng, sampling.Unsaturated(a.x, a.caps), a.s)
		if len(a.queue) == 0 {
			a.done = true
			return nil
		}
	}

	e := a.queue[0]
	a.queue = a.queue[1:]

	cand, ok, err := search.Increment(a.f, a.x, e, a.value, a.theta, a.kMax(e))
	if err != nil {
		return err
	}
	if ok && cand.Value >= a.value {
		a.apply(cand.X, cand.Value, cand.K)
	}

	if a.norm >= a.r {
		// the rest of the round has no budget left
		a.queue = nil
	}
	if len(a.queue) == 0 {
		a.endRound()
	}

	return nil
}

func (a *ThresholdDecayState) endRound() {
	a.t++
	if a.norm >= a.r || a.theta <= a.stop {
		a.done = true
		return
	}
	a.theta *= 1 - a.eps
	if a.theta < a.stop {
		a.theta = a.stop
	}
}

// ThresholdDecay runs SGL-III to completion and returns (x, f(x)) with sum(x) ≤ r.
func ThresholdDecay(rng *rand.Rand, f objective.Oracle, r int, opts ...Option) (lattice.Vector, float64, error) {
	a, err := NewThresholdDecay(rng, f, r, opts...)
	if err != nil {
		return nil, 0, err
	}

	return drain(a)
}
