// SPDX-License-Identifier: MIT
// Package: latmax/search
//
// Package search finds how many copies of a single coordinate a
// threshold-based algorithm may add at once.
//
// Given the current point x with value prev = f(x), a coordinate e and a
// threshold θ, Increment looks for the largest k ∈ [1, kMax] with
//
//	f(x + k·1_e) − prev ≥ k·θ
//
// by binary search over k. For DR-submodular f the per-unit gain
// (f(x+k·1_e) − f(x))/k is non-increasing in k, so the predicate holds on a
// prefix of [1, kMax] and the search returns exactly the largest admissible k
// in O(log kMax) oracle calls instead of the kMax calls of a linear scan.
// For general submodular f the answer is the largest admissible probe seen.
package search

import (
	"github.com/katalvlaran/latmax/lattice"
	"github.com/katalvlaran/latmax/objective"
)

// Candidate is an admissible increment: X = x + K·1_e and Value = f(X).
type Candidate struct {
	K     int
	X     lattice.Vector
	Value float64
}

// Increment returns the largest admissible k in [1, kMax] for coordinate e,
// or ok == false when no probe passed. kMax < 1 returns immediately without
// oracle calls. Oracle errors are returned unchanged.
func Increment(f objective.Oracle, x lattice.Vector, e int, prev, theta float64, kMax int) (best Candidate, ok bool, err error) {
	lo, hi := 1, kMax
	for lo <= hi {
		// upper midpoint: the first probe on [1, kMax] tries the largest half
		k := hi - (hi-lo)/2

		cand := x.With(e, k)
		v, err := f.Value(cand)
		if err != nil {
			return Candidate{}, false, err
		}

		if v-prev >= float64(k)*theta {
			if !ok || k > best.K {
				best, ok = Candidate{K: k, X: cand, Value: v}, true
			}
			lo = k + 1
		} else {
			hi = k - 1
		}
	}

	return best, ok, nil
}
