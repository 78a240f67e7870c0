// SPDX-License-Identifier: MIT
// Package: latmax/objective
//
// exact.go — exhaustive optimum for small instances.

package objective

import (
	"fmt"

	"github.com/katalvlaran/latmax/lattice"
)

// DefaultBruteForceLimit caps the lattice box BruteForce will walk.
const DefaultBruteForceLimit = 1 << 20

// BruteForce returns argmax {f(x) : 0 ≤ x ≤ B, sum(x) ≤ r} by enumerating the
// whole box. Ties keep the lexicographically first point. limit ≤ 0 means
// DefaultBruteForceLimit; boxes with more points fail with
// ErrSearchSpaceTooLarge before any oracle call.
func BruteForce(f Oracle, r, limit int) (lattice.Vector, float64, error) {
	if limit <= 0 {
		limit = DefaultBruteForceLimit
	}
	caps := f.Capacity()
	if size := lattice.Count(caps); size > limit {
		return nil, 0, fmt.Errorf("%w: %d points > limit %d", ErrSearchSpaceTooLarge, size, limit)
	}

	var (
		best    lattice.Vector
		bestVal float64
		evalErr error
	)
	err := lattice.Enumerate(caps, func(x lattice.Vector) bool {
		if x.Norm() > r {
			return true
		}
		v, err := f.Value(x)
		if err != nil {
			evalErr = err
			return false
		}
		if best == nil || v > bestVal {
			best, bestVal = x, v
		}
		return true
	})
	if err != nil {
		return nil, 0, err
	}
	if evalErr != nil {
		return nil, 0, evalErr
	}

	return best, bestVal, nil
}
