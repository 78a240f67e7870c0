// SPDX-License-Identifier: MIT
// Package: latmax/lattice
//
// random.go — random lattice points with a prescribed L1 norm.

package lattice

import (
	"fmt"
	"math/rand"
)

// RandomWithNorm returns a random x with 0 ≤ x ≤ caps and sum(x) = norm.
//
// Coordinates are filled in a random order; each receives a uniform value in
// the interval that still lets the remaining coordinates reach the target:
//
//	lo = max(0, rest − capAfter),  hi = min(B[e], rest)
//
// where rest is the norm still to place and capAfter the capacity of the
// coordinates not yet visited.
func RandomWithNorm(rng *rand.Rand, caps Vector, norm int) (Vector, error) {
	if err := ValidateCapacity(caps); err != nil {
		return nil, err
	}
	total := caps.Norm()
	if norm < 0 || norm > total {
		return nil, fmt.Errorf("%w: norm=%d, sum(B)=%d", ErrNormTooLarge, norm, total)
	}

	x := Zero(len(caps))
	rest := norm
	capAfter := total
	for _, e := range rng.Perm(len(caps)) {
		capAfter -= caps[e]
		lo := rest - capAfter
		if lo < 0 {
			lo = 0
		}
		hi := caps[e]
		if hi > rest {
			hi = rest
		}
		x[e] = lo + rng.Intn(hi-lo+1)
		rest -= x[e]
	}

	return x, nil
}
