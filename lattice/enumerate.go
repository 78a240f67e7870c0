// SPDX-License-Identifier: MIT
// Package: latmax/lattice
//
// enumerate.go — exhaustive walk over the box {x : 0 ≤ x ≤ B}.
//
// The walk is the Cartesian product of the ranges [0, B[e]] and visits
// Π_e (B[e]+1) points in lexicographic order (last coordinate fastest).

package lattice

import (
	"math"

	"gonum.org/v1/gonum/stat/combin"
)

// Count returns the number of lattice points in the box under caps,
// saturating at math.MaxInt on overflow.
func Count(caps Vector) int {
	total := 1
	for _, c := range caps {
		side := c + 1
		if side <= 0 {
			return 0
		}
		if total > math.MaxInt/side {
			return math.MaxInt
		}
		total *= side
	}

	return total
}

// Enumerate calls fn for every x with 0 ≤ x ≤ caps, in lexicographic order.
// The vector passed to fn is freshly allocated and may be retained.
// Enumeration stops early when fn returns false.
func Enumerate(caps Vector, fn func(x Vector) bool) error {
	if err := ValidateCapacity(caps); err != nil {
		return err
	}
	if len(caps) == 0 {
		fn(Vector{})
		return nil
	}

	lens := make([]int, len(caps))
	for e, c := range caps {
		lens[e] = c + 1
	}

	gen := combin.NewCartesianGenerator(lens)
	for gen.Next() {
		if !fn(Vector(gen.Product(nil))) {
			return nil
		}
	}

	return nil
}
