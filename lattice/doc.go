// SPDX-License-Identifier: MIT
// Package: latmax/lattice
//
// Package lattice provides the integer-lattice vectors every algorithm in
// latmax operates on.
//
// A lattice point x is a vector of non-negative integers bounded
// coordinate-wise by a capacity vector B:
//
//	0 ≤ x[e] ≤ B[e]   for every e ∈ V = {0, …, n−1}
//
// The L1 norm sum(x) is what the cardinality constraint r bounds.
//
// Vectors are values: every mutating-looking helper (With, Add, Min, Max)
// returns a fresh slice and leaves its receiver untouched, so a solution
// handed out by one algorithm step is never aliased by the next.
//
// Contents:
//
//	Vector, Zero, Unit, Uniform        construction
//	Norm, Clone, With, Add, Scale      arithmetic
//	Leq, Min, Max, Equal, Within        coordinate-wise relations
//	Enumerate, Count                    exhaustive walk over {x : 0 ≤ x ≤ B}
//	RandomWithNorm                      uniform-ish random point with a fixed L1 norm
//
// Errors:
//
//	ErrDimensionMismatch – vectors of different lengths were combined.
//	ErrNegativeCapacity  – a capacity coordinate is negative.
//	ErrNormTooLarge      – requested norm exceeds sum(B).
package lattice
