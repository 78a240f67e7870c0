// SPDX-License-Identifier: MIT
// Package: latmax/bridge

// Package bridge embeds an integer-lattice instance (n, B, f) into an
// equivalent set-submodular instance and runs the classical StochasticGreedy
// algorithm on it.
//
// The expanded ground set has sum(B) elements. Coordinate e owns the
// contiguous block
//
//	[off(e), off(e)+B[e])    off(e) = B[0] + … + B[e−1]
//
// and a set S encodes the lattice point x[e] = |S ∩ block(e)|. The set
// objective is f'(S) = f(x), so only per-block counts matter: every S with
// the same counts has the same value, and ToLattice(ToSet(x)) == x for every
// 0 ≤ x ≤ B.
//
// SSG runs StochasticGreedy on f' (sample size computed from the expanded n)
// and decodes the chosen set back to a lattice point. It is the reference
// point the lattice-native algorithms are compared against: it always spends
// r steps of one unit each, but its samples are drawn from sum(B) elements
// rather than n coordinates.
//
// Errors:
//
//	ErrOutOfGround – an element index outside [0, sum(B)).
//	ErrOutOfBlock  – a lattice point leaves [0, B] or has the wrong length.
//	ErrNilRand     – rng is nil.
//
// plus objective.ErrNilOracle, ErrBadBudget and ErrInfeasible from the
// budget checks. Oracle errors propagate unchanged.
package bridge
