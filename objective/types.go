// SPDX-License-Identifier: MIT
// Package: latmax/objective
//
// Package objective defines the value-oracle contract every lattice
// algorithm consumes, a call-counting Base that concrete objectives embed,
// and the objectives used in experiments:
//
//	Modular           f(x) = Σ_e w_e·x_e               (monotone when w ≥ 0)
//	FacilityLocation  f(x) = Σ_t max_s w_st·x_s·√(b+1−x_s)/b
//	BudgetAllocation  f(x) = Σ_t 1 − Π_{s∈N(t)} (1−p_st)^{x_s}
//	Func              any Go function over lattice points
//
// Oracle calls are the resource algorithms economize, so every Value call
// is counted, including calls that fail domain validation. Reset zeroes the
// counter between benchmark trials.
//
// Errors:
//
//	ErrOutOfDomain         – x has the wrong length or leaves [0, B].
//	ErrBadCapacity         – a capacity vector/scalar is invalid.
//	ErrBadWeights          – weights are missing, non-finite, or out of range.
//	ErrNilGraph            – a graph objective got a nil graph.
//	ErrSearchSpaceTooLarge – BruteForce refused an oversize lattice box.
package objective

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/latmax/lattice"
)

// Sentinel errors for objective construction and evaluation.
var (
	// ErrOutOfDomain indicates a point outside {x : 0 ≤ x ≤ B}.
	ErrOutOfDomain = errors.New("objective: point outside lattice domain")

	// ErrBadCapacity indicates an invalid capacity.
	ErrBadCapacity = errors.New("objective: invalid capacity")

	// ErrBadWeights indicates invalid objective weights.
	ErrBadWeights = errors.New("objective: invalid weights")

	// ErrNilGraph indicates a nil bipartite graph.
	ErrNilGraph = errors.New("objective: graph is nil")

	// ErrSearchSpaceTooLarge indicates BruteForce would enumerate too many points.
	ErrSearchSpaceTooLarge = errors.New("objective: search space too large")
)

// Oracle is an integer-lattice set function f: {x : 0 ≤ x ≤ B} → ℝ.
//
// Monotonicity and submodularity are properties of the concrete function,
// not enforced here.
type Oracle interface {
	// N returns the ground set size n.
	N() int

	// Capacity returns a copy of the capacity vector B.
	Capacity() lattice.Vector

	// Value evaluates f(x); every call counts as one oracle call.
	Value(x lattice.Vector) (float64, error)

	// Calls returns the number of Value calls since the last Reset.
	Calls() int

	// Reset zeroes the call counter.
	Reset()
}

// MarginalGain returns f(delta | x) = f(x + delta) − f(x). It costs two oracle calls.
func MarginalGain(f Oracle, delta, x lattice.Vector) (float64, error) {
	y, err := x.Add(delta)
	if err != nil {
		return 0, fmt.Errorf("marginal gain: %w", err)
	}
	fy, err := f.Value(y)
	if err != nil {
		return 0, err
	}
	fx, err := f.Value(x)
	if err != nil {
		return 0, err
	}

	return fy - fx, nil
}
