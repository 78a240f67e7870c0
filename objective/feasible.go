// SPDX-License-Identifier: MIT
// Package: latmax/objective
//
// feasible.go — cardinality-budget preconditions shared by all algorithms.

package objective

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/latmax/lattice"
)

var (
	// ErrNilOracle indicates a nil objective was passed to an algorithm.
	ErrNilOracle = errors.New("objective: oracle is nil")

	// ErrBadBudget indicates a negative cardinality budget r.
	ErrBadBudget = errors.New("objective: cardinality budget must be non-negative")

	// ErrInfeasible indicates r > sum(B): no lattice point has norm r.
	ErrInfeasible = errors.New("objective: cardinality budget exceeds total capacity")
)

// CheckBudget validates (f, r) and returns f's capacity vector.
func CheckBudget(f Oracle, r int) (lattice.Vector, error) {
	if f == nil {
		return nil, ErrNilOracle
	}
	if r < 0 {
		return nil, fmt.Errorf("%w: r=%d", ErrBadBudget, r)
	}
	caps := f.Capacity()
	if total := caps.Norm(); r > total {
		return nil, fmt.Errorf("%w: r=%d, sum(B)=%d", ErrInfeasible, r, total)
	}

	return caps, nil
}

// BestUnitGain returns max_e f(m_e·1_e) − f(0) over coordinates with
// B[e] ≥ 1, where m_e = 1 when full is false and m_e = B[e] otherwise, along
// with f(0). It costs 1 + |{e : B[e] ≥ 1}| oracle calls. When no coordinate
// has capacity the gain is 0.
func BestUnitGain(f Oracle, caps lattice.Vector, full bool) (gain, base float64, err error) {
	zero := lattice.Zero(len(caps))
	if base, err = f.Value(zero); err != nil {
		return 0, 0, err
	}
	found := false
	for e, c := range caps {
		if c < 1 {
			continue
		}
		k := 1
		if full {
			k = c
		}
		v, err := f.Value(zero.With(e, k))
		if err != nil {
			return 0, 0, err
		}
		if !found || v-base > gain {
			gain, found = v-base, true
		}
	}

	return gain, base, nil
}
