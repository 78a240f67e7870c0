// SPDX-License-Identifier: MIT
// Package: latmax/bridge
//
// objective.go — the set objective f'(S) = f(x(S)).

package bridge

import (
	"github.com/katalvlaran/latmax/objective"
)

// SetObjective evaluates sets through the wrapped lattice oracle. Oracle
// calls are the lattice oracle's calls, so Calls and Reset delegate.
type SetObjective struct {
	f   objective.Oracle
	enc *Encoding
}

// ToSetObjective wraps f over the block encoding of its capacity.
func ToSetObjective(f objective.Oracle) (*SetObjective, error) {
	if f == nil {
		return nil, objective.ErrNilOracle
	}
	enc, err := NewEncoding(f.Capacity())
	if err != nil {
		return nil, err
	}

	return &SetObjective{f: f, enc: enc}, nil
}

// N returns the size of the expanded ground set.
func (g *SetObjective) N() int { return g.enc.Size() }

// Value returns f(ToLattice(s)).
func (g *SetObjective) Value(s Set) (float64, error) {
	x, err := g.enc.ToLattice(s)
	if err != nil {
		return 0, err
	}

	return g.f.Value(x)
}

// MarginalGain returns f'(s ∪ t) − f'(s).
func (g *SetObjective) MarginalGain(s, t Set) (float64, error) {
	base, err := g.Value(s)
	if err != nil {
		return 0, err
	}
	v, err := g.Value(s.Union(t))
	if err != nil {
		return 0, err
	}

	return v - base, nil
}

// Calls returns the wrapped oracle's call count.
func (g *SetObjective) Calls() int { return g.f.Calls() }

// Reset zeroes the wrapped oracle's call count.
func (g *SetObjective) Reset() { g.f.Reset() }

// Encoding returns the block layout.
func (g *SetObjective) Encoding() *Encoding { return g.enc }

// Lattice returns the wrapped lattice oracle.
func (g *SetObjective) Lattice() objective.Oracle { return g.f }
