// SPDX-License-Identifier: MIT
// Package: latmax/objective
//
// graph.go — objectives over a weighted bipartite graph (S, T; W).
// The ground set is the left side S; T is the customer side.

package objective

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/latmax/bipartite"
	"github.com/katalvlaran/latmax/lattice"
)

// FacilityLocation decides the scale x_s ∈ {0..b} of every facility s so as
// to serve the customers T. Customer t is served by its best facility:
//
//	f(x) = Σ_t max_s p(s, t, x_s),   p(s, t, k) = w_st·k·√(b+1−k)/b
//
// Pairs without an edge contribute 0.
type FacilityLocation struct {
	Base
	b         int
	customers [][]bipartite.Edge // customers[t] = edges incident to t
	scratch   []float64
}

// NewFacilityLocation builds a facility location objective with uniform scale bound b ≥ 1.
func NewFacilityLocation(g *bipartite.Graph, b int, opts ...Option) (*FacilityLocation, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if b < 1 {
		return nil, fmt.Errorf("%w: facility location needs b ≥ 1, got %d", ErrBadCapacity, b)
	}
	base, err := NewBase("facility_location", lattice.Uniform(g.Left(), b), opts...)
	if err != nil {
		return nil, err
	}
	customers := make([][]bipartite.Edge, g.Right())
	for t := range customers {
		customers[t] = g.RightEdges(t)
	}

	return &FacilityLocation{
		Base:      base,
		b:         b,
		customers: customers,
		scratch:   make([]float64, len(customers)),
	}, nil
}

func (fl *FacilityLocation) service(w float64, k int) float64 {
	return w * float64(k) * math.Sqrt(float64(fl.b+1-k)) / float64(fl.b)
}

// Value returns the total service value of the facility scales x.
func (fl *FacilityLocation) Value(x lattice.Vector) (float64, error) {
	if err := fl.Admit(x); err != nil {
		return 0, err
	}
	for t, edges := range fl.customers {
		best := 0.0
		for _, e := range edges {
			if p := fl.service(e.Weight, x[e.S]); p > best {
				best = p
			}
		}
		fl.scratch[t] = best
	}

	return floats.Sum(fl.scratch), nil
}

// BudgetAllocation distributes an advertising budget x_s over channels S;
// edge weight p_st is the probability that one unit on s influences t.
//
//	f(x) = Σ_t 1 − Π_{s∈N(t)} (1 − p_st)^{x_s}
//
// The function is monotone and DR-submodular.
type BudgetAllocation struct {
	Base
	customers [][]bipartite.Edge
	scratch   []float64
}

// NewBudgetAllocation builds a budget allocation objective; every edge
// weight must be a probability in [0, 1].
func NewBudgetAllocation(g *bipartite.Graph, caps lattice.Vector, opts ...Option) (*BudgetAllocation, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if len(caps) != g.Left() {
		return nil, fmt.Errorf("%w: len(B)=%d, channels=%d", ErrBadCapacity, len(caps), g.Left())
	}
	base, err := NewBase("budget_allocation", caps, opts...)
	if err != nil {
		return nil, err
	}
	customers := make([][]bipartite.Edge, g.Right())
	for t := range customers {
		customers[t] = g.RightEdges(t)
		for _, e := range customers[t] {
			if e.Weight > 1 {
				return nil, fmt.Errorf("%w: p[%d,%d]=%v is not a probability", ErrBadWeights, e.S, e.T, e.Weight)
			}
		}
	}

	return &BudgetAllocation{
		Base:      base,
		customers: customers,
		scratch:   make([]float64, len(customers)),
	}, nil
}

// Value returns the expected number of influenced customers.
func (ba *BudgetAllocation) Value(x lattice.Vector) (float64, error) {
	if err := ba.Admit(x); err != nil {
		return 0, err
	}
	for t, edges := range ba.customers {
		miss := 1.0
		for _, e := range edges {
			miss *= math.Pow(1-e.Weight, float64(x[e.S]))
		}
		ba.scratch[t] = 1 - miss
	}

	return floats.Sum(ba.scratch), nil
}
