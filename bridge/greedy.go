// SPDX-License-Identifier: MIT
// Package: latmax/bridge
//
// greedy.go — classical StochasticGreedy on the set objective, and SSG.

package bridge

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"github.com/katalvlaran/latmax/lattice"
	"github.com/katalvlaran/latmax/objective"
	"github.com/katalvlaran/latmax/sampling"
)

// ErrNilRand indicates a nil random generator.
var ErrNilRand = errors.New("bridge: rng is nil")

// Options configures StochasticGreedy.
type Options struct {
	// Epsilon is the error threshold ε ∈ (0,1); 0 selects 1/(4·sum(B)).
	Epsilon float64
}

// Option is a functional option for StochasticGreedy.
type Option func(*Options)

// DefaultOptions leaves Epsilon unset.
func DefaultOptions() Options {
	return Options{}
}

// WithEpsilon sets ε. It panics unless 0 < eps < 1.
func WithEpsilon(eps float64) Option {
	if !(eps > 0 && eps < 1) {
		panic(fmt.Sprintf("bridge: WithEpsilon(%v) must be in (0,1)", eps))
	}
	return func(o *Options) { o.Epsilon = eps }
}

// StochasticGreedyState runs StochasticGreedy over the expanded ground set.
//
// Each Step samples min(s, |V∖A|) elements of V∖A without replacement and adds
// the one maximizing f'(A ∪ {a}), evaluated through SetObjective.Value, the
// first sampled element winning ties. The run ends when |A| = r.
//
// ε defaults to 1/(4·|V|) with |V| = sum(B); algo.New passes 1/(4n) instead.
type StochasticGreedyState struct {
	rng *rand.Rand
	g   *SetObjective
	r   int
	eps float64
	s   int

	a     Set
	x     lattice.Vector // block counts of a
	pool  []int          // V∖A, ascending
	value float64
	done  bool
}

// NewStochasticGreedy validates the instance and evaluates f'(∅).
func NewStochasticGreedy(rng *rand.Rand, g *SetObjective, r int, opts ...Option) (*StochasticGreedyState, error) {
	if g == nil {
		return nil, objective.ErrNilOracle
	}
	if _, err := objective.CheckBudget(g.f, r); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, ErrNilRand
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	size := g.N()
	if o.Epsilon == 0 {
		o.Epsilon = sampling.DefaultEpsilon(size)
	}

	pool := make([]int, size)
	for i := range pool {
		pool[i] = i
	}
	st := &StochasticGreedyState{
		rng:  rng,
		g:    g,
		r:    r,
		eps:  o.Epsilon,
		s:    sampling.SampleSize(size, r, o.Epsilon),
		a:    make(Set, r),
		x:    lattice.Zero(g.enc.N()),
		pool: pool,
		done: r == 0,
	}
	v, err := g.f.Value(st.x)
	if err != nil {
		return nil, err
	}
	st.value = v

	return st, nil
}

// Step adds one sampled element to A.
func (st *StochasticGreedyState) Step() error {
	if st.done {
		return nil
	}

	q := sampling.WithoutReplacement(st.rng, st.pool, st.s)
	if len(q) == 0 {
		st.done = true
		return nil
	}

	var (
		bestI = -1
		bestV float64
	)
	cand := st.a.Clone()
	for _, i := range q {
		cand.Add(i)
		v, err := st.g.Value(cand)
		delete(cand, i)
		if err != nil {
			return err
		}
		if bestI < 0 || v > bestV {
			bestI, bestV = i, v
		}
	}

	e, err := st.g.enc.Block(bestI)
	if err != nil {
		return err
	}
	st.a.Add(bestI)
	st.x, st.value = st.x.With(e, 1), bestV
	j := sort.SearchInts(st.pool, bestI)
	st.pool = append(st.pool[:j], st.pool[j+1:]...)
	if st.a.Len() == st.r {
		st.done = true
	}

	return nil
}

// Done reports whether |A| = r.
func (st *StochasticGreedyState) Done() bool { return st.done }

// Set returns a copy of A and f'(A).
func (st *StochasticGreedyState) Set() (Set, float64) { return st.a.Clone(), st.value }

// Solution returns the lattice point decoded from A and its value.
func (st *StochasticGreedyState) Solution() (lattice.Vector, float64) { return st.x.Clone(), st.value }

// SampleSize returns s, computed from the expanded ground set size.
func (st *StochasticGreedyState) SampleSize() int { return st.s }

// StochasticGreedy runs the set algorithm to completion and returns A with |A| = r.
func StochasticGreedy(rng *rand.Rand, g *SetObjective, r int, opts ...Option) (Set, float64, error) {
	st, err := NewStochasticGreedy(rng, g, r, opts...)
	if err != nil {
		return nil, 0, err
	}
	for !st.Done() {
		if err = st.Step(); err != nil {
			return nil, 0, err
		}
	}
	a, v := st.Set()

	return a, v, nil
}

// NewSSG wraps f as a set objective and prepares StochasticGreedy on it.
// Solution on the returned state yields lattice points.
func NewSSG(rng *rand.Rand, f objective.Oracle, r int, opts ...Option) (*StochasticGreedyState, error) {
	g, err := ToSetObjective(f)
	if err != nil {
		return nil, err
	}

	return NewStochasticGreedy(rng, g, r, opts...)
}

// SSG solves the lattice instance through the set bridge and returns
// (x, f(x)) with sum(x) = r.
func SSG(rng *rand.Rand, f objective.Oracle, r int, opts ...Option) (lattice.Vector, float64, error) {
	st, err := NewSSG(rng, f, r, opts...)
	if err != nil {
		return nil, 0, err
	}
	for !st.Done() {
		if err = st.Step(); err != nil {
			return nil, 0, err
		}
	}
	x, v := st.Solution()

	return x, v, nil
}
