// SPDX-License-Identifier: MIT
// Package: latmax/soma
//
// Package soma implements the deterministic decreasing-threshold algorithm
// of Soma and Yoshida for maximizing a monotone DR-submodular function over
// the integer lattice under sum(x) ≤ r.
//
// Algorithm:
//
//	d    ← max_e f(m_e·1_e) − f(0)        m_e = 1 (default) or B[e] (WithCapacityTheta)
//	θ    ← d
//	stop ← (ε/r)·d
//	while θ > stop and sum(x) < r:
//	    for e in V (index order):
//	        k ← largest k ≤ min(B[e]−x[e], r−sum(x)) with f(x+k·1_e) − f(x) ≥ k·θ
//	        if k exists and f(x+k·1_e) ≥ f(x): x ← x + k·1_e
//	    θ ← θ·(1−ε)
//
// The inner search is search.Increment, O(log B[e]) oracle calls per
// coordinate. No randomness is involved; every pass visits the whole ground
// set, so a run costs O(n·log(max B)·log(r/ε)/ε) oracle calls. The number of
// passes is at most ⌈log(ε/r)/log(1−ε)⌉.
//
// The run is exposed as a resumable state whose Step visits one coordinate.
package soma

import (
	"fmt"

	"github.com/katalvlaran/latmax/lattice"
	"github.com/katalvlaran/latmax/objective"
	"github.com/katalvlaran/latmax/sampling"
	"github.com/katalvlaran/latmax/search"
)

// Options configures Soma.
type Options struct {
	// Epsilon is the decay/error parameter ε ∈ (0,1); 0 selects 1/(4n).
	Epsilon float64

	// CapacityTheta starts θ at max_e f(B[e]·1_e) − f(0) instead of the best unit gain.
	CapacityTheta bool
}

// Option is a functional option for Soma.
type Option func(*Options)

// DefaultOptions returns unit-gain θ and ε = 1/(4n).
func DefaultOptions() Options {
	return Options{}
}

// WithEpsilon sets ε. It panics unless 0 < eps < 1.
func WithEpsilon(eps float64) Option {
	if !(eps > 0 && eps < 1) {
		panic(fmt.Sprintf("soma: WithEpsilon(%v) must be in (0,1)", eps))
	}
	return func(o *Options) { o.Epsilon = eps }
}

// WithCapacityTheta selects the full-capacity initial threshold.
func WithCapacityTheta() Option {
	return func(o *Options) { o.CapacityTheta = true }
}

// State is a resumable Soma run.
type State struct {
	f    objective.Oracle
	caps lattice.Vector
	r    int
	eps  float64

	x     lattice.Vector
	value float64
	norm  int

	theta  float64
	stop   float64
	next   int       // next coordinate of the current pass
	passes int       // completed passes
	thetas []float64 // θ used by each started pass
	done   bool
}

// NewSoma validates the instance and computes the initial threshold, which costs
// 1 + #{e : B[e] ≥ 1} oracle calls.
func NewSoma(f objective.Oracle, r int, opts ...Option) (*State, error) {
	caps, err := objective.CheckBudget(f, r)
	if err != nil {
		return nil, err
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Epsilon == 0 {
		o.Epsilon = sampling.DefaultEpsilon(len(caps))
	}

	st := &State{
		f:    f,
		caps: caps,
		r:    r,
		eps:  o.Epsilon,
		x:    lattice.Zero(len(caps)),
	}

	if r == 0 {
		if st.value, err = f.Value(st.x); err != nil {
			return nil, err
		}
		st.done = true
		return st, nil
	}

	d, base, err := objective.BestUnitGain(f, caps, o.CapacityTheta)
	if err != nil {
		return nil, err
	}
	st.value = base
	if d <= 0 {
		st.done = true
		return st, nil
	}
	st.theta = d
	st.stop = (st.eps / float64(r)) * d
	st.thetas = append(st.thetas, d)

	return st, nil
}

// Step visits the next coordinate of the current pass.
func (st *State) Step() error {
	if st.done {
		return nil
	}

	e := st.next
	k := st.caps[e] - st.x[e]
	if rest := st.r - st.norm; rest < k {
		k = rest
	}
	cand, ok, err := search.Increment(st.f, st.x, e, st.value, st.theta, k)
	if err != nil {
		return err
	}
	if ok && cand.Value >= st.value {
		st.x, st.value = cand.X, cand.Value
		st.norm += cand.K
	}

	st.next++
	if st.norm >= st.r {
		st.passes++
		st.done = true
		return nil
	}
	if st.next == len(st.caps) {
		st.endPass()
	}

	return nil
}

func (st *State) endPass() {
	st.next = 0
	st.passes++
	st.theta *= 1 - st.eps
	if st.theta <= st.stop {
		st.done = true
		return
	}
	st.thetas = append(st.thetas, st.theta)
}

// Done reports whether the run has finished.
func (st *State) Done() bool { return st.done }

// Solution returns the current point and its value.
func (st *State) Solution() (lattice.Vector, float64) { return st.x.Clone(), st.value }

// Passes returns the number of completed passes over the ground set.
func (st *State) Passes() int { return st.passes }

// Theta returns the current threshold.
func (st *State) Theta() float64 { return st.theta }

// Thetas returns the threshold used by every pass started so far.
func (st *State) Thetas() []float64 { return append([]float64(nil), st.thetas...) }

// Epsilon returns the resolved ε.
func (st *State) Epsilon() float64 { return st.eps }

// MaxPasses returns ⌈log(ε/r)/log(1−ε)⌉, the bound on Passes.
func (st *State) MaxPasses() int {
	return MaxPasses(st.eps, st.r)
}

// Soma runs the algorithm to completion and returns (x, f(x)) with sum(x) ≤ r.
func Soma(f objective.Oracle, r int, opts ...Option) (lattice.Vector, float64, error) {
	st, err := NewSoma(f, r, opts...)
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
