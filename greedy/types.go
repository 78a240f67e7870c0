// SPDX-License-Identifier: MIT
// Package: latmax/greedy
//
// Package greedy implements StochasticGreedy generalizations for maximizing
// a monotone submodular function over the integer lattice under the
// cardinality constraint sum(x) ≤ r.
//
// Three variants, in increasing sophistication:
//
//	SingleUnit      (SGL-I)   r steps; each samples s unsaturated coordinates
//	                          without replacement and adds one unit to the best.
//	Boost           (SGL-II)  each step samples s coordinates with replacement
//	                          and applies the best (e, k) over every feasible k.
//	ThresholdDecay  (SGL-III) rounds over s sampled coordinates; each takes the
//	                          largest k whose per-unit gain clears θ (binary
//	                          search), θ decays by (1−ε) per round.
//
// where s = max(1, ⌈−ln(ε)·n/r⌉) and ε defaults to 1/(4n).
//
// LaiDR (Lai-DR) takes no sample: each step spreads r units over the largest
// positive unit gains and adds one unit to a coordinate drawn in proportion
// to its share.
//
// Every variant is a resumable state object: New… builds it, Step performs
// one unit of work, Done reports completion, and Solution returns the last
// fully applied point with its value. The one-shot functions drive a state
// object to completion.
//
// Guarantees: 0 ≤ x ≤ B and sum(x) ≤ r for every variant; SingleUnit ends
// with sum(x) = r, and so does LaiDR while some unit gain stays positive.
//
// Errors (sentinel, from package objective):
//
//	ErrNilOracle  – f is nil.
//	ErrBadBudget  – r < 0.
//	ErrInfeasible – r > sum(B).
//
// plus ErrNilRand when rng is nil. Oracle errors propagate unchanged.
package greedy

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/latmax/lattice"
	"github.com/katalvlaran/latmax/objective"
	"github.com/katalvlaran/latmax/sampling"
)

// ErrNilRand indicates a nil random generator.
var ErrNilRand = errors.New("greedy: rng is nil")

// Options configures the greedy algorithms.
type Options struct {
	// Epsilon is the error threshold ε ∈ (0,1); 0 selects 1/(4n).
	Epsilon float64
}

// Option is a functional option for the greedy constructors.
type Option func(*Options)

// DefaultOptions leaves Epsilon unset so that it resolves to 1/(4n).
func DefaultOptions() Options {
	return Options{}
}

// WithEpsilon sets ε. It panics unless 0 < eps < 1.
func WithEpsilon(eps float64) Option {
	if !(eps > 0 && eps < 1) {
		panic(fmt.Sprintf("greedy: WithEpsilon(%v) must be in (0,1)", eps))
	}
	return func(o *Options) { o.Epsilon = eps }
}

// state is the bookkeeping shared by every variant.
type state struct {
	rng  *rand.Rand
	f    objective.Oracle
	caps lattice.Vector
	r    int
	eps  float64
	s    int

	x     lattice.Vector
	value float64
	norm  int
	done  bool
}

func newState(rng *rand.Rand, f objective.Oracle, r int, opts []Option) (state, error) {
	caps, err := objective.CheckBudget(f, r)
	if err != nil {
		return state{}, err
	}
	if rng == nil {
		return state{}, ErrNilRand
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	n := len(caps)
	if o.Epsilon == 0 {
		o.Epsilon = sampling.DefaultEpsilon(n)
	}

	st := state{
		rng:  rng,
		f:    f,
		caps: caps,
		r:    r,
		eps:  o.Epsilon,
		s:    sampling.SampleSize(n, r, o.Epsilon),
		x:    lattice.Zero(n),
		done: r == 0,
	}

	return st, nil
}

// start evaluates f(0), the value of the initial point.
func (st *state) start() error {
	v, err := st.f.Value(st.x)
	if err != nil {
		return err
	}
	st.value = v

	return nil
}

func (st *state) apply(x lattice.Vector, v float64, k int) {
	st.x, st.value = x, v
	st.norm += k
}

func (st *state) kMax(e int) int {
	k := st.caps[e] - st.x[e]
	if rest := st.r - st.norm; rest < k {
		k = rest
	}

	return k
}

// Done reports whether the run has finished.
func (st *state) Done() bool { return st.done }

// Solution returns the current point and its value.
func (st *state) Solution() (lattice.Vector, float64) { return st.x.Clone(), st.value }

// SampleSize returns the per-step sample size s.
func (st *state) SampleSize() int { return st.s }

// Epsilon returns the resolved ε.
func (st *state) Epsilon() float64 { return st.eps }

type stepper interface {
	Step() error
	Done() bool
	Solution() (lattice.Vector, float64)
}

func drain(s stepper) (lattice.Vector, float64, error) {
	for !s.Done() {
		if err := s.Step(); err != nil {
			return nil, 0, err
		}
	}
	x, v := s.Solution()

	return x, v, nil
}
