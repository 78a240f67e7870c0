// SPDX-License-Identifier: MIT
// Package: latmax/objective
//
// modular.go — linear objectives f(x) = w·x.

package objective

import (
	"fmt"
	"math"
	"math/rand"

	exprand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/latmax/lattice"
)

// Modular is the lattice-modular function f(x) = Σ_e w_e·x_e.
// With non-negative weights it is monotone, and it is trivially submodular.
type Modular struct {
	Base
	w []float64
}

// NewModular builds a modular objective with weights w and capacity caps.
func NewModular(w []float64, caps lattice.Vector, opts ...Option) (*Modular, error) {
	if len(w) != len(caps) {
		return nil, fmt.Errorf("%w: len(w)=%d, len(B)=%d", ErrBadWeights, len(w), len(caps))
	}
	if floats.HasNaN(w) {
		return nil, fmt.Errorf("%w: NaN weight", ErrBadWeights)
	}
	for e, we := range w {
		if math.IsInf(we, 0) {
			return nil, fmt.Errorf("%w: w[%d] is infinite", ErrBadWeights, e)
		}
	}
	base, err := NewBase("modular", caps, opts...)
	if err != nil {
		return nil, err
	}

	return &Modular{Base: base, w: append([]float64(nil), w...)}, nil
}

// Weights returns a copy of w.
func (m *Modular) Weights() []float64 { return append([]float64(nil), m.w...) }

// Value returns w·x.
func (m *Modular) Value(x lattice.Vector) (float64, error) {
	if err := m.Admit(x); err != nil {
		return 0, err
	}
	v := 0.0
	for e, c := range x {
		v += m.w[e] * float64(c)
	}

	return v, nil
}

// RandomModular draws integer weights uniformly from [0, 100).
func RandomModular(rng *rand.Rand, caps lattice.Vector, opts ...Option) (*Modular, error) {
	w := make([]float64, len(caps))
	for e := range w {
		w[e] = float64(rng.Intn(100))
	}
	m, err := NewModular(w, caps, opts...)
	if err != nil {
		return nil, err
	}
	m.name = "demo_monotone"

	return m, nil
}

// RandomSkewed draws weights from Beta(2, 6), concentrating most of the
// mass on a few coordinates.
func RandomSkewed(rng *rand.Rand, caps lattice.Vector, opts ...Option) (*Modular, error) {
	dist := distuv.Beta{Alpha: 2, Beta: 6, Src: exprand.NewSource(rng.Uint64())}
	w := make([]float64, len(caps))
	for e := range w {
		w[e] = dist.Rand()
	}
	m, err := NewModular(w, caps, opts...)
	if err != nil {
		return nil, err
	}
	m.name = "demo_monotone_skewed"

	return m, nil
}

// RandomNonMonotone draws integer weights uniformly from [−100, 100).
// Negative weights make the objective non-monotone.
func RandomNonMonotone(rng *rand.Rand, caps lattice.Vector, opts ...Option) (*Modular, error) {
	w := make([]float64, len(caps))
	for e := range w {
		w[e] = float64(rng.Intn(200) - 100)
	}
	m, err := NewModular(w, caps, opts...)
	if err != nil {
		return nil, err
	}
	m.name = "demo_non_monotone"

	return m, nil
}

// Func adapts a plain Go function into an Oracle.
type Func struct {
	Base
	fn func(lattice.Vector) (float64, error)
}

// NewFunc wraps fn, which is only called with points inside the domain.
func NewFunc(name string, caps lattice.Vector, fn func(lattice.Vector) (float64, error), opts ...Option) (*Func, error) {
	if fn == nil {
		return nil, fmt.Errorf("%w: nil function", ErrBadWeights)
	}
	base, err := NewBase(name, caps, opts...)
	if err != nil {
		return nil, err
	}

	return &Func{Base: base, fn: fn}, nil
}

// Value returns fn(x).
func (f *Func) Value(x lattice.Vector) (float64, error) {
	if err := f.Admit(x); err != nil {
		return 0, err
	}
	v, err := f.fn(x)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) {
		return 0, fmt.Errorf("%s: NaN at %v: %w", f.name, x, ErrBadWeights)
	}

	return v, nil
}
