// SPDX-License-Identifier: MIT
// Package: latmax/objective
//
// base.go — shared bookkeeping for concrete objectives.

package objective

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/latmax/lattice"
)

// DefaultLogEvery is the oracle-call interval between progress log entries.
const DefaultLogEvery = 1000

// Options configures the bookkeeping of an objective.
type Options struct {
	Logger   logrus.FieldLogger // receives Debug progress entries
	LogEvery int                // log every LogEvery calls
}

// Option is a functional option for objective constructors.
type Option func(*Options)

// DefaultOptions logs through the logrus standard logger every DefaultLogEvery calls.
func DefaultOptions() Options {
	return Options{
		Logger:   logrus.StandardLogger(),
		LogEvery: DefaultLogEvery,
	}
}

// WithLogger routes progress entries to l. It panics on nil.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic("objective: WithLogger(nil)")
	}
	return func(o *Options) { o.Logger = l }
}

// WithLogEvery sets the progress interval. It panics unless n > 0.
func WithLogEvery(n int) Option {
	if n <= 0 {
		panic(fmt.Sprintf("objective: WithLogEvery(%d) must be positive", n))
	}
	return func(o *Options) { o.LogEvery = n }
}

// Base implements the counting and domain parts of Oracle.
// Embed it and call Admit at the top of Value.
//
// Base is not safe for concurrent use; give each goroutine its own objective.
type Base struct {
	name  string
	caps  lattice.Vector
	calls int
	opts  Options
}

// NewBase validates caps and returns a Base named name.
func NewBase(name string, caps lattice.Vector, opts ...Option) (Base, error) {
	if err := lattice.ValidateCapacity(caps); err != nil {
		return Base{}, fmt.Errorf("%w: %v", ErrBadCapacity, err)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return Base{name: name, caps: caps.Clone(), opts: o}, nil
}

// Name returns the objective name used in logs and benchmark records.
func (b *Base) Name() string { return b.name }

// N returns the ground set size.
func (b *Base) N() int { return len(b.caps) }

// Capacity returns a copy of B.
func (b *Base) Capacity() lattice.Vector { return b.caps.Clone() }

// Calls returns the oracle-call counter.
func (b *Base) Calls() int { return b.calls }

// Reset zeroes the oracle-call counter.
func (b *Base) Reset() { b.calls = 0 }

// Admit counts one oracle call and checks that x lies in the domain.
func (b *Base) Admit(x lattice.Vector) error {
	b.calls++
	if b.opts.Logger != nil && b.calls%b.opts.LogEvery == 0 {
		b.opts.Logger.WithFields(logrus.Fields{
			"objective": b.name,
			"calls":     b.calls,
		}).Debug("oracle calls")
	}

	if len(x) != len(b.caps) {
		return fmt.Errorf("%w: len(x)=%d, n=%d", ErrOutOfDomain, len(x), len(b.caps))
	}
	for e, c := range x {
		if c < 0 || c > b.caps[e] {
			return fmt.Errorf("%w: x[%d]=%d not in [0,%d]", ErrOutOfDomain, e, c, b.caps[e])
		}
	}

	return nil
}
