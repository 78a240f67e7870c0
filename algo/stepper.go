// SPDX-License-Identifier: MIT
// Package: latmax/algo

package algo

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/katalvlaran/latmax/bridge"
	"github.com/katalvlaran/latmax/greedy"
	"github.com/katalvlaran/latmax/lattice"
	"github.com/katalvlaran/latmax/objective"
	"github.com/katalvlaran/latmax/sampling"
	"github.com/katalvlaran/latmax/soma"
)

// ErrBadEpsilon indicates an error threshold that is NaN or not below 1.
var ErrBadEpsilon = errors.New("algo: epsilon must be below 1")

// Stepper is the resumable form shared by every algorithm. Solution always
// reflects the last completed Step.
type Stepper interface {
	Step() error
	Done() bool
	Solution() (lattice.Vector, float64)
}

// New builds the stepper for kind. eps ≤ 0 selects ε = 1/(4n) for every kind;
// for SSG n is the lattice dimension, not the expanded ground set size.
// eps ≥ 1 or NaN fails with ErrBadEpsilon. LaiDR ignores eps. rng may be nil
// for the deterministic kinds.
func New(kind Kind, rng *rand.Rand, f objective.Oracle, r int, eps float64) (Stepper, error) {
	if math.IsNaN(eps) || eps >= 1 {
		return nil, fmt.Errorf("%w: %v", ErrBadEpsilon, eps)
	}

	var (
		s   Stepper
		err error
	)
	switch kind {
	case SingleUnit:
		s, err = wrap(greedy.NewSingleUnit(rng, f, r, greedyOpts(eps)...))
	case Boost:
		s, err = wrap(greedy.NewBoost(rng, f, r, greedyOpts(eps)...))
	case ThresholdDecay:
		s, err = wrap(greedy.NewThresholdDecay(rng, f, r, greedyOpts(eps)...))
	case Soma:
		s, err = wrap(soma.NewSoma(f, r, somaOpts(eps)...))
	case SomaCapacity:
		s, err = wrap(soma.NewSoma(f, r, append(somaOpts(eps), soma.WithCapacityTheta())...))
	case SetStochasticGreedy:
		var opts []bridge.Option
		if eps <= 0 && f != nil && f.N() > 0 {
			eps = sampling.DefaultEpsilon(f.N())
		}
		if eps > 0 {
			opts = append(opts, bridge.WithEpsilon(eps))
		}
		s, err = wrap(bridge.NewSSG(rng, f, r, opts...))
	case LaiDR:
		s, err = wrap(greedy.NewLaiDR(rng, f, r))
	default:
		err = fmt.Errorf("%w: %v", ErrUnknownKind, kind)
	}

	return s, err
}

// wrap keeps a failed constructor from leaking a typed nil into Stepper.
func wrap[S Stepper](s S, err error) (Stepper, error) {
	if err != nil {
		return nil, err
	}
	return s, nil
}

func greedyOpts(eps float64) []greedy.Option {
	if eps > 0 {
		return []greedy.Option{greedy.WithEpsilon(eps)}
	}
	return nil
}

func somaOpts(eps float64) []soma.Option {
	if eps > 0 {
		return []soma.Option{soma.WithEpsilon(eps)}
	}
	return nil
}

// Result is the outcome of driving a Stepper.
type Result struct {
	X           lattice.Vector
	Value       float64
	Steps       int
	Elapsed     time.Duration
	Interrupted bool // ctx expired before Done
}

// Drive steps s until it is done or ctx is cancelled. Cancellation is checked
// between steps and yields the last completed solution with Interrupted set
// and a nil error. Step errors are returned unchanged. A nil ctx means
// context.Background().
func Drive(ctx context.Context, s Stepper) (Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	start := time.Now()

	var res Result
	for !s.Done() {
		if ctx.Err() != nil {
			res.Interrupted = true
			break
		}
		if err := s.Step(); err != nil {
			return Result{}, err
		}
		res.Steps++
	}
	res.X, res.Value = s.Solution()
	res.Elapsed = time.Since(start)

	return res, nil
}

// Run builds kind and drives it to completion.
func Run(kind Kind, rng *rand.Rand, f objective.Oracle, r int, eps float64) (lattice.Vector, float64, error) {
	s, err := New(kind, rng, f, r, eps)
	if err != nil {
		return nil, 0, err
	}
	res, err := Drive(context.Background(), s)
	if err != nil {
		return nil, 0, err
	}

	return res.X, res.Value, nil
}
