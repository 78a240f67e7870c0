// SPDX-License-Identifier: MIT
// Package: latmax/bipartite
//
// options.go — functional options for the random generator and loader.
//
// Deterministic defaults:
//   • rng       = nil              (Random requires WithSeed or WithRand when 0 < p < 1)
//   • weightFn  = uniform [0,1)    (needs rng; constant 1 when rng is nil)
//   • comma     = ','
//   • comment   = '#'

package bipartite

import (
	"math/rand"
)

// Option configures Random and ReadEdgeList.
type Option func(*config)

type config struct {
	rng          *rand.Rand
	weightFn     func(*rand.Rand) float64
	customWeight bool
	comma        rune
	comment      rune
}

func newConfig(opts ...Option) config {
	cfg := config{
		comma:   ',',
		comment: '#',
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.weightFn == nil {
		cfg.weightFn = func(r *rand.Rand) float64 {
			if r == nil {
				return 1
			}
			return r.Float64()
		}
	}

	return cfg
}

// WithRand sets the random source used for edge trials and weights.
// It panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("bipartite: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithSeed is shorthand for WithRand(rand.New(rand.NewSource(seed))).
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeightFn sets the edge weight generator used by Random, which then
// requires an rng. It panics on nil.
func WithWeightFn(fn func(*rand.Rand) float64) Option {
	if fn == nil {
		panic("bipartite: WithWeightFn(nil)")
	}
	return func(c *config) { c.weightFn, c.customWeight = fn, true }
}

// WithComma sets the field delimiter for ReadEdgeList.
func WithComma(r rune) Option {
	return func(c *config) { c.comma = r }
}

// WithComment sets the comment rune for ReadEdgeList; 0 disables comments.
func WithComment(r rune) Option {
	return func(c *config) { c.comment = r }
}
