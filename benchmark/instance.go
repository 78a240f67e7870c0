// SPDX-License-Identifier: MIT
// Package: latmax/benchmark
//
// instance.go — objective construction per (n, b, r) triplet.

package benchmark

import (
	"math"
	"math/rand"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/latmax/bipartite"
	"github.com/katalvlaran/latmax/lattice"
	"github.com/katalvlaran/latmax/objective"
)

// Instance is one benchmark problem. Its objective is owned by the worker
// that built it.
type Instance struct {
	Index     int
	NBR       NBR
	Seed      int64
	Objective objective.Oracle
}

// builder constructs objectives for one Config.
type builder struct {
	cfg   *Config
	log   logrus.FieldLogger
	graph *bipartite.Graph // loaded edge list, shared read-only
}

func newBuilder(cfg *Config, log logrus.FieldLogger) (*builder, error) {
	b := &builder{cfg: cfg, log: log}
	if !cfg.isGraph() || cfg.Graph.EdgeList == "" {
		return b, nil
	}

	fh, err := os.Open(os.ExpandEnv(cfg.Graph.EdgeList))
	if err != nil {
		return nil, errors.Wrap(err, "opening edge list")
	}
	defer fh.Close()

	lg, err := bipartite.ReadEdgeList(fh)
	if err != nil {
		return nil, errors.Wrapf(err, "reading edge list %s", cfg.Graph.EdgeList)
	}
	log.WithFields(logrus.Fields{
		"path":  cfg.Graph.EdgeList,
		"left":  lg.Left(),
		"right": lg.Right(),
		"edges": lg.EdgeCount(),
	}).Info("loaded edge list")
	b.graph = lg.Graph

	return b, nil
}

// build returns the objective for t and the triplet actually used: with a
// loaded edge list n is the number of sources.
func (b *builder) build(rng *rand.Rand, t NBR) (objective.Oracle, NBR, error) {
	opts := []objective.Option{objective.WithLogger(b.log)}
	switch b.cfg.Objective {
	case DemoMonotone:
		f, err := objective.RandomModular(rng, lattice.Uniform(t.N, t.B), opts...)
		return f, t, err
	case DemoMonotoneSkewed:
		f, err := objective.RandomSkewed(rng, lattice.Uniform(t.N, t.B), opts...)
		return f, t, err
	case DemoNonMonotone:
		f, err := objective.RandomNonMonotone(rng, lattice.Uniform(t.N, t.B), opts...)
		return f, t, err
	}

	g := b.graph
	if g == nil {
		right := int(math.Ceil(b.cfg.Graph.Ratio * float64(t.N)))
		var err error
		if g, err = bipartite.Random(t.N, right, b.cfg.Graph.P, bipartite.WithRand(rng)); err != nil {
			return nil, t, errors.Wrap(err, "generating bipartite graph")
		}
	}
	t.N = g.Left()
	if t.R > t.N*t.B {
		return nil, t, errors.Wrapf(objective.ErrInfeasible, "triplet %v on a graph with %d sources", t, t.N)
	}

	switch b.cfg.Objective {
	case FacilityLocation:
		f, err := objective.NewFacilityLocation(g, t.B, opts...)
		return f, t, err
	case BudgetAllocation:
		f, err := objective.NewBudgetAllocation(g, lattice.Uniform(t.N, t.B), opts...)
		return f, t, err
	default:
		return nil, t, errors.Errorf("unknown objective %q", b.cfg.Objective)
	}
}
