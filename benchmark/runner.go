// SPDX-License-Identifier: MIT
// Package: latmax/benchmark
//
// runner.go — parallel execution of a Config.

package benchmark

import (
	"context"
	"math"
	"math/rand"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/latmax/algo"
	"github.com/katalvlaran/latmax/objective"
)

// Options configures a Runner.
type Options struct {
	Logger  logrus.FieldLogger
	Metrics *Metrics
}

// Option is a functional option for NewRunner.
type Option func(*Options)

// WithLogger sets the logger. It panics on nil.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic("benchmark: WithLogger(nil)")
	}
	return func(o *Options) { o.Logger = l }
}

// WithMetrics records every run in m.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) { o.Metrics = m }
}

// Runner executes a validated Config.
type Runner struct {
	cfg     *Config
	kinds   []algo.Kind
	log     logrus.FieldLogger
	metrics *Metrics
	build   *builder
}

// NewRunner validates cfg and loads its inputs.
func NewRunner(cfg *Config, opts ...Option) (*Runner, error) {
	o := Options{Logger: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(&o)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	kinds, err := cfg.Kinds()
	if err != nil {
		return nil, err
	}
	b, err := newBuilder(cfg, o.Logger)
	if err != nil {
		return nil, err
	}

	return &Runner{cfg: cfg, kinds: kinds, log: o.Logger, metrics: o.Metrics, build: b}, nil
}

// Instances draws one seed per triplet from the configured seed. Seeds are
// fixed before any work starts, so results do not depend on scheduling.
func (r *Runner) Instances() []Instance {
	master := rand.New(rand.NewSource(r.cfg.Seed))
	out := make([]Instance, len(r.cfg.NBR))
	for i, t := range r.cfg.NBR {
		out[i] = Instance{Index: i, NBR: t, Seed: master.Int63()}
	}

	return out
}

// Run executes every instance and writes the records in instance order.
// The first failing instance cancels the rest.
func (r *Runner) Run(ctx context.Context, out *CSVWriter) error {
	insts := r.Instances()
	results := make([][]Record, len(insts))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Workers())
	for i := range insts {
		i := i
		g.Go(func() error {
			recs, err := r.runInstance(ctx, &insts[i])
			if err != nil {
				return errors.Wrapf(err, "instance %d %v", insts[i].Index, insts[i].NBR)
			}
			results[i] = recs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, recs := range results {
		if err := out.Write(recs...); err != nil {
			return err
		}
	}

	return nil
}

func (r *Runner) runInstance(ctx context.Context, inst *Instance) ([]Record, error) {
	rng := rand.New(rand.NewSource(inst.Seed))
	f, t, err := r.build.build(rng, inst.NBR)
	if err != nil {
		return nil, err
	}
	inst.NBR, inst.Objective = t, f
	log := r.log.WithFields(logrus.Fields{"instance": inst.Index, "n": t.N, "b": t.B, "r": t.R})

	opt := math.NaN()
	_, v, err := objective.BruteForce(f, t.R, r.cfg.ExactLimit)
	switch {
	case err == nil:
		opt = v
		log.WithField("opt", opt).Info("computed exact maximum")
	case errors.Is(err, objective.ErrSearchSpaceTooLarge):
		log.WithError(err).Warn("skipping exact maximum")
	default:
		return nil, errors.Wrap(err, "computing exact maximum")
	}

	var recs []Record
	for _, kind := range r.kinds {
		for _, timeout := range r.cfg.Timeouts {
			for i := 1; i <= r.cfg.Samples; i++ {
				if err = ctx.Err(); err != nil {
					return nil, err
				}
				rec, err := r.runOnce(ctx, kind, rng, f, t, timeout)
				if err != nil {
					return nil, errors.Wrapf(err, "%s sample %d", kind, i)
				}
				rec.I, rec.Opt = i, opt
				rec.Ratio = ratio(rec.Approx, opt)
				r.metrics.Observe(rec)
				log.WithFields(logrus.Fields{
					"algorithm":   rec.Algorithm,
					"sample":      i,
					"approx":      rec.Approx,
					"ratio":       rec.Ratio,
					"calls":       rec.Calls,
					"interrupted": rec.Interrupted,
				}).Debug("run finished")
				recs = append(recs, rec)
			}
		}
	}

	return recs, nil
}

// runOnce times and counts the whole run, construction included: the
// constructors already spend oracle calls on f(0) and the initial threshold.
func (r *Runner) runOnce(ctx context.Context, kind algo.Kind, rng *rand.Rand, f objective.Oracle, t NBR, timeout time.Duration) (Record, error) {
	runCtx, cancel := ctx, context.CancelFunc(func() {})
	if timeout > 0 {
		runCtx, cancel = context.WithTimeout(ctx, timeout)
	}
	defer cancel()

	start := time.Now()
	f.Reset()
	s, err := algo.New(kind, rng, f, t.R, r.cfg.Epsilon)
	if err != nil {
		return Record{}, err
	}
	res, err := algo.Drive(runCtx, s)
	if err != nil {
		return Record{}, err
	}
	elapsed := time.Since(start)
	// a parent cancellation is not a timeout
	if res.Interrupted && ctx.Err() != nil {
		return Record{}, ctx.Err()
	}

	return Record{
		Algorithm:   kind.String(),
		Objective:   r.cfg.Objective,
		N:           t.N,
		B:           t.B,
		R:           t.R,
		Approx:      res.Value,
		Calls:       f.Calls(),
		Timeout:     timeout,
		Elapsed:     elapsed,
		Interrupted: res.Interrupted,
	}, nil
}

func ratio(approx, opt float64) float64 {
	if math.IsNaN(opt) || opt == 0 {
		return math.NaN()
	}

	return approx / opt
}
