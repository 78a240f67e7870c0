// SPDX-License-Identifier: MIT
// Package: latmax/benchmark

// Package benchmark compares the lattice algorithms against the exact
// optimum on generated instances.
//
// A run is described by a YAML Config: the objective family, the (n, b, r)
// triplets (explicit or produced by GenerateNBR), the algorithms, the
// per-run timeouts and the number of samples per timeout. For every triplet
// the Runner builds one instance with its own seeded generator, computes the
// brute-force optimum when the lattice box is small enough, and then runs
// every algorithm samples × timeouts times. Each run yields one Record:
//
//	i,algorithm,objective,n,b,r,opt,approx,ratio,calls,timeout,elapsed,interrupted
//
// Instances are processed in parallel on an errgroup; records are written in
// instance order, so the output depends only on the configuration.
//
// Metrics (Prometheus, labelled by algorithm and objective):
//
//	latmax_oracle_calls_total         oracle calls spent by completed runs
//	latmax_run_duration_seconds       wall time per run
//	latmax_approximation_ratio        ratio of the most recent run
//	latmax_runs_interrupted_total     runs stopped by their timeout
package benchmark
