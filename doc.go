// SPDX-License-Identifier: MIT

// Package latmax maximizes monotone submodular functions over the bounded
// integer lattice {x ∈ ℤⁿ : 0 ≤ x ≤ B} under a cardinality budget sum(x) ≤ r.
//
// The module is organized bottom-up:
//
//	lattice/    — Vector, unit vectors, coordinate-wise ops, box enumeration
//	bipartite/  — weighted bipartite graphs backing the graph objectives
//	objective/  — Oracle contract, call counting, concrete objectives, brute force
//	sampling/   — sample size s = ⌈−ln(ε)·n/r⌉ and subset samplers
//	search/     — binary search for the largest admissible increment
//	greedy/     — SingleUnit (SGL-I), Boost (SGL-II), ThresholdDecay (SGL-III), LaiDR
//	soma/       — deterministic decreasing-threshold algorithm (Soma-DR-I, Soma-II)
//	bridge/     — lattice → set reduction and classical StochasticGreedy (SSG)
//	algo/       — closed algorithm enumeration, uniform Stepper, deadline driver
//	benchmark/  — YAML-configured comparison against the exact optimum
//	cmd/latbench — command-line front end
//
// Every algorithm is a resumable state object: Step performs one unit of
// work and Solution returns the last fully applied point, so a caller with a
// deadline can stop between steps and keep a consistent answer
// (see algo.Drive). Randomized algorithms take an explicit *rand.Rand; a
// fixed seed reproduces a run exactly.
package latmax
