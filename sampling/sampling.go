// SPDX-License-Identifier: MIT
// Package: latmax/sampling
//
// Package sampling holds the StochasticGreedy sampling machinery shared by
// the randomized lattice algorithms and the set-domain bridge.
//
// The sample size
//
//	s = max(1, ⌈−ln(ε)·n/r⌉)
//
// is the smallest random-subset size that, with probability ≥ 1−ε per step,
// hits at least one element of the optimal solution that is not yet
// saturated.
//
// All samplers take the *rand.Rand explicitly and consume it in a fixed
// order, so runs are reproducible from a seed.
package sampling

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/latmax/lattice"
)

// SampleSize returns max(1, ⌈−ln(eps)·n/r⌉); r ≤ 0 yields 1.
func SampleSize(n, r int, eps float64) int {
	if r <= 0 {
		return 1
	}
	s := int(math.Ceil(-math.Log(eps) * float64(n) / float64(r)))
	if s < 1 {
		return 1
	}

	return s
}

// DefaultEpsilon returns 1/(4n), the error threshold used when none is given.
func DefaultEpsilon(n int) float64 {
	if n < 1 {
		n = 1
	}

	return 1 / (4 * float64(n))
}

// Unsaturated returns, in ascending order, the coordinates e with x[e] < caps[e].
func Unsaturated(x, caps lattice.Vector) []int {
	out := make([]int, 0, len(x))
	for e := range x {
		if x[e] < caps[e] {
			out = append(out, e)
		}
	}

	return out
}

// WithoutReplacement returns min(k, len(pool)) distinct elements of pool in
// random order. pool is not modified.
func WithoutReplacement(rng *rand.Rand, pool []int, k int) []int {
	if k > len(pool) {
		k = len(pool)
	}
	if k <= 0 {
		return []int{}
	}
	buf := append([]int(nil), pool...)
	// partial Fisher–Yates: buf[:i] holds the sample so far
	for i := 0; i < k; i++ {
		j := i + rng.Intn(len(buf)-i)
		buf[i], buf[j] = buf[j], buf[i]
	}

	return buf[:k]
}

// WithReplacement draws k elements of pool independently and returns the
// distinct ones in order of first draw.
func WithReplacement(rng *rand.Rand, pool []int, k int) []int {
	if k <= 0 || len(pool) == 0 {
		return []int{}
	}
	seen := make(map[int]struct{}, k)
	out := make([]int, 0, k)
	for i := 0; i < k; i++ {
		v := pool[rng.Intn(len(pool))]
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}

	return out
}
