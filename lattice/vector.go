// SPDX-License-Identifier: MIT
// Package: latmax/lattice
//
// vector.go — Vector type and coordinate-wise helpers.

package lattice

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for lattice operations.
var (
	// ErrDimensionMismatch indicates two vectors of different length were combined.
	ErrDimensionMismatch = errors.New("lattice: dimension mismatch")

	// ErrNegativeCapacity indicates a capacity vector with a negative coordinate.
	ErrNegativeCapacity = errors.New("lattice: negative capacity")

	// ErrNormTooLarge indicates a requested L1 norm that no point under B can reach.
	ErrNormTooLarge = errors.New("lattice: norm exceeds total capacity")
)

// Vector is an integer-lattice point (or a capacity vector).
type Vector []int

// Zero returns the n-dimensional zero vector.
func Zero(n int) Vector {
	return make(Vector, n)
}

// Unit returns the characteristic vector 1_e of dimension n.
// It panics if e is outside [0, n).
func Unit(n, e int) Vector {
	if e < 0 || e >= n {
		panic(fmt.Sprintf("lattice: unit coordinate %d out of range [0,%d)", e, n))
	}
	v := make(Vector, n)
	v[e] = 1

	return v
}

// Uniform returns the n-dimensional vector with every coordinate equal to b.
// It is the vector form of a scalar capacity b.
func Uniform(n, b int) Vector {
	v := make(Vector, n)
	for i := range v {
		v[i] = b
	}

	return v
}

// Clone returns an independent copy of v.
func (v Vector) Clone() Vector {
	if v == nil {
		return nil
	}
	out := make(Vector, len(v))
	copy(out, v)

	return out
}

// Norm returns the L1 norm sum(v). Coordinates are assumed non-negative.
func (v Vector) Norm() int {
	s := 0
	for _, c := range v {
		s += c
	}

	return s
}

// With returns a copy of v with k added to coordinate e, i.e. v + k·1_e.
func (v Vector) With(e, k int) Vector {
	out := v.Clone()
	out[e] += k

	return out
}

// Add returns v + w.
func (v Vector) Add(w Vector) (Vector, error) {
	if len(v) != len(w) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, len(v), len(w))
	}
	out := make(Vector, len(v))
	for i := range v {
		out[i] = v[i] + w[i]
	}

	return out, nil
}

// Scale returns k·v.
func (v Vector) Scale(k int) Vector {
	out := make(Vector, len(v))
	for i, c := range v {
		out[i] = k * c
	}

	return out
}

// Equal reports whether v and w have the same length and coordinates.
func (v Vector) Equal(w Vector) bool {
	if len(v) != len(w) {
		return false
	}
	for i := range v {
		if v[i] != w[i] {
			return false
		}
	}

	return true
}

// Leq reports whether v ≤ w coordinate-wise. Vectors of different length are
// never comparable.
func (v Vector) Leq(w Vector) bool {
	if len(v) != len(w) {
		return false
	}
	for i := range v {
		if v[i] > w[i] {
			return false
		}
	}

	return true
}

// Within reports whether 0 ≤ v ≤ caps.
func (v Vector) Within(caps Vector) bool {
	if len(v) != len(caps) {
		return false
	}
	for i := range v {
		if v[i] < 0 || v[i] > caps[i] {
			return false
		}
	}

	return true
}

// String renders v as "[a b c]".
func (v Vector) String() string {
	parts := make([]string, len(v))
	for i, c := range v {
		parts[i] = strconv.Itoa(c)
	}

	return "[" + strings.Join(parts, " ") + "]"
}

// Min returns the coordinate-wise minimum of v and w.
func Min(v, w Vector) (Vector, error) {
	return zipWith(v, w, func(a, b int) int {
		if a < b {
			return a
		}
		return b
	})
}

// Max returns the coordinate-wise maximum of v and w.
func Max(v, w Vector) (Vector, error) {
	return zipWith(v, w, func(a, b int) int {
		if a > b {
			return a
		}
		return b
	})
}

func zipWith(v, w Vector, fn func(a, b int) int) (Vector, error) {
	if len(v) != len(w) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, len(v), len(w))
	}
	out := make(Vector, len(v))
	for i := range v {
		out[i] = fn(v[i], w[i])
	}

	return out, nil
}

// ValidateCapacity returns ErrNegativeCapacity if any coordinate of caps is negative.
func ValidateCapacity(caps Vector) error {
	for e, c := range caps {
		if c < 0 {
			return fmt.Errorf("%w: B[%d]=%d", ErrNegativeCapacity, e, c)
		}
	}

	return nil
}
