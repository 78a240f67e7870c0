// SPDX-License-Identifier: MIT
// Package: latmax/bridge
//
// encoding.go — block layout of the expanded ground set.

package bridge

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/latmax/lattice"
)

var (
	// ErrOutOfGround indicates an element index outside the expanded ground set.
	ErrOutOfGround = errors.New("bridge: element outside expanded ground set")

	// ErrOutOfBlock indicates a lattice point that does not fit the blocks.
	ErrOutOfBlock = errors.New("bridge: lattice point does not fit block layout")
)

// Encoding maps lattice coordinates to contiguous element blocks.
type Encoding struct {
	caps    lattice.Vector
	offsets []int // offsets[e] = off(e); offsets[n] = sum(B)
}

// NewEncoding lays out one block of B[e] elements per coordinate.
func NewEncoding(caps lattice.Vector) (*Encoding, error) {
	if err := lattice.ValidateCapacity(caps); err != nil {
		return nil, err
	}
	offsets := make([]int, len(caps)+1)
	for e, c := range caps {
		offsets[e+1] = offsets[e] + c
	}

	return &Encoding{caps: caps.Clone(), offsets: offsets}, nil
}

// N returns the number of lattice coordinates.
func (enc *Encoding) N() int { return len(enc.caps) }

// Size returns sum(B), the size of the expanded ground set.
func (enc *Encoding) Size() int { return enc.offsets[len(enc.caps)] }

// Offset returns the first element of block e.
func (enc *Encoding) Offset(e int) int { return enc.offsets[e] }

// Capacity returns a copy of B.
func (enc *Encoding) Capacity() lattice.Vector { return enc.caps.Clone() }

// Block returns the coordinate owning element i.
func (enc *Encoding) Block(i int) (int, error) {
	if i < 0 || i >= enc.Size() {
		return 0, fmt.Errorf("%w: %d not in [0,%d)", ErrOutOfGround, i, enc.Size())
	}
	// first offset strictly above i, minus one; skips empty blocks
	return sort.SearchInts(enc.offsets, i+1) - 1, nil
}

// ToSet returns the canonical set for x: the first x[e] elements of each block.
func (enc *Encoding) ToSet(x lattice.Vector) (Set, error) {
	if len(x) != len(enc.caps) {
		return nil, fmt.Errorf("%w: len(x)=%d, n=%d", ErrOutOfBlock, len(x), len(enc.caps))
	}
	s := make(Set, x.Norm())
	for e, c := range x {
		if c < 0 || c > enc.caps[e] {
			return nil, fmt.Errorf("%w: x[%d]=%d not in [0,%d]", ErrOutOfBlock, e, c, enc.caps[e])
		}
		for j := 0; j < c; j++ {
			s.Add(enc.offsets[e] + j)
		}
	}

	return s, nil
}

// ToLattice counts the elements of s in every block.
func (enc *Encoding) ToLattice(s Set) (lattice.Vector, error) {
	x := lattice.Zero(len(enc.caps))
	for i := range s {
		e, err := enc.Block(i)
		if err != nil {
			return nil, err
		}
		x[e]++
	}

	return x, nil
}
