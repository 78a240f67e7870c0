// SPDX-License-Identifier: MIT
// Package: latmax/bridge

package bridge

import "sort"

// Set is a subset of the expanded ground set.
type Set map[int]struct{}

// NewSet returns the set of the given elements.
func NewSet(elems ...int) Set {
	s := make(Set, len(elems))
	for _, i := range elems {
		s.Add(i)
	}

	return s
}

// Add inserts i.
func (s Set) Add(i int) { s[i] = struct{}{} }

// Has reports whether i ∈ s.
func (s Set) Has(i int) bool {
	_, ok := s[i]
	return ok
}

// Len returns |s|.
func (s Set) Len() int { return len(s) }

// Clone returns a copy of s.
func (s Set) Clone() Set {
	out := make(Set, len(s))
	for i := range s {
		out[i] = struct{}{}
	}

	return out
}

// Union returns s ∪ t.
func (s Set) Union(t Set) Set {
	out := s.Clone()
	for i := range t {
		out[i] = struct{}{}
	}

	return out
}

// Sorted returns the elements in ascending order.
func (s Set) Sorted() []int {
	out := make([]int, 0, len(s))
	for i := range s {
		out = append(out, i)
	}
	sort.Ints(out)

	return out
}
