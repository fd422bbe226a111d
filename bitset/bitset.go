// Package bitset provides the small bit-vector type shared by the whole
// module. A Set plays two roles: a group of characters (bit i set means
// character i belongs to the group) and a complete truth-assignment
// (bit i set means character i is a truth-teller).
package bitset

import "math/bits"

// A Set is a bit-vector over character indices.
type Set uint

// Universe returns the set containing the n first members.
func Universe(n int) Set {
	return Set(1)<<uint(n) - 1
}

// Count returns the number of members of s.
func (s Set) Count() int {
	return bits.OnesCount(uint(s))
}

// Has tells whether member i belongs to s.
func (s Set) Has(i int) bool {
	return s&(1<<uint(i)) != 0
}

// With returns s extended with member i.
func (s Set) With(i int) Set {
	return s | 1<<uint(i)
}

// Without returns the members of s that do not belong to t.
func (s Set) Without(t Set) Set {
	return s &^ t
}

// Members lists the members of s in increasing order. n bounds the
// indices that are looked at.
func (s Set) Members(n int) []int {
	res := make([]int, 0, s.Count())
	for i := 0; i < n; i++ {
		if s.Has(i) {
			res = append(res, i)
		}
	}
	return res
}

// Dup tells whether the same set appears twice in sets. The slices at
// hand never hold more than a handful of elements, so the quadratic
// scan beats building a map.
func Dup(sets []Set) bool {
	for i := 0; i < len(sets)-1; i++ {
		for j := i + 1; j < len(sets); j++ {
			if sets[i] == sets[j] {
				return true
			}
		}
	}
	return false
}
