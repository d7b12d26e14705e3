// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package bitops provides the pure bit-twiddling helpers shared by every
// succinct container in this module: word masks, ceiling division,
// minimal-bits-required counting and the global binomial coefficient
// table used by the RRR enumerative codec.
package bitops

import "math/bits"

// WordBits is the width W of the machine word used to pack every
// succinct container. All block/width parameters in this module are
// bounded by WordBits.
const WordBits = bits.UintSize

// CeilDiv returns ceil(a/b) for non-negative a and positive b.
func CeilDiv(a, b int) int {
	return (a + b - 1) / b
}

// Mask returns a bitmask of the low length bits, i.e. (1<<length)-1,
// saturating to ^uint64(0) when length >= WordBits. length must be >= 0.
func Mask(length int) uint64 {
	if length <= 0 {
		return 0
	}
	if length >= WordBits {
		return ^uint64(0)
	}
	return (uint64(1) << uint(length)) - 1
}

// BitsRequired returns the number of bits required to represent v, i.e.
// floor(log2(v))+1, and 0 for v == 0.
func BitsRequired(v uint64) int {
	return bits.Len64(v)
}

// binomial is the (WordBits+1)x(WordBits+1) table of binomial coefficients
// C(n, k), computed once at program start and shared read-only by every
// RRR-compressed sequence. It never needs locking: it is written exactly
// once, from init, before any other goroutine can observe it.
var binomial [WordBits + 1][WordBits + 1]uint64

func init() {
	for n := 0; n <= WordBits; n++ {
		binomial[n][0] = 1
		binomial[n][n] = 1
	}
	for n := 1; n <= WordBits; n++ {
		for k := 1; k < n; k++ {
			binomial[n][k] = binomial[n-1][k-1] + binomial[n-1][k]
		}
	}
}

// Binomial returns C(n, k), the number of k-subsets of an n-set. Both n and
// k must be in [0, WordBits]; this is an internal table indexed only by
// RRR block parameters already validated at build time.
func Binomial(n, k int) uint64 {
	return binomial[n][k]
}
