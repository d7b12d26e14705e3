// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package rankselect implements sampling directories that answer Rank over
// a bitvec.BitSeq in O(1) (Dense) or by a partial word scan (Sparse), and
// Select by a binary search over the sampled ranks followed by a scan,
// trading directory size for access speed.
package rankselect

import "github.com/bitpacked/succinct/bitvec"

// Access is satisfied by anything that can read a single bit by position.
type Access interface {
	Access(i int) (bool, bool)
}

// Rank is satisfied by anything that can count 1-bits below a position.
type Rank interface {
	Rank(i int) (int, bool)
	Rank0(i int) (int, bool)
}

// Select is satisfied by anything that can locate the position of the
// r-th 1-bit or 0-bit.
type Select interface {
	Select(r int) (int, bool)
	Select0(r int) (int, bool)
}

// HeapSizer reports the number of heap-allocated bits a structure occupies.
type HeapSizer interface {
	HeapSizeInBits() int
}

// Builder constructs a T out of a raw bit sequence, given whatever tuning
// parameters the concrete Builder carries (e.g. the sampling rate k).
type Builder[T any] interface {
	Build(data *bitvec.BitSeq) T
}
