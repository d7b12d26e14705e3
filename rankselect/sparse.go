// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package rankselect

import (
	"math/bits"

	"github.com/bitpacked/succinct/bitvec"
	"github.com/bitpacked/succinct/internal/bitops"
)

// Sparse is a one-level rank directory: only superblocks of k words carry a
// sampled absolute rank. Rank and Select scan the words between the nearest
// sample and the target, trading O(1) rank for a smaller directory than
// Dense.
type Sparse struct {
	superblocks    []int
	superblockSize int
	totalRank      int
	k              int
}

// NewSparse builds a Sparse rank directory over data, sampling one
// superblock entry every k words.
func NewSparse(data *bitvec.BitSeq, k int) *Sparse {
	if k <= 0 {
		panic("k must be greater than 0")
	}
	words := data.Words()
	superblockSize := k * bitvec.WordBits
	numSuperblocks := data.Len() / superblockSize

	superblocks := make([]int, 0, numSuperblocks+1)
	rank := 0
	superblocks = append(superblocks, rank)

	for i := 0; i < numSuperblocks; i++ {
		for j := i * k; j < (i+1)*k; j++ {
			rank += bits.OnesCount64(words[j])
		}
		superblocks = append(superblocks, rank)
	}

	unsampledRank := 0
	for i := numSuperblocks * k; i < len(words); i++ {
		unsampledRank += bits.OnesCount64(words[i])
	}

	if unsampledRank != 0 {
		rank += unsampledRank
		superblocks = append(superblocks, rank)
	}

	return &Sparse{
		superblocks:    superblocks,
		superblockSize: superblockSize,
		k:              k,
		totalRank:      rank,
	}
}

// HeapSizeInBits reports the directory's own footprint, excluding the bit
// sequence it indexes.
func (s *Sparse) HeapSizeInBits() int {
	return len(s.superblocks) * bitvec.WordBits
}

// Rank returns the number of 1-bits in data[0:index).
func (s *Sparse) Rank(data *bitvec.BitSeq, index int) (int, bool) {
	if index == 0 {
		return 0, true
	}
	if index > data.Len() {
		return 0, false
	}

	words := data.Words()
	is := index / s.superblockSize
	iw := index / bitvec.WordBits

	rank := s.superblocks[is]
	for i := is * s.k; i < iw; i++ {
		rank += bits.OnesCount64(words[i])
	}

	blockOffset := index % bitvec.WordBits
	var lastBlock uint64
	if iw < len(words) {
		lastBlock = words[iw]
	}
	rank += bits.OnesCount64(lastBlock & bitops.Mask(blockOffset))
	return rank, true
}

// Rank0 is the zero-bit analogue of Rank.
func (s *Sparse) Rank0(data *bitvec.BitSeq, index int) (int, bool) {
	rank, ok := s.Rank(data, index)
	if !ok {
		return 0, false
	}
	return index - rank, true
}

func (s *Sparse) selectWithHints(data *bitvec.BitSeq, r, left, right int) int {
	for right-left > 1 {
		mid := (left + right) / 2
		if s.superblocks[mid] < r {
			left = mid
		} else {
			right = mid
		}
	}

	words := data.Words()
	localRank := s.superblocks[left]
	blockIndex := left * s.k
	blockRank := bits.OnesCount64(words[blockIndex])

	for localRank+blockRank < r {
		localRank += blockRank
		blockIndex++
		blockRank = bits.OnesCount64(words[blockIndex])
	}

	word := words[blockIndex]
	bitIndex := 0
	for localRank < r {
		if word&1 == 1 {
			localRank++
		}
		word >>= 1
		bitIndex++
	}
	return blockIndex*bitvec.WordBits + bitIndex
}

func (s *Sparse) select0WithHints(data *bitvec.BitSeq, r, left, right int) int {
	for right-left > 1 {
		mid := (left + right) / 2
		bitsBeforeMid := mid * s.superblockSize
		midRank0 := bitsBeforeMid - s.superblocks[mid]
		if midRank0 < r {
			left = mid
		} else {
			right = mid
		}
	}

	bitsBeforeLeft := left * s.superblockSize
	localRank0 := bitsBeforeLeft - s.superblocks[left]
	words := data.Words()
	blockIndex := left * s.k
	blockRank0 := bitvec.WordBits - bits.OnesCount64(words[blockIndex])

	for localRank0+blockRank0 < r {
		localRank0 += blockRank0
		blockIndex++
		blockRank0 = bitvec.WordBits - bits.OnesCount64(words[blockIndex])
	}

	word := words[blockIndex]
	bitIndex := 0
	for localRank0 < r {
		if word&1 == 0 {
			localRank0++
		}
		word >>= 1
		bitIndex++
	}
	return blockIndex*bitvec.WordBits + bitIndex
}

// Select returns the smallest position p with Rank(p) == r.
func (s *Sparse) Select(data *bitvec.BitSeq, r int) (int, bool) {
	if r == 0 {
		return 0, true
	}
	if r > s.totalRank {
		return 0, false
	}
	return s.selectWithHints(data, r, 0, len(s.superblocks)-1), true
}

// Select0 is the zero-bit analogue of Select.
func (s *Sparse) Select0(data *bitvec.BitSeq, r int) (int, bool) {
	if r == 0 {
		return 0, true
	}
	totalRank0 := data.Len() - s.totalRank
	if r > totalRank0 {
		return 0, false
	}
	return s.select0WithHints(data, r, 0, len(s.superblocks)-1), true
}

// Superblocks exposes the sampled absolute ranks, for tests that check
// exact directory contents against known fixtures.
func (s *Sparse) Superblocks() []int {
	return s.superblocks
}

// SparseSpec builds a Sparse directory with a fixed sampling rate K.
type SparseSpec struct {
	K int
}

// Build constructs a Sparse directory over data.
func (spec SparseSpec) Build(data *bitvec.BitSeq) *Sparse {
	return NewSparse(data, spec.K)
}
