// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package rankselect

import (
	"math/bits"

	"github.com/bitpacked/succinct/bitvec"
	"github.com/bitpacked/succinct/internal/bitops"
	"github.com/bitpacked/succinct/intvec"
)

// Dense is a two-level rank directory: superblocks of k words each carry an
// absolute rank, and every word inside a superblock carries its rank offset
// from the superblock's start, so Rank is O(1): a superblock lookup, a block
// lookup, and one popcount over the remaining bits of the target word.
type Dense struct {
	superblocks    []int
	superblockSize int
	blocks         *intvec.IntVec
	k              int
	totalRank      int
}

// NewDense builds a Dense rank directory over data, sampling one superblock
// entry every k words.
func NewDense(data *bitvec.BitSeq, k int) *Dense {
	if k <= 0 {
		panic("k must be greater than 0")
	}
	words := data.Words()
	superblockSize := k * bitvec.WordBits
	numSuperblocks := data.Len() / superblockSize

	maxRankOffset := (k - 1) * bitvec.WordBits
	rankOffsetWidth := bitops.BitsRequired(uint64(maxRankOffset))

	numBlocks := data.Len() / bitvec.WordBits
	blocks := intvec.NewWithCapacity(rankOffsetWidth, numBlocks+1)

	superblocks := make([]int, 0, numSuperblocks+1)

	rank := 0
	rankOffset := 0
	superblocks = append(superblocks, rank)
	blocks.Push(uint64(rankOffset))

	for i := 0; i < numSuperblocks; i++ {
		for j := i * k; j < (i+1)*k-1; j++ {
			rankOffset += bits.OnesCount64(words[j])
			blocks.Push(uint64(rankOffset))
		}
		lastBlockRank := bits.OnesCount64(words[(i+1)*k-1])
		rankOffset += lastBlockRank
		rank += rankOffset
		rankOffset = 0

		blocks.Push(uint64(rankOffset))
		superblocks = append(superblocks, rank)
	}

	unsampledRank := 0
	for i := numSuperblocks * k; i < numBlocks; i++ {
		unsampledRank += bits.OnesCount64(words[i])
		blocks.Push(uint64(unsampledRank))
	}

	if numBlocks != len(words) {
		unsampledRank += bits.OnesCount64(words[len(words)-1])
	}

	// The total rank is appended as a final superblock so binary search
	// in Select never has to fall back to a linear scan past the last
	// sampled superblock: the right bound is always >= the target rank.
	if unsampledRank != 0 {
		rank += unsampledRank
		superblocks = append(superblocks, rank)
	}

	return &Dense{
		superblocks:    superblocks,
		superblockSize: superblockSize,
		blocks:         blocks,
		k:              k,
		totalRank:      rank,
	}
}

// HeapSizeInBits reports the directory's own footprint, excluding the
// bit sequence it indexes.
func (d *Dense) HeapSizeInBits() int {
	return len(d.superblocks)*bitops.WordBits + d.blocks.HeapSizeInBits()
}

// Rank returns the number of 1-bits in data[0:index) using the directory.
// data must be the exact sequence NewDense was built over.
func (d *Dense) Rank(data *bitvec.BitSeq, index int) (int, bool) {
	if index == 0 {
		return 0, true
	}
	if index > data.Len() {
		return 0, false
	}

	words := data.Words()
	is := index / d.superblockSize
	iw := index / bitvec.WordBits

	rank := d.superblocks[is] + int(d.blocks.MustGet(iw))
	blockOffset := index % bitvec.WordBits

	var lastBlock uint64
	if iw < len(words) {
		lastBlock = words[iw]
	}
	rank += bits.OnesCount64(lastBlock & bitops.Mask(blockOffset))
	return rank, true
}

// Rank0 is the zero-bit analogue of Rank.
func (d *Dense) Rank0(data *bitvec.BitSeq, index int) (int, bool) {
	rank, ok := d.Rank(data, index)
	if !ok {
		return 0, false
	}
	return index - rank, true
}

// Select returns the smallest position p with Rank(p) == r.
func (d *Dense) Select(data *bitvec.BitSeq, r int) (int, bool) {
	if r == 0 {
		return 0, true
	}
	if r > d.totalRank {
		return 0, false
	}

	leftSuperblock, rightSuperblock := 0, len(d.superblocks)-1
	for rightSuperblock-leftSuperblock > 1 {
		mid := (leftSuperblock + rightSuperblock) / 2
		if d.superblocks[mid] < r {
			leftSuperblock = mid
		} else {
			rightSuperblock = mid
		}
	}

	superblockRank := d.superblocks[leftSuperblock]
	remaining := r - superblockRank
	words := data.Words()

	leftBlock := leftSuperblock * d.k
	rightBlock := min(leftBlock+d.k-1, len(words)-1)
	for rightBlock-leftBlock > 1 {
		mid := (leftBlock + rightBlock) / 2
		if int(d.blocks.MustGet(mid)) < remaining {
			leftBlock = mid
		} else {
			rightBlock = mid
		}
	}

	// No binary-search-bounds trick is available here, so check whether
	// the right block is in fact the greatest of the lessers.
	target := leftBlock
	if int(d.blocks.MustGet(rightBlock)) < remaining {
		target = rightBlock
	}

	localRank := int(d.blocks.MustGet(target))
	word := words[target]
	bitIndex := 0
	for localRank < remaining {
		if word&1 == 1 {
			localRank++
		}
		word >>= 1
		bitIndex++
	}
	return target*bitvec.WordBits + bitIndex, true
}

// Select0 is the zero-bit analogue of Select.
func (d *Dense) Select0(data *bitvec.BitSeq, r int) (int, bool) {
	if r == 0 {
		return 0, true
	}
	totalRank0 := data.Len() - d.totalRank
	if r > totalRank0 {
		return 0, false
	}

	left, right := 0, len(d.superblocks)-1
	for right-left > 1 {
		mid := (left + right) / 2
		bitsBeforeMid := mid * d.superblockSize
		midRank0 := bitsBeforeMid - d.superblocks[mid]
		if midRank0 < r {
			left = mid
		} else {
			right = mid
		}
	}

	bitsBeforeLeft := left * d.superblockSize
	superblockRank0 := bitsBeforeLeft - d.superblocks[left]
	remaining := r - superblockRank0
	words := data.Words()

	firstBlock := left * d.k
	leftBlock := firstBlock
	rightBlock := min(leftBlock+d.k-1, len(words)-1)
	for rightBlock-leftBlock > 1 {
		mid := (leftBlock + rightBlock) / 2
		bitsBeforeMid := (mid - firstBlock) * bitvec.WordBits
		midRank0 := bitsBeforeMid - int(d.blocks.MustGet(mid))
		if midRank0 < remaining {
			leftBlock = mid
		} else {
			rightBlock = mid
		}
	}

	bitsBeforeRight := (rightBlock - firstBlock) * bitvec.WordBits
	rightRank0 := bitsBeforeRight - int(d.blocks.MustGet(rightBlock))
	target := leftBlock
	if rightRank0 < remaining {
		target = rightBlock
	}

	bitsBeforeTarget := (target - firstBlock) * bitvec.WordBits
	localRank0 := bitsBeforeTarget - int(d.blocks.MustGet(target))
	word := words[target]
	bitIndex := 0
	for localRank0 < remaining {
		if word&1 == 0 {
			localRank0++
		}
		word >>= 1
		bitIndex++
	}
	return target*bitvec.WordBits + bitIndex, true
}

// Superblocks exposes the sampled absolute ranks, for tests that check
// exact directory contents against known fixtures.
func (d *Dense) Superblocks() []int {
	return d.superblocks
}

// Blocks exposes the per-word rank offsets, for tests.
func (d *Dense) Blocks() *intvec.IntVec {
	return d.blocks
}

// DenseSpec builds a Dense directory with a fixed sampling rate K.
type DenseSpec struct {
	K int
}

// Build constructs a Dense directory over data.
func (s DenseSpec) Build(data *bitvec.BitSeq) *Dense {
	return NewDense(data, s.K)
}
