// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package rrr implements an RRR-compressed bit sequence: each block of b
// bits is stored as an (class, offset) pair under Raman-Raman-Rao
// enumerative coding, so a block's storage cost is log2(C(b, class)) bits
// rather than a full b bits. A two-level rank/offset sampling directory,
// identical in spirit to rankselect.Dense, keeps Rank and Select fast
// without materializing the original bits.
package rrr

import (
	"fmt"
	"math/bits"

	"github.com/bitpacked/succinct/bitvec"
	"github.com/bitpacked/succinct/internal/bitops"
	"github.com/bitpacked/succinct/intvec"
)

// Seq is an RRR-compressed bit sequence.
type Seq struct {
	b, k          int
	classes       *intvec.IntVec
	lengths       []int
	offsets       *bitvec.BitSeq
	offsetSamples *intvec.IntVec
	rankSamples   *intvec.IntVec
	totalRank     int
	ln            int
}

func encode(block uint64, b int) (class, offset int) {
	class = bits.OnesCount64(block)
	currentClass := class
	currentBlock := block
	for i := 1; i <= b; i++ {
		if currentClass == 0 || currentClass > b-i {
			break
		}
		if currentBlock&1 == 1 {
			offset += int(bitops.Binomial(b-i, currentClass))
			currentClass--
		}
		currentBlock >>= 1
	}
	return class, offset
}

func decode(class, offset, b, length int) uint64 {
	if length == 0 {
		return 0
	}
	if class == b {
		return bitops.Mask(length)
	}
	if class == 0 {
		return 0
	}

	var block uint64
	currentClass := class
	currentOffset := offset
	i := 0
	for currentClass > 1 {
		if i >= length {
			return block
		}
		numPrevious := int(bitops.Binomial(b-i-1, currentClass))
		if currentOffset >= numPrevious {
			block |= uint64(1) << uint(i)
			currentOffset -= numPrevious
			currentClass--
		}
		i++
	}

	if currentClass > 0 {
		bitOffset := b - currentOffset - 1
		if bitOffset < length {
			block |= uint64(1) << uint(bitOffset)
		}
	}
	return block
}

// New builds an RRR-compressed sequence over data, partitioning it into
// blocks of b bits and sampling a rank/offset pair every k blocks. b must
// be in [1, bitvec.WordBits] and k must be positive.
func New(data *bitvec.BitSeq, b, k int) *Seq {
	if b <= 0 || b > bitvec.WordBits {
		panic(fmt.Sprintf("b must be in [1, %d], got %d", bitvec.WordBits, b))
	}
	if k <= 0 {
		panic("k must be greater than 0")
	}

	ln := data.Len()

	lengths := make([]int, b+1)
	for c := 0; c <= b; c++ {
		lengths[c] = bitops.BitsRequired(bitops.Binomial(b, c) - 1)
	}

	blocks := intvec.NewFromRawParts(data, b)

	totalOffsetsSize := 0
	totalRank := 0
	for i := 0; i < blocks.Len(); i++ {
		class := bits.OnesCount64(blocks.MustGet(i))
		totalOffsetsSize += lengths[class]
		totalRank += class
	}

	classesWidth := bitops.BitsRequired(uint64(b))
	classes := intvec.NewWithCapacity(classesWidth, blocks.Len())
	offsets := bitvec.NewWithCapacity(totalOffsetsSize)

	rankSamples := intvec.NewWithCapacity(bitops.BitsRequired(uint64(totalRank)), blocks.Len()/k+1)
	offsetSamples := intvec.NewWithCapacity(bitops.BitsRequired(uint64(totalOffsetsSize)), blocks.Len()/k+1)

	currentRank := 0
	currentOffsetPos := 0

	for idx := 0; idx < blocks.Len(); idx++ {
		if idx%k == 0 {
			rankSamples.Push(uint64(currentRank))
			offsetSamples.Push(uint64(currentOffsetPos))
		}
		block := blocks.MustGet(idx)
		class, offset := encode(block, b)
		offsetSize := lengths[class]
		classes.Push(uint64(class))
		offsets.PushBits(uint64(offset), offsetSize)

		currentRank += class
		currentOffsetPos += offsetSize
	}

	// The total rank is appended as a final sample for the same reason
	// as in rankselect.Dense: it bounds Select's binary search so the
	// right side is always >= the target rank.
	rankSamples.Push(uint64(currentRank))
	if blocks.Len()%k == 0 {
		offsetSamples.Push(uint64(currentOffsetPos))
	}

	return &Seq{
		b:             b,
		k:             k,
		classes:       classes,
		lengths:       lengths,
		offsets:       offsets,
		offsetSamples: offsetSamples,
		rankSamples:   rankSamples,
		totalRank:     currentRank,
		ln:            ln,
	}
}

// Len returns the number of bits in the original sequence.
func (s *Seq) Len() int {
	return s.ln
}

// B returns the block width.
func (s *Seq) B() int {
	return s.b
}

// K returns the sampling rate.
func (s *Seq) K() int {
	return s.k
}

// Classes exposes the per-block class vector, for tests.
func (s *Seq) Classes() *intvec.IntVec {
	return s.classes
}

// Lengths exposes the per-class offset bit-width table, for tests.
func (s *Seq) Lengths() []int {
	return s.lengths
}

// RankSamples exposes the sampled absolute ranks, for tests.
func (s *Seq) RankSamples() *intvec.IntVec {
	return s.rankSamples
}

// OffsetSamples exposes the sampled offset-stream positions, for tests.
func (s *Seq) OffsetSamples() *intvec.IntVec {
	return s.offsetSamples
}

// TotalRank returns the number of 1-bits in the whole sequence.
func (s *Seq) TotalRank() int {
	return s.totalRank
}

// Read returns the bit at index i. i must be in [0, Len()).
func (s *Seq) Read(i int) bool {
	if i >= s.ln {
		panic(fmt.Sprintf("index out of bounds: the len is %d but the index is %d", s.ln, i))
	}
	return s.readUnchecked(i)
}

func (s *Seq) readUnchecked(i int) bool {
	blockIndex := i / s.b
	class := int(s.classes.MustGet(blockIndex))
	if class == 0 || class == s.b {
		return class > 0
	}

	is := blockIndex / s.k
	pos := int(s.offsetSamples.MustGet(is))

	for j := is * s.k; j < blockIndex; j++ {
		c := int(s.classes.MustGet(j))
		pos += s.lengths[c]
	}

	length := s.lengths[class]
	offset := int(s.offsets.ReadBitsUnchecked(pos, length))

	bitOffset := i % s.b
	block := decode(class, offset, s.b, bitOffset+1)
	return block>>uint(bitOffset)&1 == 1
}

// Access returns the bit at i, or (false, false) when i is out of bounds.
func (s *Seq) Access(i int) (bool, bool) {
	if i < 0 || i >= s.ln {
		return false, false
	}
	return s.Read(i), true
}

// Rank returns the number of 1-bits in [0, index). index must be in
// [0, Len()]; ok is false otherwise.
func (s *Seq) Rank(index int) (int, bool) {
	if index == 0 {
		return 0, true
	}
	if index > s.ln {
		return 0, false
	}

	blockIndex := index / s.b
	is := blockIndex / s.k

	r := int(s.rankSamples.MustGet(is))
	p := int(s.offsetSamples.MustGet(is))

	iw := index / s.b
	for i := is * s.k; i < iw; i++ {
		c := int(s.classes.MustGet(i))
		r += c
		p += s.lengths[c]
	}

	var lastBlockRank int
	if iw < s.classes.Len() {
		lastClass := int(s.classes.MustGet(iw))
		blockOffset := index % s.b
		lastOffset := int(s.offsets.ReadBitsUnchecked(p, s.lengths[lastClass]))
		lastBlock := decode(lastClass, lastOffset, s.b, blockOffset)
		lastBlockRank = bits.OnesCount64(lastBlock)
	}

	return r + lastBlockRank, true
}

// Rank0 is the zero-bit analogue of Rank.
func (s *Seq) Rank0(index int) (int, bool) {
	rank, ok := s.Rank(index)
	if !ok {
		return 0, false
	}
	return index - rank, true
}

// Select returns the smallest position p with Rank(p) == r.
func (s *Seq) Select(r int) (int, bool) {
	if r == 0 {
		return 0, true
	}
	if r > s.totalRank {
		return 0, false
	}

	left, right := 0, s.rankSamples.Len()-1
	for right-left > 1 {
		mid := (left + right) / 2
		if int(s.rankSamples.MustGet(mid)) < r {
			left = mid
		} else {
			right = mid
		}
	}

	localRank := int(s.rankSamples.MustGet(left))
	localPos := int(s.offsetSamples.MustGet(left))
	blockIndex := left * s.k
	class := int(s.classes.MustGet(blockIndex))

	for localRank+class < r {
		localRank += class
		localPos += s.lengths[class]
		blockIndex++
		class = int(s.classes.MustGet(blockIndex))
	}

	classLength := s.lengths[class]
	offset := int(s.offsets.ReadBitsUnchecked(localPos, classLength))
	block := decode(class, offset, s.b, s.b)

	bitIndex := 0
	for localRank < r {
		if block&1 == 1 {
			localRank++
		}
		block >>= 1
		bitIndex++
	}
	return blockIndex*s.b + bitIndex, true
}

// Select0 is the zero-bit analogue of Select.
func (s *Seq) Select0(r int) (int, bool) {
	if r == 0 {
		return 0, true
	}
	totalRank0 := s.ln - s.totalRank
	if r > totalRank0 {
		return 0, false
	}

	left, right := 0, s.rankSamples.Len()-1
	for right-left > 1 {
		mid := (left + right) / 2
		bitsBeforeMid := mid * s.b * s.k
		midRank0 := bitsBeforeMid - int(s.rankSamples.MustGet(mid))
		if midRank0 < r {
			left = mid
		} else {
			right = mid
		}
	}

	bitsBeforeLeft := left * s.b * s.k
	localRank0 := bitsBeforeLeft - int(s.rankSamples.MustGet(left))
	localPos := int(s.offsetSamples.MustGet(left))
	blockIndex := left * s.k
	class := int(s.classes.MustGet(blockIndex))

	for localRank0+(s.b-class) < r {
		localRank0 += s.b - class
		localPos += s.lengths[class]
		blockIndex++
		class = int(s.classes.MustGet(blockIndex))
	}

	classLength := s.lengths[class]
	offset := int(s.offsets.ReadBitsUnchecked(localPos, classLength))
	block := decode(class, offset, s.b, s.b)

	bitIndex := 0
	for localRank0 < r {
		if block&1 == 0 {
			localRank0++
		}
		block >>= 1
		bitIndex++
	}
	return blockIndex*s.b + bitIndex, true
}

// HeapSizeInBits returns the number of heap-allocated bits this sequence
// occupies: substantially less than bitvec.BitSeq.HeapSizeInBits() for
// skewed inputs, since each block costs log2(C(b, class)) bits rather
// than a full b bits.
func (s *Seq) HeapSizeInBits() int {
	return s.classes.HeapSizeInBits() +
		s.offsets.HeapSizeInBits() +
		len(s.lengths)*bitops.WordBits +
		s.rankSamples.HeapSizeInBits() +
		s.offsetSamples.HeapSizeInBits()
}

// Spec builds an RRR sequence with a fixed block width B and sampling
// rate K.
type Spec struct {
	B, K int
}

// Build constructs an RRR-compressed sequence over data.
func (spec Spec) Build(data *bitvec.BitSeq) *Seq {
	return New(data, spec.B, spec.K)
}
