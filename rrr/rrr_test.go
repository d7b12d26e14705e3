// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package rrr

import (
	"math/rand"
	"testing"

	"github.com/bitpacked/succinct/bitvec"
	"github.com/bitpacked/succinct/internal/bitops"
)

// Encoder/decoder spot checks for b = 4.
func TestScenarioDEncodeDecode(t *testing.T) {
	t.Parallel()

	if class, offset := encode(0b0010, 4); class != 1 || offset != 2 {
		t.Errorf("encode(0b0010,4), expected (1,2), got (%d,%d)", class, offset)
	}
	if class, offset := encode(0b1101, 4); class != 3 || offset != 1 {
		t.Errorf("encode(0b1101,4), expected (3,1), got (%d,%d)", class, offset)
	}
	if block := decode(1, 2, 4, 4); block != 0b0010 {
		t.Errorf("decode(1,2,4,4), expected 0b0010, got %b", block)
	}
	if block := decode(3, 1, 4, 4); block != 0b1101 {
		t.Errorf("decode(3,1,4,4), expected 0b1101, got %b", block)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	t.Parallel()
	rnd := rand.New(rand.NewSource(3))
	for b := 1; b <= bitvec.WordBits; b++ {
		max := bitops.Mask(b)
		candidates := []uint64{0, max, max >> 1, max &^ 1, 1}
		for i := 0; i < 64; i++ {
			candidates = append(candidates, rnd.Uint64()&max)
		}
		for _, block := range candidates {
			class, offset := encode(block, b)
			got := decode(class, offset, b, b)
			if got != block {
				t.Fatalf("round trip b=%d block=%b: got %b", b, block, got)
			}
		}
	}
}

// A 40-bit sequence (five bytes) packed
// into b=4, k=4 RRR blocks.
func TestScenarioCBuild(t *testing.T) {
	t.Parallel()
	data := bitvec.New()
	for _, byte := range []uint64{0b01000001, 0b01100000, 0b01010000, 0b11010000, 0b10000001} {
		data.PushBits(byte, 8)
	}

	s := New(data, 4, 4)

	wantClasses := []uint64{1, 1, 0, 2, 0, 2, 0, 3, 1, 1}
	if s.Classes().Len() != len(wantClasses) {
		t.Fatalf("classes, expected len %d, got %d", len(wantClasses), s.Classes().Len())
	}
	for i, want := range wantClasses {
		if got := s.Classes().MustGet(i); got != want {
			t.Errorf("classes[%d], expected %d, got %d", i, want, got)
		}
	}

	wantLengths := []int{0, 2, 3, 2, 0}
	for c, want := range wantLengths {
		if s.Lengths()[c] != want {
			t.Errorf("lengths[%d], expected %d, got %d", c, want, s.Lengths()[c])
		}
	}

	if s.TotalRank() != 11 {
		t.Errorf("totalRank, expected 11, got %d", s.TotalRank())
	}

	wantRankSamples := []uint64{0, 4, 9, 11}
	for i, want := range wantRankSamples {
		if got := s.RankSamples().MustGet(i); got != want {
			t.Errorf("rankSamples[%d], expected %d, got %d", i, want, got)
		}
	}

	wantOffsetSamples := []uint64{0, 7, 12}
	for i, want := range wantOffsetSamples {
		if got := s.OffsetSamples().MustGet(i); got != want {
			t.Errorf("offsetSamples[%d], expected %d, got %d", i, want, got)
		}
	}
}

func randomBitSeq(rnd *rand.Rand, n int) *bitvec.BitSeq {
	b := bitvec.NewWithCapacity(n)
	for i := 0; i < n; i++ {
		b.Push(rnd.Intn(2) == 1)
	}
	return b
}

func TestAccessMatchesSourceSequence(t *testing.T) {
	t.Parallel()
	rnd := rand.New(rand.NewSource(1))
	pattern := make([]bool, 1000)
	data := bitvec.NewWithCapacity(len(pattern))
	for i := range pattern {
		pattern[i] = rnd.Intn(2) == 1
		data.Push(pattern[i])
	}

	s := New(data, 8, 4)
	for i, want := range pattern {
		got, ok := s.Access(i)
		if !ok || got != want {
			t.Errorf("Access(%d), expected (%v,true), got (%v,%v)", i, want, got, ok)
		}
	}
	if _, ok := s.Access(len(pattern)); ok {
		t.Errorf("Access(len), expected absent")
	}
}

func TestRankSelectMatchBaseline(t *testing.T) {
	t.Parallel()
	rnd := rand.New(rand.NewSource(2))
	const n = 2000
	pattern := make([]bool, n)
	data := bitvec.NewWithCapacity(n)
	for i := range pattern {
		pattern[i] = rnd.Intn(2) == 1
		data.Push(pattern[i])
	}
	baseline := bitvec.FromBools(pattern)

	s := New(data, 8, 4)

	for i := 0; i <= n; i++ {
		want, _ := baseline.Rank(i)
		got, ok := s.Rank(i)
		if !ok || got != want {
			t.Fatalf("Rank(%d), expected %d, got %d (ok=%v)", i, want, got, ok)
		}
	}

	total, _ := baseline.Rank(n)
	for r := 0; r <= total; r++ {
		want, _ := baseline.Select(r)
		got, ok := s.Select(r)
		if !ok || got != want {
			t.Fatalf("Select(%d), expected %d, got %d (ok=%v)", r, want, got, ok)
		}
	}

	total0 := n - total
	for r := 0; r <= total0; r++ {
		want, _ := baseline.Select0(r)
		got, ok := s.Select0(r)
		if !ok || got != want {
			t.Fatalf("Select0(%d), expected %d, got %d (ok=%v)", r, want, got, ok)
		}
	}
}

func TestHeapSizeShrinksForSkewedInput(t *testing.T) {
	t.Parallel()
	// Mostly-zero input: every RRR block has a tiny class/offset, so the
	// compressed footprint should be well under the raw bit count.
	data := bitvec.NewFromValue(false, 8000)
	data.Set(100, true)
	data.Set(5000, true)

	s := New(data, 16, 8)
	if s.HeapSizeInBits() >= data.HeapSizeInBits() {
		t.Errorf("RRR heap size (%d) should be smaller than the raw sequence (%d) for skewed input",
			s.HeapSizeInBits(), data.HeapSizeInBits())
	}
}
