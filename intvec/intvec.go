// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package intvec implements IntVec, a packed vector of n fixed-width
// integers stored in n*width bits on top of a bitvec.BitSeq.
package intvec

import (
	"fmt"

	"github.com/bitpacked/succinct/bitvec"
)

// IntVec stores a sequence of integers of a fixed bit width, each one
// occupying bit range [i*width, (i+1)*width) of the underlying BitSeq.
type IntVec struct {
	data  *bitvec.BitSeq
	width int
	ln    int
}

func validateWidth(width int) {
	if width > bitvec.WordBits {
		panic(fmt.Sprintf("width must be at most %d bits, got %d bits", bitvec.WordBits, width))
	}
}

// New returns an empty IntVec of the given element width.
func New(width int) *IntVec {
	validateWidth(width)
	return &IntVec{data: bitvec.New(), width: width}
}

// NewWithCapacity returns an empty IntVec of the given width with storage
// reserved for at least capacity elements.
func NewWithCapacity(width, capacity int) *IntVec {
	validateWidth(width)
	return &IntVec{data: bitvec.NewWithCapacity(width * capacity), width: width}
}

// NewFromRawParts reinterprets an existing BitSeq as a vector of
// width-bit integers. If the BitSeq's length is not a multiple of width,
// the last partial integer is zero-extended.
func NewFromRawParts(data *bitvec.BitSeq, width int) *IntVec {
	validateWidth(width)
	if leftover := data.Len() % width; leftover != 0 {
		data.PushBits(0, width-leftover)
	}
	return &IntVec{data: data, width: width, ln: data.Len() / width}
}

// Width returns the fixed element width in bits.
func (v *IntVec) Width() int {
	return v.width
}

// Len returns the number of elements.
func (v *IntVec) Len() int {
	return v.ln
}

// RawData returns the underlying packed BitSeq.
func (v *IntVec) RawData() *bitvec.BitSeq {
	return v.data
}

// Push appends value, which must fit within Width() bits.
func (v *IntVec) Push(value uint64) {
	if v.width < bitvec.WordBits && value>>uint(v.width) != 0 {
		panic(fmt.Sprintf("value %d does not fit within %d bits", value, v.width))
	}
	v.data.PushBits(value, v.width)
	v.ln++
}

// Pop removes and returns the last element.
func (v *IntVec) Pop() (uint64, bool) {
	if v.ln == 0 {
		return 0, false
	}
	v.ln--
	return v.data.PopBits(v.width), true
}

// Get returns the element at index, or (0, false) if index is out of
// bounds. When Width() == 0, every element reads as 0.
func (v *IntVec) Get(index int) (uint64, bool) {
	if index >= v.ln || index < 0 {
		return 0, false
	}
	return v.MustGet(index), true
}

// MustGet returns the element at index without bounds checking. Calling
// it with an out-of-bounds index is undefined behavior; use it only in
// hot paths that have already established index < Len().
func (v *IntVec) MustGet(index int) uint64 {
	return v.data.ReadBitsUnchecked(index*v.width, v.width)
}

// Set overwrites the element at index, which must fit within Width()
// bits.
func (v *IntVec) Set(index int, value uint64) {
	if v.width < bitvec.WordBits && value>>uint(v.width) != 0 {
		panic(fmt.Sprintf("value %d does not fit within %d bits", value, v.width))
	}
	v.data.SetBits(index*v.width, (index+1)*v.width, value)
}

// HeapSizeInBits returns the number of heap-allocated bits this IntVec
// occupies.
func (v *IntVec) HeapSizeInBits() int {
	return v.data.HeapSizeInBits()
}
