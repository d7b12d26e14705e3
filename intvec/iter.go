// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package intvec

// Iter is a restartable iterator over an IntVec's elements.
type Iter struct {
	v     *IntVec
	index int
}

// Iter returns a fresh iterator positioned before the first element.
func (v *IntVec) Iter() *Iter {
	return &Iter{v: v}
}

// Next returns the next element and true, or (0, false) once exhausted.
func (it *Iter) Next() (uint64, bool) {
	if it.index == it.v.ln {
		return 0, false
	}
	value := it.v.MustGet(it.index)
	it.index++
	return value, true
}

// Reset rewinds the iterator to the beginning.
func (it *Iter) Reset() {
	it.index = 0
}

// FromValues builds an IntVec of the given width from a slice of values.
func FromValues(width int, values []uint64) *IntVec {
	v := NewWithCapacity(width, len(values))
	for _, value := range values {
		v.Push(value)
	}
	return v
}
