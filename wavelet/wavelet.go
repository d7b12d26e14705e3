// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package wavelet implements a wavelet tree over an arbitrary rune
// alphabet: a balanced binary partition of the alphabet where each
// internal node owns a bit sequence recording, for every position, which
// half of the node's alphabet interval that position's character falls
// into. Access, Rank and Select on the original sequence are answered by
// descending (or ascending) the tree, delegating each step to the node
// engine's own Access/Rank/Select.
package wavelet

import (
	"sort"

	"github.com/bitpacked/succinct/bitvec"
	"github.com/bitpacked/succinct/internal/bitops"
	"github.com/bitpacked/succinct/rankselect"
)

// Engine is the bit-sequence representation a wavelet tree's internal
// nodes are built on: a plain bitvec.BitSeq, an rrr.Seq, or a
// rankselect.Directory pairing a bitvec.BitSeq with a Dense/Sparse
// directory all satisfy it.
type Engine interface {
	Access(i int) (bool, bool)
	Rank(i int) (int, bool)
	Rank0(i int) (int, bool)
	Select(r int) (int, bool)
	Select0(r int) (int, bool)
	HeapSizeInBits() int
}

type node[T Engine] struct {
	leaf    bool
	leafLen int
	left    *node[T]
	right   *node[T]
	bits    T
}

// Tree is a wavelet tree over a fixed rune alphabet, parameterized by the
// bit-sequence engine its internal nodes use.
type Tree[T Engine] struct {
	alphabet []rune
	root     *node[T]
	ln       int
}

// New builds a wavelet tree over data's characters. The alphabet is
// inferred from data and sorted. New panics if data is empty.
func New[T Engine](data string, spec rankselect.Builder[T]) *Tree[T] {
	if data == "" {
		panic("string data cannot be empty")
	}

	runes := []rune(data)

	seen := make(map[rune]struct{})
	for _, r := range runes {
		seen[r] = struct{}{}
	}
	alphabet := make([]rune, 0, len(seen))
	for r := range seen {
		alphabet = append(alphabet, r)
	}
	sort.Slice(alphabet, func(i, j int) bool { return alphabet[i] < alphabet[j] })

	root := buildNode(runes, alphabet, spec)
	return &Tree[T]{alphabet: alphabet, root: root, ln: len(runes)}
}

func buildNode[T Engine](data []rune, alphabet []rune, spec rankselect.Builder[T]) *node[T] {
	if len(alphabet) == 1 {
		// The leaf's bit sequence would be all 1s, so it is not stored.
		return &node[T]{leaf: true, leafLen: len(data)}
	}

	mid := (len(alphabet) - 1) / 2
	leftAlphabet := alphabet[:mid+1]
	rightAlphabet := alphabet[mid+1:]
	midChar := alphabet[mid]

	bits := bitvec.NewWithCapacity(len(data))
	leftData := make([]rune, 0, len(data))
	rightData := make([]rune, 0, len(data))
	for _, c := range data {
		if c > midChar {
			bits.Push(true)
			rightData = append(rightData, c)
		} else {
			bits.Push(false)
			leftData = append(leftData, c)
		}
	}

	left := buildNode(leftData, leftAlphabet, spec)
	right := buildNode(rightData, rightAlphabet, spec)

	return &node[T]{left: left, right: right, bits: spec.Build(bits)}
}

// Len returns the number of characters in the original sequence.
func (t *Tree[T]) Len() int {
	return t.ln
}

// Alphabet returns the sorted, deduplicated set of characters.
func (t *Tree[T]) Alphabet() []rune {
	return t.alphabet
}

// Contains reports whether char is part of the alphabet.
func (t *Tree[T]) Contains(char rune) bool {
	i := sort.Search(len(t.alphabet), func(i int) bool { return t.alphabet[i] >= char })
	return i < len(t.alphabet) && t.alphabet[i] == char
}

// Rank returns the number of occurrences of char in data[0:index). index
// must be in [0, Len()]; ok is false when it is out of range or char is
// not in the alphabet.
func (t *Tree[T]) Rank(char rune, index int) (int, bool) {
	if index > t.ln {
		return 0, false
	}

	n := t.root
	idx := index
	intervalLeft, intervalRight := 0, len(t.alphabet)-1

	for !n.leaf {
		mid := (intervalLeft + intervalRight) / 2
		midChar := t.alphabet[mid]
		if char <= midChar {
			idx, _ = n.bits.Rank0(idx)
			n = n.left
			intervalRight = mid
		} else {
			idx, _ = n.bits.Rank(idx)
			n = n.right
			intervalLeft = mid + 1
		}
	}

	if t.alphabet[intervalLeft] != char {
		return 0, false
	}
	return idx, true
}

// Access returns the character at index, or (0, false) if index is out of
// bounds.
func (t *Tree[T]) Access(index int) (rune, bool) {
	if index >= t.ln {
		return 0, false
	}

	n := t.root
	idx := index
	intervalLeft, intervalRight := 0, len(t.alphabet)-1

	for !n.leaf {
		mid := (intervalLeft + intervalRight) / 2
		bit, _ := n.bits.Access(idx)
		if bit {
			idx, _ = n.bits.Rank(idx)
			n = n.right
			intervalLeft = mid + 1
		} else {
			idx, _ = n.bits.Rank0(idx)
			n = n.left
			intervalRight = mid
		}
	}
	return t.alphabet[intervalLeft], true
}

// Select returns the position of the rank-th occurrence of char (1-based).
func (t *Tree[T]) Select(char rune, rank int) (int, bool) {
	return t.selectInner(t.root, char, 0, len(t.alphabet)-1, rank)
}

func (t *Tree[T]) selectInner(n *node[T], char rune, left, right, rank int) (int, bool) {
	if n.leaf {
		if t.alphabet[left] != char {
			return 0, false
		}
		if rank > n.leafLen {
			return 0, false
		}
		return rank, true
	}

	mid := (left + right) / 2
	midChar := t.alphabet[mid]
	if char <= midChar {
		index, ok := t.selectInner(n.left, char, left, mid, rank)
		if !ok {
			return 0, false
		}
		return n.bits.Select0(index)
	}
	index, ok := t.selectInner(n.right, char, mid+1, right, rank)
	if !ok {
		return 0, false
	}
	return n.bits.Select(index)
}

// HeapSizeInBits returns the number of heap-allocated bits this tree
// occupies: the alphabet table, every internal node's bit sequence, and
// one word per leaf for its character count.
func (t *Tree[T]) HeapSizeInBits() int {
	return len(t.alphabet)*32 + t.root.heapSizeInBits()
}

func (n *node[T]) heapSizeInBits() int {
	if n.leaf {
		return bitops.WordBits
	}
	return n.left.heapSizeInBits() + n.right.heapSizeInBits() + n.bits.HeapSizeInBits()
}
