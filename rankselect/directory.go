// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package rankselect

import "github.com/bitpacked/succinct/bitvec"

// DirectorySupport is satisfied by a sampling directory (Dense or Sparse)
// that answers Rank/Select given the raw bit sequence it was built over.
// Directory pairs one together with its data so the result is
// self-contained and can stand in as a wavelet-tree node engine.
type DirectorySupport interface {
	Rank(data *bitvec.BitSeq, index int) (int, bool)
	Rank0(data *bitvec.BitSeq, index int) (int, bool)
	Select(data *bitvec.BitSeq, r int) (int, bool)
	Select0(data *bitvec.BitSeq, r int) (int, bool)
	HeapSizeInBits() int
}

// Directory bundles a bit sequence with a sampling directory built over
// it, exposing the same self-contained Access/Rank/Select surface as
// bitvec.BitSeq or rrr.Seq.
type Directory[D DirectorySupport] struct {
	Data *bitvec.BitSeq
	Dir  D
}

// Access delegates straight to the underlying bit sequence; directories
// carry no access support of their own.
func (d *Directory[D]) Access(i int) (bool, bool) {
	return d.Data.Access(i)
}

// Rank delegates to the directory.
func (d *Directory[D]) Rank(i int) (int, bool) {
	return d.Dir.Rank(d.Data, i)
}

// Rank0 delegates to the directory.
func (d *Directory[D]) Rank0(i int) (int, bool) {
	return d.Dir.Rank0(d.Data, i)
}

// Select delegates to the directory.
func (d *Directory[D]) Select(r int) (int, bool) {
	return d.Dir.Select(d.Data, r)
}

// Select0 delegates to the directory.
func (d *Directory[D]) Select0(r int) (int, bool) {
	return d.Dir.Select0(d.Data, r)
}

// HeapSizeInBits sums the raw data's footprint and the directory's own.
func (d *Directory[D]) HeapSizeInBits() int {
	return d.Data.HeapSizeInBits() + d.Dir.HeapSizeInBits()
}

// DirectorySpec builds a Directory by building D over the raw data and
// keeping both.
type DirectorySpec[D DirectorySupport] struct {
	DirSpec Builder[D]
}

// Build constructs a Directory over data.
func (s DirectorySpec[D]) Build(data *bitvec.BitSeq) *Directory[D] {
	return &Directory[D]{Data: data, Dir: s.DirSpec.Build(data)}
}
