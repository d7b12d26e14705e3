// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package intvec

import "github.com/bitpacked/succinct/bitvec"

// Spec builds an IntVec of a fixed element Width from a raw BitSeq.
type Spec struct {
	Width int
}

// Build reinterprets data as a vector of s.Width-bit integers.
func (s Spec) Build(data *bitvec.BitSeq) *IntVec {
	return NewFromRawParts(data, s.Width)
}
