// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package bitvec

// Spec is the trivial build specification for BitSeq: it has no tuning
// parameters, Build is the identity. It can be passed as the node engine
// builder of a wavelet.Spec, which takes a Spec-like value for the engine
// its internal nodes use.
type Spec struct{}

// Build returns data unchanged; BitSeq is the substrate every other spec
// is built on top of.
func (Spec) Build(data *BitSeq) *BitSeq {
	return data
}
