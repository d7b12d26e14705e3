// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package wavelet

import "github.com/bitpacked/succinct/rankselect"

// Spec builds a wavelet tree whose internal nodes all use the same node
// engine, built from NodeSpec.
type Spec[T Engine] struct {
	NodeSpec rankselect.Builder[T]
}

// Build constructs a Tree over data's characters.
func (s Spec[T]) Build(data string) *Tree[T] {
	return New(data, s.NodeSpec)
}
