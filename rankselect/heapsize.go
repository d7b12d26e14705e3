// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package rankselect

import "github.com/bitpacked/succinct/internal/bitops"

// HeapSizeInBytes rounds a HeapSizer's bit count up to whole bytes.
func HeapSizeInBytes(h HeapSizer) int {
	return bitops.CeilDiv(h.HeapSizeInBits(), 8)
}

// HeapSizeInKiB rounds a HeapSizer's byte count up to whole kibibytes.
func HeapSizeInKiB(h HeapSizer) int {
	return bitops.CeilDiv(HeapSizeInBytes(h), 1024)
}

// HeapSizeInMiB rounds a HeapSizer's byte count up to whole mebibytes.
func HeapSizeInMiB(h HeapSizer) int {
	return bitops.CeilDiv(HeapSizeInBytes(h), 1024*1024)
}

// HeapSizeInGiB rounds a HeapSizer's byte count up to whole gibibytes.
func HeapSizeInGiB(h HeapSizer) int {
	return bitops.CeilDiv(HeapSizeInBytes(h), 1024*1024*1024)
}

// ExactHeapSizeInBytes returns the fractional byte count, without rounding.
func ExactHeapSizeInBytes(h HeapSizer) float64 {
	return float64(h.HeapSizeInBits()) / 8.0
}

// ExactHeapSizeInKiB returns the fractional kibibyte count, without rounding.
func ExactHeapSizeInKiB(h HeapSizer) float64 {
	return ExactHeapSizeInBytes(h) / 1024.0
}

// ExactHeapSizeInMiB returns the fractional mebibyte count, without rounding.
func ExactHeapSizeInMiB(h HeapSizer) float64 {
	return ExactHeapSizeInBytes(h) / (1024.0 * 1024.0)
}

// ExactHeapSizeInGiB returns the fractional gibibyte count, without rounding.
func ExactHeapSizeInGiB(h HeapSizer) float64 {
	return ExactHeapSizeInBytes(h) / (1024.0 * 1024.0 * 1024.0)
}
