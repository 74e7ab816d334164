// Copyright (c) 2026, Wisp Engine Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package slicesx provides additional slice functions
// beyond those in the standard [slices] package.
package slicesx

import "slices"

// SetLength sets the length of the given slice, reusing its capacity
// where possible, and returns the resulting slice. Elements beyond the
// original length are zero values.
func SetLength[E any](s []E, n int) []E {
	if n <= len(s) {
		return s[:n]
	}
	return append(s, make([]E, n-len(s))...)
}

// Fill sets every element of the given slice to the given value.
func Fill[E any](s []E, value E) {
	for i := range s {
		s[i] = value
	}
}

// Swap swaps the elements at the given two indices in the given slice.
func Swap[E any](s []E, i, j int) {
	s[i], s[j] = s[j], s[i]
}

// InsertOrdered inserts the given value into the given sorted slice,
// preserving order, unless it is already present, and returns the
// resulting slice.
func InsertOrdered[E interface{ ~int | ~int32 | ~int64 }](s []E, value E) []E {
	i, ok := slices.BinarySearch(s, value)
	if ok {
		return s
	}
	return slices.Insert(s, i, value)
}
