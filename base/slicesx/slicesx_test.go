// Copyright (c) 2026, Wisp Engine Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slicesx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetLength(t *testing.T) {
	s := []int{1, 2, 3}
	s = SetLength(s, 2)
	assert.Equal(t, []int{1, 2}, s)

	s = SetLength(s, 4)
	assert.Equal(t, []int{1, 2, 0, 0}, s)

	var n []float32
	n = SetLength(n, 3)
	assert.Equal(t, []float32{0, 0, 0}, n)
}

func TestFill(t *testing.T) {
	s := SetLength[int](nil, 3)
	Fill(s, -1)
	assert.Equal(t, []int{-1, -1, -1}, s)
}

func TestInsertOrdered(t *testing.T) {
	var s []int
	s = InsertOrdered(s, 4)
	s = InsertOrdered(s, 1)
	s = InsertOrdered(s, 4)
	s = InsertOrdered(s, 2)
	assert.Equal(t, []int{1, 2, 4}, s)
}
