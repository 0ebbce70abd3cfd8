//
// chessd - a UCI chess engine written in Go
//
// MIT License
//
// Copyright (c) 2024-2026 The chessd authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitboard_SetClearHas(t *testing.T) {
	var b Bitboard
	assert.False(t, b.Has(E1))

	b = b.Set(E1)
	assert.True(t, b.Has(E1))
	assert.Equal(t, 1, b.PopCount())

	b = b.Set(A8)
	assert.Equal(t, 2, b.PopCount())

	b = b.Clear(E1)
	assert.False(t, b.Has(E1))
	assert.True(t, b.Has(A8))
	assert.Equal(t, 1, b.PopCount())
}

func TestBitboard_LsbPopLsb(t *testing.T) {
	var b Bitboard
	assert.Equal(t, NoSquare, b.Lsb())

	d4 := SquareFrom(3, 3)
	b = b.Set(H1).Set(A1).Set(d4)
	assert.Equal(t, A1, b.Lsb())

	first := b.PopLsb()
	assert.Equal(t, A1, first)
	assert.False(t, b.Has(A1))
	assert.True(t, b.Has(H1))
	assert.True(t, b.Has(d4))
}

func TestFileMaskAndRankMask(t *testing.T) {
	assert.Equal(t, FileAMask, FileMask(0))
	assert.Equal(t, FileHMask, FileMask(7))
	assert.Equal(t, Rank1Mask, RankMask(0))
	assert.Equal(t, Rank8Mask, RankMask(7))

	// Every square on file 0 belongs to FileAMask and not to the
	// neighbouring file-1 mask.
	for rank := 0; rank < 8; rank++ {
		s := SquareFrom(0, rank)
		assert.True(t, FileMask(0).Has(s))
		assert.False(t, FileMask(1).Has(s))
	}
}

func TestBitboard_PopCountFullBoard(t *testing.T) {
	var b Bitboard
	for s := A1; s <= H8; s++ {
		b = b.Set(s)
	}
	assert.Equal(t, 64, b.PopCount())
}
