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

func TestSquareFromString_RoundTrip(t *testing.T) {
	for s := A1; s <= H8; s++ {
		str := s.String()
		got, err := SquareFromString(str)
		assert.NoError(t, err)
		assert.Equal(t, s, got)
	}
}

func TestSquareFromString_Invalid(t *testing.T) {
	tests := []string{"", "i1", "a9", "a0", "zz", "e"}
	for _, s := range tests {
		_, err := SquareFromString(s)
		assert.Error(t, err, "expected error for %q", s)
	}
}

func TestSquareFrom(t *testing.T) {
	assert.Equal(t, A1, SquareFrom(0, 0))
	assert.Equal(t, H8, SquareFrom(7, 7))
	assert.Equal(t, sq(t, "e4"), SquareFrom(4, 3))
}

func TestSquare_FileRankOf(t *testing.T) {
	e4 := sq(t, "e4")
	assert.Equal(t, 4, e4.FileOf())
	assert.Equal(t, 3, e4.RankOf())
}

func TestSquare_Mirror(t *testing.T) {
	e4, e5 := sq(t, "e4"), sq(t, "e5")
	assert.Equal(t, A8, A1.Mirror())
	assert.Equal(t, H1, H8.Mirror())
	assert.Equal(t, e4, e5.Mirror())
}

func TestDistance(t *testing.T) {
	e4, f5, a5 := sq(t, "e4"), sq(t, "f5"), sq(t, "a5")
	assert.Equal(t, 0, Distance(e4, e4))
	assert.Equal(t, 7, Distance(A1, H8))
	assert.Equal(t, 1, Distance(e4, f5))
	assert.Equal(t, 4, Distance(A1, a5))
}

func TestSquare_IsValid(t *testing.T) {
	assert.True(t, A1.IsValid())
	assert.True(t, H8.IsValid())
	assert.False(t, NoSquare.IsValid())
}
