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
	"math/bits"
	"strings"
)

// Bitboard is a 64 bit unsigned int with one bit per board square.
type Bitboard uint64

// Bb returns the singleton bitboard for a square.
func (sq Square) Bb() Bitboard {
	return Bitboard(1) << uint(sq)
}

// Set returns b with the square's bit set.
func (b Bitboard) Set(sq Square) Bitboard {
	return b | sq.Bb()
}

// Clear returns b with the square's bit cleared.
func (b Bitboard) Clear(sq Square) Bitboard {
	return b &^ sq.Bb()
}

// Has reports whether the square's bit is set.
func (b Bitboard) Has(sq Square) bool {
	return b&sq.Bb() != 0
}

// PopCount returns the number of set bits.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// Lsb returns the least significant set square, or NoSquare if empty.
func (b Bitboard) Lsb() Square {
	if b == 0 {
		return NoSquare
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// PopLsb returns the least significant set square and clears it in *b.
func (b *Bitboard) PopLsb() Square {
	sq := b.Lsb()
	*b &= *b - 1
	return sq
}

func (b Bitboard) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			if b.Has(SquareFrom(file, rank)) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('.')
			}
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

const (
	FileAMask Bitboard = 0x0101010101010101
	FileHMask Bitboard = 0x8080808080808080
	Rank1Mask Bitboard = 0x00000000000000FF
	Rank2Mask Bitboard = 0x000000000000FF00
	Rank4Mask Bitboard = 0x00000000FF000000
	Rank5Mask Bitboard = 0x000000FF00000000
	Rank7Mask Bitboard = 0x00FF000000000000
	Rank8Mask Bitboard = 0xFF00000000000000
)

// FileMask returns the bitboard for an entire file (0=a..7=h).
func FileMask(file int) Bitboard {
	return FileAMask << uint(file)
}

// RankMask returns the bitboard for an entire rank (0=rank1..7=rank8).
func RankMask(rank int) Bitboard {
	return Rank1Mask << uint(8*rank)
}
