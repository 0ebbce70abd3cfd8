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

// Package types holds the small, allocation-free value types shared by every
// other package in the engine: squares, colors, pieces, bitboards, moves and
// centipawn values. Nothing in here depends on position or search state.
package types

import "fmt"

// Square is a board square, 0..63 row-major with A1=0 and H8=63.
type Square int8

// NoSquare is the sentinel for "no square".
const NoSquare Square = 64

const SquareLength = 64

// Named anchor squares used by castling, en-passant and FEN logic.
const (
	A1 Square = 0
	B1 Square = 1
	C1 Square = 2
	D1 Square = 3
	E1 Square = 4
	F1 Square = 5
	G1 Square = 6
	H1 Square = 7
	A8 Square = 56
	B8 Square = 57
	C8 Square = 58
	D8 Square = 59
	E8 Square = 60
	F8 Square = 61
	G8 Square = 62
	H8 Square = 63
)

// SquareFrom builds a square from a zero-based file (a..h) and rank (1..8).
func SquareFrom(file, rank int) Square {
	return Square(rank*8 + file)
}

// FileOf returns the file (0=a .. 7=h) of the square.
func (sq Square) FileOf() int {
	return int(sq) & 7
}

// RankOf returns the rank (0=rank1 .. 7=rank8) of the square.
func (sq Square) RankOf() int {
	return int(sq) >> 3
}

// IsValid reports whether sq is one of the 64 real board squares.
func (sq Square) IsValid() bool {
	return sq >= A1 && sq <= H8
}

// Mirror flips a square vertically, used to index PSQTs from Black's side.
func (sq Square) Mirror() Square {
	return sq ^ 56
}

// Distance returns Chebyshev distance between two squares, i.e.
// max(|file difference|, |rank difference|).
func Distance(from, to Square) int {
	fd := from.FileOf() - to.FileOf()
	if fd < 0 {
		fd = -fd
	}
	rd := from.RankOf() - to.RankOf()
	if rd < 0 {
		rd = -rd
	}
	if fd > rd {
		return fd
	}
	return rd
}

var squareNames = [...]string{
	"a1", "b1", "c1", "d1", "e1", "f1", "g1", "h1",
	"a2", "b2", "c2", "d2", "e2", "f2", "g2", "h2",
	"a3", "b3", "c3", "d3", "e3", "f3", "g3", "h3",
	"a4", "b4", "c4", "d4", "e4", "f4", "g4", "h4",
	"a5", "b5", "c5", "d5", "e5", "f5", "g5", "h5",
	"a6", "b6", "c6", "d6", "e6", "f6", "g6", "h6",
	"a7", "b7", "c7", "d7", "e7", "f7", "g7", "h7",
	"a8", "b8", "c8", "d8", "e8", "f8", "g8", "h8",
}

// String returns the algebraic name of the square, e.g. "e4".
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return squareNames[sq]
}

// SquareFromString parses an algebraic square name such as "e4".
func SquareFromString(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("invalid square string %q", s)
	}
	file := int(s[0] - 'a')
	rank := int(s[1] - '1')
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return NoSquare, fmt.Errorf("invalid square string %q", s)
	}
	return SquareFrom(file, rank), nil
}
