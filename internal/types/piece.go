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

// Color identifies a side. Both is only ever used to index occupancy.
type Color int8

const (
	White Color = iota
	Black
	Both
)

// ColorLength is the number of real colors (excludes Both).
const ColorLength = 2

// Other returns the opposing color. Undefined for Both.
func (c Color) Other() Color {
	return c ^ 1
}

func (c Color) String() string {
	if c == White {
		return "w"
	}
	return "b"
}

// PieceType is the kind of a piece, independent of color.
type PieceType int8

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NoPieceType
)

// PieceTypeLength is the number of real piece kinds.
const PieceTypeLength = 6

var pieceTypeChars = [...]byte{'p', 'n', 'b', 'r', 'q', 'k'}

// Char returns the lowercase FEN letter for the piece kind.
func (pt PieceType) Char() string {
	if pt < Pawn || pt > King {
		return "-"
	}
	return string(pieceTypeChars[pt])
}

func (pt PieceType) IsValid() bool {
	return pt >= Pawn && pt <= King
}

// Piece is a colored piece, or one of the mailbox sentinels Empty/NoPiece.
type Piece int8

const (
	WhitePawn Piece = iota
	WhiteKnight
	WhiteBishop
	WhiteRook
	WhiteQueen
	WhiteKing
	BlackPawn
	BlackKnight
	BlackBishop
	BlackRook
	BlackQueen
	BlackKing
	Empty
	NoPiece
)

// PieceOf builds a colored piece index from a kind and color, matching the
// board's mailbox encoding: kind + 6*color.
func PieceOf(pt PieceType, c Color) Piece {
	return Piece(int(pt) + 6*int(c))
}

// TypeOf returns the piece kind, ignoring color.
func (p Piece) TypeOf() PieceType {
	if p == Empty || p == NoPiece {
		return NoPieceType
	}
	return PieceType(int(p) % 6)
}

// ColorOf returns the color of the piece. Undefined for Empty/NoPiece.
func (p Piece) ColorOf() Color {
	if p < 6 {
		return White
	}
	return Black
}

var pieceChars = [...]byte{'P', 'N', 'B', 'R', 'Q', 'K', 'p', 'n', 'b', 'r', 'q', 'k'}

func (p Piece) String() string {
	if p < 0 || p > BlackKing {
		return "."
	}
	return string(pieceChars[p])
}
