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

import "strings"

// Move packs a chess move into 16 bits.
//
//	0000 0000 0011 1111  origin square      (6 bits)
//	0000 1111 1100 0000  destination square (6 bits)
//	1111 0000 0000 0000  flags              (4 bits)
type Move uint16

// Flags, matching the bit layout fixed by the wire format: promotion
// captures OR the capture bit (0b0100) into the promotion flag.
const (
	FlagQuiet       = 0b0000
	FlagCastle      = 0b0001
	FlagCapture     = 0b0100
	FlagEnPassant   = 0b0110
	FlagKnightPromo = 0b1000
	FlagBishopPromo = 0b1001
	FlagRookPromo   = 0b1010
	FlagQueenPromo  = 0b1011
)

// NoMove is the zero value, never a legal move.
const NoMove Move = 0

const (
	fromShift = 0
	toShift   = 6
	flagShift = 12

	squareBits Move = 0x3F
	flagBits   Move = 0xF
)

// NewMove packs an origin, destination and flag into a Move.
func NewMove(from, to Square, flag int) Move {
	return Move(from)<<fromShift | Move(to)<<toShift | Move(flag)<<flagShift
}

func (m Move) From() Square {
	return Square((m >> fromShift) & squareBits)
}

func (m Move) To() Square {
	return Square((m >> toShift) & squareBits)
}

func (m Move) Flag() int {
	return int((m >> flagShift) & flagBits)
}

// IsCapture reports whether the move's flag has the capture bit set.
// En-passant's 0b0110 encoding already contains the capture bit; the
// explicit comparison with FlagEnPassant is redundant.
func (m Move) IsCapture() bool {
	f := m.Flag()
	return f&FlagCapture != 0 || f == FlagEnPassant
}

func (m Move) IsEnPassant() bool {
	return m.Flag() == FlagEnPassant
}

func (m Move) IsCastle() bool {
	return m.Flag() == FlagCastle
}

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Flag()&FlagKnightPromo != 0
}

// PromotionType returns the piece kind promoted to. Only meaningful when
// IsPromotion is true.
func (m Move) PromotionType() PieceType {
	switch m.Flag() &^ FlagCapture {
	case FlagKnightPromo:
		return Knight
	case FlagBishopPromo:
		return Bishop
	case FlagRookPromo:
		return Rook
	case FlagQueenPromo:
		return Queen
	}
	return NoPieceType
}

func (m Move) IsValid() bool {
	return m != NoMove && m.From().IsValid() && m.To().IsValid()
}

var promoChars = map[PieceType]byte{Knight: 'n', Bishop: 'b', Rook: 'r', Queen: 'q'}

// String renders the move in the long-algebraic wire format used by the
// protocol: <from><to>[promo].
func (m Move) String() string {
	if m == NoMove {
		return "0000"
	}
	var sb strings.Builder
	sb.WriteString(m.From().String())
	sb.WriteString(m.To().String())
	if m.IsPromotion() {
		sb.WriteByte(promoChars[m.PromotionType()])
	}
	return sb.String()
}

var promoFromChar = map[byte]int{'n': FlagKnightPromo, 'b': FlagBishopPromo, 'r': FlagRookPromo, 'q': FlagQueenPromo}

// PromoFlagFor returns the bare (non-capture) promotion flag for a
// promotion letter, or -1 if c is not one of n/b/r/q.
func PromoFlagFor(c byte) int {
	if f, ok := promoFromChar[c]; ok {
		return f
	}
	return -1
}
