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

// sq is a test-only shorthand around SquareFromString for squares that
// have no named anchor constant.
func sq(t *testing.T, s string) Square {
	t.Helper()
	square, err := SquareFromString(s)
	assert.NoError(t, err)
	return square
}

func TestNewMove(t *testing.T) {
	e2, e4, d4, e5, a7, b7 := sq(t, "e2"), sq(t, "e4"), sq(t, "d4"), sq(t, "e5"), sq(t, "a7"), sq(t, "b7")

	tests := []struct {
		name string
		from Square
		to   Square
		flag int
	}{
		{"quiet e2e4", e2, e4, FlagQuiet},
		{"capture", d4, e5, FlagCapture},
		{"king castle", E1, G1, FlagCastle},
		{"queen promo", a7, A8, FlagQueenPromo},
		{"knight promo capture", b7, A8, FlagKnightPromo | FlagCapture},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMove(tt.from, tt.to, tt.flag)
			assert.Equal(t, tt.from, m.From())
			assert.Equal(t, tt.to, m.To())
			assert.Equal(t, tt.flag, m.Flag())
		})
	}
}

func TestMove_IsCapture(t *testing.T) {
	e2, e4, d4, e5, d6, a7, b7 := sq(t, "e2"), sq(t, "e4"), sq(t, "d4"), sq(t, "e5"), sq(t, "d6"), sq(t, "a7"), sq(t, "b7")
	_ = a7

	assert.False(t, NewMove(e2, e4, FlagQuiet).IsCapture())
	assert.True(t, NewMove(d4, e5, FlagCapture).IsCapture())
	assert.True(t, NewMove(e5, d6, FlagEnPassant).IsCapture())
	assert.True(t, NewMove(b7, A8, FlagQueenPromo|FlagCapture).IsCapture())
}

func TestMove_IsPromotion(t *testing.T) {
	e2, e4, a7, b7 := sq(t, "e2"), sq(t, "e4"), sq(t, "a7"), sq(t, "b7")

	assert.False(t, NewMove(e2, e4, FlagQuiet).IsPromotion())
	assert.True(t, NewMove(a7, A8, FlagQueenPromo).IsPromotion())
	assert.Equal(t, Queen, NewMove(a7, A8, FlagQueenPromo).PromotionType())
	assert.Equal(t, Knight, NewMove(b7, A8, FlagKnightPromo|FlagCapture).PromotionType())
}

func TestMove_IsCastle(t *testing.T) {
	e2 := sq(t, "e2")
	assert.True(t, NewMove(E1, G1, FlagCastle).IsCastle())
	assert.False(t, NewMove(E1, e2, FlagQuiet).IsCastle())
}

func TestMove_StringAndPromoFlagForRoundTrip(t *testing.T) {
	e2, e4, a7, b7 := sq(t, "e2"), sq(t, "e4"), sq(t, "a7"), sq(t, "b7")

	tests := []struct {
		move Move
		want string
	}{
		{NewMove(e2, e4, FlagQuiet), "e2e4"},
		{NewMove(a7, A8, FlagQueenPromo), "a7a8q"},
		{NewMove(b7, A8, FlagKnightPromo | FlagCapture), "b7a8n"},
		{NoMove, "0000"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.move.String())
	}

	// PromoFlagFor inverts the promotion letter emitted by String, modulo
	// the capture bit which the wire format doesn't carry.
	m := NewMove(b7, A8, FlagKnightPromo|FlagCapture)
	s := m.String()
	promo := PromoFlagFor(s[len(s)-1])
	assert.Equal(t, FlagKnightPromo, promo)

	assert.Equal(t, -1, PromoFlagFor('x'))
}

func TestMove_IsValid(t *testing.T) {
	e2, e4 := sq(t, "e2"), sq(t, "e4")
	assert.False(t, NoMove.IsValid())
	assert.True(t, NewMove(e2, e4, FlagQuiet).IsValid())
}
