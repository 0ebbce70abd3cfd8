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

// Package see implements Static Exchange Evaluation: simulating the
// best-least-attacker capture sequence on a single square to decide,
// without any tactical lookahead, whether a capture gains at least a
// given amount of material.
package see

import (
	"github.com/nilsagren/chessd/internal/attacks"
	"github.com/nilsagren/chessd/internal/position"
	"github.com/nilsagren/chessd/internal/types"
)

// PieceValues are the centipawn values used only for exchange
// simulation, not the tapered evaluation's own material tables.
var PieceValues = [6]int{
	types.Pawn:   100,
	types.Knight: 320,
	types.Bishop: 320,
	types.Rook:   500,
	types.Queen:  950,
	types.King:   100000,
}

// Evaluate reports whether the capture sequence initiated by m gains
// at least threshold centipawns for the side to move in b.
func Evaluate(b *position.Board, m types.Move, threshold int) bool {
	from := m.From()
	exchangeSquare := m.To()

	movingPiece := b.Mailbox[from].TypeOf()

	var balance int
	if m.IsCapture() {
		if m.IsEnPassant() {
			balance = PieceValues[types.Pawn]
		} else {
			balance = PieceValues[b.Mailbox[exchangeSquare].TypeOf()]
		}
	}
	balance -= threshold
	if balance < 0 {
		return false
	}

	balance -= PieceValues[movingPiece]
	if balance >= 0 {
		return true
	}

	sideToCapture := b.Side.Other()

	occupied := b.Colors[types.Both]
	occupied = occupied.Clear(from)

	attackers := b.AllAttackersToSquare(occupied, exchangeSquare)

	bishops := b.Pieces[types.Bishop] | b.Pieces[types.Queen]
	rooks := b.Pieces[types.Rook] | b.Pieces[types.Queen]

	mover := b.Side
	for {
		attackersOnSide := attackers & b.Colors[sideToCapture]
		if attackersOnSide == 0 {
			break
		}

		var nextPiece types.PieceType
		var attackerSq types.Square
		for nextPiece = types.Pawn; nextPiece <= types.Queen; nextPiece++ {
			bb := attackersOnSide & b.Pieces[nextPiece]
			if bb != 0 {
				attackerSq = bb.Lsb()
				break
			}
		}

		occupied = occupied.Clear(attackerSq)

		if nextPiece == types.Pawn || nextPiece == types.Bishop || nextPiece == types.Queen {
			attackers |= attacks.GetAttacksBb(types.Bishop, exchangeSquare, occupied) & bishops
		}
		if nextPiece == types.Rook || nextPiece == types.Queen {
			attackers |= attacks.GetAttacksBb(types.Rook, exchangeSquare, occupied) & rooks
		}
		attackers &= occupied

		sideToCapture = sideToCapture.Other()

		balance = -balance - 1 - PieceValues[nextPiece]
		if balance >= 0 {
			if nextPiece == types.King && attackers&b.Colors[sideToCapture] != 0 {
				sideToCapture = sideToCapture.Other()
			}
			break
		}
	}

	return mover != sideToCapture
}
