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

package attacks

import "github.com/nilsagren/chessd/internal/types"

var (
	knightTable [types.SquareLength]types.Bitboard
	kingTable   [types.SquareLength]types.Bitboard
	pawnTable   [types.ColorLength][types.SquareLength]types.Bitboard
)

var knightSteps = [8][2]direction{
	{North, Northeast}, {North, Northwest},
	{South, Southeast}, {South, Southwest},
	{East, Northeast}, {East, Southeast},
	{West, Northwest}, {West, Southwest},
}

func init() {
	initStepTables()
}

// initStepTables builds the knight/king/pawn step-attack tables.
func initStepTables() {
	for sq := types.A1; sq <= types.H8; sq++ {
		kingTable[sq] = stepAttacks(sq, North, South, East, West, Northeast, Northwest, Southeast, Southwest)

		var kb types.Bitboard
		for _, pair := range knightSteps {
			if mid, ok := step(sq, pair[0]); ok {
				if to, ok2 := step(mid, pair[1]); ok2 && types.Distance(sq, to) <= 2 {
					kb = kb.Set(to)
				}
			}
		}
		knightTable[sq] = kb

		pawnTable[types.White][sq] = stepAttacks(sq, Northeast, Northwest)
		pawnTable[types.Black][sq] = stepAttacks(sq, Southeast, Southwest)
	}
}

func stepAttacks(sq types.Square, dirs ...direction) types.Bitboard {
	var bb types.Bitboard
	for _, d := range dirs {
		if to, ok := step(sq, d); ok {
			bb = bb.Set(to)
		}
	}
	return bb
}

// GetAttacksBb returns the attack bitboard of a piece of kind pt standing
// on sq, given the full board occupancy. Occupancy only matters for the
// sliding piece types; Knight and King ignore it.
func GetAttacksBb(pt types.PieceType, sq types.Square, occupied types.Bitboard) types.Bitboard {
	switch pt {
	case types.Knight:
		return knightTable[sq]
	case types.King:
		return kingTable[sq]
	case types.Bishop:
		m := &bishopMagics[sq]
		return m.attacks[m.index(occupied)]
	case types.Rook:
		m := &rookMagics[sq]
		return m.attacks[m.index(occupied)]
	case types.Queen:
		rm := &rookMagics[sq]
		bm := &bishopMagics[sq]
		return rm.attacks[rm.index(occupied)] | bm.attacks[bm.index(occupied)]
	default:
		return 0
	}
}

// GetPawnAttacks returns the squares a pawn of color c standing on sq
// attacks.
func GetPawnAttacks(c types.Color, sq types.Square) types.Bitboard {
	return pawnTable[c][sq]
}

// Init rebuilds every static attack table. The package already builds
// them once via init(); this is exposed so search.Engine.Warmup can
// join it into a concurrent startup group alongside the other
// independent table builds. Idempotent.
func Init() {
	initStepTables()
	initMagicTables()
}
