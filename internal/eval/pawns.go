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

package eval

import (
	"github.com/nilsagren/chessd/internal/config"
	"github.com/nilsagren/chessd/internal/position"
	"github.com/nilsagren/chessd/internal/types"
)

var adjacentFileMask [8]types.Bitboard
var passedPawnMask [types.ColorLength][types.SquareLength]types.Bitboard

func init() {
	for file := 0; file < 8; file++ {
		mask := types.FileMask(file)
		if file > 0 {
			mask |= types.FileMask(file - 1)
		}
		if file < 7 {
			mask |= types.FileMask(file + 1)
		}
		adjacentFileMask[file] = mask
	}

	for sq := types.A1; sq <= types.H8; sq++ {
		file, rank := sq.FileOf(), sq.RankOf()
		var aheadWhite, aheadBlack types.Bitboard
		for r := rank + 1; r < 8; r++ {
			aheadWhite |= types.RankMask(r)
		}
		for r := rank - 1; r >= 0; r-- {
			aheadBlack |= types.RankMask(r)
		}
		passedPawnMask[types.White][sq] = aheadWhite & adjacentFileMask[file]
		passedPawnMask[types.Black][sq] = aheadBlack & adjacentFileMask[file]
	}
}

// pawnStructure returns the tapered middle-game and end-game pawn
// structure score for side, from side's own perspective: passed pawns
// bonus by rank, isolated- and doubled-pawn penalties.
func pawnStructure(b *position.Board, side types.Color) (mg, eg int32) {
	ourPawns := b.Pieces[types.Pawn] & b.Colors[side]
	enemyPawns := b.Pieces[types.Pawn] & b.Colors[side.Other()]
	ourPawnsSaved := ourPawns

	e := &config.Settings.Eval

	for bb := ourPawns; bb != 0; {
		sq := bb.PopLsb()
		file := sq.FileOf()
		rank := sq.RankOf()
		if side == types.Black {
			rank = 7 - rank
		}

		if passedPawnMask[side][sq]&enemyPawns == 0 {
			mg += int32(e.PawnPassedMidBonus[rank])
			eg += int32(e.PawnPassedEndBonus[rank])
		}

		if adjacentFileMask[file]&ourPawnsSaved&^types.FileMask(file) == 0 {
			mg -= int32(e.PawnIsolatedMidMalus)
			eg -= int32(e.PawnIsolatedEndMalus)
		}

		if (types.FileMask(file) & ourPawnsSaved).PopCount() > 1 {
			mg -= int32(e.PawnDoubledMidMalus)
			eg -= int32(e.PawnDoubledEndMalus)
		}
	}

	return mg, eg
}
