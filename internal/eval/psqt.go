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

import "github.com/nilsagren/chessd/internal/types"

// Piece-square tables are built once at init from small per-file and
// per-rank profiles rather than transcribed as 64-entry literals: each
// square's bonus is fileProfile[file] + rankProfile[rank], indexed
// from White's point of view (rank 0 = rank 1). Black looks up the
// mirrored square (sq ^ 56). This keeps every table's shape legible
// and avoids hand-typed tables that are easy to get subtly wrong.
var psqtMg [6][types.SquareLength]int32
var psqtEg [6][types.SquareLength]int32

func buildTable(dst *[types.SquareLength]int32, file, rank [8]int32) {
	for sq := types.A1; sq <= types.H8; sq++ {
		dst[sq] = file[sq.FileOf()] + rank[sq.RankOf()]
	}
}

func init() {
	center := [8]int32{-20, -10, 0, 10, 10, 0, -10, -20}
	flat := [8]int32{0, 0, 0, 0, 0, 0, 0, 0}

	// Pawns: rewarded for advancing, doubly so toward the endgame, and
	// for occupying central files.
	pawnFileMg := [8]int32{-5, 0, 5, 10, 10, 5, 0, -5}
	pawnRankMg := [8]int32{0, 0, 5, 10, 20, 35, 55, 0}
	pawnRankEg := [8]int32{0, 5, 10, 20, 35, 55, 80, 0}
	buildTable(&psqtMg[types.Pawn], pawnFileMg, pawnRankMg)
	buildTable(&psqtEg[types.Pawn], flat, pawnRankEg)

	// Knights want the center in both phases, and dislike the rim.
	knightProfile := [8]int32{-40, -20, -5, 5, 5, -5, -20, -40}
	buildTable(&psqtMg[types.Knight], knightProfile, knightProfile)
	buildTable(&psqtEg[types.Knight], knightProfile, knightProfile)

	// Bishops prefer long diagonals; a milder centralizing profile.
	bishopProfile := [8]int32{-15, -5, 0, 5, 5, 0, -5, -15}
	buildTable(&psqtMg[types.Bishop], bishopProfile, bishopProfile)
	buildTable(&psqtEg[types.Bishop], bishopProfile, bishopProfile)

	// Rooks like open central files and the seventh rank.
	rookFile := [8]int32{-5, 0, 0, 5, 5, 0, 0, -5}
	rookRankMg := [8]int32{0, 0, 0, 0, 0, 0, 15, 0}
	buildTable(&psqtMg[types.Rook], rookFile, rookRankMg)
	buildTable(&psqtEg[types.Rook], rookFile, flat)

	// Queens: mild centralization, by file only in the middlegame and by
	// file and rank in the endgame.
	buildTable(&psqtMg[types.Queen], center, flat)
	buildTable(&psqtEg[types.Queen], center, center)

	// Kings hide in the corners in the middlegame and come out to the
	// center in the endgame.
	kingFileMg := [8]int32{20, 30, 10, -10, -10, 10, 30, 20}
	kingRankMg := [8]int32{10, 5, -10, -20, -20, -10, 5, 10}
	kingProfileEg := [8]int32{-30, -10, 10, 20, 20, 10, -10, -30}
	buildTable(&psqtMg[types.King], kingFileMg, kingRankMg)
	buildTable(&psqtEg[types.King], kingProfileEg, kingProfileEg)
}

// psqtValue returns the piece-square bonus for a piece of kind pt and
// color c standing on sq, for both the middle-game and end-game
// tables.
func psqtValue(pt types.PieceType, c types.Color, sq types.Square) (mg, eg int32) {
	if c == types.Black {
		sq = sq.Mirror()
	}
	return psqtMg[pt][sq], psqtEg[pt][sq]
}
