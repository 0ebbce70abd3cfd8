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

// Package zobrist holds the process-lifetime table of random 64-bit
// keys used to compute and incrementally maintain a position's hash
// signature. The table is built once at package init and never mutated
// afterward; every position shares the same table.
package zobrist

import (
	"github.com/nilsagren/chessd/internal/types"
)

// seed matches the constant the table has always been built with.
// Changing it invalidates every previously stored transposition-table
// entry and persisted pawn-cache file.
const seed = 1070372

var (
	// Pieces holds one key per (piece, square) pair, indexed by
	// types.Piece (0..11 for colored pieces) and types.Square.
	Pieces [12][types.SquareLength]types.Key

	// Castle holds one key per castling-rights nibble, 0..15.
	Castle [16]types.Key

	// EpFile holds one key per en-passant file, 0..7. There is no key
	// for "no ep square": the incremental hash simply skips XOR-ing
	// this table when EpSquare is types.NoSquare.
	EpFile [8]types.Key

	// SideToMove is XORed into the hash whenever it is Black's turn.
	// White to move contributes nothing, so the startpos hash only
	// depends on piece placement, castling rights, and ep file.
	SideToMove types.Key
)

func init() {
	Init()
}

// Init (re)builds the whole key table from the fixed seed. The package
// already does this once via init(); exported so search.Engine.Warmup
// can join it into a concurrent startup group. Idempotent and
// deterministic: calling it twice reproduces the exact same keys.
func Init() {
	r := newRandom(seed)

	for pc := 0; pc < 12; pc++ {
		for sq := 0; sq < types.SquareLength; sq++ {
			Pieces[pc][sq] = types.Key(r.rand64())
		}
	}
	for cr := 0; cr < 16; cr++ {
		Castle[cr] = types.Key(r.rand64())
	}
	for f := 0; f < 8; f++ {
		EpFile[f] = types.Key(r.rand64())
	}
	SideToMove = types.Key(r.rand64())
}
