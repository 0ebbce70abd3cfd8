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

package position

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nilsagren/chessd/internal/types"
)

func TestNewBoard_StartPosition(t *testing.T) {
	b := NewBoard()
	assert.Equal(t, types.White, b.Side)
	assert.Equal(t, CastleAll, b.CastlePerm)
	assert.Equal(t, types.NoSquare, b.EpSquare)
	assert.Equal(t, 0, b.FiftyMove)
	assert.Equal(t, b.GenerateHash(), b.Hash)
}

func TestNewBoardFromFEN_RejectsMalformed(t *testing.T) {
	tests := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -", // only 4 fields, ok actually
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1",      // 7 ranks
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNX w KQkq - 0 1",
	}
	for i, fen := range tests {
		_, err := NewBoardFromFEN(fen)
		if i == 1 {
			assert.NoError(t, err, fen)
			continue
		}
		assert.Error(t, err, fen)
	}
}

func TestNewBoardFromFEN_HashMatchesGenerateHash(t *testing.T) {
	fens := []string{
		StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", // Kiwipete
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		"r4rk1/1pp1qppp/p1np1n2/2b1p1B1/4P1b1/1NN5/PPP2PPP/R2QR1K1 w - - 0 1",
	}
	for _, fen := range fens {
		b, err := NewBoardFromFEN(fen)
		require.NoError(t, err, fen)
		assert.Equal(t, b.GenerateHash(), b.Hash, fen)
	}
}

func TestKingSquare(t *testing.T) {
	b := NewBoard()
	e1 := sqFor(t, "e1")
	e8 := sqFor(t, "e8")
	assert.Equal(t, e1, b.KingSquare(types.White))
	assert.Equal(t, e8, b.KingSquare(types.Black))
}

func TestMakeMove_UnmakeMove_RoundTrip(t *testing.T) {
	b := NewBoard()
	e2, e4 := sqFor(t, "e2"), sqFor(t, "e4")

	before := *b
	beforeHash := b.Hash

	m := types.NewMove(e2, e4, types.FlagQuiet)
	legal := b.MakeMove(m)
	require.True(t, legal)
	assert.NotEqual(t, beforeHash, b.Hash)
	assert.Equal(t, types.Black, b.Side)

	b.UnmakeMove(m)
	assert.Equal(t, beforeHash, b.Hash)
	assert.Equal(t, before.Side, b.Side)
	assert.Equal(t, before.Mailbox, b.Mailbox)
	assert.Equal(t, before.Pieces, b.Pieces)
	assert.Equal(t, before.Colors, b.Colors)
	assert.Equal(t, before.CastlePerm, b.CastlePerm)
	assert.Equal(t, before.EpSquare, b.EpSquare)
	assert.Equal(t, before.FiftyMove, b.FiftyMove)
}

func TestMakeMove_IllegalLeavesKingInCheck(t *testing.T) {
	// White king on e1, black king on e3: moving the white king to e2
	// would stand it adjacent to the black king, which MakeMove must
	// reject via its own-king-safety check.
	b, err := NewBoardFromFEN("8/8/8/8/8/4k3/8/4K3 w - - 0 1")
	require.NoError(t, err)

	e1, e2 := sqFor(t, "e1"), sqFor(t, "e2")
	m := types.NewMove(e1, e2, types.FlagQuiet)
	legal := b.MakeMove(m)
	assert.False(t, legal)
	b.UnmakeMove(m)
	assert.Equal(t, e1, b.KingSquare(types.White))
}

func TestMakeNull_UnmakeNull_RoundTrip(t *testing.T) {
	b := NewBoard()
	beforeHash := b.Hash
	beforeSide := b.Side

	b.MakeNull()
	assert.NotEqual(t, beforeSide, b.Side)
	assert.NotEqual(t, beforeHash, b.Hash)

	b.UnmakeNull()
	assert.Equal(t, beforeSide, b.Side)
	assert.Equal(t, beforeHash, b.Hash)
}

func TestIsDraw_FiftyMoveRule(t *testing.T) {
	b := NewBoard()
	b.FiftyMove = 100
	assert.True(t, b.IsDraw())
	b.FiftyMove = 99
	assert.False(t, b.IsDraw())
}

func TestIsPawnEndgame(t *testing.T) {
	b, err := NewBoardFromFEN("4k3/4p3/8/8/8/8/4P3/4K3 w - - 0 1")
	require.NoError(t, err)
	assert.True(t, b.IsPawnEndgame(types.White))
	assert.True(t, b.IsPawnEndgame(types.Black))

	b2 := NewBoard()
	assert.False(t, b2.IsPawnEndgame(types.White))
}

func TestInCheck(t *testing.T) {
	b, err := NewBoardFromFEN("4k3/8/8/8/8/8/4r3/4K3 w - - 0 1")
	require.NoError(t, err)
	assert.True(t, b.InCheck(types.White))
	assert.False(t, b.InCheck(types.Black))
}

func sqFor(t *testing.T, s string) types.Square {
	t.Helper()
	sq, err := types.SquareFromString(s)
	require.NoError(t, err)
	return sq
}
