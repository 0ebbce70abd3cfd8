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

package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nilsagren/chessd/internal/position"
)

// Reference counts from https://www.chessprogramming.org/Perft_Results.
func TestPerft_StartPosition(t *testing.T) {
	want := []uint64{1, 20, 400, 8_902, 197_281}

	b := position.NewBoard()
	for depth, nodes := range want {
		assert.Equal(t, nodes, Perft(b, depth), "perft(%d)", depth)
	}
}

func TestPerft_Kiwipete(t *testing.T) {
	want := []uint64{1, 48, 2_039, 97_862}

	b, err := position.NewBoardFromFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	for depth, nodes := range want {
		assert.Equal(t, nodes, Perft(b, depth), "perft(%d)", depth)
	}
}

func TestPerft_Position3(t *testing.T) {
	want := []uint64{1, 14, 191, 2_812, 43_238}

	b, err := position.NewBoardFromFEN("8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1")
	require.NoError(t, err)
	for depth, nodes := range want {
		assert.Equal(t, nodes, Perft(b, depth), "perft(%d)", depth)
	}
}

func TestPerft_Position5(t *testing.T) {
	want := []uint64{1, 44, 1_486, 62_379}

	b, err := position.NewBoardFromFEN("rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8")
	require.NoError(t, err)
	for depth, nodes := range want {
		assert.Equal(t, nodes, Perft(b, depth), "perft(%d)", depth)
	}
}

func TestGenerate_StartPositionMoveCount(t *testing.T) {
	b := position.NewBoard()
	var ml MoveList
	Generate(b, &ml)
	assert.Equal(t, 20, ml.Count)
}

func TestGenerateNoisy_OnlyCapturesAndPromotions(t *testing.T) {
	b, err := position.NewBoardFromFEN("rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8")
	require.NoError(t, err)

	var noisy MoveList
	GenerateNoisy(b, &noisy)
	require.Greater(t, noisy.Count, 0)
	for i := 0; i < noisy.Count; i++ {
		m := noisy.Moves[i]
		assert.True(t, m.IsCapture() || m.IsPromotion())
	}
}
