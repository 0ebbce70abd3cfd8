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

package see

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nilsagren/chessd/internal/position"
	"github.com/nilsagren/chessd/internal/types"
)

func sq(t *testing.T, s string) types.Square {
	t.Helper()
	square, err := types.SquareFromString(s)
	require.NoError(t, err)
	return square
}

// A free pawn capture: a white rook takes an undefended black pawn.
func TestEvaluate_WinningCaptureNoRecapture(t *testing.T) {
	b, err := position.NewBoardFromFEN("4k3/8/8/8/3p4/8/8/3RK3 w - - 0 1")
	require.NoError(t, err)

	capture := types.NewMove(sq(t, "d1"), sq(t, "d4"), types.FlagCapture)
	assert.True(t, Evaluate(b, capture, 0))
	assert.True(t, Evaluate(b, capture, PieceValues[types.Pawn]))
	assert.False(t, Evaluate(b, capture, PieceValues[types.Pawn]+1))
}

// A pawn takes a pawn: an even trade succeeds regardless of threshold 0.
func TestEvaluate_EqualPawnTradeSucceeds(t *testing.T) {
	b, err := position.NewBoardFromFEN("4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	capture := types.NewMove(sq(t, "e4"), sq(t, "d5"), types.FlagCapture)
	assert.True(t, Evaluate(b, capture, 0))
}

// A queen capturing a pawn defended by another pawn loses material: the
// queen is recaptured for a single pawn, a clear loss.
func TestEvaluate_LosingQueenForPawnFails(t *testing.T) {
	b, err := position.NewBoardFromFEN("4k3/3p4/4p3/4Q3/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	capture := types.NewMove(sq(t, "e5"), sq(t, "e6"), types.FlagCapture)
	assert.False(t, Evaluate(b, capture, 0))
}

func TestEvaluate_NonCaptureMoveHasNoThresholdToBeat(t *testing.T) {
	b := position.NewBoard()
	quiet := types.NewMove(sq(t, "e2"), sq(t, "e4"), types.FlagQuiet)
	assert.True(t, Evaluate(b, quiet, 0))
	assert.False(t, Evaluate(b, quiet, 1))
}
