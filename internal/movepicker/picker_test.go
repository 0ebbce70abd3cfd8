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

package movepicker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nilsagren/chessd/internal/position"
	"github.com/nilsagren/chessd/internal/types"
)

func TestPicker_HashMoveReturnedFirst(t *testing.T) {
	b := position.NewBoard()
	hashMove := types.NewMove(e2, e4, types.FlagQuiet)

	h := NewHeuristics()
	var p Picker
	p.Init(h, hashMove, 0, b)

	first, score := p.Next(b)
	assert.Equal(t, hashMove, first)
	assert.Equal(t, 1<<30, score)
}

func TestPicker_HashMoveNotReturnedTwice(t *testing.T) {
	b := position.NewBoard()
	hashMove := types.NewMove(e2, e4, types.FlagQuiet)

	h := NewHeuristics()
	var p Picker
	p.Init(h, hashMove, 0, b)

	seen := 0
	for {
		m, _ := p.Next(b)
		if m == types.NoMove {
			break
		}
		if m == hashMove {
			seen++
		}
	}
	assert.Equal(t, 1, seen)
}

func TestPicker_ExhaustsAllLegalMovesExactlyOnce(t *testing.T) {
	b := position.NewBoard()

	h := NewHeuristics()
	var p Picker
	p.Init(h, types.NoMove, 0, b)

	count := 0
	for {
		m, _ := p.Next(b)
		if m == types.NoMove {
			break
		}
		count++
	}
	assert.Equal(t, 20, count)
}

func TestPicker_KillerScoredAboveQuietHistory(t *testing.T) {
	b := position.NewBoard()
	killer := types.NewMove(e2, e4, types.FlagQuiet)

	h := NewHeuristics()
	h.UpdateKiller(killer, 0)

	var p Picker
	p.Init(h, types.NoMove, 0, b)
	assert.Equal(t, 2_000_000, p.score(b, killer))

	d2, d3 := types.SquareFrom(3, 1), types.SquareFrom(3, 2)
	other := types.NewMove(d2, d3, types.FlagQuiet)
	assert.Less(t, p.score(b, other), p.score(b, killer))
}

func TestPicker_InitNoisyOnlyProducesNoisyMoves(t *testing.T) {
	b, err := position.NewBoardFromFEN("rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8")
	require.NoError(t, err)

	h := NewHeuristics()
	var p Picker
	p.InitNoisy(h, b)

	count := 0
	for {
		m, _ := p.Next(b)
		if m == types.NoMove {
			break
		}
		count++
		assert.True(t, m.IsCapture() || m.IsPromotion())
	}
	assert.Greater(t, count, 0)
}
