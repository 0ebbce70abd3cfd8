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

	"github.com/nilsagren/chessd/internal/config"
	"github.com/nilsagren/chessd/internal/types"
)

func init() {
	config.Setup()
}

var e2 = types.SquareFrom(4, 1)
var e4 = types.SquareFrom(4, 3)

func TestHeuristics_KillerOrdering(t *testing.T) {
	h := NewHeuristics()
	m1 := types.NewMove(types.E1, e2, types.FlagQuiet)
	m2 := types.NewMove(e2, types.E1, types.FlagQuiet)

	assert.False(t, h.IsKiller(m1, 3))

	h.UpdateKiller(m1, 3)
	assert.True(t, h.IsKiller(m1, 3))

	h.UpdateKiller(m2, 3)
	assert.True(t, h.IsKiller(m1, 3))
	assert.True(t, h.IsKiller(m2, 3))

	// Updating with the existing first killer again must not duplicate it
	// into the second slot.
	h.UpdateKiller(m2, 3)
	assert.Equal(t, m2, h.killers[3][0])
	assert.Equal(t, m1, h.killers[3][1])
}

func TestHeuristics_HistorySkipsShallowDepths(t *testing.T) {
	h := NewHeuristics()
	m := types.NewMove(types.E1, e2, types.FlagQuiet)

	h.UpdateHistory(5, m, 1)
	assert.Equal(t, 0, h.QuietHistory(5, m))

	h.UpdateHistory(5, m, 3)
	assert.Equal(t, 9, h.QuietHistory(5, m))

	h.UpdateHistory(5, m, 3)
	assert.Equal(t, 18, h.QuietHistory(5, m))
}

func TestHeuristics_HistoryUsesStatBonusWhenEnabled(t *testing.T) {
	config.Settings.Search.UseStatBonusHistory = true
	defer func() { config.Settings.Search.UseStatBonusHistory = false }()

	h := NewHeuristics()
	m := types.NewMove(types.E1, e2, types.FlagQuiet)

	h.UpdateHistory(5, m, 3)
	assert.Equal(t, statBonus(3), h.QuietHistory(5, m))
}

func TestStatBonus_CapsAboveDepth13(t *testing.T) {
	assert.Equal(t, 32, statBonus(14))
	assert.Equal(t, 32, statBonus(20))
	assert.Equal(t, 16*13*13+128*12, statBonus(13))
}

func TestHeuristics_CounterMoveGetSet(t *testing.T) {
	h := NewHeuristics()
	reply := types.NewMove(e2, types.E1, types.FlagQuiet)

	assert.Equal(t, types.NoMove, h.CounterMove(types.White, types.WhitePawn, e4))

	h.UpdateCounterMove(types.White, types.WhitePawn, e4, reply)
	assert.Equal(t, reply, h.CounterMove(types.White, types.WhitePawn, e4))
	assert.Equal(t, types.NoMove, h.CounterMove(types.Black, types.WhitePawn, e4))
}

func TestHeuristics_ClearResetsKillersAndHistoryNotCounters(t *testing.T) {
	h := NewHeuristics()
	m := types.NewMove(types.E1, e2, types.FlagQuiet)
	reply := types.NewMove(e2, types.E1, types.FlagQuiet)

	h.UpdateKiller(m, 2)
	h.UpdateHistory(2, m, 4)
	h.UpdateCounterMove(types.White, types.WhitePawn, e4, reply)

	h.Clear()

	assert.False(t, h.IsKiller(m, 2))
	assert.Equal(t, 0, h.QuietHistory(2, m))
	assert.Equal(t, reply, h.CounterMove(types.White, types.WhitePawn, e4))
}

func TestInitMvvLva_FavorsLowAttackerHighVictim(t *testing.T) {
	mg := [types.PieceTypeLength]int32{100, 320, 330, 500, 900, 0}
	InitMvvLva(mg)

	// Pawn takes queen should score far higher than queen takes pawn.
	assert.Greater(t, MvvLva[types.Queen][types.Pawn], MvvLva[types.Pawn][types.Queen])
}
