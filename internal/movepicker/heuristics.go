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

// Package movepicker supplies a negamax search node with moves, best
// first, without sorting the entire move list up front: moves are
// generated once per node, scored, and then popped off a max-heap one
// at a time. It also owns the move-ordering heuristic tables (killers,
// counter-moves, history) that persist across the whole search.
package movepicker

import (
	"github.com/nilsagren/chessd/internal/config"
	"github.com/nilsagren/chessd/internal/types"
)

// MvvLva[victim][attacker] favors capturing the most valuable victim
// with the least valuable attacker.
var MvvLva [types.PieceTypeLength][types.PieceTypeLength]int

// InitMvvLva builds the MVV-LVA table from the configured middle-game
// material values. Called once at startup after config.Setup.
func InitMvvLva(mgValue [types.PieceTypeLength]int32) {
	for attacker := types.Pawn; attacker < types.PieceTypeLength; attacker++ {
		for victim := types.Pawn; victim < types.PieceTypeLength; victim++ {
			MvvLva[victim][attacker] = int(100*mgValue[victim] - mgValue[attacker])
		}
	}
}

// Heuristics holds the move-ordering tables that live for the
// duration of a single search: killers and history are indexed by
// ply, counter-moves by the side that just moved, the piece it moved
// and the destination of the move being countered.
type Heuristics struct {
	killers  [types.MaxDepth][2]types.Move
	counters [types.ColorLength][12][types.SquareLength]types.Move
	history  [types.MaxDepth][types.SquareLength][types.SquareLength]int
}

// NewHeuristics returns a cleared heuristics set, as done once before
// every new search.
func NewHeuristics() *Heuristics {
	return &Heuristics{}
}

// Clear resets killers and history; called at the start of each search
// and by Engine.NewGame.
// Counter-moves are left alone across searches of the same game, the
// way the originating source does (they were only ever cleared by
// process restart there, and nothing in the spec mandates clearing
// them between searches).
func (h *Heuristics) Clear() {
	h.killers = [types.MaxDepth][2]types.Move{}
	h.history = [types.MaxDepth][types.SquareLength][types.SquareLength]int{}
}

func (h *Heuristics) IsKiller(m types.Move, ply int) bool {
	return m == h.killers[ply][0] || m == h.killers[ply][1]
}

func (h *Heuristics) UpdateKiller(m types.Move, ply int) {
	if h.killers[ply][0] != m {
		h.killers[ply][1] = h.killers[ply][0]
		h.killers[ply][0] = m
	}
}

func (h *Heuristics) QuietHistory(ply int, m types.Move) int {
	return h.history[ply][m.From()][m.To()]
}

// UpdateHistory adds depth*depth to the fail-high quiet's history
// score, skipped for shallow depths so noise from near-leaf cutoffs
// doesn't pollute ordering. If UseStatBonusHistory is set, the
// original's stat_bonus curve is used instead; off by default since
// the baseline move-ordering contract is pinned to the plain formula.
func (h *Heuristics) UpdateHistory(ply int, m types.Move, depth int) {
	if depth < 2 {
		return
	}
	bonus := depth * depth
	if config.Settings.Search.UseStatBonusHistory {
		bonus = statBonus(depth)
	}
	h.history[ply][m.From()][m.To()] += bonus
}

// statBonus is the original's movepicker.c curve, kept as a documented
// alternative behind UseStatBonusHistory rather than substituted in as
// the default.
func statBonus(depth int) int {
	if depth > 13 {
		return 32
	}
	d1 := depth - 1
	if d1 < 0 {
		d1 = 0
	}
	return 16*depth*depth + 128*d1
}

// CounterMove returns the stored reply to the last move played by
// sideThatMoved with piece moved to square to, or NoMove if none is
// recorded.
func (h *Heuristics) CounterMove(sideThatMoved types.Color, movedPiece types.Piece, to types.Square) types.Move {
	return h.counters[sideThatMoved][movedPiece][to]
}

// UpdateCounterMove records reply as the counter to the move that
// brought movedPiece to square to, from sideThatMoved's perspective.
func (h *Heuristics) UpdateCounterMove(sideThatMoved types.Color, movedPiece types.Piece, to types.Square, reply types.Move) {
	h.counters[sideThatMoved][movedPiece][to] = reply
}
