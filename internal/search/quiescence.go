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

package search

import (
	"github.com/nilsagren/chessd/internal/config"
	"github.com/nilsagren/chessd/internal/eval"
	"github.com/nilsagren/chessd/internal/movepicker"
	"github.com/nilsagren/chessd/internal/position"
	"github.com/nilsagren/chessd/internal/types"
)

// moveBestCaseScore upper-bounds the material a move can possibly
// gain, used by delta pruning: the value of whatever it captures (a
// pawn for en passant) plus, for a promotion, the promoted piece's
// value over a pawn (0 for a quiet non-promotion).
func moveBestCaseScore(b *position.Board, m types.Move) int32 {
	mg := eval.MaterialMg()
	var gain int32
	captured := b.Mailbox[m.To()]
	if m.IsEnPassant() {
		gain = mg[types.Pawn]
	} else if captured != types.Empty && captured != types.NoPiece {
		gain = mg[captured.TypeOf()]
	}
	if m.IsPromotion() {
		gain += mg[m.PromotionType()] - mg[types.Pawn]
	}
	return gain
}

// quiescence extends the search along capture sequences until the
// position is "quiet", avoiding the horizon effect of stopping
// mid-exchange. Per spec.md §4.7/§4.3: stand-pat first, then delta
// pruning, then a noisy-only move picker that stops as soon as it
// sees a non-capture or a negatively scored move. An SEE-losing
// capture scores MVV-LVA minus 10000, which is negative only when the
// victim is a pawn; SEE-losing captures of other pieces are searched.
func (e *Engine) quiescence(b *position.Board, alpha, beta types.Value, ply int) types.Value {
	e.nodes++

	standPat := e.Eval.Evaluate(b)
	if standPat >= beta {
		return beta
	}

	queenValue := eval.MaterialMg()[types.Queen]
	if standPat+types.Value(queenValue) < alpha {
		return standPat
	}

	if standPat > alpha {
		alpha = standPat
	}

	if e.stopped {
		return 0
	}

	bestScore := standPat

	var picker movepicker.Picker
	picker.InitNoisy(e.Heur, b)

	for {
		move, moveScore := picker.Next(b)
		if move == types.NoMove {
			break
		}
		if !move.IsCapture() || moveScore < 0 {
			break
		}

		if standPat+types.Value(moveBestCaseScore(b, move))+types.Value(config.Settings.Search.DeltaMargin) < alpha {
			continue
		}

		if !b.MakeMove(move) {
			b.UnmakeMove(move)
			continue
		}

		score := -e.quiescence(b, -beta, -alpha, ply+1)
		b.UnmakeMove(move)

		if e.stopped {
			return 0
		}

		if score > bestScore {
			bestScore = score
			if score > alpha {
				alpha = score
				if alpha >= beta {
					break
				}
			}
		}
	}

	return bestScore
}
