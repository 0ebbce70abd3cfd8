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
	"github.com/nilsagren/chessd/internal/movepicker"
	"github.com/nilsagren/chessd/internal/position"
	"github.com/nilsagren/chessd/internal/tt"
	"github.com/nilsagren/chessd/internal/types"
)

func max32(a, b types.Value) types.Value {
	if a > b {
		return a
	}
	return b
}

func min32(a, b types.Value) types.Value {
	if a < b {
		return a
	}
	return b
}

// negamax implements spec.md §4.7: check extension, quiescence at the
// horizon, TT probe/store, mate-distance pruning, internal iterative
// deepening, null-move pruning, and a PVS move loop with late move
// reductions.
func (e *Engine) negamax(b *position.Board, alpha, beta types.Value, depth, ply int, pv *pvLine, isPV, doNull bool) types.Value {
	rootNode := ply == 0
	var childPV pvLine

	inCheck := b.InCheck(b.Side)
	if inCheck && config.Settings.Search.UseCheckExt {
		depth++
	}

	if depth <= 0 {
		pv.clear()
		return e.quiescence(b, alpha, beta, ply)
	}

	var hashMove types.Move
	if !rootNode && config.Settings.Search.UseTT {
		if move, score, _, entryDepth, bound, ok := e.TT.Probe(b.Hash); ok {
			hashMove = move
			if !isPV && entryDepth >= depth {
				switch {
				case bound == tt.BoundExact,
					bound == tt.BoundLower && score >= beta,
					bound == tt.BoundUpper && score <= alpha:
					return score
				}
			}
		}
	}

	e.nodes++
	if e.stopped {
		return 0
	}

	if !rootNode {
		if b.IsDraw() {
			return types.ValueDraw
		}
		if ply >= types.MaxDepth-1 {
			return e.Eval.Evaluate(b)
		}

		if config.Settings.Search.UseMDP {
			alpha = max32(alpha, -types.ValueMate+types.Value(ply))
			beta = min32(beta, types.ValueMate-types.Value(ply)-1)
			if alpha >= beta {
				return alpha
			}
		}
	}

	if e.nodes%pollInterval == 0 {
		e.checkTime()
	}

	staticEval := e.Eval.Evaluate(b)

	if isPV && config.Settings.Search.UseIID && depth >= config.Settings.Search.IIDDepth && hashMove == types.NoMove {
		e.negamax(b, alpha, beta, depth-config.Settings.Search.IIDReduction, ply+1, &childPV, true, doNull)
		if move, _, _, _, _, ok := e.TT.Probe(b.Hash); ok {
			hashMove = move
		}
	}

	if config.Settings.Search.UseRFP && !isPV && !inCheck &&
		depth <= config.Settings.Search.RFPMaxDepth &&
		staticEval-types.Value(config.Settings.Search.RFPMargin*depth) >= beta {
		return staticEval
	}

	if config.Settings.Search.UseNullMove && !isPV && !inCheck && doNull &&
		staticEval >= beta && !b.IsPawnEndgame(b.Side) && depth >= config.Settings.Search.NmpDepth {
		reduction := config.Settings.Search.NmpReduction
		b.MakeNull()
		score := -e.negamax(b, -beta, -beta+1, depth-reduction, ply+1, &childPV, false, false)
		b.UnmakeNull()
		if e.stopped {
			return 0
		}
		if score >= beta {
			return beta
		}
	}

	bestScore := -types.ValueMate + types.Value(ply)
	bestMove := types.NoMove
	bound := tt.BoundUpper
	movesPlayed := 0

	var picker movepicker.Picker
	picker.Init(e.Heur, hashMove, ply, b)

	for {
		move, _ := picker.Next(b)
		if move == types.NoMove {
			break
		}

		if !b.MakeMove(move) {
			b.UnmakeMove(move)
			continue
		}
		movesPlayed++

		isQuiet := !move.IsCapture() && !move.IsPromotion()

		var score types.Value
		if movesPlayed == 1 && isPV {
			score = -e.negamax(b, -beta, -alpha, depth-1, ply+1, &childPV, true, doNull)
		} else {
			reduction := 0
			if config.Settings.Search.UseLMR && !inCheck && depth > config.Settings.Search.LmrMinDepth &&
				isQuiet && !e.Heur.IsKiller(move, ply) {
				reduction = lmrReduction(depth, movesPlayed)
			}

			score = -e.negamax(b, -alpha-1, -alpha, depth-1-reduction, ply+1, &childPV, false, doNull)
			if reduction > 0 && score > alpha {
				score = -e.negamax(b, -alpha-1, -alpha, depth-1, ply+1, &childPV, false, doNull)
			}
			if score > alpha && score < beta {
				score = -e.negamax(b, -beta, -alpha, depth-1, ply+1, &childPV, true, doNull)
			}
		}

		b.UnmakeMove(move)

		if e.stopped {
			return 0
		}

		if score > bestScore {
			bestScore = score
			if score > alpha {
				alpha = score
				bestMove = move
				bound = tt.BoundExact

				if isPV {
					pv.set(move, &childPV)
				}

				if alpha >= beta {
					bound = tt.BoundLower
					if isQuiet {
						e.Heur.UpdateKiller(move, ply)
						if len(b.History) > 0 {
							last := b.History[len(b.History)-1]
							if last.Move != types.NoMove {
								e.Heur.UpdateCounterMove(b.Side.Other(), last.MovedPiece, last.Move.To(), move)
							}
						}
						e.Heur.UpdateHistory(ply, move, depth)
					}
					break
				}
			}
		}
	}

	if movesPlayed == 0 {
		if inCheck {
			return -types.ValueMate + types.Value(ply)
		}
		return types.ValueDraw
	}

	if e.stopped {
		return 0
	}

	if config.Settings.Search.UseTT {
		e.TT.Store(b.Hash, bestMove, depth, bestScore, staticEval, bound)
	}

	return bestScore
}
