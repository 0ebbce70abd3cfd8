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
	"github.com/nilsagren/chessd/internal/movegen"
	"github.com/nilsagren/chessd/internal/position"
	"github.com/nilsagren/chessd/internal/see"
	"github.com/nilsagren/chessd/internal/types"
)

type stage int

const (
	stageHashMove stage = iota
	stageGenerate
	stageMain
	stageDone
)

// Picker produces moves for one search node, best first, without
// sorting the whole list up front. Its state is only valid for the
// node it was initialized for; create a fresh one (or call Init
// again) per node.
type Picker struct {
	heur *Heuristics

	hashMove     types.Move
	firstKiller  types.Move
	secondKiller types.Move
	counterMove  types.Move
	ply          int
	noisyOnly    bool

	moves  movegen.MoveList
	scores [types.MaxLegalMoves]int
	stage  stage
}

// Init prepares a picker for a normal search node: hash move first
// (if any), then killers/counter/history-ordered remaining moves.
func (p *Picker) Init(heur *Heuristics, hashMove types.Move, ply int, b *position.Board) {
	p.heur = heur
	p.hashMove = hashMove
	p.ply = ply
	p.noisyOnly = false
	p.stage = stageGenerate
	if hashMove != types.NoMove {
		p.stage = stageHashMove
	}

	p.firstKiller = heur.killers[ply][0]
	p.secondKiller = heur.killers[ply][1]

	p.counterMove = types.NoMove
	if len(b.History) > 0 {
		last := b.History[len(b.History)-1]
		if last.Move != types.NoMove {
			// last.Move was played by the side that just moved, i.e.
			// the opposite of the side to move at this node.
			p.counterMove = heur.CounterMove(b.Side.Other(), last.MovedPiece, last.Move.To())
		}
	}

	p.moves.Count = 0
}

// InitNoisy prepares a picker for quiescence search: captures and
// promotions only, no hash move, no killers, no counter-move, no
// history. Ply is irrelevant to noisy scoring and left at zero.
func (p *Picker) InitNoisy(heur *Heuristics, b *position.Board) {
	p.heur = heur
	p.hashMove = types.NoMove
	p.firstKiller = types.NoMove
	p.secondKiller = types.NoMove
	p.counterMove = types.NoMove
	p.ply = 0
	p.noisyOnly = true
	p.stage = stageGenerate
	p.moves.Count = 0
}

// Next returns the next move in best-first order along with its
// ordering score, or (NoMove, 0) once exhausted.
func (p *Picker) Next(b *position.Board) (types.Move, int) {
	switch p.stage {
	case stageHashMove:
		p.stage = stageGenerate
		return p.hashMove, 1 << 30

	case stageGenerate:
		if p.noisyOnly {
			movegen.GenerateNoisy(b, &p.moves)
		} else {
			movegen.Generate(b, &p.moves)
		}
		for i := 0; i < p.moves.Count; i++ {
			p.scores[i] = p.score(b, p.moves.Moves[i])
		}
		buildMaxHeap(p.scores[:p.moves.Count], p.moves.Moves[:p.moves.Count])
		p.stage = stageMain
		fallthrough

	case stageMain:
		for {
			if p.moves.Count == 0 {
				p.stage = stageDone
				return types.NoMove, 0
			}
			best, bestScore := p.moves.Moves[0], p.scores[0]
			last := p.moves.Count - 1
			p.moves.Moves[0], p.scores[0] = p.moves.Moves[last], p.scores[last]
			p.moves.Count--
			heapifyDown(p.scores[:p.moves.Count], p.moves.Moves[:p.moves.Count], 0)

			if best == p.hashMove {
				continue
			}
			return best, bestScore
		}

	default:
		return types.NoMove, 0
	}
}

// score implements the spec's move-ordering formula: good captures
// first (by SEE then MVV-LVA), then killers and the counter-move,
// then remaining quiets by history, with SEE-failing quiets and
// captures pushed toward the back.
func (p *Picker) score(b *position.Board, m types.Move) int {
	if !m.IsCapture() {
		switch m {
		case p.firstKiller:
			return 2_000_000
		case p.secondKiller:
			return 1_990_000
		case p.counterMove:
			return 1_980_000
		}
		if !see.Evaluate(b, m, 0) {
			attacker := b.Mailbox[m.From()].TypeOf()
			return -500 - int(attacker)
		}
		return p.heur.QuietHistory(p.ply, m)
	}

	victim := b.Mailbox[m.To()].TypeOf()
	attacker := b.Mailbox[m.From()].TypeOf()
	if m.IsEnPassant() {
		victim = types.Pawn
	}
	mvvLva := MvvLva[victim][attacker]
	if see.Evaluate(b, m, 0) {
		return 5_000_000 + mvvLva
	}
	return mvvLva - 10_000
}

func buildMaxHeap(scores []int, moves []types.Move) {
	n := len(scores)
	for i := n/2 - 1; i >= 0; i-- {
		heapifyDown(scores, moves, i)
	}
}

func heapifyDown(scores []int, moves []types.Move, i int) {
	n := len(scores)
	for {
		largest := i
		left, right := 2*i+1, 2*i+2
		if left < n && scores[left] > scores[largest] {
			largest = left
		}
		if right < n && scores[right] > scores[largest] {
			largest = right
		}
		if largest == i {
			return
		}
		scores[i], scores[largest] = scores[largest], scores[i]
		moves[i], moves[largest] = moves[largest], moves[i]
		i = largest
	}
}
