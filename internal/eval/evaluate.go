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

// Package eval computes a tapered static evaluation of a position:
// material, piece-square tables, pawn structure, bishop pair and a
// tempo bonus, interpolated between middle-game and end-game weights
// by a game-phase counter.
package eval

import (
	"github.com/nilsagren/chessd/internal/config"
	"github.com/nilsagren/chessd/internal/pawncache"
	"github.com/nilsagren/chessd/internal/position"
	"github.com/nilsagren/chessd/internal/types"
	"github.com/nilsagren/chessd/internal/zobrist"
)

// Evaluator owns the pawn-structure cache; everything else it uses
// (material tables, PSQTs, pawn masks) is a package-level read-only
// table. Create one per Engine, not per search call.
type Evaluator struct {
	pawns *pawncache.Cache
}

// NewEvaluator builds an Evaluator using the current eval settings.
func NewEvaluator() *Evaluator {
	e := &config.Settings.Eval
	sizeMB, persistPath := e.PawnCacheSizeMB, e.PawnCachePersistPath
	if !e.UsePawnCache {
		sizeMB, persistPath = 0, ""
	}
	return &Evaluator{
		pawns: pawncache.New(sizeMB, persistPath),
	}
}

// FlushPawnCache best-effort persists the pawn cache, called at
// ucinewgame when persistence is configured.
func (ev *Evaluator) FlushPawnCache() {
	ev.pawns.Flush()
}

// Evaluate returns a centipawn score for b from the side-to-move's
// perspective, per negamax convention.
func (ev *Evaluator) Evaluate(b *position.Board) types.Value {
	phase := gamePhase(b)

	mg, eg := materialAndPSQT(b)

	e := &config.Settings.Eval
	if e.UseBishopPair {
		whiteBishops := (b.Pieces[types.Bishop] & b.Colors[types.White]).PopCount()
		blackBishops := (b.Pieces[types.Bishop] & b.Colors[types.Black]).PopCount()
		if whiteBishops > 1 {
			mg += int32(e.BishopPairBonus)
			eg += int32(e.BishopPairBonus)
		}
		if blackBishops > 1 {
			mg -= int32(e.BishopPairBonus)
			eg -= int32(e.BishopPairBonus)
		}
	}

	if e.UsePawnStructure {
		pawnKey := pawnZobristKey(b)
		var pmg, peg int32
		if cmg, ceg, ok := ev.pawns.Probe(pawnKey); ok {
			pmg, peg = cmg, ceg
		} else {
			wmg, weg := pawnStructure(b, types.White)
			bmg, beg := pawnStructure(b, types.Black)
			pmg, peg = wmg-bmg, weg-beg
			ev.pawns.Store(pawnKey, pmg, peg)
		}
		mg += pmg
		eg += peg
	}

	score := (mg*int32(phase) + eg*int32(MaxPhase-phase)) >> 8

	if b.Side == types.White {
		score += int32(e.Tempo)
	} else {
		score -= int32(e.Tempo)
	}

	if b.Side == types.Black {
		score = -score
	}
	return types.Value(score)
}

// pawnZobristKey derives a sub-hash over the pawn bitboards alone by
// XOR-folding each pawn's ordinary piece/square Zobrist key; it is
// independent of every other board field, so opposite positions with
// identical pawn structure collide on purpose.
func pawnZobristKey(b *position.Board) types.Key {
	var h types.Key
	for _, c := range [2]types.Color{types.White, types.Black} {
		for bb := b.Pieces[types.Pawn] & b.Colors[c]; bb != 0; {
			sq := bb.PopLsb()
			h ^= zobrist.Pieces[types.PieceOf(types.Pawn, c)][sq]
		}
	}
	return h
}

// gamePhase sums the phase weight of every piece still on the board,
// clamped to the starting phase.
func gamePhase(b *position.Board) int {
	phase := b.Pieces[types.Knight].PopCount()*phaseWeight[types.Knight] +
		b.Pieces[types.Bishop].PopCount()*phaseWeight[types.Bishop] +
		b.Pieces[types.Rook].PopCount()*phaseWeight[types.Rook] +
		b.Pieces[types.Queen].PopCount()*phaseWeight[types.Queen]
	if phase > StartPhase {
		phase = StartPhase
	}
	return (phase << 8) / StartPhase
}

func materialAndPSQT(b *position.Board) (mg, eg int32) {
	for pt := types.Pawn; pt <= types.King; pt++ {
		for bb := b.Pieces[pt] & b.Colors[types.White]; bb != 0; {
			sq := bb.PopLsb()
			pmg, peg := psqtValue(pt, types.White, sq)
			mg += materialMg[pt] + pmg
			eg += materialEg[pt] + peg
		}
		for bb := b.Pieces[pt] & b.Colors[types.Black]; bb != 0; {
			sq := bb.PopLsb()
			pmg, peg := psqtValue(pt, types.Black, sq)
			mg -= materialMg[pt] + pmg
			eg -= materialEg[pt] + peg
		}
	}
	return mg, eg
}
