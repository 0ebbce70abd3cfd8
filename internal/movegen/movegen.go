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

// Package movegen produces unordered pseudo-legal moves for a
// position. Legality (does the move leave the mover's own king in
// check) is not checked here: callers filter by make/unmake, per the
// engine's make-move contract.
package movegen

import (
	"github.com/nilsagren/chessd/internal/attacks"
	"github.com/nilsagren/chessd/internal/position"
	"github.com/nilsagren/chessd/internal/types"
)

// MoveList is a fixed-capacity, stack-allocatable buffer of moves,
// sized to the engine-wide MaxLegalMoves bound so a single node never
// needs a heap allocation to hold its candidate moves.
type MoveList struct {
	Moves [types.MaxLegalMoves]types.Move
	Count int
}

// Add appends m, panicking only if the generator produced more moves
// than any real chess position can legally have.
func (ml *MoveList) Add(m types.Move) {
	ml.Moves[ml.Count] = m
	ml.Count++
}

// Generate fills ml with every pseudo-legal move in b for the side to
// move: pawn pushes/captures/promotions/en-passant, knight, bishop,
// rook, queen, king, and castling moves.
func Generate(b *position.Board, ml *MoveList) {
	us := b.Side
	them := us.Other()
	occupied := b.Colors[types.Both]
	enemies := b.Colors[them]
	own := b.Colors[us]

	generatePawnMoves(b, ml, us, enemies, occupied)

	for _, pt := range [3]types.PieceType{types.Knight, types.Bishop, types.Rook} {
		pieces := b.Pieces[pt] & own
		for pieces != 0 {
			from := pieces.PopLsb()
			targets := attacks.GetAttacksBb(pt, from, occupied) &^ own
			addTargets(ml, from, targets, enemies)
		}
	}
	queens := b.Pieces[types.Queen] & own
	for queens != 0 {
		from := queens.PopLsb()
		targets := attacks.GetAttacksBb(types.Queen, from, occupied) &^ own
		addTargets(ml, from, targets, enemies)
	}

	kingSq := b.KingSquare(us)
	kingTargets := attacks.GetAttacksBb(types.King, kingSq, occupied) &^ own
	addTargets(ml, kingSq, kingTargets, enemies)

	generateCastling(b, ml, us, occupied)
}

// GenerateNoisy fills ml with only captures, en-passant captures and
// promotions, used by the quiescence-search move picker.
func GenerateNoisy(b *position.Board, ml *MoveList) {
	var all MoveList
	Generate(b, &all)
	for i := 0; i < all.Count; i++ {
		m := all.Moves[i]
		if m.IsCapture() || m.IsPromotion() {
			ml.Add(m)
		}
	}
}

func addTargets(ml *MoveList, from types.Square, targets, enemies types.Bitboard) {
	for targets != 0 {
		to := targets.PopLsb()
		flag := types.FlagQuiet
		if enemies.Has(to) {
			flag = types.FlagCapture
		}
		ml.Add(types.NewMove(from, to, flag))
	}
}

var promoFlags = [4]int{types.FlagKnightPromo, types.FlagBishopPromo, types.FlagRookPromo, types.FlagQueenPromo}

func addPawnMove(ml *MoveList, from, to types.Square, isCapture, isPromo bool) {
	if !isPromo {
		flag := types.FlagQuiet
		if isCapture {
			flag = types.FlagCapture
		}
		ml.Add(types.NewMove(from, to, flag))
		return
	}
	for _, pf := range promoFlags {
		flag := pf
		if isCapture {
			flag |= types.FlagCapture
		}
		ml.Add(types.NewMove(from, to, flag))
	}
}

func generatePawnMoves(b *position.Board, ml *MoveList, us types.Color, enemies, occupied types.Bitboard) {
	pawns := b.Pieces[types.Pawn] & b.Colors[us]
	empty := ^occupied

	var forward, doubleRankMask, promoRank types.Bitboard
	var pushDelta int
	if us == types.White {
		forward = shiftNorth(pawns) & empty
		doubleRankMask = types.RankMask(2)
		promoRank = types.Rank8Mask
		pushDelta = 8
	} else {
		forward = shiftSouth(pawns) & empty
		doubleRankMask = types.RankMask(5)
		promoRank = types.Rank1Mask
		pushDelta = -8
	}

	singlePush := forward &^ promoRank
	for singlePush != 0 {
		to := singlePush.PopLsb()
		from := types.Square(int(to) - pushDelta)
		addPawnMove(ml, from, to, false, false)
	}
	promoPush := forward & promoRank
	for promoPush != 0 {
		to := promoPush.PopLsb()
		from := types.Square(int(to) - pushDelta)
		addPawnMove(ml, from, to, false, true)
	}

	var doublePush types.Bitboard
	if us == types.White {
		doublePush = shiftNorth(forward&doubleRankMask) & empty
	} else {
		doublePush = shiftSouth(forward&doubleRankMask) & empty
	}
	for doublePush != 0 {
		to := doublePush.PopLsb()
		from := types.Square(int(to) - 2*pushDelta)
		ml.Add(types.NewMove(from, to, types.FlagQuiet))
	}

	for _, dir := range [2]int{+1, -1} {
		var captures types.Bitboard
		if us == types.White {
			if dir == +1 {
				captures = shiftNortheast(pawns) & enemies
			} else {
				captures = shiftNorthwest(pawns) & enemies
			}
		} else {
			if dir == +1 {
				captures = shiftSoutheast(pawns) & enemies
			} else {
				captures = shiftSouthwest(pawns) & enemies
			}
		}
		nonPromo := captures &^ promoRank
		for nonPromo != 0 {
			to := nonPromo.PopLsb()
			from := types.Square(int(to) - pushDelta - dir)
			addPawnMove(ml, from, to, true, false)
		}
		promo := captures & promoRank
		for promo != 0 {
			to := promo.PopLsb()
			from := types.Square(int(to) - pushDelta - dir)
			addPawnMove(ml, from, to, true, true)
		}
	}

	if ep := b.EpSquare; ep != types.NoSquare {
		attackers := attacks.GetPawnAttacks(us.Other(), ep) & pawns
		for attackers != 0 {
			from := attackers.PopLsb()
			ml.Add(types.NewMove(from, ep, types.FlagEnPassant))
		}
	}
}

func generateCastling(b *position.Board, ml *MoveList, us types.Color, occupied types.Bitboard) {
	if us == types.White {
		if b.CastlePerm&position.CastleWK != 0 &&
			occupied&(types.F1.Bb()|types.G1.Bb()) == 0 &&
			!squaresAttacked(b, types.Black, types.E1, types.F1, types.G1) {
			ml.Add(types.NewMove(types.E1, types.G1, types.FlagCastle))
		}
		if b.CastlePerm&position.CastleWQ != 0 &&
			occupied&(types.D1.Bb()|types.C1.Bb()|types.B1.Bb()) == 0 &&
			!squaresAttacked(b, types.Black, types.E1, types.D1, types.C1) {
			ml.Add(types.NewMove(types.E1, types.C1, types.FlagCastle))
		}
	} else {
		if b.CastlePerm&position.CastleBK != 0 &&
			occupied&(types.F8.Bb()|types.G8.Bb()) == 0 &&
			!squaresAttacked(b, types.White, types.E8, types.F8, types.G8) {
			ml.Add(types.NewMove(types.E8, types.G8, types.FlagCastle))
		}
		if b.CastlePerm&position.CastleBQ != 0 &&
			occupied&(types.D8.Bb()|types.C8.Bb()|types.B8.Bb()) == 0 &&
			!squaresAttacked(b, types.White, types.E8, types.D8, types.C8) {
			ml.Add(types.NewMove(types.E8, types.C8, types.FlagCastle))
		}
	}
}

func squaresAttacked(b *position.Board, attacker types.Color, sqs ...types.Square) bool {
	for _, sq := range sqs {
		if b.IsSquareAttacked(attacker.Other(), sq) {
			return true
		}
	}
	return false
}

func shiftNorth(b types.Bitboard) types.Bitboard     { return b << 8 }
func shiftSouth(b types.Bitboard) types.Bitboard     { return b >> 8 }
func shiftNortheast(b types.Bitboard) types.Bitboard { return (b &^ types.FileHMask) << 9 }
func shiftNorthwest(b types.Bitboard) types.Bitboard { return (b &^ types.FileAMask) << 7 }
func shiftSoutheast(b types.Bitboard) types.Bitboard { return (b &^ types.FileHMask) >> 7 }
func shiftSouthwest(b types.Bitboard) types.Bitboard { return (b &^ types.FileAMask) >> 9 }
