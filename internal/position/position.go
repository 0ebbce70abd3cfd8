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

// Package position represents a mutable chess board: bitboards, a
// mailbox, Zobrist hash, castling/en-passant/fifty-move state, and a
// history stack of undo records. Create one with NewBoard() for the
// start position or NewBoardFromFEN() for an arbitrary one, then drive
// it exclusively through SetPiece/ClearPiece/MovePiece/MakeMove/
// UnmakeMove/MakeNull/UnmakeNull.
package position

import (
	"strings"

	"github.com/nilsagren/chessd/internal/assert"
	"github.com/nilsagren/chessd/internal/attacks"
	"github.com/nilsagren/chessd/internal/types"
	"github.com/nilsagren/chessd/internal/zobrist"
)

// Castling right bits, per the wire-compatible 4-bit mask.
const (
	CastleWK = 1
	CastleWQ = 2
	CastleBK = 4
	CastleBQ = 8
	CastleAll = CastleWK | CastleWQ | CastleBK | CastleBQ
)

// StartFEN is the standard chess starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Undo is a single history-stack entry saved by MakeMove/MakeNull and
// consumed by the matching UnmakeMove/UnmakeNull.
type Undo struct {
	CastlePerm    int
	EpSquare      types.Square
	FiftyMove     int
	MovedPiece    types.Piece
	CapturedPiece types.Piece
	Move          types.Move
	Hash          types.Key
}

// Board is the mutable chess position owned by the search driver.
type Board struct {
	Colors  [3]types.Bitboard // indexed by Color; Both is the union
	Pieces  [6]types.Bitboard // indexed by PieceType
	Mailbox [64]types.Piece

	Side       types.Color
	EpSquare   types.Square
	CastlePerm int
	FiftyMove  int
	Ply        int
	Hash       types.Key

	History []Undo
}

// NewBoard returns a board set up at the standard start position.
func NewBoard() *Board {
	b, err := NewBoardFromFEN(StartFEN)
	if err != nil {
		panic("position: start FEN must always parse: " + err.Error())
	}
	return b
}

// KingSquare returns the square of c's king.
func (b *Board) KingSquare(c types.Color) types.Square {
	return (b.Pieces[types.King] & b.Colors[c]).Lsb()
}

// SetPiece places a piece of kind pt and color c on sq, which must
// currently be empty. Updates every bitboard, the mailbox, and XORs
// the piece's Zobrist key into the hash.
func (b *Board) SetPiece(c types.Color, pt types.PieceType, sq types.Square) {
	assert.Assert(b.Mailbox[sq] == types.Empty, "SetPiece: %s is not empty", sq)
	pc := types.PieceOf(pt, c)
	b.Pieces[pt] = b.Pieces[pt].Set(sq)
	b.Colors[c] = b.Colors[c].Set(sq)
	b.Colors[types.Both] = b.Colors[types.Both].Set(sq)
	b.Mailbox[sq] = pc
	b.Hash ^= zobrist.Pieces[pc][sq]
}

// ClearPiece removes the piece of kind pt and color c from sq, which
// must currently hold it.
func (b *Board) ClearPiece(c types.Color, pt types.PieceType, sq types.Square) {
	assert.Assert(b.Mailbox[sq] == types.PieceOf(pt, c), "ClearPiece: %s does not hold %v", sq, types.PieceOf(pt, c))
	pc := types.PieceOf(pt, c)
	b.Pieces[pt] = b.Pieces[pt].Clear(sq)
	b.Colors[c] = b.Colors[c].Clear(sq)
	b.Colors[types.Both] = b.Colors[types.Both].Clear(sq)
	b.Mailbox[sq] = types.Empty
	b.Hash ^= zobrist.Pieces[pc][sq]
}

// MovePiece relocates a piece of kind pt and color c from from to to.
// XOR-equivalent to ClearPiece(from) followed by SetPiece(to).
func (b *Board) MovePiece(c types.Color, pt types.PieceType, from, to types.Square) {
	pc := types.PieceOf(pt, c)
	bb := from.Bb() | to.Bb()
	b.Pieces[pt] ^= bb
	b.Colors[c] ^= bb
	b.Colors[types.Both] ^= bb
	b.Mailbox[from] = types.Empty
	b.Mailbox[to] = pc
	b.Hash ^= zobrist.Pieces[pc][from]
	b.Hash ^= zobrist.Pieces[pc][to]
}

// IsSquareAttacked reports whether any piece of the color opposing
// defender attacks sq on the current occupancy.
func (b *Board) IsSquareAttacked(defender types.Color, sq types.Square) bool {
	attacker := defender.Other()
	occ := b.Colors[types.Both]

	if attacks.GetPawnAttacks(defender, sq)&b.pieces(attacker, types.Pawn) != 0 {
		return true
	}
	if attacks.GetAttacksBb(types.Knight, sq, occ)&b.pieces(attacker, types.Knight) != 0 {
		return true
	}
	if attacks.GetAttacksBb(types.King, sq, occ)&b.pieces(attacker, types.King) != 0 {
		return true
	}
	bishopsQueens := b.pieces(attacker, types.Bishop) | b.pieces(attacker, types.Queen)
	if attacks.GetAttacksBb(types.Bishop, sq, occ)&bishopsQueens != 0 {
		return true
	}
	rooksQueens := b.pieces(attacker, types.Rook) | b.pieces(attacker, types.Queen)
	if attacks.GetAttacksBb(types.Rook, sq, occ)&rooksQueens != 0 {
		return true
	}
	return false
}

// AllAttackersToSquare returns the union of attackers of both colors
// to sq given an arbitrary occupancy bitboard, used by SEE to replay
// an exchange on a shrinking occupancy.
func (b *Board) AllAttackersToSquare(occupied types.Bitboard, sq types.Square) types.Bitboard {
	var attackers types.Bitboard
	for _, c := range [2]types.Color{types.White, types.Black} {
		attackers |= attacks.GetPawnAttacks(c.Other(), sq) & b.pieces(c, types.Pawn) & occupied
		attackers |= attacks.GetAttacksBb(types.Knight, sq, occupied) & b.pieces(c, types.Knight) & occupied
		attackers |= attacks.GetAttacksBb(types.King, sq, occupied) & b.pieces(c, types.King) & occupied
		bq := (b.pieces(c, types.Bishop) | b.pieces(c, types.Queen)) & occupied
		attackers |= attacks.GetAttacksBb(types.Bishop, sq, occupied) & bq
		rq := (b.pieces(c, types.Rook) | b.pieces(c, types.Queen)) & occupied
		attackers |= attacks.GetAttacksBb(types.Rook, sq, occupied) & rq
	}
	return attackers
}

// IsDraw reports fifty-move exhaustion or a single prior repetition of
// the current hash within the fifty-move window.
func (b *Board) IsDraw() bool {
	if b.FiftyMove >= 100 {
		return true
	}
	n := len(b.History)
	lo := n - b.FiftyMove
	if lo < 0 {
		lo = 0
	}
	for i := n - 1; i >= lo; i-- {
		if b.History[i].Hash == b.Hash {
			return true
		}
	}
	return false
}

// IsPawnEndgame reports whether side has only pawns and a king left,
// used to veto null-move pruning.
func (b *Board) IsPawnEndgame(side types.Color) bool {
	return b.Colors[side]&^(b.Pieces[types.Pawn]|b.Pieces[types.King]) == 0
}

// InCheck reports whether side's king is currently attacked.
func (b *Board) InCheck(side types.Color) bool {
	return b.IsSquareAttacked(side, b.KingSquare(side))
}

// GenerateHash rebuilds the Zobrist signature from scratch, used to
// cross-check the incrementally maintained Hash field.
func (b *Board) GenerateHash() types.Key {
	var h types.Key
	for sq := types.A1; sq <= types.H8; sq++ {
		pc := b.Mailbox[sq]
		if pc != types.Empty {
			h ^= zobrist.Pieces[pc][sq]
		}
	}
	h ^= zobrist.Castle[b.CastlePerm]
	if b.EpSquare != types.NoSquare {
		h ^= zobrist.EpFile[b.EpSquare.FileOf()]
	}
	if b.Side == types.Black {
		h ^= zobrist.SideToMove
	}
	return h
}

func (b *Board) pieces(c types.Color, pt types.PieceType) types.Bitboard {
	return b.Pieces[pt] & b.Colors[c]
}

// String renders an ASCII board dump, rank 8 on top, files a..h.
func (b *Board) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		sb.WriteByte('1' + byte(rank))
		sb.WriteByte(' ')
		for file := 0; file < 8; file++ {
			pc := b.Mailbox[types.SquareFrom(file, rank)]
			sb.WriteString(pc.String())
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	sb.WriteString("side to move: " + b.Side.String() + "\n")
	return sb.String()
}
