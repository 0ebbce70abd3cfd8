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

package position

import (
	"github.com/nilsagren/chessd/internal/assert"
	"github.com/nilsagren/chessd/internal/types"
	"github.com/nilsagren/chessd/internal/util"
	"github.com/nilsagren/chessd/internal/zobrist"
)

// castleMask returns the castling rights that are lost the moment a
// king or rook square is touched, either as the from or to square of
// any move (this also naturally revokes rights when a rook is
// captured on its home square).
func castleMask(sq types.Square) int {
	switch sq {
	case types.E1:
		return CastleWK | CastleWQ
	case types.H1:
		return CastleWK
	case types.A1:
		return CastleWQ
	case types.E8:
		return CastleBK | CastleBQ
	case types.H8:
		return CastleBK
	case types.A8:
		return CastleBQ
	default:
		return 0
	}
}

// MakeMove applies m to the board and reports whether the resulting
// position is legal, i.e. the side that just moved is not left in
// check. On an illegal result the caller must call UnmakeMove(m)
// immediately; MakeMove never unwinds its own effects.
func (b *Board) MakeMove(m types.Move) bool {
	from, to := m.From(), m.To()
	movedPiece := b.Mailbox[from]
	side := movedPiece.ColorOf()
	capturedPiece := b.Mailbox[to]

	assert.Assert(movedPiece != types.Empty, "MakeMove: no piece on %s for move %s", from, m)
	assert.Assert(side == b.Side, "MakeMove: %s is not side to move", side)

	epCaptureSquare := types.NoSquare
	if m.IsEnPassant() {
		if side == types.White {
			epCaptureSquare = to - 8
		} else {
			epCaptureSquare = to + 8
		}
		capturedPiece = b.Mailbox[epCaptureSquare]
	}

	undo := Undo{
		CastlePerm:    b.CastlePerm,
		EpSquare:      b.EpSquare,
		FiftyMove:     b.FiftyMove,
		MovedPiece:    movedPiece,
		CapturedPiece: capturedPiece,
		Move:          m,
		Hash:          b.Hash,
	}

	if m.IsCapture() {
		if m.IsEnPassant() {
			b.ClearPiece(capturedPiece.ColorOf(), capturedPiece.TypeOf(), epCaptureSquare)
		} else {
			b.ClearPiece(capturedPiece.ColorOf(), capturedPiece.TypeOf(), to)
		}
	}

	b.MovePiece(side, movedPiece.TypeOf(), from, to)

	if m.IsPromotion() {
		b.ClearPiece(side, types.Pawn, to)
		b.SetPiece(side, m.PromotionType(), to)
	}

	if m.IsCastle() {
		switch to {
		case types.G1:
			b.MovePiece(types.White, types.Rook, types.H1, types.F1)
		case types.C1:
			b.MovePiece(types.White, types.Rook, types.A1, types.D1)
		case types.G8:
			b.MovePiece(types.Black, types.Rook, types.H8, types.F8)
		case types.C8:
			b.MovePiece(types.Black, types.Rook, types.A8, types.D8)
		}
	}

	lostRights := castleMask(from) | castleMask(to)
	if newPerm := b.CastlePerm &^ lostRights; newPerm != b.CastlePerm {
		b.Hash ^= zobrist.Castle[b.CastlePerm]
		b.Hash ^= zobrist.Castle[newPerm]
		b.CastlePerm = newPerm
	}

	oldEp := b.EpSquare
	newEp := types.NoSquare
	if movedPiece.TypeOf() == types.Pawn && util.Abs(int(to)-int(from)) == 16 {
		if side == types.White {
			newEp = from + 8
		} else {
			newEp = from - 8
		}
	}
	if oldEp != types.NoSquare {
		b.Hash ^= zobrist.EpFile[oldEp.FileOf()]
	}
	if newEp != types.NoSquare {
		b.Hash ^= zobrist.EpFile[newEp.FileOf()]
	}
	b.EpSquare = newEp

	b.Side = b.Side.Other()
	b.Hash ^= zobrist.SideToMove

	if m.IsCapture() || movedPiece.TypeOf() == types.Pawn {
		b.FiftyMove = 0
	} else {
		b.FiftyMove++
	}

	b.Ply++
	b.History = append(b.History, undo)

	if b.InCheck(side) {
		return false
	}
	return true
}

// UnmakeMove mechanically reverses the most recent MakeMove, whether
// or not it reported legal. The move passed must be the one just
// made; it is only used to classify how the mailbox needs rewinding,
// every other field is restored verbatim from the saved Undo frame.
func (b *Board) UnmakeMove(m types.Move) {
	n := len(b.History) - 1
	undo := b.History[n]
	b.History = b.History[:n]

	from, to := m.From(), m.To()
	side := undo.MovedPiece.ColorOf()

	b.Side = side
	b.Ply--

	if m.IsCastle() {
		switch to {
		case types.G1:
			b.MovePiece(types.White, types.Rook, types.F1, types.H1)
		case types.C1:
			b.MovePiece(types.White, types.Rook, types.D1, types.A1)
		case types.G8:
			b.MovePiece(types.Black, types.Rook, types.F8, types.H8)
		case types.C8:
			b.MovePiece(types.Black, types.Rook, types.D8, types.A8)
		}
	}

	if m.IsPromotion() {
		b.ClearPiece(side, m.PromotionType(), to)
		b.SetPiece(side, types.Pawn, from)
	} else {
		b.MovePiece(side, undo.MovedPiece.TypeOf(), to, from)
	}

	if m.IsCapture() {
		if m.IsEnPassant() {
			var capSq types.Square
			if side == types.White {
				capSq = to - 8
			} else {
				capSq = to + 8
			}
			b.SetPiece(undo.CapturedPiece.ColorOf(), undo.CapturedPiece.TypeOf(), capSq)
		} else {
			b.SetPiece(undo.CapturedPiece.ColorOf(), undo.CapturedPiece.TypeOf(), to)
		}
	}

	b.CastlePerm = undo.CastlePerm
	b.EpSquare = undo.EpSquare
	b.FiftyMove = undo.FiftyMove
	b.Hash = undo.Hash
}

// MakeNull plays a null move: side to move passes, the en-passant
// square (if any) is cleared, and a NoMove undo frame is pushed. Only
// legal to call when the side to move is not in check and not in a
// pawn endgame; the caller is responsible for that check.
func (b *Board) MakeNull() {
	undo := Undo{
		CastlePerm:    b.CastlePerm,
		EpSquare:      b.EpSquare,
		FiftyMove:     b.FiftyMove,
		MovedPiece:    types.NoPiece,
		CapturedPiece: types.NoPiece,
		Move:          types.NoMove,
		Hash:          b.Hash,
	}

	if b.EpSquare != types.NoSquare {
		b.Hash ^= zobrist.EpFile[b.EpSquare.FileOf()]
		b.EpSquare = types.NoSquare
	}
	b.Side = b.Side.Other()
	b.Hash ^= zobrist.SideToMove
	b.Ply++
	b.History = append(b.History, undo)
}

// UnmakeNull reverses the most recent MakeNull.
func (b *Board) UnmakeNull() {
	n := len(b.History) - 1
	undo := b.History[n]
	b.History = b.History[:n]

	b.Side = b.Side.Other()
	b.EpSquare = undo.EpSquare
	b.CastlePerm = undo.CastlePerm
	b.FiftyMove = undo.FiftyMove
	b.Hash = undo.Hash
	b.Ply--
}
