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
	"fmt"
	"strconv"
	"strings"

	"github.com/nilsagren/chessd/internal/types"
	"github.com/nilsagren/chessd/internal/zobrist"
)

var fenPieceTypes = map[byte]types.PieceType{
	'p': types.Pawn, 'n': types.Knight, 'b': types.Bishop,
	'r': types.Rook, 'q': types.Queen, 'k': types.King,
}

// NewBoardFromFEN parses a standard six-field FEN string into a fresh
// Board. The fullmove counter is accepted but ignored: Ply is always
// reset to 0 after parsing.
func NewBoardFromFEN(fen string) (*Board, error) {
	fields := strings.Fields(strings.TrimSpace(fen))
	if len(fields) < 4 {
		return nil, fmt.Errorf("position: fen %q has too few fields", fen)
	}

	b := &Board{EpSquare: types.NoSquare}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("position: fen %q does not have 8 ranks", fen)
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for _, ch := range rankStr {
			switch {
			case ch >= '1' && ch <= '8':
				file += int(ch - '0')
			default:
				pt, ok := fenPieceTypes[byte(lower(ch))]
				if !ok {
					return nil, fmt.Errorf("position: fen %q has invalid piece char %q", fen, ch)
				}
				if file > 7 {
					return nil, fmt.Errorf("position: fen %q overflows rank %d", fen, rank)
				}
				color := types.Black
				if ch >= 'A' && ch <= 'Z' {
					color = types.White
				}
				b.SetPiece(color, pt, types.SquareFrom(file, rank))
				file++
			}
		}
		if file != 8 {
			return nil, fmt.Errorf("position: fen %q rank %d does not sum to 8 files", fen, rank)
		}
	}

	switch fields[1] {
	case "w":
		b.Side = types.White
	case "b":
		b.Side = types.Black
	default:
		return nil, fmt.Errorf("position: fen %q has invalid side %q", fen, fields[1])
	}

	if fields[2] != "-" {
		for _, ch := range fields[2] {
			switch ch {
			case 'K':
				b.CastlePerm |= CastleWK
			case 'Q':
				b.CastlePerm |= CastleWQ
			case 'k':
				b.CastlePerm |= CastleBK
			case 'q':
				b.CastlePerm |= CastleBQ
			default:
				return nil, fmt.Errorf("position: fen %q has invalid castling char %q", fen, ch)
			}
		}
	}
	b.Hash ^= zobrist.Castle[b.CastlePerm]

	if fields[3] != "-" {
		sq, err := types.SquareFromString(fields[3])
		if err != nil {
			return nil, fmt.Errorf("position: fen %q has invalid ep square: %w", fen, err)
		}
		b.EpSquare = sq
		b.Hash ^= zobrist.EpFile[sq.FileOf()]
	}

	if b.Side == types.Black {
		b.Hash ^= zobrist.SideToMove
	}

	if len(fields) >= 5 {
		if n, err := strconv.Atoi(fields[4]); err == nil {
			b.FiftyMove = n
		}
	}

	b.Ply = 0
	b.History = nil

	if got, want := b.Hash, b.GenerateHash(); got != want {
		return nil, fmt.Errorf("position: internal error, incremental hash %x does not match rebuilt hash %x", got, want)
	}

	return b, nil
}

func lower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}
