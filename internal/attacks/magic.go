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

// Package attacks precomputes every lookup table the move generator and
// evaluator need: magic-bitboard sliding attacks for bishops and rooks,
// and plain tables for knights, kings and pawns. Everything here is
// built once at package init and is read-only afterward.
package attacks

import (
	"github.com/nilsagren/chessd/internal/types"
)

// magic holds the fancy-magic-bitboard lookup for a single square.
// Taken from Stockfish; see chessprogramming.org/Magic_Bitboards.
type magic struct {
	mask    types.Bitboard
	magic   types.Bitboard
	attacks []types.Bitboard
	shift   uint
}

func (m *magic) index(occupied types.Bitboard) uint {
	occ := occupied & m.mask
	occ *= m.magic
	occ >>= m.shift
	return uint(occ)
}

var (
	rookMagics   [types.SquareLength]magic
	bishopMagics [types.SquareLength]magic

	rookTable   []types.Bitboard
	bishopTable []types.Bitboard
)

var rookDirections = [4]direction{North, South, East, West}
var bishopDirections = [4]direction{Northeast, Northwest, Southeast, Southwest}

func init() {
	initMagicTables()
}

// initMagicTables builds the rook and bishop magic tables. Exported as
// Init so search.Engine.Warmup can rebuild it deterministically
// alongside the other static tables; safe to call more than once.
func initMagicTables() {
	rookTable = make([]types.Bitboard, 0x19000)
	bishopTable = make([]types.Bitboard, 0x1480)
	initMagics(rookTable, &rookMagics, &rookDirections)
	initMagics(bishopTable, &bishopMagics, &bishopDirections)
}

// initMagics computes rook or bishop magics for every square, following
// the classic Stockfish fancy-magic initialization algorithm: build the
// relevant occupancy mask, enumerate all its subsets with the
// carry-rippler trick, then probe sparse random numbers until one maps
// every subset to a unique, correct index.
func initMagics(table []types.Bitboard, magics *[64]magic, dirs *[4]direction) {
	seeds := [8]uint64{728, 10316, 55013, 32803, 12281, 15100, 16645, 255}

	var occupancy [4096]types.Bitboard
	var reference [4096]types.Bitboard
	var epoch [4096]int
	cnt := 0
	size := 0

	for sq := types.A1; sq <= types.H8; sq++ {
		edges := ((types.Rank1Mask | types.Rank8Mask) &^ types.RankMask(sq.RankOf())) |
			((types.FileAMask | types.FileHMask) &^ types.FileMask(sq.FileOf()))

		m := &magics[sq]
		m.mask = slidingAttack(dirs, sq, types.Bitboard(0)) &^ edges
		m.shift = uint(64 - m.mask.PopCount())

		if sq == types.A1 {
			m.attacks = table
		} else {
			m.attacks = magics[sq-1].attacks[size:]
		}

		b := types.Bitboard(0)
		size = 0
		for {
			occupancy[size] = b
			reference[size] = slidingAttack(dirs, sq, b)
			size++
			b = (b - m.mask) & m.mask
			if b == 0 {
				break
			}
		}

		rng := newMagicRand(seeds[sq.RankOf()])
		for i := 0; i < size; {
			for m.magic = 0; ; {
				m.magic = types.Bitboard(rng.sparse())
				if ((m.magic * m.mask) >> 56).PopCount() < 6 {
					break
				}
			}

			cnt++
			for i = 0; i < size; i++ {
				idx := m.index(occupancy[i])
				if epoch[idx] < cnt {
					epoch[idx] = cnt
					m.attacks[idx] = reference[i]
				} else if m.attacks[idx] != reference[i] {
					break
				}
			}
		}
	}
}

// slidingAttack rolls a ray in each of the four given directions from
// sq until it falls off the board or hits an occupied square.
func slidingAttack(dirs *[4]direction, sq types.Square, occupied types.Bitboard) types.Bitboard {
	attack := types.Bitboard(0)
	for i := 0; i < 4; i++ {
		s := sq
		for {
			next, ok := step(s, dirs[i])
			if !ok {
				break
			}
			s = next
			attack = attack.Set(s)
			if occupied.Has(s) {
				break
			}
		}
	}
	return attack
}

// magicRand is the xorshift64star generator Stockfish uses to search
// for magic numbers. Kept separate from zobrist's random: the two
// serve unrelated purposes and happen to share an algorithm, not a
// seed or a type.
type magicRand struct {
	s uint64
}

func newMagicRand(seed uint64) *magicRand {
	return &magicRand{s: seed}
}

func (r *magicRand) rand64() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}

// sparse returns a random value with roughly 1/8th of its bits set,
// which converges to a valid magic much faster than a uniform value.
func (r *magicRand) sparse() uint64 {
	return r.rand64() & r.rand64() & r.rand64()
}
