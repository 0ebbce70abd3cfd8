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

package eval

import "github.com/nilsagren/chessd/internal/types"

// Material values, middle-game and end-game, in centipawns. Pawns and
// rooks gain value toward the endgame as the board opens up; minor
// pieces and the queen hold roughly steady.
var materialMg = [6]int32{
	types.Pawn: 100, types.Knight: 320, types.Bishop: 330,
	types.Rook: 500, types.Queen: 900, types.King: 0,
}
var materialEg = [6]int32{
	types.Pawn: 120, types.Knight: 320, types.Bishop: 330,
	types.Rook: 530, types.Queen: 950, types.King: 0,
}

// phaseWeight is how much each piece kind contributes to the game
// phase counter: knights/bishops 1, rooks 2, queens 4.
var phaseWeight = [6]int{
	types.Pawn: 0, types.Knight: 1, types.Bishop: 1,
	types.Rook: 2, types.Queen: 4, types.King: 0,
}

// StartPhase is the phase value of the full starting material: eight
// minors, four rooks, two queens: 8*1 + 4*2 + 2*4 = 24.
const StartPhase = 24

// MaxPhase is the 8-bit-scaled phase ceiling used by the taper.
const MaxPhase = 256

// MaterialMg exposes the middle-game material table for consumers
// outside the package, namely move-ordering's MVV-LVA table, which
// needs a flat per-kind value rather than the tapered score.
func MaterialMg() [types.PieceTypeLength]int32 {
	return materialMg
}
