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
	"math"

	"github.com/nilsagren/chessd/internal/types"
)

// lmrTable[depth][moveNumber] is the number of plies a late, quiet
// move gets reduced by, precomputed once at startup the way most
// engines in the Ethereal/Weiss lineage do it.
var lmrTable [types.MaxDepth][types.MaxLegalMoves]int

func init() {
	buildLmrTable()
}

// buildLmrTable fills lmrTable. Exported indirectly through
// Engine.Warmup, which rebuilds it alongside the attack and Zobrist
// tables; idempotent.
func buildLmrTable() {
	for depth := 1; depth < types.MaxDepth; depth++ {
		for moveNumber := 1; moveNumber < types.MaxLegalMoves; moveNumber++ {
			reduction := int(math.Log(float64(depth)) * math.Log(float64(moveNumber)) / 4)
			if reduction < 0 {
				reduction = 0
			}
			lmrTable[depth][moveNumber] = reduction
		}
	}
}

func lmrReduction(depth, moveNumber int) int {
	if depth <= 0 || depth >= types.MaxDepth || moveNumber >= types.MaxLegalMoves {
		return 0
	}
	return lmrTable[depth][moveNumber]
}
