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

package movegen

import "github.com/nilsagren/chessd/internal/position"

// Perft counts the leaf nodes reachable from b in exactly depth plies,
// make/unmake-ing every pseudo-legal move and only descending into
// ones that leave the mover's own king safe. Used by the "perft" UCI
// command and by tests cross-checking move generation against the
// reference counts in spec.md §8.
func Perft(b *position.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}

	var ml MoveList
	Generate(b, &ml)

	var nodes uint64
	for i := 0; i < ml.Count; i++ {
		m := ml.Moves[i]
		if !b.MakeMove(m) {
			b.UnmakeMove(m)
			continue
		}
		nodes += Perft(b, depth-1)
		b.UnmakeMove(m)
	}
	return nodes
}
