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

package attacks

import "github.com/nilsagren/chessd/internal/types"

// direction is a single-step offset on the 0..63 square index.
type direction int8

const (
	North     direction = 8
	South     direction = -8
	East      direction = 1
	West      direction = -1
	Northeast direction = 9
	Northwest direction = 7
	Southeast direction = -7
	Southwest direction = -9
)

// step moves sq one square in dir, reporting false if that would wrap
// around a file edge or fall off the board.
func step(sq types.Square, dir direction) (types.Square, bool) {
	to := types.Square(int(sq) + int(dir))
	if to < types.A1 || to > types.H8 {
		return types.NoSquare, false
	}
	if types.Distance(sq, to) > 2 {
		// every direction we use is a single king step, so a step
		// that lands more than one file away wrapped around the
		// board edge (East/West and diagonal steps off the a/h file).
		return types.NoSquare, false
	}
	return to, true
}
