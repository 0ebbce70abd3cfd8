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

package types

// Value is a centipawn evaluation or search score.
type Value int32

const (
	ValueZero  Value = 0
	ValueDraw  Value = 0
	ValueInf   Value = 25000
	ValueMate  Value = 24500
	ValueNA    Value = -ValueInf - 1

	// ValueMateThreshold separates mate scores from ordinary ones:
	// iterative deepening stops once the root score reaches it, and the
	// UCI layer reports such scores as "mate N".
	ValueMateThreshold Value = ValueMate - 1000
)

// IsValid reports whether v is a usable search/eval value.
func (v Value) IsValid() bool {
	return v != ValueNA
}

// MaxDepth bounds recursion and every fixed-size per-ply array.
const MaxDepth = 256

// MaxLegalMoves bounds the pseudo-legal move buffer for a single position.
const MaxLegalMoves = 256
