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

package tt

import (
	"github.com/nilsagren/chessd/internal/types"
)

// Bound classifies what a stored score actually means relative to the
// search window that produced it.
type Bound uint8

const (
	BoundNone Bound = iota
	BoundExact
	BoundLower
	BoundUpper
)

// EntrySize is the nominal size of one slot used when sizing the
// table. The entry struct itself holds an 8-byte key, 2-byte move,
// 2-byte score, 2-byte eval and one byte each for depth, bound and
// age, which the compiler pads to 24 bytes.
const EntrySize = 16

// entry is one transposition table slot. depth, bound and age are
// separate bytes; depth is clamped to 0..255 on store.
type entry struct {
	key   types.Key
	move  uint16
	score int16
	eval  int16
	depth uint8
	bound Bound
	age   uint8
}

func (e *entry) Move() types.Move   { return types.Move(e.move) }
func (e *entry) Score() types.Value { return types.Value(e.score) }
func (e *entry) Eval() types.Value  { return types.Value(e.eval) }
func (e *entry) Depth() int         { return int(e.depth) }
func (e *entry) Bound() Bound       { return e.bound }
