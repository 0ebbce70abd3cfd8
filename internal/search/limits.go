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
	"time"

	"github.com/nilsagren/chessd/internal/types"
)

// Limits controls how deep and how long a search runs. Exactly one of
// the time-control/depth/nodes/movetime fields is expected to drive
// termination; Infinite disables the time budget, while Depth and Nodes
// still apply.
type Limits struct {
	Infinite bool
	Depth    int
	Nodes    uint64

	TimeControl bool
	WhiteTime   time.Duration
	BlackTime   time.Duration
	WhiteInc    time.Duration
	BlackInc    time.Duration
	MoveTime    time.Duration
	MovesToGo   int
}

// NewLimits returns an empty Limits.
func NewLimits() *Limits {
	return &Limits{}
}

// allocate computes the soft time budget for side to move, per
// spec.md §6: movetime is used directly when given; otherwise,
// given remaining time T, increment I and moves-to-go G, allocate
// approximately T/G + I.
func (l *Limits) allocate(side types.Color) time.Duration {
	if l.MoveTime > 0 {
		return l.MoveTime
	}
	if !l.TimeControl {
		return 0
	}

	remaining, inc := l.WhiteTime, l.WhiteInc
	if side == types.Black {
		remaining, inc = l.BlackTime, l.BlackInc
	}

	movesToGo := l.MovesToGo
	if movesToGo <= 0 {
		movesToGo = 30
	}

	budget := remaining/time.Duration(movesToGo) + inc
	if budget > remaining {
		budget = remaining
	}
	return budget
}
