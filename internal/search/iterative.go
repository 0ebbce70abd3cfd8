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

	"github.com/nilsagren/chessd/internal/position"
	"github.com/nilsagren/chessd/internal/types"
)

// StartSearch drives iterative deepening from depth 1 up to the
// limits' bound, reporting each completed iteration to reporter and
// returning the best move found by the last fully completed one. If
// reporter is nil, progress is simply not reported.
func (e *Engine) StartSearch(b *position.Board, limits *Limits, reporter Reporter) Result {
	if reporter == nil {
		reporter = nopReporter{}
	}

	e.stopped = false
	e.nodes = 0
	e.startTime = time.Now()
	e.TT.NewSearch()
	e.Heur.Clear()

	e.timeSet = false
	if !limits.Infinite {
		if alloc := limits.allocate(b.Side); alloc > 0 {
			e.endTime = e.startTime.Add(alloc)
			e.timeSet = true
		}
	}

	maxDepth := types.MaxDepth - 1
	if limits.Depth > 0 && limits.Depth < maxDepth {
		maxDepth = limits.Depth
	}

	var result Result
	var pv pvLine

	for depth := 1; depth <= maxDepth; depth++ {
		pv.clear()
		score := e.negamax(b, -types.ValueMate, types.ValueMate, depth, 0, &pv, true, true)

		if e.stopped && depth > 1 {
			break
		}

		line := pv.slice()
		if len(line) > 0 {
			result.BestMove = line[0]
		}
		if len(line) > 1 {
			result.PonderMove = line[1]
		}
		result.Score = score
		result.Depth = depth
		result.Nodes = e.nodes

		reporter.SendIterationInfo(depth, score, e.nodes, time.Since(e.startTime), line, e.TT.Hashfull())

		if e.stopped {
			break
		}
		if limits.Nodes > 0 && e.nodes >= limits.Nodes {
			break
		}
		if score >= types.ValueMateThreshold || score <= -types.ValueMateThreshold {
			break
		}
	}

	return result
}
