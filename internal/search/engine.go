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

// Package search implements iterative-deepening negamax alpha-beta
// search: principal variation search, quiescence, null-move pruning,
// internal iterative deepening, late move reductions, check
// extensions, mate-distance pruning and transposition-table probing.
//
// The search is single-threaded and cooperatively scheduled: there is
// no suspension point inside a node, only between sibling moves and
// between iterative-deepening iterations, polled via Engine.stopped.
package search

import (
	"time"

	"github.com/op/go-logging"
	"golang.org/x/sync/errgroup"

	"github.com/nilsagren/chessd/internal/attacks"
	"github.com/nilsagren/chessd/internal/config"
	"github.com/nilsagren/chessd/internal/eval"
	myLogging "github.com/nilsagren/chessd/internal/logging"
	"github.com/nilsagren/chessd/internal/movepicker"
	"github.com/nilsagren/chessd/internal/position"
	"github.com/nilsagren/chessd/internal/tt"
	"github.com/nilsagren/chessd/internal/types"
	"github.com/nilsagren/chessd/internal/zobrist"
)

// Reporter receives progress callbacks during a search so the UCI
// driver can emit "info" lines without the search package depending
// on the protocol layer (mirroring the teacher's uciInterface split,
// collapsed into one interface since this engine has a single
// consumer).
type Reporter interface {
	SendIterationInfo(depth int, score types.Value, nodes uint64, elapsed time.Duration, pv []types.Move, hashfull int)
}

// nopReporter discards all callbacks; used when the caller doesn't
// care about intermediate info output (tests, perft-adjacent tools).
type nopReporter struct{}

func (nopReporter) SendIterationInfo(int, types.Value, uint64, time.Duration, []types.Move, int) {}

// Result is what a completed (or gracefully interrupted) search
// returns to its caller.
type Result struct {
	BestMove types.Move
	PonderMove types.Move
	Score    types.Value
	Depth    int
	Nodes    uint64
}

// Engine owns everything that must survive across searches within one
// game: the transposition table and the move-ordering heuristic
// tables. It performs one search at a time; StartSearch is
// synchronous.
type Engine struct {
	log  *logging.Logger
	TT   *tt.Table
	Eval *eval.Evaluator
	Heur *movepicker.Heuristics

	stopped bool
	quit    bool
	nodes   uint64

	startTime time.Time
	endTime   time.Time
	timeSet   bool
}

// NewEngine builds an Engine using the configured TT size.
func NewEngine() *Engine {
	e := eval.NewEvaluator()
	movepicker.InitMvvLva(eval.MaterialMg())
	return &Engine{
		log:  myLogging.GetLog("search"),
		TT:   tt.New(config.Settings.TT.SizeMB),
		Eval: e,
		Heur: movepicker.NewHeuristics(),
	}
}

// Warmup rebuilds the attack tables, Zobrist keys and LMR table
// concurrently before the driver loop starts accepting commands. All
// three are already built once by their package init()s, so this is
// belt-and-braces determinism rather than a correctness requirement;
// it exists to give every independent static-table build a join point
// in case package init order is ever changed to defer one of them.
// Does not cross into the search itself: the single-threaded
// scheduling model of this package only applies once a search starts.
func (e *Engine) Warmup() error {
	var g errgroup.Group
	g.Go(func() error {
		attacks.Init()
		return nil
	})
	g.Go(func() error {
		zobrist.Init()
		return nil
	})
	g.Go(func() error {
		buildLmrTable()
		return nil
	})
	return g.Wait()
}

// NewGame resets engine state between games: clears the TT and the
// killer and history tables (counter-moves are kept), and flushes the
// pawn cache if persistence is configured.
func (e *Engine) NewGame() {
	e.TT.Clear()
	e.Heur.Clear()
	e.Eval.FlushPawnCache()
}

// RequestStop asks an in-progress search to unwind as soon as it next
// polls, per spec.md §5's cooperative cancellation model.
func (e *Engine) RequestStop() {
	e.stopped = true
}

// RequestQuit behaves like RequestStop but also tells Go's caller the
// driver should exit after the search unwinds.
func (e *Engine) RequestQuit() {
	e.stopped = true
	e.quit = true
}

// Quit reports whether RequestQuit was called.
func (e *Engine) Quit() bool {
	return e.quit
}

// pollInterval is how often (in nodes) the search checks the clock
// and any pending stop/quit request, per spec.md §4.7 step 4.
const pollInterval = 4096

func (e *Engine) checkTime() {
	if e.timeSet && time.Now().After(e.endTime) {
		e.stopped = true
	}
}
