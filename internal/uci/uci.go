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

// Package uci implements the line-oriented protocol described in
// spec.md §6: uci, isready, ucinewgame, position, go, quit, the
// non-standard perft and print commands, plus stop.
package uci

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/nilsagren/chessd/internal/book"
	"github.com/nilsagren/chessd/internal/config"
	myLogging "github.com/nilsagren/chessd/internal/logging"
	"github.com/nilsagren/chessd/internal/movegen"
	"github.com/nilsagren/chessd/internal/position"
	"github.com/nilsagren/chessd/internal/search"
	"github.com/nilsagren/chessd/internal/types"
)

var out = message.NewPrinter(language.English)

// Name and Author are reported in response to the "uci" command.
const Name = "chessd"

const Author = "the chessd authors"

// Handler owns the current position and search engine and drives the
// protocol loop. Create one with NewHandler; In/Out can be swapped
// before calling Loop for testing.
type Handler struct {
	In  *bufio.Scanner
	Out *bufio.Writer

	board  *position.Board
	engine *search.Engine
	book   *book.Book
	log    *logging.Logger
}

// NewHandler builds a handler reading from stdin and writing to
// stdout, at the start position, with a fresh search engine.
func NewHandler() *Handler {
	var b *book.Book
	if config.Settings.Book.Enabled {
		b = book.Load(config.Settings.Book.Path)
	} else {
		b = &book.Book{}
	}
	return &Handler{
		In:     bufio.NewScanner(os.Stdin),
		Out:    bufio.NewWriter(os.Stdout),
		board:  position.NewBoard(),
		engine: search.NewEngine(),
		book:   b,
		log:    myLogging.GetLog("uci"),
	}
}

// Warmup rebuilds the engine's static tables before the protocol loop
// starts reading commands.
func (h *Handler) Warmup() error {
	return h.engine.Warmup()
}

// Loop reads commands from In until "quit" or EOF.
func (h *Handler) Loop() {
	for h.In.Scan() {
		if h.handle(h.In.Text()) {
			return
		}
	}
}

func (h *Handler) handle(line string) (quit bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	h.log.Debugf("<< %s", line)

	switch fields[0] {
	case "uci":
		h.send("id name " + Name)
		h.send("id author " + Author)
		h.send("uciok")
	case "isready":
		h.send("readyok")
	case "ucinewgame":
		h.board = position.NewBoard()
		h.engine.NewGame()
	case "position":
		h.positionCommand(fields)
	case "go":
		h.goCommand(fields)
	case "stop":
		h.engine.RequestStop()
	case "quit":
		h.engine.RequestQuit()
		return true
	case "perft":
		h.perftCommand(fields)
	case "print":
		h.send(h.board.String())
	default:
		h.log.Warningf("unknown command: %s", line)
	}
	return false
}

func (h *Handler) positionCommand(fields []string) {
	if len(fields) < 2 {
		h.log.Warningf("position: malformed command")
		return
	}

	i := 1
	fen := position.StartFEN
	switch fields[i] {
	case "startpos":
		i++
	case "fen":
		i++
		var sb strings.Builder
		for i < len(fields) && fields[i] != "moves" {
			sb.WriteString(fields[i])
			sb.WriteByte(' ')
			i++
		}
		fen = strings.TrimSpace(sb.String())
	default:
		h.log.Warningf("position: malformed command, expected startpos or fen")
		return
	}

	b, err := position.NewBoardFromFEN(fen)
	if err != nil {
		h.log.Warningf("position: %v", err)
		return
	}
	h.board = b

	var played []string
	if i < len(fields) && fields[i] == "moves" {
		i++
		for ; i < len(fields); i++ {
			m, ok := parseMove(h.board, fields[i])
			if !ok {
				h.log.Warningf("position: illegal or malformed move %q", fields[i])
				return
			}
			if !h.board.MakeMove(m) {
				h.board.UnmakeMove(m)
				h.log.Warningf("position: illegal move %q", fields[i])
				return
			}
			played = append(played, fields[i])
		}
	}

	if config.Settings.Book.Enabled {
		if name, ok := h.book.Match(played); ok {
			h.send(out.Sprintf("info string book line: %s", name))
		}
	}
}

// parseMove resolves a long-algebraic move string against the
// pseudo-legal moves in b, matching promotion letter when present.
func parseMove(b *position.Board, s string) (types.Move, bool) {
	if len(s) < 4 {
		return types.NoMove, false
	}
	from, err := types.SquareFromString(s[0:2])
	if err != nil {
		return types.NoMove, false
	}
	to, err := types.SquareFromString(s[2:4])
	if err != nil {
		return types.NoMove, false
	}
	promo := -1
	if len(s) >= 5 {
		promo = types.PromoFlagFor(s[4])
	}

	var ml movegen.MoveList
	movegen.Generate(b, &ml)
	for i := 0; i < ml.Count; i++ {
		m := ml.Moves[i]
		if m.From() != from || m.To() != to {
			continue
		}
		if promo >= 0 {
			if m.IsPromotion() && m.Flag()&^types.FlagCapture == promo {
				return m, true
			}
			continue
		}
		if !m.IsPromotion() {
			return m, true
		}
	}
	return types.NoMove, false
}

func (h *Handler) goCommand(fields []string) {
	limits := search.NewLimits()
	i := 1
	for i < len(fields) {
		switch fields[i] {
		case "infinite":
			limits.Infinite = true
			i++
		case "depth":
			i++
			if i < len(fields) {
				limits.Depth, _ = strconv.Atoi(fields[i])
				i++
			}
		case "nodes":
			i++
			if i < len(fields) {
				n, _ := strconv.ParseUint(fields[i], 10, 64)
				limits.Nodes = n
				i++
			}
		case "movetime":
			i++
			if i < len(fields) {
				ms, _ := strconv.Atoi(fields[i])
				limits.MoveTime = time.Duration(ms) * time.Millisecond
				limits.TimeControl = true
				i++
			}
		case "wtime":
			i++
			if i < len(fields) {
				ms, _ := strconv.Atoi(fields[i])
				limits.WhiteTime = time.Duration(ms) * time.Millisecond
				limits.TimeControl = true
				i++
			}
		case "btime":
			i++
			if i < len(fields) {
				ms, _ := strconv.Atoi(fields[i])
				limits.BlackTime = time.Duration(ms) * time.Millisecond
				limits.TimeControl = true
				i++
			}
		case "winc":
			i++
			if i < len(fields) {
				ms, _ := strconv.Atoi(fields[i])
				limits.WhiteInc = time.Duration(ms) * time.Millisecond
				i++
			}
		case "binc":
			i++
			if i < len(fields) {
				ms, _ := strconv.Atoi(fields[i])
				limits.BlackInc = time.Duration(ms) * time.Millisecond
				i++
			}
		case "movestogo":
			i++
			if i < len(fields) {
				limits.MovesToGo, _ = strconv.Atoi(fields[i])
				i++
			}
		default:
			i++
		}
	}

	result := h.engine.StartSearch(h.board, limits, h)

	resp := "bestmove " + result.BestMove.String()
	if result.PonderMove != types.NoMove {
		resp += " ponder " + result.PonderMove.String()
	}
	h.send(resp)
}

// SendIterationInfo implements search.Reporter.
func (h *Handler) SendIterationInfo(depth int, score types.Value, nodes uint64, elapsed time.Duration, pv []types.Move, hashfull int) {
	var pvStr strings.Builder
	for i, m := range pv {
		if i > 0 {
			pvStr.WriteByte(' ')
		}
		pvStr.WriteString(m.String())
	}

	nps := uint64(0)
	if ms := elapsed.Milliseconds(); ms > 0 {
		nps = nodes * 1000 / uint64(ms)
	}

	scoreStr := scoreString(score)
	h.send(fmt.Sprintf("info depth %d score %s nodes %d nps %d time %d hashfull %d pv %s",
		depth, scoreStr, nodes, nps, elapsed.Milliseconds(), hashfull, pvStr.String()))
}

func scoreString(v types.Value) string {
	if v >= types.ValueMateThreshold {
		pliesToMate := int(types.ValueMate - v)
		return fmt.Sprintf("mate %d", (pliesToMate+1)/2)
	}
	if v <= -types.ValueMateThreshold {
		pliesToMate := int(types.ValueMate + v)
		return fmt.Sprintf("mate -%d", (pliesToMate+1)/2)
	}
	return fmt.Sprintf("cp %d", v)
}

func (h *Handler) perftCommand(fields []string) {
	depth := 4
	if len(fields) > 1 {
		if d, err := strconv.Atoi(fields[1]); err == nil {
			depth = d
		}
	}
	start := time.Now()
	nodes := movegen.Perft(h.board, depth)
	h.send(out.Sprintf("info string perft(%d) = %d nodes in %s", depth, nodes, time.Since(start)))
}

func (h *Handler) send(s string) {
	h.log.Debugf(">> %s", s)
	_, _ = h.Out.WriteString(s + "\n")
	_ = h.Out.Flush()
}
