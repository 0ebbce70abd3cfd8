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

package uci

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nilsagren/chessd/internal/book"
	myLogging "github.com/nilsagren/chessd/internal/logging"
	"github.com/nilsagren/chessd/internal/position"
	"github.com/nilsagren/chessd/internal/search"
	"github.com/nilsagren/chessd/internal/types"
)

func newTestHandler(in string) (*Handler, *bytes.Buffer) {
	var out bytes.Buffer
	h := &Handler{
		In:     bufio.NewScanner(strings.NewReader(in)),
		Out:    bufio.NewWriter(&out),
		board:  position.NewBoard(),
		engine: search.NewEngine(),
		book:   &book.Book{},
		log:    myLogging.GetLog("uci"),
	}
	return h, &out
}

func TestHandle_UciReportsIdentityAndOk(t *testing.T) {
	h, out := newTestHandler("")
	quit := h.handle("uci")
	assert.False(t, quit)
	assert.Contains(t, out.String(), "id name "+Name)
	assert.Contains(t, out.String(), "id author "+Author)
	assert.Contains(t, out.String(), "uciok")
}

func TestHandle_IsReady(t *testing.T) {
	h, out := newTestHandler("")
	h.handle("isready")
	assert.Contains(t, out.String(), "readyok")
}

func TestHandle_QuitRequestsEngineQuitAndStopsLoop(t *testing.T) {
	h, _ := newTestHandler("")
	quit := h.handle("quit")
	assert.True(t, quit)
	assert.True(t, h.engine.Quit())
}

func TestHandle_PositionStartposAppliesMoves(t *testing.T) {
	h, _ := newTestHandler("")
	h.handle("position startpos moves e2e4 e7e5")
	assert.Equal(t, types.White, h.board.Side)
	assert.NotEqual(t, position.NewBoard().Hash, h.board.Hash)
}

func TestHandle_PositionFenLoadsExactPosition(t *testing.T) {
	h, _ := newTestHandler("")
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	h.handle("position fen " + fen)

	want, err := position.NewBoardFromFEN(fen)
	require.NoError(t, err)
	assert.Equal(t, want.Hash, h.board.Hash)
}

func TestHandle_PositionRejectsIllegalMove(t *testing.T) {
	h, out := newTestHandler("")
	before := h.board.Hash
	h.handle("position startpos moves e2e5")
	assert.Equal(t, before, h.board.Hash)
	_ = out
}

func TestHandle_PrintEmitsBoardString(t *testing.T) {
	h, out := newTestHandler("")
	h.handle("print")
	assert.Contains(t, out.String(), h.board.String())
}

func TestHandle_PerftReportsNodeCount(t *testing.T) {
	h, out := newTestHandler("")
	h.handle("perft 2")
	assert.Contains(t, out.String(), "perft(2) = 400")
}

func TestHandle_UnknownCommandDoesNotQuit(t *testing.T) {
	h, _ := newTestHandler("")
	assert.False(t, h.handle("bogus"))
}

func TestParseMove_RoundTripsAgainstMoveString(t *testing.T) {
	b := position.NewBoard()

	m, ok := parseMove(b, "e2e4")
	require.True(t, ok)
	assert.Equal(t, "e2e4", m.String())
}

func TestParseMove_RejectsMalformedInput(t *testing.T) {
	b := position.NewBoard()
	_, ok := parseMove(b, "")
	assert.False(t, ok)

	_, ok = parseMove(b, "e2")
	assert.False(t, ok)

	_, ok = parseMove(b, "z9z9")
	assert.False(t, ok)
}

func TestParseMove_RejectsNonExistentMove(t *testing.T) {
	b := position.NewBoard()
	// White pawn cannot reach e5 in one move from the start position.
	_, ok := parseMove(b, "e2e5")
	assert.False(t, ok)
}

func TestScoreString_FormatsMateAndCentipawns(t *testing.T) {
	assert.Equal(t, "cp 37", scoreString(37))
	assert.Equal(t, "mate 1", scoreString(types.ValueMate-1))
	assert.Equal(t, "mate -1", scoreString(-(types.ValueMate - 1)))
}

func TestHandle_GoDepthOneReportsBestMove(t *testing.T) {
	h, out := newTestHandler("")
	h.handle("go depth 1")
	assert.Contains(t, out.String(), "bestmove")
}
