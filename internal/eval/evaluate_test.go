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

package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nilsagren/chessd/internal/config"
	"github.com/nilsagren/chessd/internal/position"
	"github.com/nilsagren/chessd/internal/types"
)

func init() {
	config.Setup()
}

func TestEvaluate_StartPositionIsTempoOnly(t *testing.T) {
	b := position.NewBoard()
	ev := NewEvaluator()

	// Material and PSQT cancel exactly in the symmetric start position;
	// only the side-to-move tempo bonus should show through.
	score := ev.Evaluate(b)
	assert.Equal(t, types.Value(config.Settings.Eval.Tempo), score)
}

func TestEvaluate_IsSymmetricUnderColorFlip(t *testing.T) {
	white, err := position.NewBoardFromFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	black, err := position.NewBoardFromFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R b KQkq - 0 1")
	require.NoError(t, err)

	ev := NewEvaluator()
	// Same material/structure, only the side to move differs: scores
	// should be equal up to the (signed) tempo bonus.
	whiteScore := ev.Evaluate(white)
	blackScore := ev.Evaluate(black)
	tempo := types.Value(config.Settings.Eval.Tempo)
	assert.Equal(t, whiteScore-tempo, -(blackScore - tempo))
}

func TestEvaluate_MaterialAdvantageFavorsSideUp(t *testing.T) {
	b, err := position.NewBoardFromFEN("4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	require.NoError(t, err)

	ev := NewEvaluator()
	score := ev.Evaluate(b)
	assert.Greater(t, int(score), 0)
}

func TestGamePhase_StartPositionIsMaxPhase(t *testing.T) {
	b := position.NewBoard()
	assert.Equal(t, MaxPhase, gamePhase(b))
}

func TestGamePhase_BareKingsIsZero(t *testing.T) {
	b, err := position.NewBoardFromFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	assert.Equal(t, 0, gamePhase(b))
}

func TestMaterialMg_ExposesFlatTable(t *testing.T) {
	mg := MaterialMg()
	assert.Equal(t, materialMg[0], mg[0])
	assert.Equal(t, materialMg[4], mg[4])
}
