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

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaults_SearchAndEvalAndTT(t *testing.T) {
	Setup()

	assert.True(t, Settings.Search.UsePVS)
	assert.True(t, Settings.Search.UseQuiescence)
	assert.True(t, Settings.Search.UseSEE)
	assert.True(t, Settings.Search.UseTT)
	assert.True(t, Settings.Search.UseNullMove)
	assert.False(t, Settings.Search.UseRFP)
	assert.False(t, Settings.Search.UseStatBonusHistory)

	assert.Equal(t, int16(10), Settings.Eval.Tempo)
	assert.True(t, Settings.Eval.UseBishopPair)

	assert.Equal(t, 64, Settings.TT.SizeMB)
	assert.False(t, Settings.Book.Enabled)
}

func TestSetup_IsIdempotent(t *testing.T) {
	Setup()
	Settings.Eval.Tempo = 999
	Setup()
	// A second call must not re-apply defaults over a value changed in
	// between, since Setup only ever runs its load logic once.
	assert.Equal(t, int16(999), Settings.Eval.Tempo)
	Settings.Eval.Tempo = 10
}

func TestConf_StringIncludesEverySection(t *testing.T) {
	s := Settings.String()
	assert.Contains(t, s, "Search:")
	assert.Contains(t, s, "Eval:")
	assert.Contains(t, s, "TT:")
	assert.Contains(t, s, "Book:")
}
