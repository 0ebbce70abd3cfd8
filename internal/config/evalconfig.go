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

// evalConfiguration tunes the static evaluation function.
type evalConfiguration struct {
	Tempo int16

	UseBishopPair  bool
	BishopPairBonus int16

	UsePawnStructure bool
	UsePawnCache     bool
	PawnCacheSizeMB  int
	// PawnCachePersistPath, if non-empty, flushes the pawn cache to an
	// on-disk Badger store at ucinewgame so a long-running process
	// doesn't re-warm pawn evaluation after a reset. Optional,
	// best-effort: failures are logged, never fatal.
	PawnCachePersistPath string

	PawnIsolatedMidMalus int16
	PawnIsolatedEndMalus int16
	PawnDoubledMidMalus  int16
	PawnDoubledEndMalus  int16
	PawnPassedMidBonus   [8]int16
	PawnPassedEndBonus   [8]int16
}

func init() {
	Settings.Eval.Tempo = 10

	Settings.Eval.UseBishopPair = true
	Settings.Eval.BishopPairBonus = 20

	Settings.Eval.UsePawnStructure = true
	Settings.Eval.UsePawnCache = true
	Settings.Eval.PawnCacheSizeMB = 4
	Settings.Eval.PawnCachePersistPath = ""

	Settings.Eval.PawnIsolatedMidMalus = 10
	Settings.Eval.PawnIsolatedEndMalus = 20
	Settings.Eval.PawnDoubledMidMalus = 10
	Settings.Eval.PawnDoubledEndMalus = 30

	Settings.Eval.PawnPassedMidBonus = [8]int16{0, 5, 10, 15, 30, 50, 80, 0}
	Settings.Eval.PawnPassedEndBonus = [8]int16{0, 10, 20, 35, 60, 100, 150, 0}
}
