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

// searchConfiguration toggles and tunes the search's pruning and
// move-ordering heuristics.
type searchConfiguration struct {
	UsePVS bool

	UseQuiescence bool
	UseSEE        bool
	DeltaMargin   int

	UseTT     bool
	UseTTMove bool

	UseMDP      bool
	UseNullMove bool
	NmpDepth    int
	NmpReduction int

	UseIID       bool
	IIDDepth     int
	IIDReduction int

	UseCheckExt bool

	UseLMR           bool
	LmrMinDepth      int

	// UseRFP is an additional pruning technique not named in the
	// distilled spec and absent from the C original: reverse futility
	// (static null-move) pruning. Off by default so the baseline search
	// matches the spec's pruning set exactly; flip on to experiment.
	UseRFP      bool
	RFPMaxDepth int
	RFPMargin   int

	// UseStatBonusHistory swaps the plain depth*depth history update
	// for the Stockfish/Ethereal "stat_bonus" curve seen in the
	// original's movepicker.c. Off by default: the spec pins the
	// plain formula as the move-ordering contract.
	UseStatBonusHistory bool
}

func init() {
	Settings.Search.UsePVS = true

	Settings.Search.UseQuiescence = true
	Settings.Search.UseSEE = true
	Settings.Search.DeltaMargin = 200

	Settings.Search.UseTT = true
	Settings.Search.UseTTMove = true

	Settings.Search.UseMDP = true
	Settings.Search.UseNullMove = true
	Settings.Search.NmpDepth = 4
	Settings.Search.NmpReduction = 4

	Settings.Search.UseIID = true
	Settings.Search.IIDDepth = 8
	Settings.Search.IIDReduction = 7

	Settings.Search.UseCheckExt = true

	Settings.Search.UseLMR = true
	Settings.Search.LmrMinDepth = 2

	Settings.Search.UseRFP = false
	Settings.Search.RFPMaxDepth = 6
	Settings.Search.RFPMargin = 85
	Settings.Search.UseStatBonusHistory = false
}
