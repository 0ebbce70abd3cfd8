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

// Package tt implements the engine's transposition table: a single-
// bucket, direct-mapped array of entries keyed by Zobrist hash. Not
// thread safe; Resize and Clear must not run concurrently with a
// search using the table.
package tt

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	myLogging "github.com/nilsagren/chessd/internal/logging"
	"github.com/nilsagren/chessd/internal/types"
	"github.com/op/go-logging"
)

var out = message.NewPrinter(language.English)

// MaxSizeMB bounds the size a caller may request.
const MaxSizeMB = 65_536

const mb = 1024 * 1024

// Table is the transposition table.
type Table struct {
	log        *logging.Logger
	data       []entry
	mask       uint64
	maxEntries uint64
	numEntries uint64
	currentAge uint8
	Stats      Stats
}

// Stats tracks table usage for diagnostics and UCI info output.
type Stats struct {
	Puts       uint64
	Overwrites uint64
	Updates    uint64
	Probes     uint64
	Hits       uint64
	Misses     uint64
}

// New creates a table sized to at most sizeMB megabytes.
func New(sizeMB int) *Table {
	t := &Table{log: myLogging.GetLog("tt")}
	t.Resize(sizeMB)
	return t
}

// Resize rebuilds the table for a new size, discarding all entries.
// The number of slots is a power of two: the largest power of two not
// above sizeMB*2^20/EntrySize, with its exponent reduced by two (a
// quarter of it, at least one slot). Slots are indexed by masking the
// key, so the count is never the raw floor(MB*2^20/EntrySize).
func (t *Table) Resize(sizeMB int) {
	if sizeMB > MaxSizeMB {
		t.log.Warningf("requested TT size %d MB reduced to max %d MB", sizeMB, MaxSizeMB)
		sizeMB = MaxSizeMB
	}
	if sizeMB <= 0 {
		t.data = nil
		t.mask = 0
		t.maxEntries = 0
		t.numEntries = 0
		return
	}

	bytes := uint64(sizeMB) * mb
	raw := int64(math.Floor(math.Log2(float64(bytes/EntrySize)))) - 2
	if raw < 0 {
		raw = 0
	}
	t.maxEntries = uint64(1) << uint64(raw)
	t.mask = t.maxEntries - 1
	t.data = make([]entry, t.maxEntries)
	t.numEntries = 0
	t.currentAge = 0

	t.log.Infof("TT resized to %d MB, %d entries", sizeMB, t.maxEntries)
}

// Clear empties the table without changing its size.
func (t *Table) Clear() {
	t.data = make([]entry, t.maxEntries)
	t.numEntries = 0
	t.Stats = Stats{}
}

// NewSearch bumps the table's age, used to distinguish entries
// written in the current search from stale ones left by an earlier
// position without walking the whole table.
func (t *Table) NewSearch() {
	t.currentAge++
}

// Probe looks up key. ok is false on a miss or an empty slot.
func (t *Table) Probe(key types.Key) (move types.Move, score, eval types.Value, depth int, bound Bound, ok bool) {
	t.Stats.Probes++
	if t.maxEntries == 0 {
		t.Stats.Misses++
		return
	}
	e := &t.data[uint64(key)&t.mask]
	if e.key != key || e.bound == BoundNone {
		t.Stats.Misses++
		return
	}
	t.Stats.Hits++
	return e.Move(), e.Score(), e.Eval(), e.Depth(), e.Bound(), true
}

// Store writes an entry for key, unconditionally overwriting whatever
// was in that slot. The table favors recency and simplicity over the
// replacement schemes (depth- or age-gated) some engines use: every
// store is assumed to reflect the most current, most relevant
// information the search has about that hash.
func (t *Table) Store(key types.Key, move types.Move, depth int, score, eval types.Value, bound Bound) {
	if t.maxEntries == 0 {
		return
	}
	slot := &t.data[uint64(key)&t.mask]

	t.Stats.Puts++
	if slot.key == 0 {
		t.numEntries++
	} else if slot.key != key {
		t.Stats.Overwrites++
	} else {
		t.Stats.Updates++
	}

	if depth < 0 {
		depth = 0
	}
	if depth > 0xFF {
		depth = 0xFF
	}

	slot.key = key
	slot.move = uint16(move)
	slot.score = int16(score)
	slot.eval = int16(eval)
	slot.depth = uint8(depth)
	slot.bound = bound
	slot.age = t.currentAge
}

// Hashfull returns how full the table is, in permille, per UCI's
// "hashfull" info field.
func (t *Table) Hashfull() int {
	if t.maxEntries == 0 {
		return 0
	}
	return int((1000 * t.numEntries) / t.maxEntries)
}

func (t *Table) String() string {
	return out.Sprintf("TT: %d entries (%d%% full), puts %d updates %d overwrites %d probes %d hits %d misses %d",
		t.maxEntries, t.Hashfull()/10, t.Stats.Puts, t.Stats.Updates, t.Stats.Overwrites,
		t.Stats.Probes, t.Stats.Hits, t.Stats.Misses)
}
