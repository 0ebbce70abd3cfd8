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

// Package pawncache is a direct-mapped cache of tapered pawn-structure
// scores keyed by the pawn-only Zobrist sub-hash, with an optional
// Badger-backed snapshot so a long-running process doesn't re-pay
// pawn evaluation after every ucinewgame reset.
package pawncache

import (
	"encoding/binary"
	"math"

	"github.com/dgraph-io/badger/v4"
	gologging "github.com/op/go-logging"

	"github.com/nilsagren/chessd/internal/logging"
	"github.com/nilsagren/chessd/internal/types"
)

// entrySize is the footprint of one slot: an 8-byte key plus two
// 4-byte tapered scores.
const entrySize = 16

type entry struct {
	key types.Key
	mg  int32
	eg  int32
}

// Cache is a direct-mapped, power-of-two-sized cache of pawn
// structure scores. A miss leaves the caller to recompute and Store
// the result; a hit skips recomputation entirely.
type Cache struct {
	log     *gologging.Logger
	data    []entry
	mask    uint64
	persist string
	hits    uint64
	misses  uint64
}

// New builds a cache sized to sizeMB megabytes (0 disables it) and,
// if persistPath is non-empty, attempts to warm it from a previous
// Flush.
func New(sizeMB int, persistPath string) *Cache {
	c := &Cache{
		log:     logging.GetLog("pawncache"),
		persist: persistPath,
	}
	c.Resize(sizeMB)
	if persistPath != "" {
		c.warm()
	}
	return c
}

func (c *Cache) Resize(sizeMB int) {
	if sizeMB <= 0 {
		c.data = nil
		c.mask = 0
		return
	}
	bytes := uint64(sizeMB) * 1024 * 1024
	entries := uint64(1) << uint64(math.Floor(math.Log2(float64(bytes/entrySize))))
	c.data = make([]entry, entries)
	c.mask = entries - 1
}

func (c *Cache) Probe(key types.Key) (mg, eg int32, ok bool) {
	if len(c.data) == 0 {
		return 0, 0, false
	}
	e := &c.data[uint64(key)&c.mask]
	if e.key == key {
		c.hits++
		return e.mg, e.eg, true
	}
	c.misses++
	return 0, 0, false
}

func (c *Cache) Store(key types.Key, mg, eg int32) {
	if len(c.data) == 0 {
		return
	}
	c.data[uint64(key)&c.mask] = entry{key: key, mg: mg, eg: eg}
}

// Flush best-effort writes every occupied slot to the Badger store at
// c.persist. Failures are logged, never fatal: the pawn cache is a
// pure speed optimization and losing it costs nothing but time.
func (c *Cache) Flush() {
	if c.persist == "" {
		return
	}
	db, err := badger.Open(badger.DefaultOptions(c.persist).WithLogger(nil))
	if err != nil {
		c.log.Warningf("pawn cache: could not open persist store: %v", err)
		return
	}
	defer db.Close()

	err = db.Update(func(txn *badger.Txn) error {
		for _, e := range c.data {
			if e.key == 0 {
				continue
			}
			keyBuf := make([]byte, 8)
			binary.LittleEndian.PutUint64(keyBuf, uint64(e.key))
			valBuf := make([]byte, entrySize)
			binary.LittleEndian.PutUint64(valBuf[0:8], uint64(e.key))
			binary.LittleEndian.PutUint32(valBuf[8:12], uint32(e.mg))
			binary.LittleEndian.PutUint32(valBuf[12:16], uint32(e.eg))
			if err := txn.Set(keyBuf, valBuf); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		c.log.Warningf("pawn cache: flush failed: %v", err)
	}
}

// warm best-effort preloads the cache from a previous Flush.
func (c *Cache) warm() {
	db, err := badger.Open(badger.DefaultOptions(c.persist).WithLogger(nil))
	if err != nil {
		return // nothing to warm from yet
	}
	defer db.Close()

	_ = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			_ = item.Value(func(val []byte) error {
				if len(val) != entrySize {
					return nil
				}
				key := types.Key(binary.LittleEndian.Uint64(val[0:8]))
				mg := int32(binary.LittleEndian.Uint32(val[8:12]))
				eg := int32(binary.LittleEndian.Uint32(val[12:16]))
				c.Store(key, mg, eg)
				return nil
			})
		}
		return nil
	})
}
