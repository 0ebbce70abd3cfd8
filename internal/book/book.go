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

// Package book reads a purely advisory TOML file of named opening
// lines. It never selects a move: the driver only uses it to print an
// "info string" when the current move history matches a known line's
// prefix, as operator commentary.
package book

import (
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/nilsagren/chessd/internal/logging"
)

// Line is one named opening line, as a sequence of moves in the
// engine's long-algebraic wire format.
type Line struct {
	Name  string
	Moves []string
}

type fileFormat struct {
	Line []Line
}

// Book is a loaded, read-only set of annotated lines.
type Book struct {
	lines []Line
}

// Load reads path as a TOML book file. A missing or malformed file is
// not fatal: the book is purely advisory, so Load logs a warning and
// returns an empty Book rather than an error the caller must handle.
func Load(path string) *Book {
	log := logging.GetLog("book")
	var ff fileFormat
	if _, err := toml.DecodeFile(path, &ff); err != nil {
		log.Warningf("book: could not load %q: %v", path, err)
		return &Book{}
	}
	log.Infof("book: loaded %d line(s) from %q", len(ff.Line), path)
	return &Book{lines: ff.Line}
}

// Match returns the name of the first known line whose move prefix
// equals played, and true, or ("", false) if no line matches.
func (b *Book) Match(played []string) (string, bool) {
	for _, line := range b.lines {
		if len(line.Moves) < len(played) {
			continue
		}
		if movesEqual(line.Moves[:len(played)], played) {
			return line.Name, true
		}
	}
	return "", false
}

func movesEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !strings.EqualFold(a[i], b[i]) {
			return false
		}
	}
	return true
}
