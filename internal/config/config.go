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

// Package config holds globally available configuration values, either
// set by defaults, read from a TOML config file, or overridden by the
// command line / UCI options.
package config

import (
	"fmt"
	"log"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/nilsagren/chessd/internal/util"
)

var (
	// ConfFile is the path to the config file, relative to the working
	// directory unless absolute.
	ConfFile = "./config.toml"

	// Settings is the global, process-wide configuration.
	Settings conf

	initialized = false
)

type conf struct {
	Search searchConfiguration
	Eval   evalConfiguration
	TT     ttConfiguration
	Book   bookConfiguration
}

type ttConfiguration struct {
	SizeMB int
}

type bookConfiguration struct {
	Enabled bool
	Path    string
}

// Setup loads the config file (if present) over the package defaults.
// Safe to call more than once; only the first call has an effect.
func Setup() {
	if initialized {
		return
	}
	path, err := util.ResolveFile(ConfFile)
	if err == nil {
		if _, decodeErr := toml.DecodeFile(path, &Settings); decodeErr != nil {
			log.Println("config file found but could not be parsed, using defaults:", decodeErr)
		}
	}
	initialized = true
}

// String dumps the current configuration, used for diagnostics.
func (c *conf) String() string {
	var sb strings.Builder
	dump := func(title string, v interface{}) {
		sb.WriteString(title)
		sb.WriteString(":\n")
		s := reflect.ValueOf(v).Elem()
		t := s.Type()
		for i := 0; i < s.NumField(); i++ {
			f := s.Field(i)
			sb.WriteString(fmt.Sprintf("%-2d: %-22s %-8s = %v\n", i, t.Field(i).Name, f.Type(), f.Interface()))
		}
	}
	dump("Search", &c.Search)
	dump("Eval", &c.Eval)
	dump("TT", &c.TT)
	dump("Book", &c.Book)
	return sb.String()
}

func init() {
	Settings.TT.SizeMB = 64
	Settings.Book.Enabled = false
	Settings.Book.Path = "./book.toml"
}
