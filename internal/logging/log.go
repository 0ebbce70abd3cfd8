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

// Package logging wraps github.com/op/go-logging with the one backend the
// engine needs: a timestamped, leveled stderr writer. UCI output on stdout
// is reserved for protocol lines, so diagnostic logging goes to stderr.
package logging

import (
	"os"

	. "github.com/op/go-logging"
)

var loggers = map[string]*Logger{}

// GetLog returns the named logger, creating and configuring its backend on
// first use. Every call with the same name returns the same instance.
func GetLog(name ...string) *Logger {
	n := "chessd"
	if len(name) > 0 {
		n = name[0]
	}
	if l, ok := loggers[n]; ok {
		return l
	}

	log := MustGetLogger(n)
	backend := NewLogBackend(os.Stderr, "", 0)
	format := MustStringFormatter(
		`%{time:15:04:05.000} %{shortfile}:%{shortfunc} %{level:7s}:  %{message}`,
	)
	backendFormatter := NewBackendFormatter(backend, format)
	leveled := AddModuleLevel(backendFormatter)
	leveled.SetLevel(DEBUG, "")
	SetBackend(leveled)

	loggers[n] = log
	return log
}
