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

package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/nilsagren/chessd/internal/config"
	"github.com/nilsagren/chessd/internal/logging"
	"github.com/nilsagren/chessd/internal/movegen"
	"github.com/nilsagren/chessd/internal/position"
	"github.com/nilsagren/chessd/internal/uci"
)

var out = message.NewPrinter(language.English)

func main() {
	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	perftDepth := flag.Int("perft", 0, "runs perft to the given depth on -fen (or the start position) and exits")
	fen := flag.String("fen", position.StartFEN, "fen used by -perft")
	cpuProfile := flag.Bool("cpuprofile", false, "enable CPU profiling, written to the working directory")
	flag.Parse()

	if *versionInfo {
		printVersionInfo()
		return
	}

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	config.ConfFile = *configFile
	config.Setup()

	log := logging.GetLog()

	if *perftDepth > 0 {
		b, err := position.NewBoardFromFEN(*fen)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		for d := 1; d <= *perftDepth; d++ {
			start := time.Now()
			nodes := movegen.Perft(b, d)
			out.Printf("perft(%d) = %d nodes (%s)\n", d, nodes, time.Since(start))
		}
		return
	}

	h := uci.NewHandler()
	if err := h.Warmup(); err != nil {
		log.Errorf("warmup failed: %v", err)
	}
	h.Loop()
}

func printVersionInfo() {
	out.Println("chessd")
	out.Println("Environment:")
	out.Printf("  Go version %s\n", runtime.Version())
	out.Printf("  %s using %s\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  CPUs: %d\n", runtime.NumCPU())
	cwd, _ := os.Getwd()
	out.Printf("  Working directory: %s\n", cwd)
}
