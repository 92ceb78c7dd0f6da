// Copyright 2015 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Program magicate rewrites a single source file out of the extended
// dialect into the base language, printing the result to standard
// output.
//
// Usage: magicate [--quiet] [--trace FILE] INPUT-FILE
//
// Exit codes: 0 success; 1 I/O or parse error; 2 usage error.
package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"runtime/trace"

	"github.com/pborman/getopt"

	"github.com/popham/magicate/grammar"
	"github.com/popham/magicate/lexer"
	"github.com/popham/magicate/parser"
	"github.com/popham/magicate/rewrite"
)

// stop is a var, not a direct os.Exit call, so a deferred trace.Stop
// can run first when --trace is set, and so tests can intercept it.
var stop = os.Exit

func main() {
	var quiet bool
	var help bool
	var traceP string

	getopt.BoolVarLong(&quiet, "quiet", 'q', "suppress the Reading/Preimage/Image status lines")
	getopt.BoolVarLong(&help, "help", '?', "display help")
	getopt.StringVarLong(&traceP, "trace", 0, "write an execution trace to FILE", "FILE")
	getopt.SetParameters("INPUT-FILE")

	if err := getopt.Getopt(nil); err != nil {
		fmt.Fprintln(os.Stderr, err)
		getopt.PrintUsage(os.Stderr)
		stop(2)
		return
	}

	if help {
		getopt.CommandLine.PrintUsage(os.Stderr)
		stop(0)
		return
	}

	if traceP != "" {
		fp, err := os.Create(traceP)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			stop(1)
			return
		}
		trace.Start(fp)
		stop = func(c int) { trace.Stop(); os.Exit(c) }
		defer func() { trace.Stop() }()
	}

	args := getopt.Args()
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "magicate: exactly one INPUT-FILE argument is required")
		getopt.PrintUsage(os.Stderr)
		stop(2)
		return
	}
	inputFile := args[0]

	if !quiet {
		fmt.Fprintf(os.Stdout, "Reading %s\n", inputFile)
	}

	src, err := ioutil.ReadFile(inputFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop(1)
		return
	}

	if !quiet {
		fmt.Fprintln(os.Stdout, "Preimage:")
		os.Stdout.Write(src)
	}

	g, err := grammar.BuildDialectGrammar()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop(1)
		return
	}

	out, err := rewrite.Magicate(g, src)
	if err != nil {
		reportError(src, err)
		stop(1)
		return
	}

	if !quiet {
		fmt.Fprintln(os.Stdout, "Image:")
	}
	os.Stdout.Write(out)
}

// reportError prints the error code, source line, column, the
// offending line's text, and a caret marker.
func reportError(src []byte, err error) {
	var line, col int
	switch e := err.(type) {
	case *lexer.Error:
		line, col = e.Line, e.Col
	case *parser.SyntaxError:
		line, col = e.Line, e.Col
	default:
		fmt.Fprintln(os.Stderr, err)
		return
	}
	fmt.Fprintln(os.Stderr, err)
	if offending, ok := sourceLine(src, line); ok {
		fmt.Fprintln(os.Stderr, offending)
		caret := make([]byte, col)
		for i := range caret {
			caret[i] = ' '
		}
		fmt.Fprintln(os.Stderr, string(caret)+"^")
	}
}

// sourceLine returns the 1-indexed line n of src, and whether it
// exists.
func sourceLine(src []byte, n int) (string, bool) {
	if n < 1 {
		return "", false
	}
	start := 0
	cur := 1
	for i, b := range src {
		if cur == n {
			start = i
			break
		}
		if b == '\n' {
			cur++
		}
		if i == len(src)-1 {
			return "", false
		}
	}
	if cur != n {
		return "", false
	}
	end := start
	for end < len(src) && src[end] != '\n' {
		end++
	}
	return string(src[start:end]), true
}
