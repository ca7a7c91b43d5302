// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package run ties the pipeline stages together and provides the
// line-oriented execution loop. It is factored out of main so it can be
// used for tests and by the terminal UI.
package run // import "pemdas.io/calc/run"

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"pemdas.io/calc/config"
	"pemdas.io/calc/eval"
	"pemdas.io/calc/parse"
	"pemdas.io/calc/scan"
)

// User-facing text, shared with the terminal UI.
const (
	Greeting = "------ Welcome to Calculator 2.0 ------\n" +
		"Available operations (PEMDAS): (), %, ^, *, /, +, -. Negative numbers supported!\n" +
		"Type 'exit' to close program. Type 'help' for hints."
	HelpText = "Enter any mathematical expression using numbers and any of the following operations: (), %, ^, *, /, +, -.\n" +
		"Type 'exit' to close program."
	Goodbye = "Program finished with exit code 0."
)

// DefaultPrompt is the interactive input prompt.
const DefaultPrompt = "Enter your expression: "

// Evaluate runs input through the whole pipeline: tokenize, convert to
// postfix, evaluate. It is stateless; nothing is carried over between
// calls. The config supplies the debug categories: "tokens" and
// "postfix" dump the intermediate sequences, "trace" reports each stack
// operation during evaluation, all to conf.Output().
func Evaluate(conf *config.Config, input string) (float64, error) {
	tokens, err := scan.Tokenize(input)
	if err != nil {
		return 0, err
	}
	if conf.Debug("tokens") {
		dump(conf.Output(), "After Tokenization", tokens)
	}

	postfix, err := parse.ToPostfix(tokens)
	if err != nil {
		return 0, err
	}
	if conf.Debug("postfix") {
		dump(conf.Output(), "Postfix Conversion", postfix)
	}

	var trace eval.Tracer
	if conf.Debug("trace") {
		w := conf.Output()
		trace = func(format string, args ...any) {
			fmt.Fprintf(w, format+"\n", args...)
		}
	}
	return eval.EvaluateTrace(postfix, trace)
}

// dump prints a token sequence, one token per line.
func dump(w io.Writer, stage string, tokens []scan.Token) {
	fmt.Fprintf(w, "--- Debug: %s ---\n", stage)
	for _, tok := range tokens {
		fmt.Fprintln(w, tok)
	}
	fmt.Fprintln(w, "-----------------------------------")
}

// Run reads expressions from r, one per line, and writes results to
// conf.Output() and error messages to conf.ErrOutput(). The literal
// lines "exit" and "help" are commands and never reach the pipeline.
// Evaluation errors are reported and the loop continues; only "exit" or
// end of input ends the loop.
func Run(conf *config.Config, r io.Reader, interactive bool) {
	w := conf.Output()
	if interactive {
		fmt.Fprintln(w, Greeting)
	}
	scanner := bufio.NewScanner(r)
	for {
		if interactive {
			fmt.Fprintf(w, "\n%s", conf.Prompt())
		}
		if !scanner.Scan() {
			return
		}
		switch line := strings.TrimSpace(scanner.Text()); line {
		case "exit":
			fmt.Fprintln(w, Goodbye)
			return
		case "help":
			fmt.Fprintln(w, HelpText)
		default:
			value, err := Evaluate(conf, line)
			if err != nil {
				fmt.Fprintf(conf.ErrOutput(), "Error: %s\n", err)
				continue
			}
			fmt.Fprintf(w, "Answer: "+conf.Format()+"\n", value)
		}
	}
}
