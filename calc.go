// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main // import "pemdas.io/calc"

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"golang.org/x/term"

	"pemdas.io/calc/config"
	"pemdas.io/calc/run"
	"pemdas.io/calc/tui"
)

var (
	format    = flag.String("format", "%v", "format string for printing results")
	prompt    = flag.String("prompt", run.DefaultPrompt, "input prompt")
	debugFlag = flag.String("debug", "", "comma-separated `categories`: tokens,postfix,trace")
	plain     = flag.Bool("plain", false, "line-oriented interface even on a terminal")
)

var conf config.Config

func main() {
	log.SetFlags(0)
	log.SetPrefix("calc: ")

	flag.Usage = usage
	flag.Parse()

	conf.SetFormat(*format)
	conf.SetPrompt(*prompt)
	for _, cat := range strings.Split(*debugFlag, ",") {
		if cat != "" {
			conf.SetDebug(cat, true)
		}
	}

	switch flag.NArg() {
	case 0:
		interactive := term.IsTerminal(int(os.Stdin.Fd()))
		if interactive && !*plain {
			if err := tui.Run(&conf); err != nil {
				log.Fatal(err)
			}
			return
		}
		run.Run(&conf, os.Stdin, interactive)
	case 1:
		name := flag.Arg(0)
		fd, err := os.Open(name)
		if err != nil {
			log.Fatal(err)
		}
		run.Run(&conf, fd, false)
		fd.Close()
	default:
		flag.Usage()
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: calc [options] [file]\n")
	fmt.Fprintf(os.Stderr, "Flags:\n")
	flag.PrintDefaults()
	os.Exit(2)
}
