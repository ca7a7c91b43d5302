// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Calc is an interactive arithmetic calculator. It reads one expression
per line and prints its value.

Usage:

	calc [options] [file]

With no file argument and a terminal on standard input, calc starts a
full-screen session with input history. Otherwise it reads expressions
line by line from the file or from standard input, printing one answer
per line.

Expressions are written in the usual infix notation over decimal
numbers, with parentheses for grouping:

	2 + 3 * 4
	(2 + 3) * 4
	2 ^ 3 ^ 2
	-3 ^ 2
	50% + 1

The operators, from loosest to tightest binding, are:

	+  -        addition, subtraction
	*  /        multiplication, division
	-           unary negation
	^           exponentiation (right-associative)
	%           percent: x% is x/100 (postfix)

A leading '-', or one following an operator or '(', negates the
expression after it, so --3 is 3 and -3^2 is -(3^2).

The commands "exit" and "help" end the session and print a summary of
the grammar, respectively.

The -debug flag enables diagnostic output by category: "tokens" and
"postfix" print the intermediate token sequences, and "trace" reports
every stack operation during evaluation.
*/
package main
